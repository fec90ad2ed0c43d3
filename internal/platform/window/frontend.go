package window

import (
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/pong/internal/config"
	"github.com/vovakirdan/pong/internal/core"
	"github.com/vovakirdan/pong/internal/games/pong"
)

// scoreTexture is a rasterized score and where it is drawn.
type scoreTexture struct {
	img  *ebiten.Image
	rect core.Rect
}

// Frontend implements ebiten.Game around a pong.Game.
// Each Update polls input and steps the simulation once; Draw renders the
// resulting frame.
type Frontend struct {
	game   *pong.Game
	keyMap *KeyMap
	keys   core.KeyState
	text   *TextRenderer
	logger *log.Logger

	scores   [2]scoreTexture
	revision int // TextRevision the score textures were built from

	bg color.RGBA
	fg color.RGBA

	running bool
	scratch []ebiten.Key
}

// New builds a frontend. Errors are asset load failures: bad key names,
// colors or fonts.
func New(game *pong.Game, cfg config.Config, logger *log.Logger) (*Frontend, error) {
	keyMap, err := NewKeyMap(cfg.Keys.Window)
	if err != nil {
		return nil, err
	}
	bg, err := config.ParseColor(cfg.Colors.Background)
	if err != nil {
		return nil, err
	}
	fg, err := config.ParseColor(cfg.Colors.Foreground)
	if err != nil {
		return nil, err
	}
	tr, err := NewTextRenderer(cfg.Font.Path, cfg.Font.Size)
	if err != nil {
		return nil, err
	}

	return &Frontend{
		game:    game,
		keyMap:  keyMap,
		text:    tr,
		logger:  logger,
		bg:      bg,
		fg:      fg,
		running: true,
	}, nil
}

// Update runs one frame of the loop. A close request clears the running flag;
// the frame still renders and the next Update terminates the game.
func (f *Frontend) Update() error {
	if !f.running {
		f.logger.Info("window closed", "score1", f.game.State().Score1, "score2", f.game.State().Score2)
		return ebiten.Termination
	}

	quit := f.pollKeys()

	res := f.game.Step(f.keys.Snapshot())
	logEvents(f.logger, res)
	f.refreshScores(f.game.Frame())

	if quit || ebiten.IsWindowBeingClosed() {
		f.running = false
	}
	return nil
}

// pollKeys turns this tick's key transitions into tracker events.
func (f *Frontend) pollKeys() bool {
	// Releases are not delivered while unfocused.
	if !ebiten.IsFocused() {
		f.keys.Reset()
		return false
	}

	f.scratch = inpututil.AppendJustPressedKeys(f.scratch[:0])
	quit := f.keyMap.Apply(&f.keys, f.scratch, true)

	f.scratch = inpututil.AppendJustReleasedKeys(f.scratch[:0])
	f.keyMap.Apply(&f.keys, f.scratch, false)

	return quit
}

// refreshScores re-rasterizes the score text when the game regenerated it.
func (f *Frontend) refreshScores(frame pong.Frame) {
	if frame.TextRevision == f.revision {
		return
	}

	for i, s := range []struct {
		player pong.Player
		text   string
	}{
		{pong.Player1, frame.Score1Text},
		{pong.Player2, frame.Score2Text},
	} {
		if old := f.scores[i].img; old != nil {
			old.Deallocate()
		}
		img, w, h := f.text.Render(s.text, f.fg)
		f.scores[i] = scoreTexture{img: img, rect: pong.ScoreRect(s.player, w, h)}
	}

	f.revision = frame.TextRevision
}

// Draw renders the current frame.
func (f *Frontend) Draw(screen *ebiten.Image) {
	frame := f.game.Frame()

	screen.Fill(f.bg)
	for _, r := range []core.Rect{frame.Paddle1, frame.Paddle2, frame.Ball, frame.Divider} {
		vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), f.fg, false)
	}

	for _, s := range f.scores {
		if s.img == nil {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(s.rect.X), float64(s.rect.Y))
		screen.DrawImage(s.img, op)
	}
}

// Layout fixes the logical screen to the playfield size; ebiten scales it
// to the window.
func (f *Frontend) Layout(outsideWidth, outsideHeight int) (int, int) {
	return pong.ScreenWidth, pong.ScreenHeight
}

// logEvents reports scoring and resets at debug level.
func logEvents(logger *log.Logger, res pong.StepResult) {
	for _, ev := range res.Events {
		switch ev.Kind {
		case pong.EventPointScored:
			logger.Debug("point scored", "player", ev.Player, "score1", ev.Score1, "score2", ev.Score2, "tick", res.State.Tick)
		case pong.EventRoundReset:
			logger.Debug("round reset", "serve", ev.Player, "vy", res.State.BallVY)
		}
	}
}
