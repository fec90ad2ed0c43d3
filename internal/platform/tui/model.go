package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pong/internal/config"
	"github.com/vovakirdan/pong/internal/core"
	"github.com/vovakirdan/pong/internal/games/pong"
)

// helpHeight is the number of rows reserved below the playfield.
const helpHeight = 1

// Model is the Bubble Tea model for running the game in a terminal.
type Model struct {
	game    *pong.Game
	screen  *core.Screen
	keys    KeyMap
	help    help.Model
	held    *holdTracker
	palette Palette
	runtime core.RuntimeConfig
	logger  *log.Logger
	now     func() time.Time

	quitting bool
}

// NewModel creates a new Bubble Tea model for the game. runtime.ScreenW and
// ScreenH are the terminal size in cells.
func NewModel(game *pong.Game, cfg config.Config, runtime core.RuntimeConfig, logger *log.Logger) Model {
	h := help.New()
	h.Width = runtime.ScreenW

	return Model{
		game:    game,
		screen:  core.NewScreen(runtime.ScreenW, runtime.ScreenH-helpHeight),
		keys:    NewKeyMap(cfg.Keys.Terminal),
		help:    h,
		held:    newHoldTracker(time.Duration(cfg.TUI.HoldMS) * time.Millisecond),
		palette: NewPalette(cfg.Colors),
		runtime: runtime,
		logger:  logger,
		now:     time.Now,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k, quit := m.keys.MapKey(msg)
	if quit {
		st := m.game.State()
		m.logger.Info("quit", "score1", st.Score1, "score2", st.Score2, "tick", st.Tick)
		m.quitting = true
		return m, tea.Quit
	}

	m.held.Press(k, m.now())
	return m, nil
}

// handleResize processes terminal resize events. The simulation keeps its
// fixed playfield; only the drawing scale changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-helpHeight)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by one frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.held.Expire(now)
	res := m.game.Step(m.held.Snapshot())
	logEvents(m.logger, res)
	return m, tickCmd(m.runtime.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawFrame(m.screen, m.game.Frame())
	return RenderScreen(m.screen, m.palette) + "\n" + m.help.View(m.keys)
}

// logEvents reports points at debug level.
func logEvents(logger *log.Logger, res pong.StepResult) {
	if ev, ok := res.Scored(); ok {
		logger.Debug("point scored", "player", ev.Player, "score1", ev.Score1, "score2", ev.Score2, "tick", res.State.Tick)
	}
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game *pong.Game, cfg config.Config, runtime core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, runtime, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	logger.Info("starting terminal", "cols", runtime.ScreenW, "rows", runtime.ScreenH, "tps", runtime.TickRate)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w: %w", core.ErrPlatformInit, err)
	}
	return nil
}
