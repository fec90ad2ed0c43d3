package window

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/pong/internal/config"
	"github.com/vovakirdan/pong/internal/core"
	"github.com/vovakirdan/pong/internal/games/pong"
)

// Run opens the window and blocks until it is closed.
func Run(game *pong.Game, cfg config.Config, logger *log.Logger) error {
	f, err := New(game, cfg, logger)
	if err != nil {
		return err
	}

	w, h := windowSize(cfg.Window.Scale)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetTPS(cfg.Loop.TPS)
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowClosingHandled(true)

	logger.Info("opening window", "title", cfg.Window.Title, "width", w, "height", h, "tps", cfg.Loop.TPS)

	if err := ebiten.RunGame(f); err != nil {
		return fmt.Errorf("window: %w: %w", core.ErrPlatformInit, err)
	}
	return nil
}

// windowSize returns the outer window size for a scale factor.
func windowSize(scale float64) (int, int) {
	w := max(int(float64(pong.ScreenWidth)*scale), 1)
	h := max(int(float64(pong.ScreenHeight)*scale), 1)
	return w, h
}
