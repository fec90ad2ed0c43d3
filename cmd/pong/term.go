package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pong/internal/core"
	"github.com/vovakirdan/pong/internal/games/pong"
	"github.com/vovakirdan/pong/internal/platform/tui"
)

var flagLogFile string

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Play in the terminal",
	Long: `Play Pong in the terminal. The playfield is scaled to fit.

Terminals only report key presses, so a paddle keeps moving for a short
hold window (config tui.hold_ms) after the last press or auto-repeat.

Controls:
  W/S        - Left paddle up/down
  Up/Down    - Right paddle up/down
  Q/Ctrl+C   - Quit

Examples:
  pong term
  pong term --log-file pong.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runTerm,
}

func init() {
	termCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
}

func runTerm(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal is the display, so logs go to a file or nowhere.
	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("log file: %w: %w", core.ErrPlatformInit, err)
		}
		defer f.Close()
		out = f
	}

	logger, err := newLogger(out, cfg.Log.Level)
	if err != nil {
		return err
	}

	// Get terminal size early for the first frame
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Loop.TPS,
		Seed:     resolveSeed(flagSeed),
	}
	logger.Info("starting", "frontend", "term", "seed", runtime.Seed, "tps", runtime.TickRate)

	return tui.Run(pong.New(runtime), cfg, runtime, logger)
}
