// pong is a two-player Pong game.
//
// Usage:
//
//	pong             - Play in a window
//	pong term        - Play in the terminal
//	pong config      - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Path to a config YAML
//	--fps <rate>        - Override the tick rate (default: config loop.tps)
//	--seed <value>      - Set RNG seed for reproducible serves
//	--log-level <lvl>   - Override the log level (debug, info, warn, error)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pong/internal/core"
	"github.com/vovakirdan/pong/internal/games/pong"
	"github.com/vovakirdan/pong/internal/platform/window"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("pong failed", "err", err)
		os.Exit(core.ExitCode(err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong - two players, one keyboard",
	Long: `Pong is the classic two-paddle game for two players sharing a keyboard.

Controls (window):
  W/S          - Left paddle up/down
  Up/Down      - Right paddle up/down
  Close window - Quit

Examples:
  pong
  pong --seed 42
  pong term
  pong config > ~/.pong/config.yaml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runWindow,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (empty = use config)")

	// Add subcommands
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(configCmd)
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(os.Stderr, cfg.Log.Level)
	if err != nil {
		return err
	}

	runtime := core.RuntimeConfig{
		ScreenW:  pong.ScreenWidth,
		ScreenH:  pong.ScreenHeight,
		TickRate: cfg.Loop.TPS,
		Seed:     resolveSeed(flagSeed),
	}
	logger.Info("starting", "frontend", "window", "seed", runtime.Seed, "tps", runtime.TickRate)

	return window.Run(pong.New(runtime), cfg, logger)
}
