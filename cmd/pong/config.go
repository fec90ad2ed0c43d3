package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pong/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration that would be used, after the search order
(--config, ~/.pong/config.yaml, ./configs/pong.yaml, built-in defaults)
and command-line overrides have been applied.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
