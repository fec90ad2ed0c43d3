package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pong/internal/core"
)

func TestResolveSeed(t *testing.T) {
	if got := resolveSeed(42); got != 42 {
		t.Errorf("resolveSeed(42) = %d, expected 42", got)
	}
	if got := resolveSeed(0); got == 0 {
		t.Error("resolveSeed(0) should pick a clock-based seed")
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "warn")
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	if logger.GetLevel() != log.WarnLevel {
		t.Errorf("level = %v, expected warn", logger.GetLevel())
	}

	logger.Info("hidden")
	logger.Warn("shown", "score1", 3)
	out := buf.String()
	if bytes.Contains(buf.Bytes(), []byte("hidden")) {
		t.Error("info message should be filtered at warn level")
	}
	if !bytes.Contains(buf.Bytes(), []byte("shown")) || !bytes.Contains(buf.Bytes(), []byte("score1=3")) {
		t.Errorf("warn message missing from output: %q", out)
	}
}

func TestNewLoggerBadLevel(t *testing.T) {
	_, err := newLogger(&bytes.Buffer{}, "loud")
	if !errors.Is(err, core.ErrAssetLoad) {
		t.Errorf("expected ErrAssetLoad, got %v", err)
	}
	if core.ExitCode(err) != core.ExitAssetLoad {
		t.Errorf("exit code = %d, expected %d", core.ExitCode(err), core.ExitAssetLoad)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(func() {
		flagConfig, flagFPS, flagLogLevel = "", 0, ""
	})

	flagFPS = 120
	flagLogLevel = "debug"
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Loop.TPS != 120 || cfg.Log.Level != "debug" {
		t.Errorf("overrides not applied: tps=%d level=%q", cfg.Loop.TPS, cfg.Log.Level)
	}

	flagFPS = -1
	if _, err := loadConfig(); !errors.Is(err, core.ErrAssetLoad) {
		t.Errorf("negative fps should fail validation, got %v", err)
	}
}
