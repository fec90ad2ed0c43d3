package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/pong/internal/core"
)

// Load loads the configuration and validates it.
// Search order: customPath -> ~/.pong/config.yaml -> ./configs/pong.yaml -> embedded default.
// Values missing from a file keep their defaults. A custom path that cannot be
// read or parsed is an error; the other locations are skipped when unusable.
func Load(customPath string) (Config, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), fmt.Errorf("config: read %s: %w: %w", customPath, core.ErrAssetLoad, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Default(), fmt.Errorf("config: parse %s: %w: %w", customPath, core.ErrAssetLoad, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "pong.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultPongYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML on top of the defaults.
func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pong", filename)
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate reports every invalid setting at once. The error wraps
// core.ErrAssetLoad.
func (c Config) Validate() error {
	var errs []error

	if c.Window.Scale <= 0 {
		errs = append(errs, fmt.Errorf("window.scale must be positive, got %v", c.Window.Scale))
	}
	if c.Loop.TPS <= 0 {
		errs = append(errs, fmt.Errorf("loop.tps must be positive, got %d", c.Loop.TPS))
	}
	if c.Font.Size <= 0 {
		errs = append(errs, fmt.Errorf("font.size must be positive, got %v", c.Font.Size))
	}
	if c.TUI.HoldMS <= 0 {
		errs = append(errs, fmt.Errorf("tui.hold_ms must be positive, got %d", c.TUI.HoldMS))
	}
	if _, err := ParseColor(c.Colors.Background); err != nil {
		errs = append(errs, fmt.Errorf("colors.background: %w", err))
	}
	if _, err := ParseColor(c.Colors.Foreground); err != nil {
		errs = append(errs, fmt.Errorf("colors.foreground: %w", err))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	errs = append(errs, c.Keys.Window.validate("keys.window")...)
	errs = append(errs, c.Keys.Terminal.validate("keys.terminal")...)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: %w: %w", core.ErrAssetLoad, errors.Join(errs...))
}

// validate checks that every control has at least one non-blank key.
func (b Bindings) validate(prefix string) []error {
	var errs []error
	for _, f := range []struct {
		name string
		keys []string
	}{
		{"p1_up", b.P1Up},
		{"p1_down", b.P1Down},
		{"p2_up", b.P2Up},
		{"p2_down", b.P2Down},
	} {
		if len(f.keys) == 0 {
			errs = append(errs, fmt.Errorf("%s.%s: no keys bound", prefix, f.name))
		}
		for _, k := range f.keys {
			if strings.TrimSpace(k) == "" {
				errs = append(errs, fmt.Errorf("%s.%s: blank key name", prefix, f.name))
			}
		}
	}
	return errs
}

// ParseColor converts a "#rrggbb" hex string to an opaque RGBA color.
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
