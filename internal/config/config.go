// Package config provides YAML-based presentation settings for the game:
// window, loop rate, font, palette, key bindings and logging. Game rules
// are fixed and deliberately absent here.
package config

// Config contains all user-tunable settings.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Loop   LoopConfig   `yaml:"loop"`
	Font   FontConfig   `yaml:"font"`
	Colors ColorConfig  `yaml:"colors"`
	Keys   KeysConfig   `yaml:"keys"`
	TUI    TUIConfig    `yaml:"tui"`
	Log    LogConfig    `yaml:"log"`
}

// WindowConfig defines the desktop window.
type WindowConfig struct {
	Title string  `yaml:"title"`
	Scale float64 `yaml:"scale"` // Window size relative to the 1280x720 playfield
}

// LoopConfig defines the frame loop.
type LoopConfig struct {
	TPS int `yaml:"tps"` // Simulation ticks per second
}

// FontConfig defines the score font.
type FontConfig struct {
	Path string  `yaml:"path"` // TTF/OTF file; empty uses the embedded Go Mono
	Size float64 `yaml:"size"`
}

// ColorConfig defines the palette as hex strings ("#rrggbb").
type ColorConfig struct {
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`
}

// KeysConfig holds per-frontend key bindings.
type KeysConfig struct {
	Window   Bindings `yaml:"window"`   // ebiten key names, e.g. "W", "ArrowUp"
	Terminal Bindings `yaml:"terminal"` // Bubble Tea key strings, e.g. "w", "up"
}

// Bindings maps each control to one or more key names.
type Bindings struct {
	P1Up   []string `yaml:"p1_up"`
	P1Down []string `yaml:"p1_down"`
	P2Up   []string `yaml:"p2_up"`
	P2Down []string `yaml:"p2_down"`
	Quit   []string `yaml:"quit"`
}

// TUIConfig defines terminal frontend behavior.
type TUIConfig struct {
	// HoldMS is how long a key counts as held after its last press.
	// Terminals report presses and auto-repeat but never releases.
	HoldMS int `yaml:"hold_ms"`
}

// LogConfig defines logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}
