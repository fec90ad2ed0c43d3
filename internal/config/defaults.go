package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// Default returns the built-in configuration. It mirrors defaults/pong.yaml
// and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title: "Pong",
			Scale: 1.0,
		},
		Loop: LoopConfig{
			TPS: 60,
		},
		Font: FontConfig{
			Size: 20,
		},
		Colors: ColorConfig{
			Background: "#000000",
			Foreground: "#ffffff",
		},
		Keys: KeysConfig{
			Window: Bindings{
				P1Up:   []string{"W"},
				P1Down: []string{"S"},
				P2Up:   []string{"ArrowUp"},
				P2Down: []string{"ArrowDown"},
			},
			Terminal: Bindings{
				P1Up:   []string{"w"},
				P1Down: []string{"s"},
				P2Up:   []string{"up"},
				P2Down: []string{"down"},
				Quit:   []string{"q", "ctrl+c"},
			},
		},
		TUI: TUIConfig{
			HoldMS: 300,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
