package window

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/pong/internal/config"
	"github.com/vovakirdan/pong/internal/core"
)

func TestNewKeyMapDefaults(t *testing.T) {
	km, err := NewKeyMap(config.Default().Keys.Window)
	if err != nil {
		t.Fatalf("NewKeyMap() failed: %v", err)
	}

	tests := []struct {
		key      ebiten.Key
		expected core.Key
	}{
		{ebiten.KeyW, core.KeyP1Up},
		{ebiten.KeyS, core.KeyP1Down},
		{ebiten.KeyArrowUp, core.KeyP2Up},
		{ebiten.KeyArrowDown, core.KeyP2Down},
		{ebiten.KeyA, core.KeyNone},
		{ebiten.KeySpace, core.KeyNone},
	}

	for _, tc := range tests {
		t.Run(tc.key.String(), func(t *testing.T) {
			if got := km.Map(tc.key); got != tc.expected {
				t.Errorf("Map(%v) = %v, expected %v", tc.key, got, tc.expected)
			}
		})
	}
}

func TestNewKeyMapUnknownName(t *testing.T) {
	b := config.Default().Keys.Window
	b.P2Up = []string{"NotAKey"}

	_, err := NewKeyMap(b)
	if err == nil {
		t.Fatal("expected error for unknown key name")
	}
	if !errors.Is(err, core.ErrAssetLoad) {
		t.Errorf("error should wrap ErrAssetLoad: %v", err)
	}
}

func TestKeyMapApply(t *testing.T) {
	b := config.Default().Keys.Window
	b.Quit = []string{"Escape"}
	km, err := NewKeyMap(b)
	if err != nil {
		t.Fatalf("NewKeyMap() failed: %v", err)
	}

	var state core.KeyState

	quit := km.Apply(&state, []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowDown, ebiten.KeyZ}, true)
	if quit {
		t.Error("no quit key was pressed")
	}
	want := core.InputSnapshot{P1Up: true, P2Down: true}
	if got := state.Snapshot(); got != want {
		t.Errorf("after press Snapshot() = %+v, expected %+v", got, want)
	}

	km.Apply(&state, []ebiten.Key{ebiten.KeyW}, false)
	want.P1Up = false
	if got := state.Snapshot(); got != want {
		t.Errorf("after release Snapshot() = %+v, expected %+v", got, want)
	}

	if !km.Apply(&state, []ebiten.Key{ebiten.KeyEscape}, true) {
		t.Error("Escape should request quit")
	}
	if km.Apply(&state, []ebiten.Key{ebiten.KeyEscape}, false) {
		t.Error("releasing a quit key should not request quit")
	}
}

func TestKeyMapMultipleBindings(t *testing.T) {
	b := config.Default().Keys.Window
	b.P1Up = []string{"W", "K"}
	km, err := NewKeyMap(b)
	if err != nil {
		t.Fatalf("NewKeyMap() failed: %v", err)
	}
	if km.Map(ebiten.KeyK) != core.KeyP1Up || km.Map(ebiten.KeyW) != core.KeyP1Up {
		t.Error("both W and K should map to P1Up")
	}
}
