// Package window runs the game in a desktop window using ebiten.
package window

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/pong/internal/config"
	"github.com/vovakirdan/pong/internal/core"
)

// KeyMap translates ebiten keys to control keys.
type KeyMap struct {
	controls map[ebiten.Key]core.Key
	quit     map[ebiten.Key]bool
}

// NewKeyMap resolves configured key names (ebiten names such as "W" or
// "ArrowUp"). Unknown names are an asset load error.
func NewKeyMap(b config.Bindings) (*KeyMap, error) {
	km := &KeyMap{
		controls: make(map[ebiten.Key]core.Key),
		quit:     make(map[ebiten.Key]bool),
	}

	for _, group := range []struct {
		names []string
		key   core.Key
	}{
		{b.P1Up, core.KeyP1Up},
		{b.P1Down, core.KeyP1Down},
		{b.P2Up, core.KeyP2Up},
		{b.P2Down, core.KeyP2Down},
	} {
		for _, name := range group.names {
			k, err := parseKey(name)
			if err != nil {
				return nil, err
			}
			km.controls[k] = group.key
		}
	}

	for _, name := range b.Quit {
		k, err := parseKey(name)
		if err != nil {
			return nil, err
		}
		km.quit[k] = true
	}

	return km, nil
}

func parseKey(name string) (ebiten.Key, error) {
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("window: key %q: %w: %w", name, core.ErrAssetLoad, err)
	}
	return k, nil
}

// Map returns the control bound to an ebiten key, or KeyNone.
func (km *KeyMap) Map(k ebiten.Key) core.Key {
	if c, ok := km.controls[k]; ok {
		return c
	}
	return core.KeyNone
}

// Apply feeds a batch of key transitions into the tracker and reports
// whether a quit key went down.
func (km *KeyMap) Apply(state *core.KeyState, keys []ebiten.Key, down bool) (quit bool) {
	for _, k := range keys {
		if down && km.quit[k] {
			quit = true
		}
		state.Apply(core.KeyEvent{Key: km.Map(k), Down: down})
	}
	return quit
}
