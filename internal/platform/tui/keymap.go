package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pong/internal/config"
	"github.com/vovakirdan/pong/internal/core"
)

// KeyMap defines the terminal key bindings.
type KeyMap struct {
	P1Up   key.Binding
	P1Down key.Binding
	P2Up   key.Binding
	P2Down key.Binding
	Quit   key.Binding
}

// NewKeyMap builds bindings from config. ctrl+c always quits.
func NewKeyMap(b config.Bindings) KeyMap {
	quit := b.Quit
	if !slices.Contains(quit, "ctrl+c") {
		quit = append(slices.Clone(quit), "ctrl+c")
	}

	return KeyMap{
		P1Up:   newBinding(b.P1Up, "P1 up"),
		P1Down: newBinding(b.P1Down, "P1 down"),
		P2Up:   newBinding(b.P2Up, "P2 up"),
		P2Down: newBinding(b.P2Down, "P2 down"),
		Quit:   newBinding(quit, "quit"),
	}
}

func newBinding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.P1Up, k.P1Down, k.P2Up, k.P2Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.P1Up, k.P1Down},
		{k.P2Up, k.P2Down},
		{k.Quit},
	}
}

// MapKey translates a key message to a control key.
// Returns the key (may be KeyNone) and whether it's a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg) (core.Key, bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.KeyNone, true
	case key.Matches(msg, k.P1Up):
		return core.KeyP1Up, false
	case key.Matches(msg, k.P1Down):
		return core.KeyP1Down, false
	case key.Matches(msg, k.P2Up):
		return core.KeyP2Up, false
	case key.Matches(msg, k.P2Down):
		return core.KeyP2Down, false
	}
	return core.KeyNone, false
}
