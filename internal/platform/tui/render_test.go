package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/pong/internal/config"
	"github.com/vovakirdan/pong/internal/core"
	"github.com/vovakirdan/pong/internal/games/pong"
)

func TestDrawFrameInitial(t *testing.T) {
	g := pong.New(core.RuntimeConfig{Seed: 1})
	s := core.NewScreen(80, 24)
	DrawFrame(s, g.Frame())

	tests := []struct {
		name string
		x, y int
		r    rune
		c    core.Color
	}{
		{"divider top", 40, 1, NetChar, core.ColorDivider},
		{"divider bottom", 40, 23, NetChar, core.ColorDivider},
		{"paddle1 top", 8, 10, PaddleChar, core.ColorForeground},
		{"paddle1 bottom", 8, 13, PaddleChar, core.ColorForeground},
		{"paddle2 top", 72, 10, PaddleChar, core.ColorForeground},
		{"ball", 40, 12, BallChar, core.ColorForeground},
		{"score1", 37, 0, '0', core.ColorScore},
		{"score2", 43, 0, '0', core.ColorScore},
		{"empty", 20, 5, ' ', core.ColorDefault},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cell := s.GetCell(tc.x, tc.y)
			if cell.Rune != tc.r || cell.Color != tc.c {
				t.Errorf("cell (%d,%d) = (%q, %d), expected (%q, %d)", tc.x, tc.y, cell.Rune, cell.Color, tc.r, tc.c)
			}
		})
	}

	if got := s.Get(8, 14); got == PaddleChar {
		t.Error("paddle1 should span rows 10..13 only")
	}
}

func TestDrawFrameEmptyScreen(t *testing.T) {
	g := pong.New(core.RuntimeConfig{})
	s := core.NewScreen(0, 0)
	DrawFrame(s, g.Frame())
	if s.String() != "" {
		t.Errorf("empty screen rendered %q", s.String())
	}
}

func TestRenderScreen(t *testing.T) {
	g := pong.New(core.RuntimeConfig{})
	s := core.NewScreen(80, 24)
	DrawFrame(s, g.Frame())

	out := RenderScreen(s, NewPalette(config.Default().Colors))

	if got := strings.Count(out, "\n"); got != 23 {
		t.Errorf("rendered %d line breaks, expected 23", got)
	}
	for _, r := range []rune{PaddleChar, BallChar, NetChar} {
		if !strings.ContainsRune(out, r) {
			t.Errorf("output missing %q", r)
		}
	}
}
