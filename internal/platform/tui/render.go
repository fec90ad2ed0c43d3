package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pong/internal/config"
	"github.com/vovakirdan/pong/internal/core"
	"github.com/vovakirdan/pong/internal/games/pong"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'
)

// Palette maps cell color roles to lipgloss styles.
type Palette map[core.Color]lipgloss.Style

// NewPalette builds styles from the configured hex colors.
func NewPalette(c config.ColorConfig) Palette {
	bg := lipgloss.Color(c.Background)
	fg := lipgloss.Color(c.Foreground)
	base := lipgloss.NewStyle().Background(bg)

	return Palette{
		core.ColorDefault:    base,
		core.ColorForeground: base.Foreground(fg),
		core.ColorDivider:    base.Foreground(fg).Faint(true),
		core.ColorScore:      base.Foreground(fg).Bold(true),
	}
}

// DrawFrame scales a 1280x720 frame into the screen buffer.
func DrawFrame(s *core.Screen, f pong.Frame) {
	s.Clear()
	w, h := s.Width(), s.Height()
	if w == 0 || h == 0 {
		return
	}

	mid := w / 2
	s.DrawRect(core.NewRect(mid, 0, 1, h), NetChar, core.ColorDivider)

	for _, p := range []core.Rect{f.Paddle1, f.Paddle2} {
		s.DrawRect(p.Scale(pong.ScreenWidth, pong.ScreenHeight, w, h), PaddleChar, core.ColorForeground)
	}

	bx, by := f.Ball.Center()
	s.Set(bx*w/pong.ScreenWidth, by*h/pong.ScreenHeight, BallChar, core.ColorForeground)

	s.DrawText(mid-2-len(f.Score1Text), 0, f.Score1Text, core.ColorScore)
	s.DrawText(mid+3, 0, f.Score2Text, core.ColorScore)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, palette Palette) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := palette[startColor]
			if !ok {
				style = palette[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
