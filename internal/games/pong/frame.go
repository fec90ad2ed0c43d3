package pong

import (
	"github.com/vovakirdan/pong/internal/core"
)

// Score text placement relative to the center line.
const scoreTextOffset = 20

// Frame describes everything a frontend needs to draw one frame.
type Frame struct {
	Paddle1 core.Rect
	Paddle2 core.Rect
	Ball    core.Rect
	Divider core.Rect

	Score1Text string
	Score2Text string

	// TextRevision changes whenever the score strings are regenerated:
	// once at startup and once per round reset.
	TextRevision int
}

// Frame returns the render descriptor for the current state.
func (g *Game) Frame() Frame {
	return Frame{
		Paddle1:      g.paddle1,
		Paddle2:      g.paddle2,
		Ball:         g.ball,
		Divider:      Divider(),
		Score1Text:   g.score1Text,
		Score2Text:   g.score2Text,
		TextRevision: g.textRevision,
	}
}

// Divider returns the center line rectangle.
func Divider() core.Rect {
	return core.NewRect(ScreenWidth/2-DividerWidth/2, 0, DividerWidth, ScreenHeight)
}

// ScoreRect places a rasterized score of the given size. Player 1's score sits
// left of center and player 2's right of center, one text height from the top.
func ScoreRect(p Player, textW, textH int) core.Rect {
	x := (ScreenWidth - textW) / 2
	if p == Player2 {
		x += scoreTextOffset
	} else {
		x -= scoreTextOffset
	}
	return core.NewRect(x, textH, textW, textH)
}
