package pong

import (
	"testing"

	"github.com/vovakirdan/pong/internal/core"
)

func TestDivider(t *testing.T) {
	want := core.NewRect(638, 0, 5, 720)
	if got := Divider(); got != want {
		t.Errorf("Divider() = %+v, expected %+v", got, want)
	}
}

func TestScoreRect(t *testing.T) {
	tests := []struct {
		name     string
		player   Player
		w, h     int
		expected core.Rect
	}{
		{"P1 single digit", Player1, 12, 24, core.NewRect(614, 24, 12, 24)},
		{"P2 single digit", Player2, 12, 24, core.NewRect(654, 24, 12, 24)},
		{"P1 two digits", Player1, 24, 24, core.NewRect(608, 24, 24, 24)},
		{"P2 odd width", Player2, 13, 20, core.NewRect(653, 20, 13, 20)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ScoreRect(tc.player, tc.w, tc.h); got != tc.expected {
				t.Errorf("ScoreRect() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestFrameTracksState(t *testing.T) {
	g := newTestGame(4)
	g.Step(core.InputSnapshot{P1Down: true, P2Up: true})

	f := g.Frame()
	if f.Paddle1.Y != 308 || f.Paddle2.Y != 292 {
		t.Errorf("paddles = %d/%d, expected 308/292", f.Paddle1.Y, f.Paddle2.Y)
	}
	if f.Ball.X != 627 || f.Ball.Y != 351 {
		t.Errorf("ball = (%d,%d), expected (627,351)", f.Ball.X, f.Ball.Y)
	}
	if f.Ball.W != BallSize || f.Ball.H != BallSize {
		t.Errorf("ball size = %dx%d, expected %dx%d", f.Ball.W, f.Ball.H, BallSize, BallSize)
	}
	if f.TextRevision != 1 {
		t.Errorf("TextRevision = %d, expected 1 before any point", f.TextRevision)
	}
}
