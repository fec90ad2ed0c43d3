// Package pong implements the two-player Pong simulation.
// Player 1 controls the left paddle, player 2 the right paddle.
// The package is pure: frontends feed it input snapshots and draw its frames.
package pong

import (
	"github.com/vovakirdan/pong/internal/core"
)

// Playfield layout in pixels.
const (
	ScreenWidth  = 1280
	ScreenHeight = 720

	PaddleWidth  = 10
	PaddleHeight = 120
	BallSize     = 20
	DividerWidth = 5

	// Left paddle sits at (W/2)/(paddleW/2); the right one mirrors it.
	PaddleInset = (ScreenWidth / 2) / (PaddleWidth / 2)
)

// Motion constants in pixels per frame.
const (
	PaddleStep = 8
	ServeSpeed = 3
	HitSpeed   = 6

	ServeMinVY = 1
	ServeMaxVY = 4

	initialVY = 1
)

// Player identifies a side of the table.
type Player int

const (
	NoPlayer Player = iota
	Player1
	Player2
)

// String returns a short label for the player.
func (p Player) String() string {
	switch p {
	case Player1:
		return "P1"
	case Player2:
		return "P2"
	default:
		return "none"
	}
}

// Direction is the paddle the ball is currently travelling toward.
type Direction int

const (
	TowardP1 Direction = iota
	TowardP2
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	if d == TowardP2 {
		return "toward P2"
	}
	return "toward P1"
}

// RoundState is either live play or the reset that follows a point.
type RoundState int

const (
	RoundPlaying RoundState = iota
	RoundResetting
)

// String returns a human-readable name for the round state.
func (r RoundState) String() string {
	if r == RoundResetting {
		return "resetting"
	}
	return "playing"
}

// Game owns all mutable simulation state.
type Game struct {
	rng *RNG

	paddle1 core.Rect
	paddle2 core.Rect

	ball   core.Rect
	ballVX int // Horizontal speed magnitude; sign comes from direction
	ballVY int // Signed vertical speed

	score1 int
	score2 int

	score1Text   string
	score2Text   string
	textRevision int

	direction Direction
	round     RoundState
	tick      uint64
}

// New creates a game initialized with the given runtime config.
func New(runtime core.RuntimeConfig) *Game {
	g := &Game{}
	g.Reset(runtime)
	return g
}

// Reset initializes the whole match: paddles and ball centered, scores zeroed,
// serve toward player 1. The RNG is seeded from runtime.Seed here and nowhere else.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.rng = NewRNG(runtime.Seed)

	paddleY := ScreenHeight/2 - PaddleHeight/2
	g.paddle1 = core.NewRect(PaddleInset, paddleY, PaddleWidth, PaddleHeight)
	g.paddle2 = core.NewRect(ScreenWidth-PaddleInset, paddleY, PaddleWidth, PaddleHeight)

	g.ball = core.NewRect(ballStartX(), ballStartY(), BallSize, BallSize)
	g.ballVX = ServeSpeed
	g.ballVY = initialVY

	g.score1 = 0
	g.score2 = 0
	g.direction = TowardP1
	g.round = RoundPlaying
	g.tick = 0

	g.textRevision = 0
	g.refreshScoreText()
}

// Step advances the simulation by one frame: paddles, then ball, then any
// round reset triggered by a point. The reset completes within the same step,
// so the round is always Playing when Step returns.
func (g *Game) Step(in core.InputSnapshot) StepResult {
	var res StepResult
	g.tick++

	g.movePaddles(in)

	if g.round == RoundPlaying {
		if scorer := g.stepBall(); scorer != NoPlayer {
			res.Events = append(res.Events, Event{
				Kind:   EventPointScored,
				Player: scorer,
				Score1: g.score1,
				Score2: g.score2,
			})
		}
	}

	if g.round == RoundResetting {
		g.resetRound()
		res.Events = append(res.Events, Event{
			Kind:   EventRoundReset,
			Player: g.servingToward(),
			Score1: g.score1,
			Score2: g.score2,
		})
	}

	res.State = g.State()
	return res
}

// State returns a summary of the current game state.
func (g *Game) State() State {
	return State{
		Tick:      g.tick,
		Score1:    g.score1,
		Score2:    g.score2,
		Round:     g.round,
		Direction: g.direction,
		BallVX:    g.ballVX,
		BallVY:    g.ballVY,
	}
}

// servingToward returns the player the ball is heading for.
func (g *Game) servingToward() Player {
	if g.direction == TowardP2 {
		return Player2
	}
	return Player1
}

func ballStartX() int {
	return ScreenWidth/2 - BallSize/2
}

func ballStartY() int {
	return ScreenHeight/2 - BallSize/2
}
