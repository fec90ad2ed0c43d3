package pong

import (
	"strconv"

	"github.com/vovakirdan/pong/internal/core"
)

// movePaddles applies held keys to both paddles. Up and down deltas are both
// applied, so holding both leaves the paddle where it was.
func (g *Game) movePaddles(in core.InputSnapshot) {
	g.paddle1.Y = movePaddle(g.paddle1.Y, in.P1Up, in.P1Down)
	g.paddle2.Y = movePaddle(g.paddle2.Y, in.P2Up, in.P2Down)
}

// movePaddle returns the new paddle y, clamped to the playfield.
func movePaddle(y int, up, down bool) int {
	if up {
		y -= PaddleStep
	}
	if down {
		y += PaddleStep
	}
	return core.Clamp(y, 0, ScreenHeight-PaddleHeight)
}

// stepBall moves the ball one frame and resolves paddle hits, scoring and
// wall bounces, in that order. It returns the player who scored, if any.
func (g *Game) stepBall() Player {
	scorer := NoPlayer

	switch g.direction {
	case TowardP1:
		g.ball.X -= g.ballVX
		g.ball.Y += g.ballVY

		if paddleHitbox(g.paddle1, Player1).ContainsClosed(g.ball.X, g.ball.Y) {
			g.direction = TowardP2
			g.deflect(g.paddle1)
		}
		if g.ball.X <= 0 {
			g.direction = TowardP1
			g.score2++
			g.round = RoundResetting
			scorer = Player2
		}

	case TowardP2:
		g.ball.X += g.ballVX
		g.ball.Y += g.ballVY

		if paddleHitbox(g.paddle2, Player2).ContainsClosed(g.ball.X, g.ball.Y) {
			g.direction = TowardP1
			g.deflect(g.paddle2)
		}
		if g.ball.X >= ScreenWidth {
			g.direction = TowardP2
			g.score1++
			g.round = RoundResetting
			scorer = Player1
		}
	}

	g.bounceWalls()
	return scorer
}

// paddleHitbox returns the closed region in which the ball's top-left corner
// counts as touching the paddle. The right paddle's region extends one paddle
// width in front of it.
func paddleHitbox(paddle core.Rect, side Player) core.Rect {
	if side == Player2 {
		return core.NewRect(paddle.X-paddle.W, paddle.Y, 2*paddle.W, paddle.H)
	}
	return paddle
}

// deflect applies a paddle hit: vertical speed is nudged by how far from the
// paddle center the ball landed (truncating division), horizontal speed is
// raised to HitSpeed.
func (g *Game) deflect(paddle core.Rect) {
	half := paddle.H / 2
	deltaY := g.ball.Y - (paddle.Y + half)
	g.ballVY += deltaY / half
	g.ballVX = HitSpeed
}

// bounceWalls reflects vertical speed at the top and bottom edges.
// The ball may overlap a wall by up to one frame of motion.
func (g *Game) bounceWalls() {
	if g.ball.Y >= ScreenHeight-g.ball.H {
		g.ballVY = -g.ballVY
	}
	if g.ball.Y <= 0 {
		g.ballVY = -g.ballVY
	}
}

// resetRound re-serves from the center after a point.
func (g *Game) resetRound() {
	g.ball.X = ballStartX()
	g.ball.Y = ballStartY()
	g.ballVX = ServeSpeed
	g.ballVY = g.rng.IntRange(ServeMinVY, ServeMaxVY)
	g.refreshScoreText()
	g.round = RoundPlaying
}

// refreshScoreText regenerates both score strings and bumps the revision so
// frontends know to re-rasterize them.
func (g *Game) refreshScoreText() {
	g.score1Text = strconv.Itoa(g.score1)
	g.score2Text = strconv.Itoa(g.score2)
	g.textRevision++
}
