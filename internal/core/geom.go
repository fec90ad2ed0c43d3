// Package core provides the platform-neutral building blocks shared by the
// simulation and its frontends. It has no dependency on ebiten or Bubble Tea
// so that game logic stays pure and testable.
package core

// Rect is an axis-aligned rectangle in integer pixels.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsClosed is like Contains but treats all four edges as inclusive.
// Paddle hit tests use it so a ball touching the far edge still counts.
func (r Rect) ContainsClosed(x, y int) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Scale maps the rectangle from a (fromW x fromH) space into a (toW x toH)
// space. The result always covers at least one unit in each dimension.
func (r Rect) Scale(fromW, fromH, toW, toH int) Rect {
	x0 := r.X * toW / fromW
	y0 := r.Y * toH / fromH
	x1 := ceilDiv(r.Right()*toW, fromW)
	y1 := ceilDiv(r.Bottom()*toH, fromH)
	return Rect{X: x0, Y: y0, W: Max(x1-x0, 1), H: Max(y1-y0, 1)}
}

// ceilDiv divides rounding toward positive infinity.
func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) == (b < 0) {
		q++
	}
	return q
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
