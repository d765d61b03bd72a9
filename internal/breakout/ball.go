package breakout

import "github.com/plus3/breakout/internal/ecs"

// Ball is the moving ball. (X, Y) is the top-left corner of its bounding box.
type Ball struct {
	Id     ecs.EntityId
	X, Y   float64
	VX, VY float64
	Radius float64
	Batted bool
}

// Diameter of the ball.
func (b *Ball) Diameter() float64 {
	return 2 * b.Radius
}

// AtRest reports whether the ball has no velocity, which is the only state a click can serve from.
func (b *Ball) AtRest() bool {
	return b.VX == 0 && b.VY == 0
}

// ApplyVelocity advances the ball by one tick.
func (b *Ball) ApplyVelocity() {
	b.X += b.VX
	b.Y += b.VY
}

// ReflectOnWalls bounces the ball off the left, right and top edges of a w-wide window. A component is only
// flipped when the ball is at or past the wall and still moving toward it. The bottom is open. It reports
// whether a bounce happened.
func (b *Ball) ReflectOnWalls(w, h float64) bool {
	if (b.X <= 0 && b.VX < 0) || (b.X >= w-b.Diameter() && b.VX > 0) {
		b.VX = -b.VX
		return true
	}
	if b.Y <= 0 && b.VY < 0 {
		b.VY = -b.VY
		return true
	}
	return false
}

// Bounce reverses vertical motion.
func (b *Ball) Bounce() {
	b.VY = -b.VY
}

// OutOfScreen reports whether the ball's top edge has reached the bottom of an h-high window.
func (b *Ball) OutOfScreen(h float64) bool {
	return b.Y >= h
}

// Reset puts the ball's top-left corner at (x, y), stopped and unbatted.
func (b *Ball) Reset(x, y float64) {
	b.X, b.Y = x, y
	b.VX, b.VY = 0, 0
	b.Batted = false
}
