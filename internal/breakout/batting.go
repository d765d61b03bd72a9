package breakout

import "time"

const (
	batVX = 1.5
	batVY = 1.25
)

// Batting tracks paddle speed and the boosted state it grants. The undo on expiry divides by the same
// factors it multiplied with, so a kicker threshold crossed while batted is not separated back out.
type Batting struct {
	Threshold float64
	Bounces   int
	Budget    int

	displacement float64
	elapsed      time.Duration
}

// NewBatting returns a controller that bats above threshold px/s for bounces bounces.
func NewBatting(threshold float64, bounces int) Batting {
	return Batting{Threshold: threshold, Bounces: bounces}
}

// Track records the latest paddle motion.
func (b *Batting) Track(displacement float64, elapsed time.Duration) {
	b.displacement = displacement
	b.elapsed = elapsed
}

// Speed returns the latest paddle speed in pixels per second, or 0 when no time elapsed.
func (b *Batting) Speed() float64 {
	if b.elapsed <= 0 {
		return 0
	}
	return b.displacement / b.elapsed.Seconds()
}

// Active reports whether the ball is batted.
func (b *Batting) Active() bool {
	return b.Budget > 0
}

// TryActivate bats the ball when the paddle moved fast enough and the ball is not already batted.
func (b *Batting) TryActivate(ball *Ball) bool {
	if b.Budget > 0 || b.Speed() <= b.Threshold {
		return false
	}
	ball.Batted = true
	ball.VX *= batVX
	ball.VY *= batVY
	b.Budget = b.Bounces
	return true
}

// Spend uses one batted bounce. It reports true when that bounce ended the batted state.
func (b *Batting) Spend(ball *Ball) bool {
	if b.Budget <= 0 {
		return false
	}
	b.Budget--
	if b.Budget > 0 {
		return false
	}
	ball.Batted = false
	ball.VX /= batVX
	ball.VY /= batVY
	return true
}

// Reset drops any batted state and forgets paddle motion.
func (b *Batting) Reset() {
	b.Budget = 0
	b.displacement = 0
	b.elapsed = 0
}
