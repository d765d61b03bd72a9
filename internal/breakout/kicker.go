package breakout

// Kicker escalation thresholds, counted in bricks broken during one life.
const (
	kickNormal = 7
	kickHard   = 14
	kickKiller = 50
)

// KickTier names the escalation reached by the latest brick.
type KickTier uint8

const (
	KickNone KickTier = iota
	KickNormal
	KickHard
	KickKiller
)

func (t KickTier) String() string {
	switch t {
	case KickNormal:
		return "normal"
	case KickHard:
		return "hard"
	case KickKiller:
		return "killer"
	}
	return "none"
}

// Kicker speeds the ball up as bricks fall within one life.
type Kicker struct {
	Count int
}

// Advance counts one broken brick and applies the multiplier of any threshold it lands on. Each
// threshold fires once per life and the multipliers compound.
func (k *Kicker) Advance(ball *Ball) KickTier {
	k.Count++
	switch k.Count {
	case kickNormal:
		ball.VX *= 2
		return KickNormal
	case kickHard:
		ball.VY *= 1.5
		return KickHard
	case kickKiller:
		ball.VX *= 2
		ball.VY *= 1.75
		return KickKiller
	}
	return KickNone
}

// Killer reports whether bricks are worth double for the rest of the life.
func (k *Kicker) Killer() bool {
	return k.Count > kickKiller
}

// Reset starts a new life.
func (k *Kicker) Reset() {
	k.Count = 0
}
