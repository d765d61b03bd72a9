package breakout

import (
	"time"

	"github.com/plus3/breakout/internal/ecs"
)

// Paddle is the player's bat. It remembers when it last moved so Follow can report its speed.
type Paddle struct {
	Id         ecs.EntityId
	X, Y, W, H float64
	movedAt    time.Time
}

// Follow centres the paddle on pointerX, keeping it inside a window of the given width. It returns how
// far the paddle moved and the time since the previous move, which is zero for the first move.
func (p *Paddle) Follow(pointerX, width float64, at time.Time) (float64, time.Duration) {
	from := p.X
	switch {
	case pointerX-p.W/2 < 0:
		p.X = 0
	case pointerX+p.W/2 > width:
		p.X = width - p.W
	default:
		p.X = pointerX - p.W/2
	}

	var elapsed time.Duration
	if !p.movedAt.IsZero() {
		elapsed = at.Sub(p.movedAt)
	}
	p.movedAt = at

	displacement := p.X - from
	if displacement < 0 {
		displacement = -displacement
	}
	return displacement, elapsed
}
