package breakout

// Brick values by band, top first.
var bandPoints = [...]int{16, 8, 4, 2, 1}

// ScoreEngine turns broken bricks into points.
type ScoreEngine struct {
	offset float64
	band   float64
	Score  int
}

// NewScoreEngine bands bricks by two rows at a time below the grid offset.
func NewScoreEngine(cfg Config) ScoreEngine {
	return ScoreEngine{
		offset: cfg.BrickOffset,
		band:   2*cfg.BrickHeight + 2*cfg.BrickSpacing,
	}
}

// ScoreForBrick returns the base value of a brick whose top edge is at y. Bricks below the fifth band
// are worth nothing.
func (e *ScoreEngine) ScoreForBrick(y float64) int {
	for i, points := range bandPoints {
		if y < e.offset+float64(i+1)*e.band {
			return points
		}
	}
	return 0
}

// ApplyMultipliers adds base once more for a killer kicker and once more for a batted ball.
func ApplyMultipliers(base int, killer, batted bool) int {
	points := base
	if killer {
		points += base
	}
	if batted {
		points += base
	}
	return points
}

// Add credits points. Negative amounts are ignored.
func (e *ScoreEngine) Add(points int) {
	if points > 0 {
		e.Score += points
	}
}
