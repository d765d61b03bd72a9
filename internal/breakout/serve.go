package breakout

import "golang.org/x/exp/rand"

// ServeVelocity draws the velocity of a new serve. The ball always starts downward at InitialYSpeed.
func ServeVelocity(rng *rand.Rand, cfg Config) (vx, vy float64) {
	uniform := func(lo, hi float64) float64 {
		return lo + rng.Float64()*(hi-lo)
	}

	switch cfg.Variant {
	case Extended:
		if rng.Intn(2) == 0 {
			vx = uniform(-cfg.MaxXSpeed, -cfg.MinXSpeed)
		} else {
			vx = uniform(cfg.MinXSpeed, cfg.MaxXSpeed)
		}
	default:
		for {
			vx = uniform(-cfg.MaxXSpeed, cfg.MaxXSpeed)
			if vx >= cfg.ServeDeadzone || vx <= -cfg.ServeDeadzone {
				break
			}
		}
	}
	return vx, cfg.InitialYSpeed
}
