package breakout

import "github.com/plus3/breakout/internal/scene"

// Snapshot is a copy of the session state for frontends and debugging.
type Snapshot struct {
	Session string
	Variant Variant
	State   State
	Frames  uint64

	Lives  int
	Score  int
	Bricks int

	KickerCount  int
	Killer       bool
	BatBudget    int
	BatSpeed     float64
	LastContact  ContactKind
	Ball         Ball
	PaddleBounds scene.Bounds
}

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	round := s.round.Get()
	kicker := s.kicker.Get()
	batting := s.batting.Get()
	paddle := s.paddle.Get()

	return Snapshot{
		Session:      s.id,
		Variant:      s.cfg.Variant,
		State:        round.State,
		Frames:       s.scheduler.Frames(),
		Lives:        round.Lives,
		Score:        s.score.Get().Score,
		Bricks:       round.Bricks,
		KickerCount:  kicker.Count,
		Killer:       kicker.Killer(),
		BatBudget:    batting.Budget,
		BatSpeed:     batting.Speed(),
		LastContact:  s.world.contact.Kind,
		Ball:         *s.ball.Get(),
		PaddleBounds: scene.Bounds{X: paddle.X, Y: paddle.Y, W: paddle.W, H: paddle.H},
	}
}
