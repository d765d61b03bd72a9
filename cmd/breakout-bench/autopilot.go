package main

import (
	"context"
	"time"

	"github.com/plus3/breakout/internal/breakout"
	"golang.org/x/exp/rand"
)

// autopilot plays a session by steering the paddle under the ball. Each serve it picks a new aim
// offset so that some balls reach the paddle edges and some are missed.
type autopilot struct {
	session  *breakout.Session
	rng      *rand.Rand
	offset   float64
	clock    time.Time
	interval time.Duration
}

func newAutopilot(session *breakout.Session, seed uint64) *autopilot {
	return &autopilot{
		session:  session,
		rng:      rand.New(rand.NewSource(seed)),
		clock:    time.Unix(0, 0),
		interval: session.Config().TickInterval(),
	}
}

// step moves, serves when needed and ticks once.
func (a *autopilot) step() breakout.State {
	snap := a.session.Snapshot()
	if snap.State == breakout.AwaitingServe {
		reach := snap.PaddleBounds.W * 0.6
		a.offset = (a.rng.Float64()*2 - 1) * reach
		a.session.Click()
	}

	a.clock = a.clock.Add(a.interval)
	target := snap.Ball.X + snap.Ball.Radius + a.offset
	a.session.MovePointer(target, a.clock)
	return a.session.Tick()
}

// play runs until the game ends, maxTicks pass or ctx is done.
func (a *autopilot) play(ctx context.Context, maxTicks int) gameResult {
	start := time.Now()
	ticks := 0
	state := a.session.State()
	for ; ticks < maxTicks && !state.Terminal(); ticks++ {
		if ticks%1024 == 0 && ctx.Err() != nil {
			break
		}
		state = a.step()
	}

	snap := a.session.Snapshot()
	return gameResult{
		Session: snap.Session,
		State:   snap.State,
		Score:   snap.Score,
		Ticks:   ticks,
		Elapsed: time.Since(start),
		Systems: a.session.Scheduler().Stats().Systems,
	}
}
