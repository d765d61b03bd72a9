package breakout

import (
	"log/slog"

	"github.com/plus3/breakout/internal/ecs"
	"github.com/plus3/breakout/internal/scene"
)

// world is what the tick systems share besides singletons.
type world struct {
	cfg      Config
	scene    *scene.Scene
	hud      *Hud
	collider *SceneCollider
	log      *slog.Logger
	contact  Contact
}

// RoundSystem checks the terminal conditions, in order: no bricks left wins, then a ball past the bottom
// costs a life and either loses the game or resets the ball for the next serve.
type RoundSystem struct {
	Round   ecs.Singleton[Round]
	Ball    ecs.Singleton[Ball]
	Kicker  ecs.Singleton[Kicker]
	Batting ecs.Singleton[Batting]
	Score   ecs.Singleton[ScoreEngine]
	w       *world
}

func (s *RoundSystem) Execute(frame *ecs.UpdateFrame) {
	round := s.Round.Get()
	if round.State.Terminal() {
		return
	}
	ball := s.Ball.Get()
	score := s.Score.Get().Score

	if round.Bricks == 0 {
		round.State = Won
		s.w.log.Info("game won", "score", score, "lives", round.Lives, "tick", frame.Tick)
		id := ball.Id
		frame.Commands.Defer(func() {
			s.w.scene.Remove(id)
			s.w.hud.Won(score)
		})
		return
	}

	if !ball.OutOfScreen(s.w.scene.Height()) {
		return
	}

	round.Lives = max(round.Lives-1, 0)
	round.State = LifeLost
	lives := round.Lives
	frame.Commands.Defer(func() { s.w.hud.SetLives(lives) })

	if lives == 0 {
		round.State = Lost
		s.w.log.Info("game lost", "score", score, "bricks", round.Bricks, "tick", frame.Tick)
		frame.Commands.Defer(func() { s.w.hud.Lost(score) })
		return
	}

	s.w.log.Info("life lost", "lives", lives)
	ball.Reset(s.w.scene.Width()/2-ball.Radius, s.w.scene.Height()/2-ball.Radius)
	s.Kicker.Get().Reset()
	s.Batting.Get().Reset()
	round.State = AwaitingServe
}

// MotionSystem integrates the ball and mirrors it into the scene.
type MotionSystem struct {
	Round ecs.Singleton[Round]
	Ball  ecs.Singleton[Ball]
	w     *world
}

func (s *MotionSystem) Execute(frame *ecs.UpdateFrame) {
	if s.Round.Get().State.Terminal() {
		return
	}
	ball := s.Ball.Get()
	ball.ApplyVelocity()
	s.w.scene.MoveTo(ball.Id, ball.X, ball.Y)
}

// WallSystem reflects the ball off the window edges. In the extended rules a wall bounce spends a
// batted bounce.
type WallSystem struct {
	Round   ecs.Singleton[Round]
	Ball    ecs.Singleton[Ball]
	Batting ecs.Singleton[Batting]
	w       *world
}

func (s *WallSystem) Execute(frame *ecs.UpdateFrame) {
	if s.Round.Get().State.Terminal() {
		return
	}
	ball := s.Ball.Get()
	if !ball.ReflectOnWalls(s.w.scene.Width(), s.w.scene.Height()) {
		return
	}
	if s.w.cfg.Variant == Extended && s.Batting.Get().Spend(ball) {
		s.w.log.Debug("batting ended", "cause", "wall")
	}
}

// CollisionSystem resolves the ball against the paddle and bricks.
type CollisionSystem struct {
	Round ecs.Singleton[Round]
	Ball  ecs.Singleton[Ball]
	w     *world
}

func (s *CollisionSystem) Execute(frame *ecs.UpdateFrame) {
	if s.Round.Get().State.Terminal() {
		return
	}
	contact := s.w.collider.HandleCollision(s.Ball.Get())
	if contact.Kind == ContactNone {
		return
	}
	s.w.contact = contact

	if contact.Kind == ContactBrick {
		s.w.log.Debug("brick broken", "y", contact.Object.Bounds.Y, "points", contact.Points, "bricks", s.Round.Get().Bricks)
	}
	if contact.Tier != KickNone {
		s.w.log.Info("kicker", "tier", contact.Tier.String())
	}
	if contact.BatStarted {
		s.w.log.Debug("batting started")
	}
	if contact.BatEnded {
		s.w.log.Debug("batting ended", "cause", contact.Kind.String())
	}
}

// HudSystem pushes score and ball colour changes to the scene once the frame's other edits are done.
type HudSystem struct {
	Round ecs.Singleton[Round]
	Ball  ecs.Singleton[Ball]
	Score ecs.Singleton[ScoreEngine]
	w     *world
}

func (s *HudSystem) Execute(frame *ecs.UpdateFrame) {
	if s.Round.Get().State.Terminal() {
		return
	}
	ball := s.Ball.Get()
	id, fill := ball.Id, scene.Black
	if ball.Batted {
		fill = scene.Red
	}
	score := s.Score.Get().Score
	frame.Commands.Defer(func() {
		s.w.scene.SetFill(id, fill)
		s.w.hud.SetScore(score)
	})
}
