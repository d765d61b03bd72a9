package breakout

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/breakout/internal/ecs"
	"github.com/plus3/breakout/internal/scene"
	"golang.org/x/exp/rand"
)

// Session is one game: the scene, the tick systems and the state they share. It is not safe for
// concurrent use; input and ticks must come from the same goroutine.
type Session struct {
	id        string
	cfg       Config
	log       *slog.Logger
	rng       *rand.Rand
	scene     *scene.Scene
	scheduler *ecs.Scheduler
	world     *world

	round   *ecs.Singleton[Round]
	ball    *ecs.Singleton[Ball]
	paddle  *ecs.Singleton[Paddle]
	kicker  *ecs.Singleton[Kicker]
	batting *ecs.Singleton[Batting]
	score   *ecs.Singleton[ScoreEngine]

	onTick func(State)
}

// Option customises a Session.
type Option func(*Session)

// WithLogger sets the logger. The session adds its id to every record.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.log = logger
	}
}

// WithRand sets the serve RNG, overriding Config.Seed.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

// WithTickHook makes Run call fn after every tick with the resulting state.
func WithTickHook(fn func(State)) Option {
	return func(s *Session) {
		s.onTick = fn
	}
}

// NewSession validates cfg and lays out a fresh game awaiting its first serve.
func NewSession(cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		id:  uuid.NewString(),
		cfg: cfg,
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		s.rng = rand.New(rand.NewSource(seed))
	}
	s.log = s.log.With("session", s.id)

	registry := ecs.NewComponentRegistry()
	scene.RegisterComponents(registry)
	storage := ecs.NewStorage(registry)
	s.scene = scene.New(storage, cfg.Width(), cfg.Height())

	bricks := layBricks(s.scene, cfg)

	w, h := cfg.Width(), cfg.Height()
	paddle := Paddle{
		X: w/2 - cfg.PaddleWidth/2,
		Y: h - cfg.PaddleOffset,
		W: cfg.PaddleWidth,
		H: cfg.PaddleHeight,
	}
	paddle.Id = s.scene.AddRect(scene.Bounds{X: paddle.X, Y: paddle.Y, W: paddle.W, H: paddle.H}, scene.TagPaddle, scene.Black)

	ball := Ball{Radius: cfg.BallRadius}
	ball.Reset(w/2-cfg.BallRadius, h/2-cfg.BallRadius)
	ball.Id = s.scene.AddOval(scene.Bounds{X: ball.X, Y: ball.Y, W: ball.Diameter(), H: ball.Diameter()}, scene.TagBall, scene.Black)

	s.round = ecs.NewSingleton(storage, Round{State: AwaitingServe, Lives: cfg.Lives, Bricks: bricks})
	s.ball = ecs.NewSingleton(storage, ball)
	s.paddle = ecs.NewSingleton(storage, paddle)
	s.kicker = ecs.NewSingleton(storage, Kicker{})
	s.batting = ecs.NewSingleton(storage, NewBatting(cfg.BatSpeedThreshold, cfg.BattingBounces))
	s.score = ecs.NewSingleton(storage, NewScoreEngine(cfg))

	s.world = &world{
		cfg:      cfg,
		scene:    s.scene,
		hud:      NewHud(s.scene, cfg),
		collider: NewSceneCollider(s.scene, cfg.Variant, s.round.Get(), s.score.Get(), s.kicker.Get(), s.batting.Get()),
		log:      s.log,
	}

	s.scheduler = ecs.NewScheduler(storage)
	s.scheduler.Register(&RoundSystem{w: s.world})
	s.scheduler.Register(&MotionSystem{w: s.world})
	s.scheduler.Register(&WallSystem{w: s.world})
	s.scheduler.Register(&CollisionSystem{w: s.world})
	s.scheduler.Register(&HudSystem{w: s.world})

	s.log.Info("session created",
		"variant", cfg.Variant,
		"width", w,
		"height", h,
		"bricks", bricks,
		"lives", cfg.Lives,
	)
	return s, nil
}

// ID returns the session's unique id.
func (s *Session) ID() string { return s.id }

// Config returns the configuration the session was built with.
func (s *Session) Config() Config { return s.cfg }

// Scene returns the playfield for rendering.
func (s *Session) Scene() *scene.Scene { return s.scene }

// Scheduler returns the tick scheduler, mainly for its timing stats.
func (s *Session) Scheduler() *ecs.Scheduler { return s.scheduler }

// State returns the current phase.
func (s *Session) State() State { return s.round.Get().State }

// Click serves the ball when it is waiting at rest. Any other click is ignored.
func (s *Session) Click() {
	round := s.round.Get()
	ball := s.ball.Get()
	if round.State != AwaitingServe || !ball.AtRest() {
		return
	}
	ball.VX, ball.VY = ServeVelocity(s.rng, s.cfg)
	round.State = InPlay
	s.world.hud.Served()
	s.log.Info("serve", "vx", ball.VX, "vy", ball.VY, "lives", round.Lives)
}

// MovePointer moves the paddle under a pointer at window x, observed at time at. Terminal sessions
// ignore it.
func (s *Session) MovePointer(x float64, at time.Time) {
	if s.round.Get().State.Terminal() {
		return
	}
	paddle := s.paddle.Get()
	displacement, elapsed := paddle.Follow(x, s.scene.Width(), at)
	s.scene.MoveTo(paddle.Id, paddle.X, paddle.Y)
	s.batting.Get().Track(displacement, elapsed)
}

// Tick advances the game by one frame and returns the resulting state. Terminal sessions do nothing.
func (s *Session) Tick() State {
	if state := s.State(); state.Terminal() {
		return state
	}
	s.scheduler.Once(1 / float64(s.cfg.TickRate))
	return s.State()
}

// InputKind distinguishes pointer events.
type InputKind uint8

const (
	InputMove InputKind = iota
	InputClick
)

// Input is a pointer event delivered to Run.
type Input struct {
	Kind InputKind
	X    float64
	At   time.Time
}

// Run ticks the session at the configured rate, applying input between ticks, until the game ends or ctx
// is cancelled. A closed input channel just stops input.
func (s *Session) Run(ctx context.Context, input <-chan Input) error {
	ticker := time.NewTicker(s.cfg.TickInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case in, ok := <-input:
			if !ok {
				input = nil
				continue
			}
			s.Apply(in)
		case <-ticker.C:
			state := s.Tick()
			if s.onTick != nil {
				s.onTick(state)
			}
			if state.Terminal() {
				return nil
			}
		}
	}
}

// Apply delivers one input event.
func (s *Session) Apply(in Input) {
	switch in.Kind {
	case InputMove:
		at := in.At
		if at.IsZero() {
			at = time.Now()
		}
		s.MovePointer(in.X, at)
	case InputClick:
		s.Click()
	}
}
