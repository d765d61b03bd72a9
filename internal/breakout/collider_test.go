package breakout

import (
	"testing"
	"time"

	"github.com/plus3/breakout/internal/ecs"
	"github.com/plus3/breakout/internal/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type colliderFixture struct {
	scene    *scene.Scene
	collider *SceneCollider
	round    *Round
	score    *ScoreEngine
	kicker   *Kicker
	batting  *Batting
	paddle   ecs.EntityId
}

func newColliderFixture(t *testing.T, variant Variant) *colliderFixture {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Variant = variant

	registry := ecs.NewComponentRegistry()
	scene.RegisterComponents(registry)
	s := scene.New(ecs.NewStorage(registry), cfg.Width(), cfg.Height())

	score := NewScoreEngine(cfg)
	batting := NewBatting(cfg.BatSpeedThreshold, cfg.BattingBounces)
	f := &colliderFixture{
		scene:   s,
		round:   &Round{State: InPlay, Lives: 3, Bricks: 2},
		score:   &score,
		kicker:  &Kicker{},
		batting: &batting,
	}
	f.collider = NewSceneCollider(s, variant, f.round, f.score, f.kicker, f.batting)
	f.paddle = s.AddRect(scene.Bounds{X: 100, Y: 585, W: 75, H: 15}, scene.TagPaddle, scene.Black)
	return f
}

func (f *colliderFixture) brick(x, y float64) ecs.EntityId {
	return f.scene.AddRect(scene.Bounds{X: x, Y: y, W: 40, H: 15}, scene.TagBrick, scene.Red)
}

func TestHandleCollisionNothing(t *testing.T) {
	f := newColliderFixture(t, Extended)
	ball := Ball{X: 200, Y: 300, VX: 2, VY: 5, Radius: 10}

	contact := f.collider.HandleCollision(&ball)
	assert.Equal(t, ContactNone, contact.Kind)
	assert.Equal(t, 5.0, ball.VY)
	assert.Equal(t, 2, f.round.Bricks)
}

func TestFindCollidingObjectProbeOrder(t *testing.T) {
	f := newColliderFixture(t, Extended)
	right := f.brick(215, 100)
	f.brick(215, 125)

	ball := Ball{X: 200, Y: 100, Radius: 10}
	obj, ok := f.collider.FindCollidingObject(&ball)
	require.True(t, ok)
	assert.Equal(t, right, obj.Id, "top-right probe comes before bottom-right")
}

func TestFindCollidingObjectMissesInterior(t *testing.T) {
	f := newColliderFixture(t, Extended)
	f.scene.AddRect(scene.Bounds{X: 205, Y: 105, W: 10, H: 10}, scene.TagBrick, scene.Red)

	ball := Ball{X: 200, Y: 100, Radius: 10}
	_, ok := f.collider.FindCollidingObject(&ball)
	assert.False(t, ok)
}

func TestHandleCollisionBrick(t *testing.T) {
	f := newColliderFixture(t, Extended)
	brick := f.brick(0, 50)
	ball := Ball{X: 10, Y: 40, VX: 1, VY: -5, Radius: 10}

	contact := f.collider.HandleCollision(&ball)
	assert.Equal(t, ContactBrick, contact.Kind)
	assert.Equal(t, brick, contact.Object.Id)
	assert.Equal(t, 5.0, ball.VY)
	assert.Equal(t, 1, f.round.Bricks)
	assert.False(t, f.scene.Contains(brick))
	assert.Equal(t, 16, contact.Points)
	assert.Equal(t, 16, f.score.Score)
	assert.Equal(t, 1, f.kicker.Count)
}

func TestBrickScoreUsesStateBeforeHit(t *testing.T) {
	tests := []struct {
		name   string
		kicks  int
		budget int
		points int
	}{
		{"plain", 0, 0, 16},
		{"hit that reaches killer", 50, 0, 16},
		{"killer", 51, 0, 32},
		{"batted", 0, 1, 32},
		{"killer and batted", 60, 4, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newColliderFixture(t, Extended)
			f.brick(0, 50)
			f.kicker.Count = tt.kicks
			f.batting.Budget = tt.budget
			ball := Ball{X: 10, Y: 40, VX: 1, VY: -5, Radius: 10, Batted: tt.budget > 0}

			contact := f.collider.HandleCollision(&ball)
			assert.Equal(t, tt.points, contact.Points)
			assert.Equal(t, tt.kicks+1, f.kicker.Count)
			assert.Equal(t, max(tt.budget-1, 0), f.batting.Budget)
			assert.Equal(t, tt.budget == 1, contact.BatEnded)
		})
	}
}

func TestBrickCrossesKickerThreshold(t *testing.T) {
	f := newColliderFixture(t, Extended)
	f.brick(0, 50)
	f.kicker.Count = 6
	ball := Ball{X: 10, Y: 40, VX: 1, VY: -5, Radius: 10}

	contact := f.collider.HandleCollision(&ball)
	assert.Equal(t, KickNormal, contact.Tier)
	assert.Equal(t, 2.0, ball.VX)
}

func TestPaddleIgnoredWhileRising(t *testing.T) {
	f := newColliderFixture(t, Extended)
	ball := Ball{X: 120, Y: 570, VX: 1, VY: -5, Radius: 10}

	contact := f.collider.HandleCollision(&ball)
	assert.Equal(t, ContactNone, contact.Kind)
	assert.Equal(t, -5.0, ball.VY)
}

func TestPaddleBounce(t *testing.T) {
	f := newColliderFixture(t, Extended)
	f.batting.Budget = 3
	ball := Ball{X: 120, Y: 570, VX: 1, VY: 5, Radius: 10, Batted: true}

	contact := f.collider.HandleCollision(&ball)
	assert.Equal(t, ContactPaddle, contact.Kind)
	assert.Equal(t, f.paddle, contact.Object.Id)
	assert.Equal(t, -5.0, ball.VY)
	assert.Equal(t, 1.0, ball.VX)
	assert.Equal(t, 2, f.batting.Budget)
	assert.Equal(t, 2, f.round.Bricks, "paddle contact never breaks bricks")
}

func TestPaddleCornerKicks(t *testing.T) {
	tests := []struct {
		name   string
		x, vx  float64
		kind   ContactKind
		wantVX float64
	}{
		{"left corner moving right", 95, 2, ContactCornerKick, -2},
		{"left corner moving left", 95, -2, ContactPaddle, -2},
		{"right corner moving left", 160, -2, ContactCornerKick, 2},
		{"right corner moving right", 160, 2, ContactPaddle, 2},
		{"centre", 120, 2, ContactPaddle, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newColliderFixture(t, Extended)
			f.batting.Budget = 3
			ball := Ball{X: tt.x, Y: 570, VX: tt.vx, VY: 5, Radius: 10, Batted: true}

			contact := f.collider.HandleCollision(&ball)
			assert.Equal(t, tt.kind, contact.Kind)
			assert.Equal(t, tt.wantVX, ball.VX)
			assert.Equal(t, -5.0, ball.VY)
			if tt.kind == ContactCornerKick {
				assert.Equal(t, 3, f.batting.Budget, "corner kicks do not spend a batted bounce")
			} else {
				assert.Equal(t, 2, f.batting.Budget)
			}
		})
	}
}

func TestPaddleBats(t *testing.T) {
	f := newColliderFixture(t, Extended)
	f.batting.Track(100, 10*time.Millisecond)
	ball := Ball{X: 120, Y: 570, VX: 2, VY: 4, Radius: 10}

	contact := f.collider.HandleCollision(&ball)
	assert.True(t, contact.BatStarted)
	assert.True(t, ball.Batted)
	assert.Equal(t, 3.0, ball.VX)
	assert.Equal(t, -5.0, ball.VY)
	assert.Equal(t, 9, f.batting.Budget, "the batting hit itself spends one bounce")
}

func TestClassicCollisions(t *testing.T) {
	f := newColliderFixture(t, Classic)
	f.brick(0, 50)
	f.batting.Track(100, 10*time.Millisecond)

	ball := Ball{X: 10, Y: 40, VX: 1, VY: -5, Radius: 10}
	contact := f.collider.HandleCollision(&ball)
	assert.Equal(t, ContactBrick, contact.Kind)
	assert.Equal(t, 1, f.round.Bricks)
	assert.Zero(t, contact.Points)
	assert.Zero(t, f.score.Score)
	assert.Zero(t, f.kicker.Count)

	ball = Ball{X: 95, Y: 570, VX: 2, VY: 5, Radius: 10}
	contact = f.collider.HandleCollision(&ball)
	assert.Equal(t, ContactPaddle, contact.Kind)
	assert.Equal(t, 2.0, ball.VX, "no corner kick in classic")
	assert.Equal(t, -5.0, ball.VY)
	assert.False(t, ball.Batted)
}
