package breakout

import "github.com/plus3/breakout/internal/scene"

// ContactKind says what the ball hit in one tick.
type ContactKind uint8

const (
	ContactNone ContactKind = iota
	ContactPaddle
	ContactCornerKick
	ContactBrick
)

func (k ContactKind) String() string {
	switch k {
	case ContactPaddle:
		return "paddle"
	case ContactCornerKick:
		return "corner-kick"
	case ContactBrick:
		return "brick"
	}
	return "none"
}

// Contact is the outcome of HandleCollision.
type Contact struct {
	Kind   ContactKind
	Object scene.Object
	// Points credited for a brick.
	Points int
	// Tier is the kicker threshold a brick crossed, if any.
	Tier       KickTier
	BatStarted bool
	BatEnded   bool
}

// SceneCollider resolves ball contacts against the paddle and bricks in a scene.
type SceneCollider struct {
	scene   *scene.Scene
	variant Variant
	round   *Round
	score   *ScoreEngine
	kicker  *Kicker
	batting *Batting
}

// NewSceneCollider wires a collider to the shared round state.
func NewSceneCollider(s *scene.Scene, variant Variant, round *Round, score *ScoreEngine, kicker *Kicker, batting *Batting) *SceneCollider {
	return &SceneCollider{
		scene:   s,
		variant: variant,
		round:   round,
		score:   score,
		kicker:  kicker,
		batting: batting,
	}
}

// FindCollidingObject probes the four corners of the ball's bounding box, clockwise from the top-left,
// and returns the first collidable object under one of them. Objects overlapping only the ball's
// interior are missed.
func (c *SceneCollider) FindCollidingObject(ball *Ball) (scene.Object, bool) {
	d := ball.Diameter()
	probes := [4][2]float64{
		{ball.X, ball.Y},
		{ball.X + d, ball.Y},
		{ball.X + d, ball.Y + d},
		{ball.X, ball.Y + d},
	}
	for _, p := range probes {
		if obj, ok := c.scene.ObjectAt(p[0], p[1]); ok {
			return obj, true
		}
	}
	return scene.Object{}, false
}

// HandleCollision bounces the ball off whatever FindCollidingObject reports. The paddle only counts
// while the ball falls. A brick is removed and scored with the kicker and batting state from before
// the hit.
func (c *SceneCollider) HandleCollision(ball *Ball) Contact {
	obj, ok := c.FindCollidingObject(ball)
	if !ok {
		return Contact{}
	}

	switch obj.Tag {
	case scene.TagPaddle:
		if ball.VY <= 0 {
			return Contact{}
		}
		return c.hitPaddle(ball, obj)
	case scene.TagBrick:
		return c.hitBrick(ball, obj)
	}
	return Contact{}
}

func (c *SceneCollider) hitPaddle(ball *Ball, obj scene.Object) Contact {
	contact := Contact{Kind: ContactPaddle, Object: obj}
	if c.variant != Extended {
		ball.Bounce()
		return contact
	}

	contact.BatStarted = c.batting.TryActivate(ball)

	left := obj.Bounds.X + ball.Radius/4
	right := obj.Bounds.X + obj.Bounds.W - ball.Diameter()
	if (ball.X < left && ball.VX > 0) || (ball.X > right && ball.VX < 0) {
		ball.Bounce()
		ball.VX = -ball.VX
		contact.Kind = ContactCornerKick
		return contact
	}

	ball.Bounce()
	contact.BatEnded = c.batting.Spend(ball)
	return contact
}

func (c *SceneCollider) hitBrick(ball *Ball, obj scene.Object) Contact {
	contact := Contact{Kind: ContactBrick, Object: obj}

	ball.Bounce()
	c.scene.Remove(obj.Id)
	c.round.Bricks--
	if c.variant != Extended {
		return contact
	}

	contact.Points = ApplyMultipliers(c.score.ScoreForBrick(obj.Bounds.Y), c.kicker.Killer(), c.batting.Active())
	c.score.Add(contact.Points)
	contact.Tier = c.kicker.Advance(ball)
	contact.BatEnded = c.batting.Spend(ball)
	return contact
}
