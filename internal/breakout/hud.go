package breakout

import (
	"fmt"

	"github.com/plus3/breakout/internal/ecs"
	"github.com/plus3/breakout/internal/scene"
)

const (
	winMessage  = "YOU WIN. CONGRATULATIONS!"
	loseMessage = "YOU LOSE. GAME OVER!"
	lineGap     = 5
)

// Hud owns the text and life markers drawn over the playfield. The classic variant only gets the end
// message.
type Hud struct {
	scene    *scene.Scene
	extended bool

	intro   ecs.EntityId
	score   ecs.EntityId
	lives   ecs.EntityId
	markers []ecs.EntityId
	shown   int
}

// NewHud lays out the HUD for cfg.
func NewHud(s *scene.Scene, cfg Config) *Hud {
	h := &Hud{scene: s, extended: cfg.Variant == Extended}
	if !h.extended {
		return h
	}

	w, ht := s.Width(), s.Height()
	h.intro = s.AddLabel(introText(cfg.Lives), w/2, ht*0.7, scene.AlignCenter, scene.Black)

	baseline := ht - 1 - scene.GlyphHeight
	h.score = s.AddLabel(scoreText(0), w-1, baseline, scene.AlignRight, scene.Black)
	h.lives = s.AddLabel("LIVES:", 1, baseline, scene.AlignLeft, scene.Black)

	d := 2 * cfg.BallRadius
	x := 1 + scene.MeasureText("LIVES:") + cfg.BallRadius
	for i := 0; i < cfg.Lives; i++ {
		h.markers = append(h.markers, s.AddOval(scene.Bounds{X: x, Y: ht - d - 1, W: d, H: d}, scene.TagDecoration, scene.Green))
		x += d + cfg.BrickSpacing
	}
	return h
}

func introText(lives int) string {
	return fmt.Sprintf("Welcome to Breakout! You have %d lives, and the higher\n"+
		"the color of the brick, the more points it's worth. If\n"+
		"you can break enough bricks in one life the bricks' point\n"+
		"value will double, at a cost...Click anywhere to begin!", lives)
}

func scoreText(score int) string {
	return fmt.Sprintf("SCORE: %d", score)
}

// Served removes the intro text. Later serves are no-ops.
func (h *Hud) Served() {
	if h.intro != 0 {
		h.scene.Remove(h.intro)
		h.intro = 0
	}
}

// SetScore updates the score label.
func (h *Hud) SetScore(score int) {
	if !h.extended || h.score == 0 || score == h.shown {
		return
	}
	h.shown = score
	h.scene.SetText(h.score, scoreText(score))
}

// SetLives removes the markers of lost lives and recolours the rest: yellow at two lives left, red at
// one.
func (h *Hud) SetLives(lives int) {
	for i := len(h.markers) - 1; i >= max(lives, 0); i-- {
		if h.markers[i] != 0 {
			h.scene.Remove(h.markers[i])
			h.markers[i] = 0
		}
	}

	var c scene.Color
	switch lives {
	case 1:
		c = scene.Red
	case 2:
		c = scene.Yellow
	default:
		return
	}
	for _, id := range h.markers {
		if id != 0 {
			h.scene.SetFill(id, c)
		}
	}
}

// Won shows the victory message and final score.
func (h *Hud) Won(score int) {
	h.finish(winMessage, score)
}

// Lost shows the game-over message and final score.
func (h *Hud) Lost(score int) {
	h.finish(loseMessage, score)
}

func (h *Hud) finish(message string, score int) {
	w, ht := h.scene.Width(), h.scene.Height()
	y := ht/2 - scene.GlyphHeight/2
	h.scene.AddLabel(message, w/2, y, scene.AlignCenter, scene.Black)
	if !h.extended {
		return
	}
	h.scene.Remove(h.score)
	h.score = 0
	y += scene.GlyphHeight + lineGap
	h.scene.AddLabel(fmt.Sprintf("Your Final Score is: %d", score), w/2, y, scene.AlignCenter, scene.Black)
}
