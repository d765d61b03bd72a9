package main

import (
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/breakout/internal/scene"
)

const maxCachedLabels = 64

var background = scene.White.RGBA()

// renderer paints a scene. Labels use ebiten's debug font, which shares the scene's 6x16 glyph cell;
// it only draws white, so each label is rendered once to an image and tinted on draw.
type renderer struct {
	labels map[string]*ebiten.Image
}

func newRenderer() *renderer {
	return &renderer{labels: make(map[string]*ebiten.Image)}
}

func (r *renderer) label(text string, b scene.Bounds) *ebiten.Image {
	if img, ok := r.labels[text]; ok {
		return img
	}
	if len(r.labels) >= maxCachedLabels {
		for k, img := range r.labels {
			img.Deallocate()
			delete(r.labels, k)
		}
	}

	img := ebiten.NewImage(max(int(math.Ceil(b.W)), 1), max(int(math.Ceil(b.H)), 1))
	for i, line := range strings.Split(text, "\n") {
		ebitenutil.DebugPrintAt(img, line, 0, i*scene.GlyphHeight)
	}
	r.labels[text] = img
	return img
}

// draw paints every scene object in z order.
func (r *renderer) draw(screen *ebiten.Image, s *scene.Scene) {
	screen.Fill(background)

	for _, d := range s.Shapes() {
		b := d.Bounds
		clr := d.Color.RGBA()
		switch d.Kind {
		case scene.KindRect:
			vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), clr, false)
		case scene.KindOval:
			radius := float32(b.W / 2)
			vector.DrawFilledCircle(screen, float32(b.X)+radius, float32(b.Y+b.H/2), radius, clr, true)
		case scene.KindLabel:
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(b.X, b.Y)
			op.ColorScale.ScaleWithColor(clr)
			screen.DrawImage(r.label(d.Text, b), op)
		}
	}
}
