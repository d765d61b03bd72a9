package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/breakout/internal/breakout"
)

// Game adapts a Session to ebiten's update and draw loop. Each ebiten tick is one game tick.
type Game struct {
	session  *breakout.Session
	overlay  *overlay
	renderer *renderer
	lastX    int
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.overlay != nil {
		g.overlay.update()
	}
	captured := g.overlay != nil && g.overlay.wantsMouse()

	if !captured {
		x, _ := ebiten.CursorPosition()
		if x != g.lastX {
			g.lastX = x
			g.session.MovePointer(float64(x), time.Now())
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			g.session.Click()
		}
	}

	g.session.Tick()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.draw(screen, g.session.Scene())
	if g.overlay != nil {
		g.overlay.draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return int(g.session.Scene().Width()), int(g.session.Scene().Height())
}
