package main

import (
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/breakout/internal/scene"
)

var baseStyle = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)

var palette = map[scene.Color]tcell.Color{
	scene.Black:  tcell.ColorBlack,
	scene.White:  tcell.ColorWhite,
	scene.Red:    tcell.ColorRed,
	scene.Orange: tcell.ColorOrange,
	scene.Yellow: tcell.ColorYellow,
	scene.Green:  tcell.ColorGreen,
	scene.Blue:   tcell.ColorBlue,
	scene.Gray:   tcell.ColorGray,
}

// view rasterises the scene onto terminal cells, scaling it to fill the screen.
type view struct {
	screen tcell.Screen
	scene  *scene.Scene
}

// cellSpan returns the half-open cell range [from, to) covering [pos, pos+size) at scale pixels per
// cell. Every object covers at least one cell.
func cellSpan(pos, size, scale float64) (from, to int) {
	from = int(math.Floor(pos / scale))
	to = int(math.Ceil((pos + size) / scale))
	return from, max(to, from+1)
}

func (v *view) draw() {
	cols, rows := v.screen.Size()
	if cols == 0 || rows == 0 {
		return
	}
	sx := v.scene.Width() / float64(cols)
	sy := v.scene.Height() / float64(rows)

	v.screen.Clear()
	for _, d := range v.scene.Shapes() {
		style := baseStyle.Foreground(palette[d.Color])
		x0, x1 := cellSpan(d.Bounds.X, d.Bounds.W, sx)
		y0, y1 := cellSpan(d.Bounds.Y, d.Bounds.H, sy)

		switch d.Kind {
		case scene.KindRect:
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					v.screen.SetContent(x, y, '█', nil, style)
				}
			}
		case scene.KindOval:
			v.screen.SetContent(x0, y0, '●', nil, style)
		case scene.KindLabel:
			for i, line := range strings.Split(d.Text, "\n") {
				runes := []rune(line)
				start := x0 + (x1-x0-len(runes))/2
				for j, r := range runes {
					v.screen.SetContent(start+j, y0+i, r, nil, style)
				}
			}
		}
	}
	v.screen.Show()
}
