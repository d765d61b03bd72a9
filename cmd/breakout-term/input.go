package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/breakout/internal/breakout"
)

// translate turns terminal events into session input until events closes. Esc or Ctrl-C calls quit.
func translate(events <-chan tcell.Event, inputs chan<- breakout.Input, v *view, quit func()) {
	pressed := false
	for ev := range events {
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				quit()
			}
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventMouse:
			col, _ := ev.Position()
			cols, _ := v.screen.Size()
			send(inputs, breakout.Input{Kind: breakout.InputMove, X: sceneX(col, cols, v.scene.Width()), At: ev.When()})

			down := ev.Buttons()&tcell.Button1 != 0
			if down && !pressed {
				send(inputs, breakout.Input{Kind: breakout.InputClick, At: ev.When()})
			}
			pressed = down
		}
	}
}

// send drops the event when the session is not reading, which happens once the game is over.
func send(inputs chan<- breakout.Input, in breakout.Input) {
	select {
	case inputs <- in:
	default:
	}
}

// sceneX maps a terminal column to the scene x at the column's centre.
func sceneX(col, cols int, width float64) float64 {
	if cols <= 0 {
		return 0
	}
	return (float64(col) + 0.5) * width / float64(cols)
}

