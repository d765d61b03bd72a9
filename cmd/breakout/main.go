// Command breakout plays the game in an ebiten window. Pass -debug for the ImGui overlay.
package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/breakout/internal/breakout"
	"github.com/plus3/breakout/internal/config"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "breakout:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	settings, err := config.Load("breakout", args, nil)
	if err != nil {
		return err
	}
	logger := config.NewLogger(os.Stderr, settings.LogLevel)

	session, err := breakout.NewSession(settings.Game, breakout.WithLogger(logger))
	if err != nil {
		return err
	}

	width, height := int(session.Scene().Width()), int(session.Scene().Height())
	game := &Game{session: session, renderer: newRenderer()}
	if settings.Debug {
		game.overlay = newOverlay(session, width, height)
	} else {
		ebiten.SetWindowSize(width, height)
	}
	ebiten.SetWindowTitle("Breakout")
	ebiten.SetTPS(settings.Game.TickRate)

	if err := ebiten.RunGame(game); err != nil {
		return err
	}
	snap := session.Snapshot()
	logger.Info("game closed", "session", snap.Session, "state", snap.State, "score", snap.Score, "ticks", snap.Frames)
	return nil
}
