// Command breakout-term plays the game in a terminal. The mouse moves the paddle and clicks serve;
// Esc quits.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/breakout/internal/breakout"
	"github.com/plus3/breakout/internal/config"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "breakout-term:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	settings, err := config.Load("breakout-term", args, nil)
	if err != nil {
		return err
	}

	logFile, err := os.CreateTemp("", "breakout-term-*.log")
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := config.NewLogger(logFile, settings.LogLevel)

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.SetStyle(baseStyle)

	var v *view
	session, err := breakout.NewSession(settings.Game,
		breakout.WithLogger(logger),
		breakout.WithTickHook(func(breakout.State) { v.draw() }),
	)
	if err != nil {
		return err
	}
	v = &view{screen: screen, scene: session.Scene()}
	v.draw()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	inputs := make(chan breakout.Input, 64)
	go translate(events, inputs, v, cancel)

	err = session.Run(ctx, inputs)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return err
	}

	// The end message stays up until Esc.
	<-ctx.Done()
	snap := session.Snapshot()
	logger.Info("game closed", "state", snap.State, "score", snap.Score, "ticks", snap.Frames)
	return nil
}
