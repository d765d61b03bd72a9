// Command breakout-bench plays many headless games with an autopilot and reports timings.
//
// Flags after "--" go to the game config loader, for example:
//
//	breakout-bench -games 200 -- -variant classic
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/plus3/breakout/internal/breakout"
	"github.com/plus3/breakout/internal/config"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "breakout-bench:", err)
		os.Exit(1)
	}
}

func run() error {
	games := flag.Int("games", 50, "Number of games to play.")
	workers := flag.Int("workers", runtime.GOMAXPROCS(0), "Games played in parallel.")
	maxTicks := flag.Int("max-ticks", 500000, "Ticks after which an unfinished game is abandoned.")
	duration := flag.Duration("duration", time.Minute, "Upper bound on the whole run.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	settings, err := config.Load("breakout-bench", flag.Args(), nil)
	if err != nil {
		return err
	}
	logger := config.NewLogger(os.Stderr, settings.LogLevel)
	// Sessions log every serve and brick at debug level; keep them quiet unless asked.
	sessionLogger := slog.New(slog.DiscardHandler)
	if settings.LogLevel <= slog.LevelDebug {
		sessionLogger = logger
	}

	report := &Report{
		Games:          *games,
		Workers:        *workers,
		MaxTicks:       *maxTicks,
		Variant:        settings.Game.Variant,
		GCPauseMetrics: *gcPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	logger.Info("starting", "games", *games, "workers", *workers, "variant", settings.Game.Variant)
	start := time.Now()

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(*workers, 1))
	for i := range *games {
		cfg := settings.Game
		if cfg.Seed != 0 {
			cfg.Seed += uint64(i)
		} else {
			cfg.Seed = uint64(start.UnixNano()) + uint64(i)
		}

		g.Go(func() error {
			session, err := breakout.NewSession(cfg, breakout.WithLogger(sessionLogger))
			if err != nil {
				return err
			}
			result := newAutopilot(session, cfg.Seed).play(ctx, *maxTicks)

			mu.Lock()
			report.add(result)
			mu.Unlock()
			logger.Debug("game finished", "session", result.Session, "state", result.State, "score", result.Score, "ticks", result.Ticks)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	report.TotalTime = time.Since(start)
	report.finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)
	logger.Info("finished", "elapsed", report.TotalTime, "ticks", report.TotalTicks)

	return report.Generate(os.Stdout)
}
