package main

import (
	"fmt"
	"io"
	"runtime"
	"sort"
	"text/template"
	"time"

	"github.com/plus3/breakout/internal/breakout"
	"github.com/plus3/breakout/internal/ecs"
)

type gameResult struct {
	Session string
	State   breakout.State
	Score   int
	Ticks   int
	Elapsed time.Duration
	Systems []ecs.SystemStats
}

type Report struct {
	// Configuration
	Games    int
	Workers  int
	MaxTicks int
	Variant  breakout.Variant

	// Results
	Won        int
	Lost       int
	Unfinished int
	TotalTicks int64
	TotalTime  time.Duration
	Score      Stats
	GameTime   DurationStats
	TickTime   time.Duration
	Systems    []SystemTotal

	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats

	scores  []int
	elapsed []time.Duration
	systems map[string]*SystemTotal
}

// SystemTotal sums one system's timings over every game.
type SystemTotal struct {
	Name  string
	Runs  int64
	Total time.Duration
	Max   time.Duration
	Avg   time.Duration
}

type Stats struct {
	Min int
	Max int
	Avg float64
}

type DurationStats struct {
	Min time.Duration
	Max time.Duration
	Avg time.Duration
}

func (r *Report) add(res gameResult) {
	switch res.State {
	case breakout.Won:
		r.Won++
	case breakout.Lost:
		r.Lost++
	default:
		r.Unfinished++
	}
	r.TotalTicks += int64(res.Ticks)
	r.scores = append(r.scores, res.Score)
	r.elapsed = append(r.elapsed, res.Elapsed)

	if r.systems == nil {
		r.systems = make(map[string]*SystemTotal)
	}
	for _, s := range res.Systems {
		total, ok := r.systems[s.Name]
		if !ok {
			total = &SystemTotal{Name: s.Name}
			r.systems[s.Name] = total
		}
		total.Runs += s.ExecutionCount
		total.Total += s.TotalDuration
		total.Max = max(total.Max, s.MaxDuration)
	}
}

func (r *Report) finalize() {
	if len(r.scores) > 0 {
		r.Score = Stats{Min: r.scores[0], Max: r.scores[0]}
		sum := 0
		for _, s := range r.scores {
			r.Score.Min = min(r.Score.Min, s)
			r.Score.Max = max(r.Score.Max, s)
			sum += s
		}
		r.Score.Avg = float64(sum) / float64(len(r.scores))
	}

	if len(r.elapsed) > 0 {
		r.GameTime = DurationStats{Min: r.elapsed[0], Max: r.elapsed[0]}
		var total time.Duration
		for _, e := range r.elapsed {
			r.GameTime.Min = min(r.GameTime.Min, e)
			r.GameTime.Max = max(r.GameTime.Max, e)
			total += e
		}
		r.GameTime.Avg = total / time.Duration(len(r.elapsed))
		if r.TotalTicks > 0 {
			r.TickTime = total / time.Duration(r.TotalTicks)
		}
	}

	r.Systems = r.Systems[:0]
	for _, s := range r.systems {
		if s.Runs > 0 {
			s.Avg = s.Total / time.Duration(s.Runs)
		}
		r.Systems = append(r.Systems, *s)
	}
	sort.Slice(r.Systems, func(i, j int) bool { return r.Systems[i].Total > r.Systems[j].Total })
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Breakout Benchmark Report

## Configuration
- **Variant:** {{.Variant}}
- **Games:** {{.Games}}
- **Workers:** {{.Workers}}
- **Tick Cap:** {{.MaxTicks}}

## Outcomes
- **Won:** {{.Won}}
- **Lost:** {{.Lost}}
- **Unfinished:** {{.Unfinished}}
- **Score:** avg {{printf "%.1f" .Score.Avg}}, min {{.Score.Min}}, max {{.Score.Max}}

## Performance
- **Total Time:** {{.TotalTime}}
- **Total Ticks:** {{.TotalTicks}}
- **Time per Tick:** {{.TickTime}}
- **Time per Game:** avg {{.GameTime.Avg}}, min {{.GameTime.Min}}, max {{.GameTime.Max}}

## Systems
| System | Runs | Total | Avg | Max |
|---|---|---|---|---|
{{range .Systems}}| {{.Name}} | {{.Runs}} | {{.Total}} | {{.Avg}} | {{.Max}} |
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parsing report template: %w", err)
	}
	return tmpl.Execute(w, r)
}
