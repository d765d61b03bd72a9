package ecs

import (
	"reflect"
	"strings"
	"time"
)

// SchedulerStats summarises system timings.
type SchedulerStats struct {
	SystemCount int
	Frames      uint64
	Systems     []SystemStats
}

// SystemStats holds the timings of one system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemTimer struct {
	name  string
	count int64
	min   time.Duration
	max   time.Duration
	total time.Duration
	last  time.Duration
}

func (t *systemTimer) record(d time.Duration) {
	t.count++
	t.last = d
	t.total += d
	t.min = min(t.min, d)
	t.max = max(t.max, d)
}

// Scheduler runs registered systems in registration order, one frame per Once call.
type Scheduler struct {
	storage *Storage
	systems []System
	timers  []*systemTimer
	frames  uint64
}

// NewScheduler creates a scheduler for storage.
func NewScheduler(storage *Storage) *Scheduler {
	return &Scheduler{storage: storage}
}

// Register appends a system and binds its Singleton fields to the scheduler's storage.
func (s *Scheduler) Register(system System) {
	s.bindSingletons(system)
	s.systems = append(s.systems, system)

	t := reflect.TypeOf(system)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	s.timers = append(s.timers, &systemTimer{
		name: t.Name(),
		min:  time.Duration(1<<63 - 1),
	})
}

func (s *Scheduler) bindSingletons(system System) {
	v := reflect.ValueOf(system)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}
		if !strings.HasPrefix(field.Type().Name(), "Singleton[") {
			continue
		}
		init := field.Addr().MethodByName("Init")
		if !init.IsValid() {
			panic("Init method not found on Singleton field: " + v.Type().Field(i).Name)
		}
		init.Call([]reflect.Value{reflect.ValueOf(s.storage)})
	}
}

// Once executes every system once and then flushes the frame's commands.
func (s *Scheduler) Once(dt float64) {
	s.frames++
	frame := newUpdateFrame(dt, s.frames, s.storage)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		s.timers[i].record(time.Since(start))
	}

	frame.Commands.Flush(s.storage)
}

// Frames returns the number of completed Once calls.
func (s *Scheduler) Frames() uint64 {
	return s.frames
}

// Stats returns a copy of the current timings.
func (s *Scheduler) Stats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(s.timers)),
	}
	for i, t := range s.timers {
		var avg time.Duration
		minDuration := t.min
		if t.count > 0 {
			avg = t.total / time.Duration(t.count)
		} else {
			minDuration = 0
		}
		stats.Systems[i] = SystemStats{
			Name:           t.name,
			ExecutionCount: t.count,
			MinDuration:    minDuration,
			MaxDuration:    t.max,
			AvgDuration:    avg,
			LastDuration:   t.last,
			TotalDuration:  t.total,
		}
	}
	return stats
}
