package debugui

import (
	"testing"
	"time"

	"github.com/plus3/breakout/internal/breakout"
	"github.com/plus3/breakout/internal/scene"
	"github.com/stretchr/testify/assert"
)

func TestPerformancePanelAverage(t *testing.T) {
	p := NewPerformancePanel(3)
	assert.Zero(t, p.average())

	p.record(0.010)
	assert.InDelta(t, 10.0, p.average(), 1e-4)

	p.record(0.020)
	p.record(0.030)
	p.record(0.040)
	assert.InDelta(t, 30.0, p.average(), 1e-4, "oldest frame drops out")
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1.50ms", formatDuration(1500*time.Microsecond))
	assert.Equal(t, "2.5µs", formatDuration(2500*time.Nanosecond))
	assert.Equal(t, "300ns", formatDuration(300))
}

func TestFrameTimer(t *testing.T) {
	start := time.Unix(0, 0)
	now := start
	ft := &FrameTimer{last: start, now: func() time.Time { return now }}

	now = now.Add(8 * time.Millisecond)
	assert.InDelta(t, 0.008, ft.Delta(), 1e-6)
	assert.Zero(t, ft.Delta())
}

func TestFilterObjects(t *testing.T) {
	objects := []scene.Drawable{
		{Tag: scene.TagBrick, Kind: scene.KindRect, Color: scene.Red},
		{Tag: scene.TagBrick, Kind: scene.KindRect, Color: scene.Blue},
		{Tag: scene.TagBall, Kind: scene.KindOval, Color: scene.Black},
		{Tag: scene.TagDecoration, Kind: scene.KindLabel, Color: scene.Black, Text: "SCORE: 16"},
	}

	assert.Len(t, filterObjects(objects, ""), 4)
	assert.Len(t, filterObjects(objects, "brick"), 2)
	assert.Len(t, filterObjects(objects, " RED "), 1)
	assert.Len(t, filterObjects(objects, "score"), 1)
	assert.Empty(t, filterObjects(objects, "paddle"))

	assert.Equal(t, 1, pageCount(0, 10))
	assert.Equal(t, 1, pageCount(10, 10))
	assert.Equal(t, 11, pageCount(104, 10))
}

func TestSessionLines(t *testing.T) {
	snap := breakout.Snapshot{
		Frames:      42,
		Lives:       2,
		Score:       160,
		Bricks:      90,
		KickerCount: 51,
		Killer:      true,
		BatBudget:   4,
		Ball:        breakout.Ball{X: 10, Y: 20, VX: 1.5, VY: -5},
		LastContact: breakout.ContactCornerKick,
	}

	lines := sessionLines(snap)
	assert.Contains(t, lines, "Tick: 42")
	assert.Contains(t, lines, "Lives: 2  Score: 160  Bricks: 90")
	assert.Contains(t, lines, "Kicker: 51 (killer)")
	assert.Contains(t, lines, "Ball: (10.0, 20.0) v=(1.50, -5.00)")
	assert.Contains(t, lines, "Last contact: corner-kick")
}
