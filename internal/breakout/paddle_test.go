package breakout_test

import (
	"testing"
	"time"

	"github.com/plus3/breakout/internal/breakout"
	"github.com/stretchr/testify/assert"
)

func TestPaddleFollow(t *testing.T) {
	const width = 445.0
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := breakout.Paddle{X: 185, Y: 585, W: 75, H: 15}

	d, elapsed := p.Follow(100, width, start)
	assert.Equal(t, 62.5, p.X)
	assert.Equal(t, 122.5, d)
	assert.Zero(t, elapsed, "first move has no previous timestamp")

	d, elapsed = p.Follow(-50, width, start.Add(5*time.Millisecond))
	assert.Equal(t, 0.0, p.X)
	assert.Equal(t, 62.5, d)
	assert.Equal(t, 5*time.Millisecond, elapsed)

	p.Follow(10000, width, start.Add(10*time.Millisecond))
	assert.Equal(t, width-75, p.X)

	d, _ = p.Follow(10000, width, start.Add(15*time.Millisecond))
	assert.Zero(t, d)
	assert.Equal(t, 585.0, p.Y)
}
