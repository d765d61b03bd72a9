package breakout_test

import (
	"testing"
	"time"

	"github.com/plus3/breakout/internal/breakout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBattingNeedsElapsedTime(t *testing.T) {
	b := breakout.NewBatting(2000, 10)
	ball := breakout.Ball{VX: 2, VY: 4}

	b.Track(500, 0)
	assert.Zero(t, b.Speed())
	assert.False(t, b.TryActivate(&ball))

	b.Track(500, -time.Millisecond)
	assert.False(t, b.TryActivate(&ball))
	assert.Equal(t, 2.0, ball.VX)
}

func TestBattingThreshold(t *testing.T) {
	b := breakout.NewBatting(2000, 10)
	ball := breakout.Ball{VX: 2, VY: 4}

	b.Track(19, 10*time.Millisecond)
	assert.InDelta(t, 1900.0, b.Speed(), 1e-6)
	assert.False(t, b.TryActivate(&ball))

	b.Track(21, 10*time.Millisecond)
	require.True(t, b.TryActivate(&ball))
	assert.True(t, ball.Batted)
	assert.Equal(t, 3.0, ball.VX)
	assert.Equal(t, 5.0, ball.VY)
	assert.Equal(t, 10, b.Budget)
	assert.True(t, b.Active())

	assert.False(t, b.TryActivate(&ball), "no stacking")
	assert.Equal(t, 3.0, ball.VX)
}

func TestBattingSpend(t *testing.T) {
	b := breakout.NewBatting(2000, 10)
	ball := breakout.Ball{VX: 2, VY: 4}
	b.Track(100, 10*time.Millisecond)
	require.True(t, b.TryActivate(&ball))

	for i := 0; i < 9; i++ {
		assert.False(t, b.Spend(&ball))
		assert.True(t, ball.Batted)
	}
	assert.True(t, b.Spend(&ball))
	assert.False(t, ball.Batted)
	assert.InDelta(t, 2.0, ball.VX, 1e-9)
	assert.InDelta(t, 4.0, ball.VY, 1e-9)

	assert.False(t, b.Spend(&ball), "spending with no budget does nothing")
	assert.InDelta(t, 2.0, ball.VX, 1e-9)
}

func TestBattingReset(t *testing.T) {
	b := breakout.NewBatting(2000, 10)
	ball := breakout.Ball{VX: 2, VY: 4}
	b.Track(100, 10*time.Millisecond)
	require.True(t, b.TryActivate(&ball))

	b.Reset()
	assert.False(t, b.Active())
	assert.Zero(t, b.Speed())
}
