package breakout_test

import (
	"testing"

	"github.com/plus3/breakout/internal/breakout"
	"github.com/stretchr/testify/assert"
)

func TestKickerThresholds(t *testing.T) {
	var k breakout.Kicker
	ball := breakout.Ball{VX: 1, VY: 4}

	var fired []breakout.KickTier
	for i := 1; i <= 60; i++ {
		if tier := k.Advance(&ball); tier != breakout.KickNone {
			fired = append(fired, tier)
		}
		switch i {
		case 6:
			assert.Equal(t, 1.0, ball.VX)
		case 7:
			assert.Equal(t, 2.0, ball.VX)
			assert.Equal(t, 4.0, ball.VY)
		case 14:
			assert.Equal(t, 2.0, ball.VX)
			assert.Equal(t, 6.0, ball.VY)
		case 50:
			assert.Equal(t, 4.0, ball.VX)
			assert.Equal(t, 10.5, ball.VY)
			assert.False(t, k.Killer(), "killer starts after the fiftieth brick")
		case 51:
			assert.True(t, k.Killer())
		}
	}

	assert.Equal(t, []breakout.KickTier{breakout.KickNormal, breakout.KickHard, breakout.KickKiller}, fired)
	assert.Equal(t, 4.0, ball.VX, "no threshold fires twice")
	assert.Equal(t, 60, k.Count)

	k.Reset()
	assert.Equal(t, 0, k.Count)
	assert.False(t, k.Killer())
	assert.Equal(t, "killer", breakout.KickKiller.String())
}
