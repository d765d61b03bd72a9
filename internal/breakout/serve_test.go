package breakout_test

import (
	"math"
	"testing"

	"github.com/plus3/breakout/internal/breakout"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

func TestServeVelocityExtended(t *testing.T) {
	cfg := breakout.DefaultConfig()
	rng := rand.New(rand.NewSource(7))

	negative, positive := 0, 0
	for i := 0; i < 2000; i++ {
		vx, vy := breakout.ServeVelocity(rng, cfg)
		assert.Equal(t, 5.0, vy)
		assert.GreaterOrEqual(t, math.Abs(vx), 1.0)
		assert.LessOrEqual(t, math.Abs(vx), 3.5)
		if vx < 0 {
			negative++
		} else {
			positive++
		}
	}
	assert.Greater(t, negative, 800)
	assert.Greater(t, positive, 800)
}

func TestServeVelocityClassicDeadzone(t *testing.T) {
	cfg := breakout.DefaultConfig()
	cfg.Variant = breakout.Classic
	cfg.ServeDeadzone = 0.5
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 2000; i++ {
		vx, vy := breakout.ServeVelocity(rng, cfg)
		assert.Equal(t, 5.0, vy)
		assert.GreaterOrEqual(t, math.Abs(vx), 0.5)
		assert.LessOrEqual(t, math.Abs(vx), 3.5)
	}
}

func TestServeVelocityIsSeeded(t *testing.T) {
	cfg := breakout.DefaultConfig()
	a, _ := breakout.ServeVelocity(rand.New(rand.NewSource(3)), cfg)
	b, _ := breakout.ServeVelocity(rand.New(rand.NewSource(3)), cfg)
	assert.Equal(t, a, b)
}
