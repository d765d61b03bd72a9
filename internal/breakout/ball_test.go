package breakout_test

import (
	"testing"

	"github.com/plus3/breakout/internal/breakout"
	"github.com/stretchr/testify/assert"
)

func TestReflectOnWalls(t *testing.T) {
	const w, h = 445.0, 635.0

	tests := []struct {
		name    string
		ball    breakout.Ball
		bounced bool
		wantVX  float64
		wantVY  float64
	}{
		{"left wall moving left", breakout.Ball{X: 0, Y: 100, VX: -2, VY: 5}, true, 2, 5},
		{"past left wall moving left", breakout.Ball{X: -3, Y: 100, VX: -2, VY: 5}, true, 2, 5},
		{"left wall moving right", breakout.Ball{X: -1, Y: 100, VX: 2, VY: 5}, false, 2, 5},
		{"right wall moving right", breakout.Ball{X: w - 20, Y: 100, VX: 3, VY: -5}, true, -3, -5},
		{"right wall moving left", breakout.Ball{X: w - 10, Y: 100, VX: -3, VY: -5}, false, -3, -5},
		{"top wall moving up", breakout.Ball{X: 100, Y: 0, VX: 1, VY: -5}, true, 1, 5},
		{"top wall moving down", breakout.Ball{X: 100, Y: -2, VX: 1, VY: 5}, false, 1, 5},
		{"corner flips only horizontal", breakout.Ball{X: 0, Y: 0, VX: -1, VY: -5}, true, 1, -5},
		{"bottom is open", breakout.Ball{X: 100, Y: h + 5, VX: 1, VY: 5}, false, 1, 5},
		{"middle of the field", breakout.Ball{X: 100, Y: 100, VX: 1, VY: 5}, false, 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball := tt.ball
			ball.Radius = 10
			assert.Equal(t, tt.bounced, ball.ReflectOnWalls(w, h))
			assert.Equal(t, tt.wantVX, ball.VX)
			assert.Equal(t, tt.wantVY, ball.VY)
		})
	}
}

func TestBallMotionAndReset(t *testing.T) {
	ball := breakout.Ball{X: 10, Y: 20, VX: 1.5, VY: -5, Radius: 10, Batted: true}

	ball.ApplyVelocity()
	assert.Equal(t, 11.5, ball.X)
	assert.Equal(t, 15.0, ball.Y)
	assert.False(t, ball.AtRest())

	assert.False(t, ball.OutOfScreen(635))
	ball.Y = 635
	assert.True(t, ball.OutOfScreen(635))

	ball.Reset(212.5, 307.5)
	assert.Equal(t, 212.5, ball.X)
	assert.Equal(t, 307.5, ball.Y)
	assert.True(t, ball.AtRest())
	assert.False(t, ball.Batted)
	assert.Equal(t, 20.0, ball.Diameter())
}
