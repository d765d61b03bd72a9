package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/breakout/internal/ecs"
	"github.com/plus3/breakout/internal/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellSpan(t *testing.T) {
	from, to := cellSpan(0, 30, 10)
	assert.Equal(t, 0, from)
	assert.Equal(t, 3, to)

	from, to = cellSpan(15, 10, 10)
	assert.Equal(t, 1, from)
	assert.Equal(t, 3, to)

	from, to = cellSpan(40, 0, 10)
	assert.Equal(t, 4, from)
	assert.Equal(t, 5, to, "empty objects still cover a cell")
}

func TestSceneX(t *testing.T) {
	assert.Equal(t, 0.0, sceneX(3, 0, 450))
	assert.Equal(t, 5.0, sceneX(0, 45, 450))
	assert.Equal(t, 445.0, sceneX(44, 45, 450))
}

func TestDrawPlacesLabelRunesInAdjacentCells(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(60, 20)

	registry := ecs.NewComponentRegistry()
	scene.RegisterComponents(registry)
	s := scene.New(ecs.NewStorage(registry), 360, 320)
	s.AddLabel("héllo", 0, 0, scene.AlignLeft, scene.Black)

	v := &view{screen: screen, scene: s}
	v.draw()

	var got []rune
	for x := 0; x < 5; x++ {
		r, _, _, _ := screen.GetContent(x, 0)
		got = append(got, r)
	}
	assert.Equal(t, "héllo", string(got))
}
