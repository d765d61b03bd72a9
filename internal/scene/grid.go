package scene

import (
	"math"
	"slices"

	"github.com/kamstrup/intmap"
	"github.com/plus3/breakout/internal/ecs"
)

const cellSize = 32.0

// grid buckets collidable objects by the cells their bounds overlap.
type grid struct {
	cells *intmap.Map[uint64, []ecs.EntityId]
}

func newGrid() *grid {
	return &grid{cells: intmap.New[uint64, []ecs.EntityId](256)}
}

func cellKey(cx, cy int) uint64 {
	return uint64(uint32(int32(cx)))<<32 | uint64(uint32(int32(cy)))
}

func cellOf(v float64) int {
	return int(math.Floor(v / cellSize))
}

// span returns the inclusive cell range covered by b.
func span(b Bounds) (x0, y0, x1, y1 int) {
	x0, y0 = cellOf(b.X), cellOf(b.Y)
	x1, y1 = cellOf(b.X+b.W), cellOf(b.Y+b.H)
	return
}

func (g *grid) insert(id ecs.EntityId, b Bounds) {
	x0, y0, x1, y1 := span(b)
	for cx := x0; cx <= x1; cx++ {
		for cy := y0; cy <= y1; cy++ {
			key := cellKey(cx, cy)
			ids, _ := g.cells.Get(key)
			g.cells.Put(key, append(ids, id))
		}
	}
}

func (g *grid) remove(id ecs.EntityId, b Bounds) {
	x0, y0, x1, y1 := span(b)
	for cx := x0; cx <= x1; cx++ {
		for cy := y0; cy <= y1; cy++ {
			key := cellKey(cx, cy)
			ids, ok := g.cells.Get(key)
			if !ok {
				continue
			}
			ids = slices.DeleteFunc(ids, func(other ecs.EntityId) bool { return other == id })
			if len(ids) == 0 {
				g.cells.Del(key)
			} else {
				g.cells.Put(key, ids)
			}
		}
	}
}

func (g *grid) at(x, y float64) []ecs.EntityId {
	ids, _ := g.cells.Get(cellKey(cellOf(x), cellOf(y)))
	return ids
}

func (g *grid) len() int {
	return g.cells.Len()
}
