package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Grid is a uniform spatial index over the world volume. It is rebuilt from
// scratch every tick, so it is never stale and needs no incremental
// bookkeeping; the cost is one pass over the population per tick.
type Grid struct {
	cellSize float32
	offset   mgl32.Vec3 // shifts world coords so cell indices start at 0
	n        int        // cells per axis
	cells    [][]int    // flattened n^3 array of entity index lists
}

func newGrid(boundary mgl32.Vec3, cellSize float32) *Grid {
	span := boundary[0] * 2
	if s := boundary[1] * 2; s > span {
		span = s
	}
	if boundary[2] > span {
		span = boundary[2]
	}
	n := int(math.Ceil(float64(span / cellSize)))
	if n < 1 {
		n = 1
	}
	return &Grid{
		cellSize: cellSize,
		offset:   boundary,
		n:        n,
		cells:    make([][]int, n*n*n),
	}
}

func (g *Grid) cellCoord(p mgl32.Vec3) (int, int, int) {
	gx := int(math.Floor(float64((p[0] + g.offset[0]) / g.cellSize)))
	gy := int(math.Floor(float64((p[1] + g.offset[1]) / g.cellSize)))
	gz := int(math.Floor(float64((p[2] + g.offset[2]) / g.cellSize)))
	return gx, gy, gz
}

// Rebuild clears every cell and reindexes all entities. An entity whose
// flattened cell index lands outside the allocated array is left out of the
// index for this tick: it still moves and bounces, but Neighbors cannot find
// it. Cubes drifting past the configured extent therefore evade collision
// until they bounce back in range.
func (g *Grid) Rebuild(entities []Entity) {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
	for i := range entities {
		gx, gy, gz := g.cellCoord(entities[i].Pos)
		flat := gx + gy*g.n + gz*g.n*g.n
		if flat < 0 || flat >= len(g.cells) {
			continue
		}
		g.cells[flat] = append(g.cells[flat], i)
	}
}

// Neighbors appends to out the indices of all entities in the 3x3x3 block of
// cells around entity i's cell, excluding i itself. The scan order (x, then
// y, then z, each from -1 to +1) is fixed: callers rely on it as the
// tie-break for which contact is found first.
func (g *Grid) Neighbors(entities []Entity, i int, out []int) []int {
	cx, cy, cz := g.cellCoord(entities[i].Pos)
	for dx := -1; dx <= 1; dx++ {
		gx := cx + dx
		if gx < 0 || gx >= g.n {
			continue
		}
		for dy := -1; dy <= 1; dy++ {
			gy := cy + dy
			if gy < 0 || gy >= g.n {
				continue
			}
			for dz := -1; dz <= 1; dz++ {
				gz := cz + dz
				if gz < 0 || gz >= g.n {
					continue
				}
				for _, j := range g.cells[gx+gy*g.n+gz*g.n*g.n] {
					if j != i {
						out = append(out, j)
					}
				}
			}
		}
	}
	return out
}
