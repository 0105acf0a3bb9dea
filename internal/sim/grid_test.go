package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func testGrid(t *testing.T) *Grid {
	t.Helper()
	return newGrid(mgl32.Vec3{6, 6, 18}, 2.0)
}

func entitiesAt(positions ...mgl32.Vec3) []Entity {
	es := make([]Entity, 0, len(positions))
	for _, p := range positions {
		es = append(es, Entity{Pos: p})
	}
	return es
}

func containsIndex(list []int, want int) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}

func TestNeighborsSameCell(t *testing.T) {
	g := testGrid(t)
	es := entitiesAt(
		mgl32.Vec3{0.2, 0.2, -2.2},
		mgl32.Vec3{0.4, 0.4, -2.4},
	)
	g.Rebuild(es)

	n0 := g.Neighbors(es, 0, nil)
	if !containsIndex(n0, 1) {
		t.Fatalf("entity 1 missing from neighbors of 0: %v", n0)
	}
	if containsIndex(n0, 0) {
		t.Fatalf("entity 0 found itself in its own neighbors: %v", n0)
	}
}

func TestNeighborsAdjacentCells(t *testing.T) {
	// Pairs within one cell size of each other on every axis must see each
	// other even when a cell boundary runs between them.
	tests := []struct {
		name string
		a, b mgl32.Vec3
	}{
		{"across x boundary", mgl32.Vec3{-0.1, 0, -3}, mgl32.Vec3{0.1, 0, -3}},
		{"across y boundary", mgl32.Vec3{0, -0.1, -3}, mgl32.Vec3{0, 0.1, -3}},
		{"across z boundary", mgl32.Vec3{0, 0, -2.1}, mgl32.Vec3{0, 0, -1.9}},
		{"diagonal corner", mgl32.Vec3{-0.1, -0.1, -2.1}, mgl32.Vec3{0.1, 0.1, -1.9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testGrid(t)
			es := entitiesAt(tt.a, tt.b)
			g.Rebuild(es)
			if n := g.Neighbors(es, 0, nil); !containsIndex(n, 1) {
				t.Errorf("0 does not see 1: %v", n)
			}
			if n := g.Neighbors(es, 1, nil); !containsIndex(n, 0) {
				t.Errorf("1 does not see 0: %v", n)
			}
		})
	}
}

func TestNeighborsFarApart(t *testing.T) {
	g := testGrid(t)
	es := entitiesAt(
		mgl32.Vec3{-5, -5, -16},
		mgl32.Vec3{5, 5, -2},
	)
	g.Rebuild(es)
	if n := g.Neighbors(es, 0, nil); len(n) != 0 {
		t.Fatalf("distant entities reported as neighbors: %v", n)
	}
}

func TestRebuildOmitsOutOfRange(t *testing.T) {
	// An entity far past the world extent computes a flattened cell index
	// outside the allocated array and drops out of the index for the tick.
	g := testGrid(t)
	es := entitiesAt(
		mgl32.Vec3{0, 0, 500}, // far outside
		mgl32.Vec3{0.1, 0.1, 499.9},
	)
	g.Rebuild(es)
	if n := g.Neighbors(es, 0, nil); len(n) != 0 {
		t.Fatalf("out-of-range entity still indexed: %v", n)
	}
}

func TestRebuildResetsCells(t *testing.T) {
	g := testGrid(t)
	es := entitiesAt(mgl32.Vec3{0.2, 0.2, -2}, mgl32.Vec3{0.4, 0.4, -2})
	g.Rebuild(es)

	// Move entity 1 away and rebuild: the old cell entry must be gone.
	es[1].Pos = mgl32.Vec3{5, 5, -16}
	g.Rebuild(es)
	if n := g.Neighbors(es, 0, nil); len(n) != 0 {
		t.Fatalf("stale index entry after rebuild: %v", n)
	}
}

func TestNeighborsScratchReuse(t *testing.T) {
	g := testGrid(t)
	es := entitiesAt(mgl32.Vec3{0.2, 0.2, -2}, mgl32.Vec3{0.4, 0.4, -2})
	g.Rebuild(es)

	buf := make([]int, 0, 8)
	buf = g.Neighbors(es, 0, buf[:0])
	buf = g.Neighbors(es, 0, buf[:0])
	if len(buf) != 1 || buf[0] != 1 {
		t.Fatalf("reused buffer holds wrong result: %v", buf)
	}
}
