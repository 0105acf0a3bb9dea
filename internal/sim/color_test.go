package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestColorStaysInRange(t *testing.T) {
	tests := []struct {
		name string
		cur  mgl32.Vec4
		tgt  mgl32.Vec4
	}{
		{"black to white", mgl32.Vec4{0, 0, 0, 1}, mgl32.Vec4{1, 1, 1, 1}},
		{"white to black", mgl32.Vec4{1, 1, 1, 1}, mgl32.Vec4{0, 0, 0, 1}},
		{"mixed", mgl32.Vec4{0.9, 0.1, 0.5, 1}, mgl32.Vec4{0.2, 0.8, 0.3, 1}},
	}
	rng := NewRand(7)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ColorState{Cur: tt.cur, Target: tt.tgt}
			for step := 0; step < 5000; step++ {
				c.Advance(rng)
				for ch := 0; ch < 3; ch++ {
					if c.Cur[ch] < 0 || c.Cur[ch] > 1 {
						t.Fatalf("channel %d out of range after %d advances: %v", ch, step+1, c.Cur)
					}
					if c.Target[ch] < 0 || c.Target[ch] > 1 {
						t.Fatalf("target channel %d out of range: %v", ch, c.Target)
					}
				}
				if c.Cur[3] != 1 {
					t.Fatalf("alpha drifted from 1: %v", c.Cur)
				}
			}
		})
	}
}

func TestColorApproachesTarget(t *testing.T) {
	rng := NewRand(7)
	c := ColorState{Cur: mgl32.Vec4{0, 0, 0, 1}, Target: mgl32.Vec4{1, 1, 1, 1}}

	// Exponential smoothing: each advance closes a fixed fraction of the
	// remaining distance, so distance shrinks monotonically until a retarget.
	prev := c.Target[0] - c.Cur[0]
	for i := 0; i < 100; i++ {
		c.Advance(rng)
		d := c.Target[0] - c.Cur[0]
		if d >= prev {
			t.Fatalf("distance did not shrink at advance %d: %v -> %v", i, prev, d)
		}
		prev = d
	}
	if c.Cur[0] >= 1 {
		t.Fatalf("smoothing overshot the target: %v", c.Cur)
	}
}

func TestColorRetarget(t *testing.T) {
	rng := NewRand(42)
	c := ColorState{Cur: mgl32.Vec4{0.5, 0.5, 0.5, 1}, Target: mgl32.Vec4{0, 0, 0, 1}}
	oldTarget := c.Target

	// Step reaches 1 after ceil(1/ColorStepDelta) advances, then resets.
	n := int(1.0/ColorStepDelta) + 1
	for i := 0; i < n; i++ {
		c.Advance(rng)
	}
	if c.Target == oldTarget {
		t.Fatalf("target not redrawn after step wrapped")
	}
	if c.Step >= 1 {
		t.Fatalf("step not reset after retarget: %v", c.Step)
	}
	if c.Target[3] != 1 {
		t.Fatalf("new target alpha must stay 1: %v", c.Target)
	}
}
