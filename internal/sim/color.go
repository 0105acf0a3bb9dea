package sim

import "github.com/go-gl/mathgl/mgl32"

// ColorState animates one cube's color toward a random target by exponential
// smoothing. Step is a separate retarget clock: when it reaches 1 a new
// target is drawn, whether or not the current color got close to the old one.
type ColorState struct {
	Cur    mgl32.Vec4 // channels in [0,1], alpha pinned to 1
	Target mgl32.Vec4
	Step   float32
}

// Advance runs one tick of the transition. Each RGB channel moves a fixed
// fraction of its remaining distance, so values never leave [0,1].
func (c *ColorState) Advance(rng *Rand) {
	c.Step += ColorStepDelta
	for i := 0; i < 3; i++ {
		c.Cur[i] += (c.Target[i] - c.Cur[i]) * ColorBlend
	}
	c.Cur[3] = 1
	if c.Step >= 1 {
		c.Target = randomColor(rng)
		c.Step = 0
	}
}

func randomColor(rng *Rand) mgl32.Vec4 {
	return mgl32.Vec4{rng.Float32(), rng.Float32(), rng.Float32(), 1}
}
