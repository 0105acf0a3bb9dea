package sim

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Fixed simulation constants (per-tick units).
const (
	// CubeSize is the proximity threshold for the narrow-phase overlap test:
	// two cubes collide when their centres are closer than this on every axis.
	CubeSize = 1.0

	// SplitOffset is the per-axis distance from a parent's centre to each
	// child's centre (half the cube's visual scale).
	SplitOffset = 0.5

	// SpinGrowth multiplies rotation speed for each child generation.
	SpinGrowth = 1.2

	// ChildSpeed bounds each child velocity component: [-ChildSpeed, ChildSpeed].
	ChildSpeed = 0.05

	// Color transition tuning.
	ColorStepDelta = 0.005 // retarget clock increment per tick
	ColorBlend     = 0.02  // exponential smoothing factor per channel

	// ZNearLimit is the one-sided near bound on z. Cubes live in front of the
	// camera, between -Boundary.Z and this value.
	ZNearLimit = -0.5
)

// Config holds everything a Sim needs at init. Zero values are invalid;
// start from DefaultConfig.
type Config struct {
	Seed uint64

	// Boundary half-extents: symmetric on x and y, far bound on z
	// (z runs from -Boundary[2] to ZNearLimit).
	Boundary mgl32.Vec3

	// CellSize is the uniform grid cell edge length.
	CellSize float32

	// InitialCount cubes are spawned at random positions unless Spawn is set,
	// in which case Spawn wins and InitialCount is ignored.
	InitialCount int
	Spawn        []mgl32.Vec3

	// Initial motion ranges. Velocity components are drawn per axis from
	// [-InitSpeed, InitSpeed]; rotation speed from [InitSpinMin, InitSpinMax].
	InitSpeed   float32
	InitSpinMin float32
	InitSpinMax float32

	// MaxEntities caps the population; subdivision stops appending once the
	// cap is reached. 0 means unlimited, which is the original behavior.
	MaxEntities int
}

func DefaultConfig() Config {
	return Config{
		Seed:         1,
		Boundary:     mgl32.Vec3{6, 6, 18},
		CellSize:     2.0,
		InitialCount: 12,
		InitSpeed:    0.04,
		InitSpinMin:  0.005,
		InitSpinMax:  0.03,
	}
}

func (c Config) validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("cell size must be positive, got %v", c.CellSize)
	}
	for i := 0; i < 3; i++ {
		if c.Boundary[i] <= 0 {
			return fmt.Errorf("boundary extents must be positive, got %v", c.Boundary)
		}
	}
	if c.InitialCount < 0 {
		return fmt.Errorf("initial count must not be negative, got %d", c.InitialCount)
	}
	return nil
}
