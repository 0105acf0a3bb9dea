package sim

import "github.com/go-gl/mathgl/mgl32"

// Entity is one cube. Entities live in a single growable slice on the Sim;
// they are appended by subdivision and never removed, so an index identifies
// the same cube for the whole run.
type Entity struct {
	Pos mgl32.Vec3
	Vel mgl32.Vec3 // per-axis displacement applied each tick

	Angle float32 // cosmetic rotation, advanced each tick
	Spin  float32

	// Split is monotonic: once a cube has subdivided (or was born from a
	// subdivision) it only ever bounces, never splits again.
	Split bool

	Color ColorState
}

// RenderEntity is the per-tick snapshot a renderer consumes; it carries no
// reference back into simulation state.
type RenderEntity struct {
	Pos   mgl32.Vec3
	Angle float32
	Color mgl32.Vec4
}
