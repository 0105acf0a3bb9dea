// Package sim is the cube subdivision simulation: a population of cubes
// drifts inside a fixed box, detected against each other through a uniform
// spatial grid. A cube's first contact splits it into eight octant children;
// after that it only bounces. Colors drift independently toward random
// targets. The whole simulation is single-threaded and advances one tick at
// a time under the caller's frame loop.
package sim

import "github.com/go-gl/mathgl/mgl32"

type Sim struct {
	cfg      Config
	entities []Entity
	grid     *Grid
	rng      *Rand
	paused   bool
	scratch  []int // neighbor query buffer, reused across calls
}

// TickStats summarizes one tick for callers that react to events (sound
// cues, HUD counters). It carries no references into simulation state.
type TickStats struct {
	Splits      int
	WallBounces int
}

func New(cfg Config) (*Sim, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	s := &Sim{
		cfg:  cfg,
		grid: newGrid(cfg.Boundary, cfg.CellSize),
		rng:  NewRand(cfg.Seed),
	}
	s.spawnInitial()
	return s, nil
}

func (s *Sim) spawnInitial() {
	placements := s.cfg.Spawn
	if placements == nil {
		placements = make([]mgl32.Vec3, 0, s.cfg.InitialCount)
		b := s.cfg.Boundary
		for i := 0; i < s.cfg.InitialCount; i++ {
			placements = append(placements, mgl32.Vec3{
				s.rng.RangeF(-b[0]*0.8, b[0]*0.8),
				s.rng.RangeF(-b[1]*0.8, b[1]*0.8),
				s.rng.RangeF(-b[2]*0.9, ZNearLimit-1),
			})
		}
	}
	s.entities = make([]Entity, 0, len(placements)*8)
	for _, p := range placements {
		s.entities = append(s.entities, Entity{
			Pos: p,
			Vel: mgl32.Vec3{
				s.rng.RangeF(-s.cfg.InitSpeed, s.cfg.InitSpeed),
				s.rng.RangeF(-s.cfg.InitSpeed, s.cfg.InitSpeed),
				s.rng.RangeF(-s.cfg.InitSpeed, s.cfg.InitSpeed),
			},
			Spin: s.rng.RangeF(s.cfg.InitSpinMin, s.cfg.InitSpinMax),
			Color: ColorState{
				Cur:    randomColor(s.rng),
				Target: randomColor(s.rng),
			},
		})
	}
}

// Step advances the simulation by one tick: rebuild the grid, then for each
// cube advance its color, resolve collisions, integrate motion, and bounce
// off the world boundary. The loop bound is re-read every iteration on
// purpose: children appended by a split this tick are themselves advanced
// before the tick ends, which lets collision cascades start in the frame
// that caused them.
//
// A paused Sim ignores Step entirely; all state is kept for exact resume.
func (s *Sim) Step() TickStats {
	var st TickStats
	if s.paused {
		return st
	}
	s.grid.Rebuild(s.entities)
	for i := 0; i < len(s.entities); i++ {
		s.entities[i].Color.Advance(s.rng)
		if s.resolve(i) {
			st.Splits++
		}
		e := &s.entities[i]
		e.Angle += e.Spin
		e.Pos = e.Pos.Add(e.Vel)
		st.WallBounces += s.bounce(e)
	}
	return st
}

// bounce negates the velocity component on each axis whose position exceeds
// its bound. Positions are not clamped: a cube may sit past the wall for a
// tick before the reversed velocity brings it back.
func (s *Sim) bounce(e *Entity) int {
	b := s.cfg.Boundary
	n := 0
	if e.Pos[0] > b[0] || e.Pos[0] < -b[0] {
		e.Vel[0] = -e.Vel[0]
		n++
	}
	if e.Pos[1] > b[1] || e.Pos[1] < -b[1] {
		e.Vel[1] = -e.Vel[1]
		n++
	}
	if e.Pos[2] > ZNearLimit || e.Pos[2] < -b[2] {
		e.Vel[2] = -e.Vel[2]
		n++
	}
	return n
}

// Snapshot appends the renderable state of every cube, in entity order, to
// out and returns it. The returned slice shares no memory with the Sim.
func (s *Sim) Snapshot(out []RenderEntity) []RenderEntity {
	for i := range s.entities {
		e := &s.entities[i]
		out = append(out, RenderEntity{Pos: e.Pos, Angle: e.Angle, Color: e.Color.Cur})
	}
	return out
}

func (s *Sim) Count() int { return len(s.entities) }

func (s *Sim) Paused() bool { return s.paused }
func (s *Sim) Pause()       { s.paused = true }
func (s *Sim) Resume()      { s.paused = false }
func (s *Sim) TogglePause() { s.paused = !s.paused }

// ResetColorsToRandom snaps every cube to one shared freshly drawn color and
// restarts each transition toward an independent random target.
func (s *Sim) ResetColorsToRandom() {
	shared := randomColor(s.rng)
	for i := range s.entities {
		c := &s.entities[i].Color
		c.Cur = shared
		c.Target = randomColor(s.rng)
		c.Step = 0
	}
}
