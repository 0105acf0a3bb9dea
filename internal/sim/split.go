package sim

import "github.com/go-gl/mathgl/mgl32"

// split appends eight children around the parent, one per octant. The octant
// index is read as a 3-bit pattern: bit 0 picks the x side, bit 1 the y side,
// bit 2 the z side. Children are born terminal (Split already set), inherit
// the parent's angle and current color, spin faster by a fixed factor, and
// get an independent random velocity and color target.
//
// With a population cap configured, children past the cap are simply not
// appended; the parent still counts as having split.
func (s *Sim) split(parent int) {
	p := s.entities[parent]
	for oct := 0; oct < 8; oct++ {
		if s.cfg.MaxEntities > 0 && len(s.entities) >= s.cfg.MaxEntities {
			return
		}
		off := mgl32.Vec3{
			octantSide(oct, 0) * SplitOffset,
			octantSide(oct, 1) * SplitOffset,
			octantSide(oct, 2) * SplitOffset,
		}
		s.entities = append(s.entities, Entity{
			Pos: p.Pos.Add(off),
			Vel: mgl32.Vec3{
				s.rng.RangeF(-ChildSpeed, ChildSpeed),
				s.rng.RangeF(-ChildSpeed, ChildSpeed),
				s.rng.RangeF(-ChildSpeed, ChildSpeed),
			},
			Angle: p.Angle,
			Spin:  p.Spin * SpinGrowth,
			Split: true,
			Color: ColorState{
				Cur:    p.Color.Cur,
				Target: randomColor(s.rng),
			},
		})
	}
}

func octantSide(oct, axis int) float32 {
	if oct&(1<<axis) != 0 {
		return 1
	}
	return -1
}
