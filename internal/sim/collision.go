package sim

// overlap reports whether two cube centres are within CubeSize on every axis.
// Both cubes share the same half-size, so this proximity test stands in for a
// full box-vs-box check.
func overlap(a, b *Entity) bool {
	return absF(a.Pos[0]-b.Pos[0]) < CubeSize &&
		absF(a.Pos[1]-b.Pos[1]) < CubeSize &&
		absF(a.Pos[2]-b.Pos[2]) < CubeSize
}

func absF(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// resolve runs collision handling for entity i against its grid neighbors, in
// the order the grid returns them. A cube that has never split subdivides on
// the first contact found and stops scanning. A cube that already split
// reverses its velocity once per contact, so its heading after the call
// depends on how many overlaps were found. Resolution is one-sided: only
// entity i reacts here; its contacts react when their own turn comes.
// Returns whether a split occurred.
func (s *Sim) resolve(i int) bool {
	s.scratch = s.grid.Neighbors(s.entities, i, s.scratch[:0])
	for _, j := range s.scratch {
		if !overlap(&s.entities[i], &s.entities[j]) {
			continue
		}
		if !s.entities[i].Split {
			s.split(i)
			s.entities[i].Split = true
			return true
		}
		e := &s.entities[i]
		e.Vel = e.Vel.Mul(-1)
	}
	return false
}
