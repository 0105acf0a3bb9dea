package sim

// Rand is a tiny deterministic RNG (xorshift64*).
type Rand struct {
	s uint64
}

func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = 1
	}
	return &Rand{s: seed}
}

func (r *Rand) NextU64() uint64 {
	x := r.s
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.s = x
	return x * 2685821657736338717
}

func (r *Rand) Float32() float32 {
	return float32(r.NextU64()>>40) * (1.0 / (1 << 24))
}

func (r *Rand) RangeF(min, max float32) float32 {
	if max <= min {
		return min
	}
	return min + (max-min)*r.Float32()
}
