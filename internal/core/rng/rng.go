package rng

// Deterministic 32-bit PRNG (mulberry32). One uint32 of state, held in a
// struct value so generators can be snapshotted and passed around; no
// package-level state, no external entropy. The same seed always produces
// the same stream, which is what makes level generation reproducible
// per photo.

// Source is a mulberry32 generator.
type Source struct {
	state uint32
}

// New returns a generator seeded with the given 32-bit seed. Negative seeds
// are fine; only the bit pattern matters.
func New(seed int32) *Source {
	return &Source{state: uint32(seed)}
}

// Float returns the next value in [0, 1).
func (s *Source) Float() float64 {
	s.state += 0x6D2B79F5
	z := s.state
	z = (z ^ (z >> 15)) * (z | 1)
	z ^= z + (z^(z>>7))*(z|61)
	z ^= z >> 14
	return float64(z) / 4294967296.0
}

// IntN returns a uniform integer in [0, n). n must be positive.
func (s *Source) IntN(n int) int {
	return int(s.Float() * float64(n))
}

// Range returns a uniform value in [lo, hi).
func (s *Source) Range(lo, hi float64) float64 {
	return lo + s.Float()*(hi-lo)
}

// State exposes the raw generator state for snapshot tests.
func (s *Source) State() uint32 { return s.state }
