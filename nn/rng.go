package nn

// source is a 32-bit hashing generator: a fixed odd increment is added
// to the state before every draw and the state is pushed through a
// multiply-xor-shift mix. The stream is a pure function of the seed,
// which is the property weight generation depends on; statistical
// quality is not a goal.
type source struct {
	state uint32
}

// newSource seeds a generator. Seeds wider than 32 bits wrap by
// truncation, so any int64 seeds reproducibly.
func newSource(seed int64) *source {
	return &source{state: uint32(seed)}
}

// Float64 returns the next value in [0, 1).
func (s *source) Float64() float64 {
	s.state += 0x6D2B79F5
	t := s.state
	t = (t ^ t>>15) * (t | 1)
	t = (t + (t^t>>7)*(t|61)) ^ t
	return float64(t^t>>14) / (1 << 32)
}
