package biquad

// Coefficients of one second-order section, normalized so that a0 = 1:
//
//	H(z) = (B0 + B1 z⁻¹ + B2 z⁻²) / (1 + A1 z⁻¹ + A2 z⁻²)
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// Section runs one set of coefficients in transposed direct form II.
// The embedded coefficients may be replaced between samples; the state
// carries over.
type Section struct {
	Coefficients

	state [2]float64
}

// NewSection returns a section with zero state.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample filters one sample.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.state[0]
	s.state[0] = s.B1*x - s.A1*y + s.state[1]
	s.state[1] = s.B2*x - s.A2*y
	return y
}

// ProcessBlockTo filters src into dst. dst must be at least as long as
// src and may be src itself.
func (s *Section) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}
	dst = dst[:len(src)]

	c := s.Coefficients
	z1, z2 := s.state[0], s.state[1]
	for i, x := range src {
		y := c.B0*x + z1
		z1 = c.B1*x - c.A1*y + z2
		z2 = c.B2*x - c.A2*y
		dst[i] = y
	}
	s.state = [2]float64{z1, z2}
}

// ProcessBlock filters buf in place.
func (s *Section) ProcessBlock(buf []float64) {
	s.ProcessBlockTo(buf, buf)
}

// Reset clears the state.
func (s *Section) Reset() {
	s.state = [2]float64{}
}

// State returns the two delay registers.
func (s *Section) State() [2]float64 {
	return s.state
}

// SetState restores registers saved with State.
func (s *Section) SetState(state [2]float64) {
	s.state = state
}
