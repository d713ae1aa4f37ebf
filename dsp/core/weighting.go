package core

import "math"

// AWeight returns the A-weighted amplitude response at f Hz,
// normalized to 1 at 1 kHz.
func AWeight(f float64) float64 {
	f2 := f * f
	c0 := Squared(12194.0)
	c1 := Squared(20.6)
	c2 := Squared(107.7)
	c3 := Squared(737.9)
	c4 := 1.2589048990582914

	return c4 * c0 * f2 * f2 / ((f2 + c1) * math.Sqrt((f2+c2)*(f2+c3)) * (f2 + c0))
}

// MWeight returns the ITU-R 468 noise weighting amplitude response at f Hz,
// normalized to 1 at 1 kHz.
func MWeight(f float64) float64 {
	const (
		c0 = 1.246332637532143e-4
		c1 = -4.737338981378384e-24
		c2 = 2.04382833606125e-15
		c3 = -1.363894795463638e-7
		c4 = 1.306612257412824e-19
		c5 = -2.118150887518656e-11
		c6 = 5.559488023498642e-4
		c7 = 8.164578311186197
	)

	f2 := f * f
	f4 := f2 * f2

	return c7 * c0 * f / math.Sqrt(
		Squared(c1*f4*f2+c2*f4+c3*f2+1)+
			Squared(c4*f4*f+c5*f2*f+c6*f),
	)
}
