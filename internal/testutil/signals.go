package testutil

import (
	"math"

	"github.com/cwbudde/algo-dspgraph/dsp/core"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise in [-amplitude, amplitude]
// from a fixed seed.
func DeterministicNoise(seed uint64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := core.NewRand(seed)
	for i := range out {
		out[i] = rng.Float11() * amplitude
	}
	return out
}

// NoiseBlock returns channels independent noise channels of the given
// length. Channel ch is seeded with seed+ch.
func NoiseBlock(seed uint64, channels, length int) [][]float64 {
	out := make([][]float64, channels)
	for ch := range out {
		out[ch] = DeterministicNoise(seed+uint64(ch), 1, length)
	}
	return out
}

// ZeroBlock returns channels zeroed channels of the given length.
func ZeroBlock(channels, length int) [][]float64 {
	out := make([][]float64, channels)
	for ch := range out {
		out[ch] = make([]float64, length)
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
