package fir

import (
	"math"
	"math/cmplx"
)

// Filter implements a direct-form FIR filter using a circular-buffer delay line.
// A Filter needs at least one tap.
type Filter struct {
	coeffs []float64
	delay  []float64
	pos    int
}

// New creates a FIR filter from the given taps. The taps are copied.
func New(coeffs []float64) *Filter {
	f := &Filter{}
	f.SetCoefficients(coeffs)
	return f
}

// SetCoefficients replaces the taps. The delay line is kept when the tap
// count is unchanged and cleared otherwise.
func (f *Filter) SetCoefficients(coeffs []float64) {
	if len(coeffs) != len(f.coeffs) {
		f.coeffs = make([]float64, len(coeffs))
		f.delay = make([]float64, len(coeffs))
		f.pos = 0
	}
	copy(f.coeffs, coeffs)
}

// ProcessSample filters one input sample.
//
//	y[n] = sum_{k=0}^{N-1} h[k] * x[n-k]
func (f *Filter) ProcessSample(x float64) float64 {
	n := len(f.coeffs)
	f.delay[f.pos] = x

	var y float64
	p := f.pos
	for _, h := range f.coeffs {
		y += h * f.delay[p]
		if p == 0 {
			p = n
		}
		p--
	}

	f.pos++
	if f.pos == n {
		f.pos = 0
	}

	return y
}

// ProcessBlockTo filters src into dst. dst must be at least as long as src.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Reset clears the delay line.
func (f *Filter) Reset() {
	clear(f.delay)
	f.pos = 0
}

// Order returns the filter order (taps - 1).
func (f *Filter) Order() int {
	return len(f.coeffs) - 1
}

// Coefficients returns a copy of the taps.
func (f *Filter) Coefficients() []float64 {
	return append([]float64(nil), f.coeffs...)
}

// Transfer evaluates H(z) = sum h[k] z^-k at the given value of z^-1.
func (f *Filter) Transfer(zinv complex128) complex128 {
	var h complex128
	for k := len(f.coeffs) - 1; k >= 0; k-- {
		h = h*zinv + complex(f.coeffs[k], 0)
	}
	return h
}

// Response computes the complex frequency response H(e^jw) at the given
// frequency (Hz) and sample rate (Hz).
func (f *Filter) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	return f.Transfer(cmplx.Rect(1, -w))
}

// MagnitudeDB returns the magnitude response in dB.
func (f *Filter) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(f.Response(freqHz, sampleRate)))
}
