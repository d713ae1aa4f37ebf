package node

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-dspgraph/dsp/core"
	"github.com/cwbudde/algo-dspgraph/dsp/filter/biquad"
	"github.com/cwbudde/algo-dspgraph/dsp/filter/fir"
	"github.com/cwbudde/algo-dspgraph/dsp/signal"
)

type biquadUnit struct {
	section    *biquad.Section
	sampleRate float64
}

// Biquad returns a second-order IIR filter. Set accepts
// biquad.Coefficients; the filter state is kept across coefficient changes.
func Biquad(c biquad.Coefficients) Unit {
	return &biquadUnit{section: biquad.NewSection(c), sampleRate: core.DefaultSampleRate}
}

func (b *biquadUnit) ID() uint64               { return structID(idBiquad) }
func (b *biquadUnit) Inputs() int              { return 1 }
func (b *biquadUnit) Outputs() int             { return 1 }
func (b *biquadUnit) Reset()                   { b.section.Reset() }
func (b *biquadUnit) SetSampleRate(sr float64) { b.sampleRate = sr }

func (b *biquadUnit) Set(setting Setting) {
	if c, ok := setting.(biquad.Coefficients); ok {
		b.section.Coefficients = c
	}
}

func (b *biquadUnit) Tick(input, output []float64) {
	output[0] = b.section.ProcessSample(input[0])
}

func (b *biquadUnit) Process(size int, input, output [][]float64) {
	b.section.ProcessBlockTo(output[0][:size], input[0][:size])
}

func (b *biquadUnit) Route(input signal.Frame, frequency float64) signal.Frame {
	h := b.section.Response(frequency, b.sampleRate)
	return signal.Frame{input[0].Filter(0, func(g complex128) complex128 { return g * h })}
}

type firUnit struct {
	filter     *fir.Filter
	sampleRate float64
}

// FIR returns a direct-form FIR filter with the given taps.
func FIR(taps ...float64) (Unit, error) {
	if len(taps) == 0 {
		return nil, fmt.Errorf("%w: FIR needs at least one tap", ErrInvalidArgument)
	}
	return &firUnit{filter: fir.New(taps), sampleRate: core.DefaultSampleRate}, nil
}

func (f *firUnit) ID() uint64               { return structID(idFIR) }
func (f *firUnit) Inputs() int              { return 1 }
func (f *firUnit) Outputs() int             { return 1 }
func (f *firUnit) Reset()                   { f.filter.Reset() }
func (f *firUnit) SetSampleRate(sr float64) { f.sampleRate = sr }

// Set accepts non-empty Taps.
func (f *firUnit) Set(setting Setting) {
	if taps, ok := setting.(Taps); ok && len(taps) > 0 {
		f.filter.SetCoefficients(taps)
	}
}

func (f *firUnit) Tick(input, output []float64) {
	output[0] = f.filter.ProcessSample(input[0])
}

func (f *firUnit) Process(size int, input, output [][]float64) {
	f.filter.ProcessBlockTo(output[0][:size], input[0][:size])
}

func (f *firUnit) Route(input signal.Frame, frequency float64) signal.Frame {
	h := f.filter.Response(frequency, f.sampleRate)
	return signal.Frame{input[0].Filter(0, func(g complex128) complex128 { return g * h })}
}

// pole is the shared state of the one-pole filters. The pole sits at
// exp(-2*pi*cutoff/sampleRate).
type pole struct {
	cutoff     float64
	sampleRate float64
	coeff      float64
	x1, y1     float64
}

func (p *pole) update() {
	p.coeff = core.Exp(-2 * math.Pi * p.cutoff / p.sampleRate)
}

func (p *pole) Inputs() int  { return 1 }
func (p *pole) Outputs() int { return 1 }

func (p *pole) Reset() {
	p.x1, p.y1 = 0, 0
}

func (p *pole) SetSampleRate(sampleRate float64) {
	p.sampleRate = sampleRate
	p.update()
}

// Set accepts Cutoff.
func (p *pole) Set(setting Setting) {
	if c, ok := setting.(Cutoff); ok {
		p.cutoff = float64(c)
		p.update()
	}
}

// zinv returns e^{-j*omega} at the given frequency.
func (p *pole) zinv(frequency float64) complex128 {
	return cmplx.Rect(1, -2*math.Pi*frequency/p.sampleRate)
}

// Lowpole is a one-pole lowpass: y[n] = (1-c) x[n] + c y[n-1].
type Lowpole struct {
	pole
}

// NewLowpole returns a one-pole lowpass with the cutoff in Hz.
func NewLowpole(cutoff float64) *Lowpole {
	l := &Lowpole{pole{cutoff: cutoff, sampleRate: core.DefaultSampleRate}}
	l.update()
	return l
}

// ID does not depend on the cutoff.
func (l *Lowpole) ID() uint64 { return structID(idLowpole) }

// Tick filters one sample.
func (l *Lowpole) Tick(input, output []float64) {
	l.y1 = (1-l.coeff)*input[0] + l.coeff*l.y1
	output[0] = l.y1
}

// Process filters a block and flushes denormal state at the end.
func (l *Lowpole) Process(size int, input, output [][]float64) {
	c, y1 := l.coeff, l.y1
	y := output[0][:size]
	for i, x := range input[0][:size] {
		y1 = (1-c)*x + c*y1
		y[i] = y1
	}
	l.y1 = core.FlushDenormals(y1)
}

// Route applies (1-c) / (1 - c z^-1).
func (l *Lowpole) Route(input signal.Frame, frequency float64) signal.Frame {
	c := complex(l.coeff, 0)
	h := (1 - c) / (1 - c*l.zinv(frequency))
	return signal.Frame{input[0].Filter(0, func(g complex128) complex128 { return g * h })}
}

// Highpole is a one-pole highpass: y[n] = c (y[n-1] + x[n] - x[n-1]).
type Highpole struct {
	pole
}

// NewHighpole returns a one-pole highpass with the cutoff in Hz.
func NewHighpole(cutoff float64) *Highpole {
	h := &Highpole{pole{cutoff: cutoff, sampleRate: core.DefaultSampleRate}}
	h.update()
	return h
}

// ID does not depend on the cutoff.
func (h *Highpole) ID() uint64 { return structID(idHighpole) }

// Tick filters one sample.
func (h *Highpole) Tick(input, output []float64) {
	x := input[0]
	h.y1 = h.coeff * (h.y1 + x - h.x1)
	h.x1 = x
	output[0] = h.y1
}

// Process filters a block and flushes denormal state at the end.
func (h *Highpole) Process(size int, input, output [][]float64) {
	c, x1, y1 := h.coeff, h.x1, h.y1
	y := output[0][:size]
	for i, x := range input[0][:size] {
		y1 = c * (y1 + x - x1)
		x1 = x
		y[i] = y1
	}
	h.x1, h.y1 = x1, core.FlushDenormals(y1)
}

// Route applies c (1 - z^-1) / (1 - c z^-1).
func (h *Highpole) Route(input signal.Frame, frequency float64) signal.Frame {
	c := complex(h.coeff, 0)
	z := h.zinv(frequency)
	resp := c * (1 - z) / (1 - c*z)
	return signal.Frame{input[0].Filter(0, func(g complex128) complex128 { return g * resp })}
}
