package node

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-dspgraph/dsp/core"
	"github.com/cwbudde/algo-dspgraph/dsp/delay"
	"github.com/cwbudde/algo-dspgraph/dsp/signal"
)

// delayed returns the route of a pure delay of n samples.
func delayed(s signal.Signal, samples int, frequency, sampleRate float64) signal.Signal {
	shift := cmplx.Rect(1, -2*math.Pi*frequency*float64(samples)/sampleRate)
	return s.Filter(float64(samples), func(g complex128) complex128 { return g * shift })
}

type tick struct {
	sampleRate float64
	prev       float64
}

// Tick returns a single-sample delay.
func Tick() Unit {
	return &tick{sampleRate: core.DefaultSampleRate}
}

func (t *tick) ID() uint64               { return structID(idTick) }
func (t *tick) Inputs() int              { return 1 }
func (t *tick) Outputs() int             { return 1 }
func (t *tick) Reset()                   { t.prev = 0 }
func (t *tick) SetSampleRate(sr float64) { t.sampleRate = sr }
func (t *tick) Set(Setting)              {}

func (t *tick) Tick(input, output []float64) {
	output[0] = t.prev
	t.prev = input[0]
}

func (t *tick) Process(size int, input, output [][]float64) {
	if size == 0 {
		return
	}
	x, y := input[0][:size], output[0][:size]
	y[0] = t.prev
	copy(y[1:], x[:size-1])
	t.prev = x[size-1]
}

func (t *tick) Route(input signal.Frame, frequency float64) signal.Frame {
	return signal.Frame{delayed(input[0], 1, frequency, t.sampleRate)}
}

// Delay is a fixed integer-sample delay of round(seconds * sampleRate)
// samples, at least one. The length is recomputed on SetSampleRate.
type Delay struct {
	seconds    float64
	sampleRate float64
	samples    int
	line       *delay.Line
}

// NewDelay returns a delay of the given duration in seconds.
func NewDelay(seconds float64) (*Delay, error) {
	if seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return nil, fmt.Errorf("%w: delay time %v", ErrInvalidArgument, seconds)
	}
	d := &Delay{seconds: seconds}
	d.SetSampleRate(core.DefaultSampleRate)
	return d, nil
}

// Samples returns the delay length in samples.
func (d *Delay) Samples() int { return d.samples }

// ID depends only on the unit type, not on the delay length.
func (d *Delay) ID() uint64   { return structID(idDelay) }
func (d *Delay) Inputs() int  { return 1 }
func (d *Delay) Outputs() int { return 1 }

// Reset clears the held samples.
func (d *Delay) Reset()      { d.line.Reset() }
func (d *Delay) Set(Setting) {}

// SetSampleRate recomputes the length and clears the line.
func (d *Delay) SetSampleRate(sampleRate float64) {
	d.sampleRate = sampleRate
	d.samples = max(1, int(math.Round(d.seconds*sampleRate)))
	d.line = resizeLine(d.line, d.samples, delay.Spline)
}

// Tick outputs the input from Samples() ticks ago.
func (d *Delay) Tick(input, output []float64) {
	output[0] = d.line.Shift(input[0])
}

// Process is Tick over a block.
func (d *Delay) Process(size int, input, output [][]float64) {
	y := output[0][:size]
	for i, x := range input[0][:size] {
		y[i] = d.line.Shift(x)
	}
}

// Route delays the descriptor by Samples() samples.
func (d *Delay) Route(input signal.Frame, frequency float64) signal.Frame {
	return signal.Frame{delayed(input[0], d.samples, frequency, d.sampleRate)}
}

// resizeLine returns line resized to size samples, allocating it when nil.
// It panics if size < 1.
func resizeLine(line *delay.Line, size int, mode delay.Mode) *delay.Line {
	if line == nil {
		l, err := delay.New(size, delay.WithMode(mode))
		if err != nil {
			panic(fmt.Sprintf("node: %v", err))
		}
		return l
	}
	if err := line.Resize(size); err != nil {
		panic(fmt.Sprintf("node: %v", err))
	}
	return line
}

// FractionalDelay is a fixed delay of seconds * sampleRate samples that
// need not be whole. Samples between taps are interpolated linearly or
// with a Catmull-Rom spline; a delay of zero passes the input through.
type FractionalDelay struct {
	seconds    float64
	sampleRate float64
	samples    float64
	mode       delay.Mode
	line       *delay.Line
}

// NewFractionalDelay returns a fractional delay of the given duration in
// seconds, read with the given interpolation.
func NewFractionalDelay(seconds float64, mode delay.Mode) (*FractionalDelay, error) {
	if seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return nil, fmt.Errorf("%w: delay time %v", ErrInvalidArgument, seconds)
	}
	if mode != delay.Spline && mode != delay.Linear {
		return nil, fmt.Errorf("%w: interpolation mode %d", ErrInvalidArgument, mode)
	}
	d := &FractionalDelay{seconds: seconds, mode: mode}
	d.SetSampleRate(core.DefaultSampleRate)
	return d, nil
}

// Samples returns the delay length in samples.
func (d *FractionalDelay) Samples() float64 { return d.samples }

// ID depends on the interpolation mode but not on the delay length.
func (d *FractionalDelay) ID() uint64   { return structID(idFractionalDelay, uint64(d.mode)) }
func (d *FractionalDelay) Inputs() int  { return 1 }
func (d *FractionalDelay) Outputs() int { return 1 }

// Reset clears the held samples.
func (d *FractionalDelay) Reset()      { d.line.Reset() }
func (d *FractionalDelay) Set(Setting) {}

// SetSampleRate recomputes the length and clears the line. The line keeps
// three samples beyond the delay for the interpolation support.
func (d *FractionalDelay) SetSampleRate(sampleRate float64) {
	d.sampleRate = sampleRate
	d.samples = d.seconds * sampleRate
	d.line = resizeLine(d.line, int(math.Ceil(d.samples))+3, d.mode)
}

// Tick writes the input and reads it back Samples() samples later.
func (d *FractionalDelay) Tick(input, output []float64) {
	d.line.Write(input[0])
	output[0] = d.line.ReadFractional(d.samples)
}

// Process is Tick over a block.
func (d *FractionalDelay) Process(size int, input, output [][]float64) {
	y := output[0][:size]
	for i, x := range input[0][:size] {
		d.line.Write(x)
		y[i] = d.line.ReadFractional(d.samples)
	}
}

// Route applies the interpolator as a short FIR over the taps nearest the
// delay. Latency is the fractional length in samples.
func (d *FractionalDelay) Route(input signal.Frame, frequency float64) signal.Frame {
	var h complex128
	for _, tap := range interpolationTaps(d.samples, d.mode) {
		h += complex(tap.weight, 0) * cmplx.Rect(1, -2*math.Pi*frequency*float64(tap.lag)/d.sampleRate)
	}
	return signal.Frame{input[0].Filter(d.samples, func(g complex128) complex128 { return g * h })}
}

type tap struct {
	lag    int
	weight float64
}

// interpolationTaps returns the weights that Line.ReadFractional applies to
// each lag. Both interpolators are linear in the samples they read, so
// each weight is the interpolation of a unit vector.
func interpolationTaps(samples float64, mode delay.Mode) []tap {
	p := int(math.Floor(samples))
	t := samples - float64(p)
	if mode == delay.Linear {
		return []tap{{p, 1 - t}, {p + 1, t}}
	}

	lags := [4]int{max(0, p-1), p, p + 1, p + 2}
	taps := make([]tap, 4)
	for i, lag := range lags {
		var y [4]float64
		y[i] = 1
		taps[i] = tap{lag, core.Spline(y[0], y[1], y[2], y[3], t)}
	}
	return taps
}
