// Package delay provides the circular buffer that delay-holding units own.
// It is the only place a graph keeps samples from earlier ticks.
package delay

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-dspgraph/dsp/core"
)

// Mode selects the interpolation used by fractional reads.
type Mode int

const (
	// Spline reads with Catmull-Rom cubic interpolation.
	Spline Mode = iota
	// Linear reads with linear interpolation.
	Linear
)

// Option configures a Line.
type Option func(*Line)

// WithMode sets the fractional read interpolation.
func WithMode(mode Mode) Option {
	return func(d *Line) {
		d.mode = mode
	}
}

// Line is a circular delay line.
type Line struct {
	buffer   []float64
	writePos int
	mode     Mode
}

// New returns a delay line of fixed size.
func New(size int, opts ...Option) (*Line, error) {
	if size <= 0 {
		return nil, fmt.Errorf("delay size must be > 0: %d", size)
	}
	d := &Line{buffer: make([]float64, size)}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d, nil
}

// Mode returns the fractional read interpolation.
func (d *Line) Mode() Mode {
	return d.mode
}

// Len returns internal buffer size.
func (d *Line) Len() int {
	return len(d.buffer)
}

// Resize changes the buffer size and clears the line.
func (d *Line) Resize(size int) error {
	if size <= 0 {
		return fmt.Errorf("delay size must be > 0: %d", size)
	}
	if size <= cap(d.buffer) {
		d.buffer = d.buffer[:size]
	} else {
		d.buffer = make([]float64, size)
	}
	d.Reset()
	return nil
}

// Write writes one sample.
func (d *Line) Write(sample float64) {
	d.buffer[d.writePos] = sample
	d.writePos++
	if d.writePos >= len(d.buffer) {
		d.writePos = 0
	}
}

// Read reads an integer delay in samples; delay 0 is the most recent write.
// Delays wrap modulo Len().
func (d *Line) Read(delay int) float64 {
	size := len(d.buffer)
	readPos := (d.writePos - 1 - delay%size + 2*size) % size
	return d.buffer[readPos]
}

// Shift reads the sample written size writes ago and replaces it with x.
// It is a fixed delay of Len() samples.
func (d *Line) Shift(x float64) float64 {
	y := d.buffer[d.writePos]
	d.Write(x)
	return y
}

// ReadFractional reads a fractional delay using the configured interpolation.
// Delay 0 is the most recent write. The delay is clamped to [0, Len()-3].
// Spline reads at delays below 1 repeat the newest sample as the outer
// support point.
func (d *Line) ReadFractional(delay float64) float64 {
	size := len(d.buffer)
	maxDelay := float64(size - 3)
	delay = math.Max(0, math.Min(delay, maxDelay))

	p := int(math.Floor(delay))
	t := delay - float64(p)

	x0 := d.Read(p)
	x1 := d.Read(p + 1)
	if d.mode == Linear {
		return core.Lerp(x0, x1, t)
	}

	xm1 := d.Read(max(0, p-1))
	x2 := d.Read(p + 2)
	return core.Spline(xm1, x0, x1, x2, t)
}

// Reset clears line state.
func (d *Line) Reset() {
	clear(d.buffer)
	d.writePos = 0
}
