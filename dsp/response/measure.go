package response

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-dspgraph/dsp/core"
	"github.com/cwbudde/algo-dspgraph/dsp/node"
)

// DefaultLength is the impulse capture length used by Measure.
const DefaultLength = 0x10000

var (
	// ErrInvalidLength is returned for capture lengths that are not a power
	// of two of at least 2.
	ErrInvalidLength = errors.New("response: capture length must be a power of two >= 2")
	// ErrNoInput is returned when the measured unit has no inputs.
	ErrNoInput = errors.New("response: unit has no inputs")
	// ErrOutputRange is returned when the measured output does not exist.
	ErrOutputRange = errors.New("response: output out of range")
)

type config struct {
	sampleRate float64
	length     int
	warmup     int
	output     int
}

// Option configures Measure and Verify.
type Option func(*config)

// WithSampleRate sets the sample rate of the measurement. The unit is
// switched to it before measuring.
func WithSampleRate(sampleRate float64) Option {
	return func(c *config) {
		if sampleRate > 0 {
			c.sampleRate = sampleRate
		}
	}
}

// WithLength sets the impulse capture length, which is also the FFT size.
func WithLength(length int) Option {
	return func(c *config) { c.length = length }
}

// WithWarmup sets how many zero samples are fed before the impulse. The
// default is a quarter of the capture length.
func WithWarmup(samples int) Option {
	return func(c *config) {
		if samples >= 0 {
			c.warmup = samples
		}
	}
}

// WithOutput selects the output channel to measure. The default is 0.
func WithOutput(output int) Option {
	return func(c *config) { c.output = output }
}

func applyOptions(u node.Unit, opts []Option) (config, error) {
	c := config{
		sampleRate: core.DefaultSampleRate,
		length:     DefaultLength,
		warmup:     -1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	if c.warmup < 0 {
		c.warmup = c.length / 4
	}

	if c.length < 2 || c.length&(c.length-1) != 0 {
		return c, fmt.Errorf("%w: got %d", ErrInvalidLength, c.length)
	}
	if u.Inputs() == 0 {
		return c, ErrNoInput
	}
	if c.output < 0 || c.output >= u.Outputs() {
		return c, fmt.Errorf("%w: output %d of %d", ErrOutputRange, c.output, u.Outputs())
	}
	return c, nil
}

// Measurement is the spectrum of a unit's impulse response.
type Measurement struct {
	sampleRate float64
	spectrum   []complex128
}

// Measure resets u, warms it up with silence, feeds a unit impulse into
// input 0 and transforms the captured output. Other inputs read zero.
func Measure(u node.Unit, opts ...Option) (*Measurement, error) {
	cfg, err := applyOptions(u, opts)
	if err != nil {
		return nil, err
	}

	u.SetSampleRate(cfg.sampleRate)
	u.Reset()

	input := make([]float64, u.Inputs())
	output := make([]float64, u.Outputs())
	for range cfg.warmup {
		u.Tick(input, output)
	}

	capture := make([]complex128, cfg.length)
	input[0] = 1
	for i := range capture {
		u.Tick(input, output)
		capture[i] = complex(output[cfg.output], 0)
		input[0] = 0
	}

	plan, err := algofft.NewPlan64(cfg.length)
	if err != nil {
		return nil, fmt.Errorf("response: fft plan: %w", err)
	}

	spectrum := make([]complex128, cfg.length)
	if err := plan.Forward(spectrum, capture); err != nil {
		return nil, fmt.Errorf("response: fft: %w", err)
	}

	return &Measurement{sampleRate: cfg.sampleRate, spectrum: spectrum}, nil
}

// Len returns the capture length.
func (m *Measurement) Len() int { return len(m.spectrum) }

// SampleRate returns the sample rate the measurement was taken at.
func (m *Measurement) SampleRate() float64 { return m.sampleRate }

// Bin returns the index of the bin nearest to frequency, limited to
// [0, Len()/2].
func (m *Measurement) Bin(frequency float64) int {
	n := len(m.spectrum)
	i := int(math.Round(frequency * float64(n) / m.sampleRate))
	return max(0, min(i, n/2))
}

// BinFrequency returns the center frequency of bin i.
func (m *Measurement) BinFrequency(i int) float64 {
	return float64(i) * m.sampleRate / float64(len(m.spectrum))
}

// At returns the measured response in the bin nearest to frequency and
// the exact frequency of that bin.
func (m *Measurement) At(frequency float64) (complex128, float64) {
	i := m.Bin(frequency)
	return m.spectrum[i], m.BinFrequency(i)
}

// Magnitudes returns the magnitude of bins 0 through Len()/2.
func (m *Measurement) Magnitudes() []float64 {
	n := len(m.spectrum)/2 + 1
	re := make([]float64, n)
	im := make([]float64, n)
	for i, c := range m.spectrum[:n] {
		re[i], im[i] = real(c), imag(c)
	}

	mag := make([]float64, n)
	vecmath.Magnitude(mag, re, im)
	return mag
}
