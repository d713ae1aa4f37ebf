package node

import (
	"math"

	"github.com/cwbudde/algo-dspgraph/dsp/core"
	"github.com/cwbudde/algo-dspgraph/dsp/signal"
)

// Noise is a white noise generator in [-1, 1] with no inputs. Reset
// restarts the sequence from the seed.
type Noise struct {
	seed uint64
	rng  core.Rand
}

// NewNoise returns a noise generator with the given seed.
func NewNoise(seed uint64) *Noise {
	return &Noise{seed: seed, rng: core.NewRand(seed)}
}

// ID does not depend on the seed.
func (n *Noise) ID() uint64            { return structID(idNoise) }
func (n *Noise) Inputs() int           { return 0 }
func (n *Noise) Outputs() int          { return 1 }
func (n *Noise) Reset()                { n.rng = core.NewRand(n.seed) }
func (n *Noise) SetSampleRate(float64) {}

// Set accepts Seed and restarts the sequence.
func (n *Noise) Set(setting Setting) {
	if s, ok := setting.(Seed); ok {
		n.seed = uint64(s)
		n.Reset()
	}
}

// Tick writes the next noise sample.
func (n *Noise) Tick(_, output []float64) {
	output[0] = n.rng.Float11()
}

// Process is Tick over a block.
func (n *Noise) Process(size int, _, output [][]float64) {
	y := output[0][:size]
	for i := range y {
		y[i] = n.rng.Float11()
	}
}

// Route reports no response: the output does not depend on any input.
func (n *Noise) Route(signal.Frame, float64) signal.Frame {
	return signal.NewFrame(1)
}

// Sine is a sine oscillator with no inputs.
type Sine struct {
	frequency  float64
	sampleRate float64
	phase      float64
}

// NewSine returns a sine oscillator at the given frequency in Hz.
func NewSine(frequency float64) *Sine {
	return &Sine{frequency: frequency, sampleRate: core.DefaultSampleRate}
}

// ID does not depend on the frequency.
func (s *Sine) ID() uint64                       { return structID(idSine) }
func (s *Sine) Inputs() int                      { return 0 }
func (s *Sine) Outputs() int                     { return 1 }
func (s *Sine) Reset()                           { s.phase = 0 }
func (s *Sine) SetSampleRate(sampleRate float64) { s.sampleRate = sampleRate }

// Set accepts Frequency.
func (s *Sine) Set(setting Setting) {
	if f, ok := setting.(Frequency); ok {
		s.frequency = float64(f)
	}
}

func (s *Sine) next() float64 {
	y := math.Sin(2 * math.Pi * s.phase)
	s.phase += s.frequency / s.sampleRate
	s.phase -= math.Floor(s.phase)
	return y
}

// Tick writes the next sample and advances the phase.
func (s *Sine) Tick(_, output []float64) {
	output[0] = s.next()
}

// Process is Tick over a block.
func (s *Sine) Process(size int, _, output [][]float64) {
	y := output[0][:size]
	for i := range y {
		y[i] = s.next()
	}
}

// Route reports no response: the output does not depend on any input.
func (s *Sine) Route(signal.Frame, float64) signal.Frame {
	return signal.NewFrame(1)
}

type mapper struct {
	frames
	inputs, outputs int
	fn              func(input, output []float64)
}

// Map returns a stateless unit that applies fn to every frame. fn reads
// inputs values and writes outputs values. Route evaluates fn on constant
// inputs and otherwise reports the minimum input latency without a
// response, since fn is treated as nonlinear.
func Map(inputs, outputs int, fn func(input, output []float64)) Unit {
	return &mapper{inputs: inputs, outputs: outputs, fn: fn}
}

func (m *mapper) ID() uint64 {
	return structID(idMap, uint64(m.inputs), uint64(m.outputs))
}

func (m *mapper) Inputs() int           { return m.inputs }
func (m *mapper) Outputs() int          { return m.outputs }
func (m *mapper) Reset()                {}
func (m *mapper) SetSampleRate(float64) {}
func (m *mapper) Set(Setting)           {}

func (m *mapper) Tick(input, output []float64) {
	m.fn(input, output)
}

func (m *mapper) Process(size int, input, output [][]float64) {
	m.frames.process(m, size, input, output)
}

func (m *mapper) Route(input signal.Frame, _ float64) signal.Frame {
	out := signal.NewFrame(m.outputs)

	values := make([]float64, m.inputs)
	constant := true
	merged := signal.NewValue(0)
	for i, s := range input[:m.inputs] {
		if s.Kind == signal.KindValue {
			values[i] = s.Value
		} else {
			constant = false
		}
		merged = merged.CombineNonlinear(s, func(x, _ float64) float64 { return x })
	}

	if constant {
		results := make([]float64, m.outputs)
		m.fn(values, results)
		for i, v := range results {
			out[i] = signal.NewValue(v)
		}
		return out
	}

	for i := range out {
		out[i] = merged
	}
	return out
}
