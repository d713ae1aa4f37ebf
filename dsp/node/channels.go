package node

import (
	"fmt"

	"github.com/cwbudde/algo-dspgraph/dsp/signal"
)

// stateless provides the no-op lifecycle methods of units without state.
type stateless struct{}

func (stateless) Reset()                {}
func (stateless) SetSampleRate(float64) {}
func (stateless) Set(Setting)           {}

type pass struct {
	stateless
	n int
}

// Pass returns a mono passthrough.
func Pass() Unit { return &pass{n: 1} }

// Multipass returns an n-channel passthrough. It panics if n < 1.
func Multipass(n int) Unit {
	requireChannels("multipass", n)
	return &pass{n: n}
}

func (p *pass) ID() uint64   { return structID(idPass, uint64(p.n)) }
func (p *pass) Inputs() int  { return p.n }
func (p *pass) Outputs() int { return p.n }

func (p *pass) Tick(input, output []float64) {
	copy(output[:p.n], input)
}

func (p *pass) Process(size int, input, output [][]float64) {
	for ch := range p.n {
		copy(output[ch][:size], input[ch][:size])
	}
}

func (p *pass) Route(input signal.Frame, _ float64) signal.Frame {
	return input[:p.n].Copy()
}

type sink struct {
	stateless
	n int
}

// Sink consumes n channels and produces none. It panics if n < 1.
func Sink(n int) Unit {
	requireChannels("sink", n)
	return &sink{n: n}
}

func (s *sink) ID() uint64                               { return structID(idSink, uint64(s.n)) }
func (s *sink) Inputs() int                              { return s.n }
func (s *sink) Outputs() int                             { return 0 }
func (s *sink) Tick(_, _ []float64)                      {}
func (s *sink) Process(_ int, _, _ [][]float64)          {}
func (s *sink) Route(signal.Frame, float64) signal.Frame { return signal.Frame{} }

// Constant outputs fixed values and has no inputs.
type Constant struct {
	values []float64
}

// NewConstant returns a constant with one output per value.
func NewConstant(values ...float64) *Constant {
	return &Constant{values: append([]float64(nil), values...)}
}

// Zero returns an n-channel constant zero.
func Zero(n int) *Constant {
	return &Constant{values: make([]float64, n)}
}

// ID depends on the channel count, not on the values.
func (c *Constant) ID() uint64            { return structID(idConstant, uint64(len(c.values))) }
func (c *Constant) Inputs() int           { return 0 }
func (c *Constant) Outputs() int          { return len(c.values) }
func (c *Constant) Reset()                {}
func (c *Constant) SetSampleRate(float64) {}

// Set accepts Value, which sets every channel, and Values of matching
// length.
func (c *Constant) Set(setting Setting) {
	switch s := setting.(type) {
	case Value:
		for i := range c.values {
			c.values[i] = float64(s)
		}
	case Values:
		if len(s) == len(c.values) {
			copy(c.values, s)
		}
	}
}

// Tick writes the current values.
func (c *Constant) Tick(_, output []float64) {
	copy(output, c.values)
}

// Process fills each output channel with its value.
func (c *Constant) Process(size int, _, output [][]float64) {
	for ch, v := range c.values {
		out := output[ch][:size]
		for i := range out {
			out[i] = v
		}
	}
}

// Route reports each channel as a constant value.
func (c *Constant) Route(signal.Frame, float64) signal.Frame {
	out := signal.NewFrame(len(c.values))
	for i, v := range c.values {
		out[i] = signal.NewValue(v)
	}
	return out
}

type split struct {
	stateless
	n int
}

// Split copies one input to n outputs. It panics if n < 1.
func Split(n int) Unit {
	requireChannels("split", n)
	return &split{n: n}
}

func (s *split) ID() uint64   { return structID(idSplit, uint64(s.n)) }
func (s *split) Inputs() int  { return 1 }
func (s *split) Outputs() int { return s.n }

func (s *split) Tick(input, output []float64) {
	for i := range s.n {
		output[i] = input[0]
	}
}

func (s *split) Process(size int, input, output [][]float64) {
	for ch := range s.n {
		copy(output[ch][:size], input[0][:size])
	}
}

func (s *split) Route(input signal.Frame, _ float64) signal.Frame {
	out := signal.NewFrame(s.n)
	for i := range out {
		out[i] = input[0]
	}
	return out
}

type join struct {
	stateless
	n int
}

// Join averages n inputs into one output. It panics if n < 1.
func Join(n int) Unit {
	requireChannels("join", n)
	return &join{n: n}
}

func (j *join) ID() uint64   { return structID(idJoin, uint64(j.n)) }
func (j *join) Inputs() int  { return j.n }
func (j *join) Outputs() int { return 1 }

func (j *join) Tick(input, output []float64) {
	var y float64
	for _, x := range input[:j.n] {
		y += x
	}
	output[0] = y / float64(j.n)
}

func (j *join) Process(size int, input, output [][]float64) {
	out := output[0][:size]
	copy(out, input[0][:size])
	for ch := 1; ch < j.n; ch++ {
		for i, x := range input[ch][:size] {
			out[i] += x
		}
	}
	scale := float64(j.n)
	for i := range out {
		out[i] /= scale
	}
}

func (j *join) Route(input signal.Frame, _ float64) signal.Frame {
	y := input[0]
	for _, s := range input[1:j.n] {
		y = y.Add(s)
	}
	return signal.Frame{y.Scale(1 / float64(j.n))}
}

type adder struct {
	stateless
	channels, branches int
}

// Adder sums branches groups of channels each into channels outputs:
// output c is the sum of inputs c, c+channels, c+2*channels, and so on.
func Adder(channels, branches int) (Unit, error) {
	if channels < 1 || branches < 1 {
		return nil, fmt.Errorf("%w: adder shape %dx%d", ErrInvalidArgument, channels, branches)
	}
	return &adder{channels: channels, branches: branches}, nil
}

func (a *adder) ID() uint64 {
	return structID(idAdder, uint64(a.channels), uint64(a.branches))
}

func (a *adder) Inputs() int  { return a.channels * a.branches }
func (a *adder) Outputs() int { return a.channels }

func (a *adder) Tick(input, output []float64) {
	for c := range a.channels {
		y := input[c]
		for b := 1; b < a.branches; b++ {
			y += input[b*a.channels+c]
		}
		output[c] = y
	}
}

func (a *adder) Process(size int, input, output [][]float64) {
	for c := range a.channels {
		out := output[c][:size]
		copy(out, input[c][:size])
		for b := 1; b < a.branches; b++ {
			for i, x := range input[b*a.channels+c][:size] {
				out[i] += x
			}
		}
	}
}

func (a *adder) Route(input signal.Frame, _ float64) signal.Frame {
	out := signal.NewFrame(a.channels)
	for c := range out {
		y := input[c]
		for b := 1; b < a.branches; b++ {
			y = y.Add(input[b*a.channels+c])
		}
		out[c] = y
	}
	return out
}

type reverse struct {
	stateless
	n int
}

// Reverse reverses the channel order of n channels. It panics if n < 1.
func Reverse(n int) Unit {
	requireChannels("reverse", n)
	return &reverse{n: n}
}

func (r *reverse) ID() uint64   { return structID(idReverse, uint64(r.n)) }
func (r *reverse) Inputs() int  { return r.n }
func (r *reverse) Outputs() int { return r.n }

func (r *reverse) Tick(input, output []float64) {
	for i := range r.n {
		output[i] = input[r.n-1-i]
	}
}

func (r *reverse) Process(size int, input, output [][]float64) {
	for ch := range r.n {
		copy(output[ch][:size], input[r.n-1-ch][:size])
	}
}

func (r *reverse) Route(input signal.Frame, _ float64) signal.Frame {
	out := signal.NewFrame(r.n)
	for i := range out {
		out[i] = input[r.n-1-i]
	}
	return out
}
