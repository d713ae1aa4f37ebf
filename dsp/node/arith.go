package node

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-dspgraph/dsp/buffer"
	"github.com/cwbudde/algo-dspgraph/dsp/signal"
)

// wrapper forwards everything except the sample and route transforms to
// a single child. Settings reach the child unchanged.
type wrapper struct {
	unit Unit
}

func (w *wrapper) Inputs() int                      { return w.unit.Inputs() }
func (w *wrapper) Outputs() int                     { return w.unit.Outputs() }
func (w *wrapper) Reset()                           { w.unit.Reset() }
func (w *wrapper) SetSampleRate(sampleRate float64) { w.unit.SetSampleRate(sampleRate) }
func (w *wrapper) Set(setting Setting)              { w.unit.Set(setting) }

type scaled struct {
	wrapper
	factor float64
}

// Scale multiplies every output of u by factor.
func Scale(u Unit, factor float64) Unit {
	return &scaled{wrapper: wrapper{unit: u}, factor: factor}
}

// Negate flips the sign of every output of u.
func Negate(u Unit) Unit {
	return Scale(u, -1)
}

func (s *scaled) ID() uint64 {
	return structID(idScale, s.unit.ID(), math.Float64bits(s.factor))
}

func (s *scaled) Tick(input, output []float64) {
	s.unit.Tick(input, output)
	for i := range s.unit.Outputs() {
		output[i] *= s.factor
	}
}

func (s *scaled) Process(size int, input, output [][]float64) {
	s.unit.Process(size, input, output)
	for ch := range s.unit.Outputs() {
		y := output[ch][:size]
		vecmath.ScaleBlock(y, y, s.factor)
	}
}

func (s *scaled) Route(input signal.Frame, frequency float64) signal.Frame {
	out := s.unit.Route(input, frequency)
	for i := range out {
		out[i] = out[i].Scale(s.factor)
	}
	return out
}

type offset struct {
	wrapper
	value float64
}

// Offset adds value to every output of u.
func Offset(u Unit, value float64) Unit {
	return &offset{wrapper: wrapper{unit: u}, value: value}
}

func (o *offset) ID() uint64 {
	return structID(idOffset, o.unit.ID(), math.Float64bits(o.value))
}

func (o *offset) Tick(input, output []float64) {
	o.unit.Tick(input, output)
	for i := range o.unit.Outputs() {
		output[i] += o.value
	}
}

func (o *offset) Process(size int, input, output [][]float64) {
	o.unit.Process(size, input, output)
	for ch := range o.unit.Outputs() {
		y := output[ch][:size]
		for i := range y {
			y[i] += o.value
		}
	}
}

// Route adds a constant, which leaves responses unchanged and shifts
// constants.
func (o *offset) Route(input signal.Frame, frequency float64) signal.Frame {
	out := o.unit.Route(input, frequency)
	c := signal.NewValue(o.value)
	for i := range out {
		out[i] = out[i].Add(c)
	}
	return out
}

type binaryOp int

const (
	opAdd binaryOp = iota
	opSub
	opMul
)

// binary combines the equal-shaped outputs of two units fed from
// disjoint, concatenated inputs.
type binary struct {
	group
	op    binaryOp
	frame []float64
	block buffer.Block
}

func newBinary(op binaryOp, name string, a, b Unit) (Unit, error) {
	if err := checkUnits(name, []Unit{a, b}); err != nil {
		return nil, err
	}
	if a.Outputs() != b.Outputs() {
		return nil, fmt.Errorf("%w: %s operands have %d and %d outputs",
			ErrChannelMismatch, name, a.Outputs(), b.Outputs())
	}
	return &binary{
		group: group{units: []Unit{a, b}},
		op:    op,
		frame: make([]float64, b.Outputs()),
	}, nil
}

// Add sums the outputs of a and b. The inputs of a come first, then the
// inputs of b. Both must have the same output count.
func Add(a, b Unit) (Unit, error) { return newBinary(opAdd, "add", a, b) }

// Sub subtracts the outputs of b from those of a, with inputs as in Add.
func Sub(a, b Unit) (Unit, error) { return newBinary(opSub, "sub", a, b) }

// Mul multiplies the outputs of a and b, with inputs as in Add. Route
// treats a product with a constant as scaling and any other product as
// nonlinear.
func Mul(a, b Unit) (Unit, error) { return newBinary(opMul, "mul", a, b) }

func (b *binary) ID() uint64 {
	tag := [...]uint64{idAdd, idSub, idMul}[b.op]
	return structID(tag, unitIDs(b.units)...)
}

func (b *binary) Inputs() int  { return b.units[0].Inputs() + b.units[1].Inputs() }
func (b *binary) Outputs() int { return b.units[0].Outputs() }

func (b *binary) Tick(input, output []float64) {
	split := b.units[0].Inputs()
	b.units[0].Tick(input[:split], output)
	b.units[1].Tick(input[split:], b.frame)

	for i, y := range b.frame {
		switch b.op {
		case opAdd:
			output[i] += y
		case opSub:
			output[i] -= y
		case opMul:
			output[i] *= y
		}
	}
}

func (b *binary) Process(size int, input, output [][]float64) {
	split := b.units[0].Inputs()
	b.units[0].Process(size, input[:split], output)

	b.block.Resize(b.Outputs(), size)
	tmp := b.block.Channels()
	b.units[1].Process(size, input[split:], tmp)

	for ch, src := range tmp {
		dst := output[ch][:size]
		switch b.op {
		case opAdd:
			vecmath.AddBlockInPlace(dst, src[:size])
		case opSub:
			for i, y := range src[:size] {
				dst[i] -= y
			}
		case opMul:
			vecmath.MulBlockInPlace(dst, src[:size])
		}
	}
}

func (b *binary) Route(input signal.Frame, frequency float64) signal.Frame {
	split := b.units[0].Inputs()
	out := b.units[0].Route(input[:split], frequency)
	r := b.units[1].Route(input[split:], frequency)

	for i := range out {
		switch b.op {
		case opAdd:
			out[i] = out[i].Add(r[i])
		case opSub:
			out[i] = out[i].Sub(r[i])
		case opMul:
			out[i] = out[i].Mul(r[i])
		}
	}
	return out
}
