package node

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-dspgraph/dsp/buffer"
	"github.com/cwbudde/algo-dspgraph/dsp/signal"
)

// group holds the children of an n-ary combinator and forwards the
// lifecycle calls to them.
type group struct {
	units []Unit
}

func (g *group) Reset() {
	for _, u := range g.units {
		u.Reset()
	}
}

func (g *group) SetSampleRate(sampleRate float64) {
	for _, u := range g.units {
		u.SetSampleRate(sampleRate)
	}
}

// Set forwards an At-addressed setting to the addressed child.
func (g *group) Set(setting Setting) {
	forward(g.units, setting)
}

func checkUnits(op string, units []Unit) error {
	if len(units) == 0 {
		return fmt.Errorf("%w: %s needs at least one unit", ErrInvalidArgument, op)
	}
	for i, u := range units {
		if u == nil {
			return fmt.Errorf("%w: %s unit %d is nil", ErrInvalidArgument, op, i)
		}
	}
	return nil
}

func generate(op string, n int, f func(i int) Unit) ([]Unit, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %s count must be positive, got %d", ErrInvalidArgument, op, n)
	}
	units := make([]Unit, n)
	for i := range units {
		units[i] = f(i)
	}
	return units, nil
}

type series struct {
	group
	frames [][]float64
	blocks []buffer.Block
}

// Pipe feeds the outputs of a into the inputs of b.
func Pipe(a, b Unit) (Unit, error) {
	return PipeAll(a, b)
}

// PipeAll chains units end to end. Each unit's output count must equal the
// next unit's input count.
func PipeAll(units ...Unit) (Unit, error) {
	if err := checkUnits("pipe", units); err != nil {
		return nil, err
	}
	for i := 1; i < len(units); i++ {
		if out, in := units[i-1].Outputs(), units[i].Inputs(); out != in {
			return nil, fmt.Errorf("%w: pipe stage %d has %d outputs but stage %d has %d inputs",
				ErrChannelMismatch, i-1, out, i, in)
		}
	}

	s := &series{
		group:  group{units: append([]Unit(nil), units...)},
		frames: make([][]float64, len(units)-1),
		blocks: make([]buffer.Block, len(units)-1),
	}
	for i := range s.frames {
		s.frames[i] = make([]float64, units[i].Outputs())
	}
	return s, nil
}

// Pipef chains n units made by f.
func Pipef(n int, f func(i int) Unit) (Unit, error) {
	units, err := generate("pipe", n, f)
	if err != nil {
		return nil, err
	}
	return PipeAll(units...)
}

func (s *series) ID() uint64   { return structID(idSeries, unitIDs(s.units)...) }
func (s *series) Inputs() int  { return s.units[0].Inputs() }
func (s *series) Outputs() int { return s.units[len(s.units)-1].Outputs() }

func (s *series) Tick(input, output []float64) {
	last := len(s.units) - 1
	in := input
	for i, u := range s.units[:last] {
		u.Tick(in, s.frames[i])
		in = s.frames[i]
	}
	s.units[last].Tick(in, output)
}

func (s *series) Process(size int, input, output [][]float64) {
	last := len(s.units) - 1
	in := input
	for i, u := range s.units[:last] {
		blk := &s.blocks[i]
		blk.Resize(u.Outputs(), size)
		u.Process(size, in, blk.Channels())
		in = blk.Channels()
	}
	s.units[last].Process(size, in, output)
}

func (s *series) Route(input signal.Frame, frequency float64) signal.Frame {
	for _, u := range s.units {
		input = u.Route(input, frequency)
	}
	return input
}

type bus struct {
	group
	frame []float64
	block buffer.Block
}

// Sum feeds the same input to a and b and adds their outputs. Both must
// have the same input and output counts.
func Sum(a, b Unit) (Unit, error) {
	return Bus(a, b)
}

// Bus feeds the same input to every unit and adds their outputs.
func Bus(units ...Unit) (Unit, error) {
	if err := checkUnits("bus", units); err != nil {
		return nil, err
	}
	in, out := units[0].Inputs(), units[0].Outputs()
	for i, u := range units[1:] {
		if u.Inputs() != in || u.Outputs() != out {
			return nil, fmt.Errorf("%w: bus unit %d is %d→%d, want %d→%d",
				ErrChannelMismatch, i+1, u.Inputs(), u.Outputs(), in, out)
		}
	}
	return &bus{
		group: group{units: append([]Unit(nil), units...)},
		frame: make([]float64, out),
	}, nil
}

// Busf sums n units made by f.
func Busf(n int, f func(i int) Unit) (Unit, error) {
	units, err := generate("bus", n, f)
	if err != nil {
		return nil, err
	}
	return Bus(units...)
}

func (b *bus) ID() uint64   { return structID(idBus, unitIDs(b.units)...) }
func (b *bus) Inputs() int  { return b.units[0].Inputs() }
func (b *bus) Outputs() int { return b.units[0].Outputs() }

func (b *bus) Tick(input, output []float64) {
	b.units[0].Tick(input, output)
	for _, u := range b.units[1:] {
		u.Tick(input, b.frame)
		for i, y := range b.frame {
			output[i] += y
		}
	}
}

func (b *bus) Process(size int, input, output [][]float64) {
	b.units[0].Process(size, input, output)
	if len(b.units) == 1 {
		return
	}

	b.block.Resize(b.Outputs(), size)
	tmp := b.block.Channels()
	for _, u := range b.units[1:] {
		u.Process(size, input, tmp)
		for ch, y := range tmp {
			vecmath.AddBlockInPlace(output[ch][:size], y[:size])
		}
	}
}

func (b *bus) Route(input signal.Frame, frequency float64) signal.Frame {
	out := b.units[0].Route(input, frequency)
	for _, u := range b.units[1:] {
		r := u.Route(input, frequency)
		for i := range out {
			out[i] = out[i].Add(r[i])
		}
	}
	return out
}

type stack struct {
	group
}

// Stack places a and b side by side: inputs and outputs are concatenated
// and each unit sees only its own channels.
func Stack(a, b Unit) (Unit, error) {
	return StackAll(a, b)
}

// StackAll places units side by side.
func StackAll(units ...Unit) (Unit, error) {
	if err := checkUnits("stack", units); err != nil {
		return nil, err
	}
	return &stack{group{units: append([]Unit(nil), units...)}}, nil
}

// Stackf stacks n units made by f.
func Stackf(n int, f func(i int) Unit) (Unit, error) {
	units, err := generate("stack", n, f)
	if err != nil {
		return nil, err
	}
	return StackAll(units...)
}

func (s *stack) ID() uint64 { return structID(idStack, unitIDs(s.units)...) }

func (s *stack) Inputs() int {
	n := 0
	for _, u := range s.units {
		n += u.Inputs()
	}
	return n
}

func (s *stack) Outputs() int {
	n := 0
	for _, u := range s.units {
		n += u.Outputs()
	}
	return n
}

func (s *stack) Tick(input, output []float64) {
	in, out := 0, 0
	for _, u := range s.units {
		ni, no := u.Inputs(), u.Outputs()
		u.Tick(input[in:in+ni], output[out:out+no])
		in += ni
		out += no
	}
}

func (s *stack) Process(size int, input, output [][]float64) {
	in, out := 0, 0
	for _, u := range s.units {
		ni, no := u.Inputs(), u.Outputs()
		u.Process(size, input[in:in+ni], output[out:out+no])
		in += ni
		out += no
	}
}

func (s *stack) Route(input signal.Frame, frequency float64) signal.Frame {
	out := make(signal.Frame, 0, s.Outputs())
	in := 0
	for _, u := range s.units {
		ni := u.Inputs()
		out = append(out, u.Route(input[in:in+ni], frequency)...)
		in += ni
	}
	return out
}

type branch struct {
	group
}

// Branch feeds the same input to a and b and concatenates their outputs.
// Both must have the same input count.
func Branch(a, b Unit) (Unit, error) {
	return BranchAll(a, b)
}

// BranchAll feeds the same input to every unit and concatenates outputs.
func BranchAll(units ...Unit) (Unit, error) {
	if err := checkUnits("branch", units); err != nil {
		return nil, err
	}
	in := units[0].Inputs()
	for i, u := range units[1:] {
		if u.Inputs() != in {
			return nil, fmt.Errorf("%w: branch unit %d has %d inputs, want %d",
				ErrChannelMismatch, i+1, u.Inputs(), in)
		}
	}
	return &branch{group{units: append([]Unit(nil), units...)}}, nil
}

// Branchf branches into n units made by f.
func Branchf(n int, f func(i int) Unit) (Unit, error) {
	units, err := generate("branch", n, f)
	if err != nil {
		return nil, err
	}
	return BranchAll(units...)
}

func (b *branch) ID() uint64  { return structID(idBranch, unitIDs(b.units)...) }
func (b *branch) Inputs() int { return b.units[0].Inputs() }

func (b *branch) Outputs() int {
	n := 0
	for _, u := range b.units {
		n += u.Outputs()
	}
	return n
}

func (b *branch) Tick(input, output []float64) {
	out := 0
	for _, u := range b.units {
		no := u.Outputs()
		u.Tick(input, output[out:out+no])
		out += no
	}
}

func (b *branch) Process(size int, input, output [][]float64) {
	out := 0
	for _, u := range b.units {
		no := u.Outputs()
		u.Process(size, input, output[out:out+no])
		out += no
	}
}

func (b *branch) Route(input signal.Frame, frequency float64) signal.Frame {
	out := make(signal.Frame, 0, b.Outputs())
	for _, u := range b.units {
		out = append(out, u.Route(input, frequency)...)
	}
	return out
}
