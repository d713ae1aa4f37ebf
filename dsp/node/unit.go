package node

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-dspgraph/dsp/core"
	"github.com/cwbudde/algo-dspgraph/dsp/signal"
)

var (
	// ErrChannelMismatch is returned when adjacent channel counts disagree.
	ErrChannelMismatch = errors.New("node: channel count mismatch")
	// ErrInvalidArgument is returned for malformed constructor arguments.
	ErrInvalidArgument = errors.New("node: invalid argument")
)

// Setting is a parameter value accepted by Unit.Set. Units ignore
// settings of types they do not handle.
type Setting any

// Unit is the processing-unit contract.
//
// Inputs and Outputs never change after construction. Tick reads exactly
// Inputs() values and writes exactly Outputs() values. Process reads
// input[ch][:size] and writes output[ch][:size]; input and output must
// not alias. Both advance the unit identically.
type Unit interface {
	// ID returns a structural identifier. Units built the same way from
	// the same unit types have equal IDs.
	ID() uint64
	Inputs() int
	Outputs() int
	// Reset returns the unit to its power-on state without changing
	// parameters.
	Reset()
	// SetSampleRate recomputes rate-dependent state.
	SetSampleRate(sampleRate float64)
	Set(setting Setting)
	Tick(input, output []float64)
	Process(size int, input, output [][]float64)
	// Route maps one descriptor per input to one descriptor per output at
	// the given frequency in Hz.
	Route(input signal.Frame, frequency float64) signal.Frame
}

// Must returns u and panics if err is non-nil. It is intended for graph
// expressions whose channel counts are known to be valid.
func Must(u Unit, err error) Unit {
	if err != nil {
		panic(err)
	}
	return u
}

// Filter ticks a unit with one input and one output.
func Filter(u Unit, x float64) float64 {
	var in, out [1]float64
	in[0] = x
	u.Tick(in[:], out[:])
	return out[0]
}

// TickFrame ticks u once and returns a newly allocated output frame.
func TickFrame(u Unit, input []float64) []float64 {
	out := make([]float64, u.Outputs())
	u.Tick(input, out)
	return out
}

// Structural identifiers of the leaf unit types.
const (
	idPass uint64 = iota + 1
	idSink
	idConstant
	idSplit
	idJoin
	idAdder
	idReverse
	idTick
	idDelay
	idBiquad
	idFIR
	idLowpole
	idHighpole
	idNoise
	idSine
	idMap
	idPanner
	idMixer
	idSeries
	idBus
	idStack
	idBranch
	idScale
	idOffset
	idAdd
	idSub
	idMul
	idFractionalDelay
)

// structID derives an identifier from a type tag and its parts.
func structID(tag uint64, parts ...uint64) uint64 {
	h := core.Hashk(tag)
	for _, p := range parts {
		h = core.Hashk(h + core.Hashk(p))
	}
	return h
}

func unitIDs(units []Unit) []uint64 {
	ids := make([]uint64, len(units))
	for i, u := range units {
		ids[i] = u.ID()
	}
	return ids
}

func requireChannels(name string, n int) {
	if n < 1 {
		panic(fmt.Sprintf("node: %s needs at least one channel, got %d", name, n))
	}
}

// frames adapts Tick to Process for units without a dedicated block path.
type frames struct {
	in, out []float64
}

func (f *frames) process(u Unit, size int, input, output [][]float64) {
	if len(f.in) != u.Inputs() || len(f.out) != u.Outputs() {
		f.in = make([]float64, u.Inputs())
		f.out = make([]float64, u.Outputs())
	}

	for i := range size {
		for ch := range f.in {
			f.in[ch] = input[ch][i]
		}
		u.Tick(f.in, f.out)
		for ch, y := range f.out {
			output[ch][i] = y
		}
	}
}
