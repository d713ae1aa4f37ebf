package node

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-dspgraph/dsp/core"
	"github.com/cwbudde/algo-dspgraph/dsp/signal"
)

// PanWeights returns equal-power left and right weights for a pan value.
// The value is clamped to [-1, 1]; -1 is hard left, 0 is center.
func PanWeights(pan float64) (left, right float64) {
	angle := (core.Clamp11(pan) + 1) * math.Pi / 4
	return math.Cos(angle), math.Sin(angle)
}

// Panner is a mono-to-stereo equal-power panner.
//
// Input 0 is the mono signal. A second input, when present, is a pan
// control in [-1, 1] read on every sample. Outputs are left and right.
// Route treats the current weights as constant.
type Panner struct {
	inputs      int
	left, right float64
}

// NewPanner returns a panner with 1 or 2 inputs.
func NewPanner(inputs int, pan float64) (*Panner, error) {
	if inputs != 1 && inputs != 2 {
		return nil, fmt.Errorf("%w: panner inputs must be 1 or 2, got %d", ErrInvalidArgument, inputs)
	}
	p := &Panner{inputs: inputs}
	p.SetPan(pan)
	return p, nil
}

// Pan returns a mono panner at a fixed position.
func Pan(pan float64) *Panner {
	p := &Panner{inputs: 1}
	p.SetPan(pan)
	return p
}

// SetPan moves the panner.
func (p *Panner) SetPan(pan float64) {
	p.left, p.right = PanWeights(pan)
}

// Weights returns the current left and right weights.
func (p *Panner) Weights() (left, right float64) {
	return p.left, p.right
}

// ID depends on the input count, not on the position.
func (p *Panner) ID() uint64            { return structID(idPanner, uint64(p.inputs)) }
func (p *Panner) Inputs() int           { return p.inputs }
func (p *Panner) Outputs() int          { return 2 }
func (p *Panner) Reset()                {}
func (p *Panner) SetSampleRate(float64) {}

// Set accepts Position.
func (p *Panner) Set(setting Setting) {
	if v, ok := setting.(Position); ok {
		p.SetPan(float64(v))
	}
}

// Tick pans input 0. With a control input, the position follows input 1
// on every sample.
func (p *Panner) Tick(input, output []float64) {
	if p.inputs > 1 {
		p.SetPan(input[1])
	}
	output[0] = p.left * input[0]
	output[1] = p.right * input[0]
}

// Process is Tick over a block.
func (p *Panner) Process(size int, input, output [][]float64) {
	x := input[0][:size]
	if p.inputs == 1 {
		vecmath.ScaleBlock(output[0][:size], x, p.left)
		vecmath.ScaleBlock(output[1][:size], x, p.right)
		return
	}

	control := input[1][:size]
	left, right := output[0][:size], output[1][:size]
	for i, v := range x {
		p.SetPan(control[i])
		left[i] = p.left * v
		right[i] = p.right * v
	}
}

// Route scales input 0 by the current weights. A control input is
// ignored, so a modulated panner routes as if frozen at its last position.
func (p *Panner) Route(input signal.Frame, _ float64) signal.Frame {
	out := signal.NewFrame(2)
	out[0] = input[0].Scale(p.left)
	out[1] = input[0].Scale(p.right)
	return out
}
