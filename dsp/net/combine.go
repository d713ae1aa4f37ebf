package net

import (
	"fmt"

	"github.com/cwbudde/algo-dspgraph/dsp/node"
)

// The functions below combine graphs structurally. They consume their
// operands: nodes move into the result with their IDs, and the operands
// must not be used afterwards. The result takes the first operand's
// sample rate and logger.

func combined(a *Net, inputs, outputs int) *Net {
	return &Net{
		inputs:        inputs,
		outputs:       outputs,
		sampleRate:    a.sampleRate,
		index:         make(map[NodeID]int, len(a.vertices)),
		outputSources: make([]Source, outputs),
		logger:        a.logger,
	}
}

// absorb moves the nodes of src into n, rewriting their global-input
// sources with remap.
func (n *Net) absorb(src *Net, remap func(Source) Source) {
	for _, v := range src.vertices {
		for port, s := range v.sources {
			v.sources[port] = remap(s)
		}
		v.unit.SetSampleRate(n.sampleRate)
		n.index[v.id] = len(n.vertices)
		n.vertices = append(n.vertices, v)
	}
	src.vertices = nil
	src.index = map[NodeID]int{}
	n.edited()
}

func identity(s Source) Source { return s }

// shiftInputs offsets global-input sources by k channels.
func shiftInputs(k int) func(Source) Source {
	return func(s Source) Source {
		if s.Kind == SourceInput {
			s.Port += k
		}
		return s
	}
}

// Series feeds the outputs of a into the inputs of b.
func Series(a, b *Net) (*Net, error) {
	if a.outputs != b.inputs {
		return nil, fmt.Errorf("%w: series of %d outputs into %d inputs",
			node.ErrChannelMismatch, a.outputs, b.inputs)
	}

	feed := func(s Source) Source {
		if s.Kind == SourceInput {
			return a.outputSources[s.Port]
		}
		return s
	}

	n := combined(a, a.inputs, b.outputs)
	n.absorb(a, identity)
	n.absorb(b, feed)
	for ch, s := range b.outputSources {
		n.outputSources[ch] = feed(s)
	}
	n.debug("series", nil)
	return n, nil
}

// Sum feeds the same input to a and b and adds their outputs.
func Sum(a, b *Net) (*Net, error) {
	if a.inputs != b.inputs || a.outputs != b.outputs {
		return nil, fmt.Errorf("%w: sum of %d→%d and %d→%d",
			node.ErrChannelMismatch, a.inputs, a.outputs, b.inputs, b.outputs)
	}

	n := combined(a, a.inputs, a.outputs)
	n.absorb(a, identity)
	n.absorb(b, identity)
	if n.outputs == 0 {
		return n, nil
	}

	adder := node.Must(node.Adder(n.outputs, 2))
	id := n.Push(adder)
	v := n.vertices[n.index[id]]
	copy(v.sources, a.outputSources)
	copy(v.sources[n.outputs:], b.outputSources)
	for ch := range n.outputSources {
		n.outputSources[ch] = Output(id, ch)
	}
	n.edited()
	return n, nil
}

// Stack places a and b side by side with concatenated inputs and outputs.
func Stack(a, b *Net) *Net {
	n := combined(a, a.inputs+b.inputs, a.outputs+b.outputs)
	shift := shiftInputs(a.inputs)

	n.absorb(a, identity)
	n.absorb(b, shift)
	copy(n.outputSources, a.outputSources)
	for ch, s := range b.outputSources {
		n.outputSources[a.outputs+ch] = shift(s)
	}
	n.debug("stack", nil)
	return n
}

// Branch feeds the same input to a and b and concatenates their outputs.
func Branch(a, b *Net) (*Net, error) {
	if a.inputs != b.inputs {
		return nil, fmt.Errorf("%w: branch of %d and %d inputs",
			node.ErrChannelMismatch, a.inputs, b.inputs)
	}

	n := combined(a, a.inputs, a.outputs+b.outputs)
	n.absorb(a, identity)
	n.absorb(b, identity)
	copy(n.outputSources, a.outputSources)
	copy(n.outputSources[a.outputs:], b.outputSources)
	n.debug("branch", nil)
	return n, nil
}

// Scale multiplies every output of a by factor and returns a.
func Scale(a *Net, factor float64) *Net {
	if a.outputs == 0 {
		return a
	}

	id := a.Push(node.Scale(node.Multipass(a.outputs), factor))
	v := a.vertices[a.index[id]]
	copy(v.sources, a.outputSources)
	for ch := range a.outputSources {
		a.outputSources[ch] = Output(id, ch)
	}
	a.edited()
	return a
}
