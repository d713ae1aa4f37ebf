package net

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-dspgraph/dsp/node"
)

func (n *Net) edited() {
	n.order = nil
}

func (n *Net) debug(msg string, fields logrus.Fields) {
	n.logger.WithFields(fields).Debug(msg)
}

func (n *Net) reject(op string, err error) error {
	n.logger.WithError(err).Debug(op + " rejected")
	return err
}

// Push adds u to the graph with every input reading zero and returns its
// ID. The unit takes the graph's sample rate.
func (n *Net) Push(u node.Unit) NodeID {
	id := newNodeID()
	u.SetSampleRate(n.sampleRate)

	n.index[id] = len(n.vertices)
	n.vertices = append(n.vertices, newVertex(id, u))
	n.edited()

	n.debug("push", logrus.Fields{"node": id, "unit": fmt.Sprintf("%T", u), "inputs": u.Inputs(), "outputs": u.Outputs()})
	return id
}

// Chain appends u to the end of the processing chain. The first unit reads
// the global inputs; later units read the outputs of the most recently
// added node. u then drives the global outputs. Channel counts are
// checked before anything changes.
func (n *Net) Chain(u node.Unit) (NodeID, error) {
	var (
		tail     *vertex
		upOuts   = n.inputs
		upstream = "graph inputs"
	)
	if len(n.vertices) > 0 {
		tail = n.vertices[len(n.vertices)-1]
		upOuts = tail.unit.Outputs()
		upstream = "node " + string(tail.id)
	}

	if u.Inputs() != upOuts {
		return "", n.reject("chain", fmt.Errorf("%w: %s has %d outputs, unit has %d inputs",
			node.ErrChannelMismatch, upstream, upOuts, u.Inputs()))
	}
	if u.Outputs() != n.outputs {
		return "", n.reject("chain", fmt.Errorf("%w: unit has %d outputs, graph has %d",
			node.ErrChannelMismatch, u.Outputs(), n.outputs))
	}

	id := n.Push(u)
	v := n.vertices[len(n.vertices)-1]
	for i := range v.sources {
		if tail == nil {
			v.sources[i] = Input(i)
		} else {
			v.sources[i] = Output(tail.id, i)
		}
	}
	for i := range n.outputSources {
		n.outputSources[i] = Output(id, i)
	}
	n.edited()
	return id, nil
}

// Connect feeds output srcPort of node src into input dstPort of node dst.
func (n *Net) Connect(src NodeID, srcPort int, dst NodeID, dstPort int) error {
	from, err := n.lookup(src)
	if err != nil {
		return n.reject("connect", err)
	}
	if srcPort < 0 || srcPort >= from.unit.Outputs() {
		return n.reject("connect", fmt.Errorf("%w: node %s output %d of %d",
			ErrPortRange, src, srcPort, from.unit.Outputs()))
	}
	return n.setSource(dst, dstPort, Output(src, srcPort))
}

// ConnectInput feeds global input ch into input dstPort of node dst.
func (n *Net) ConnectInput(ch int, dst NodeID, dstPort int) error {
	if ch < 0 || ch >= n.inputs {
		return n.reject("connect input", fmt.Errorf("%w: input %d of %d", ErrPortRange, ch, n.inputs))
	}
	return n.setSource(dst, dstPort, Input(ch))
}

// ConnectOutput drives global output ch from output srcPort of node src.
func (n *Net) ConnectOutput(src NodeID, srcPort, ch int) error {
	from, err := n.lookup(src)
	if err != nil {
		return n.reject("connect output", err)
	}
	if srcPort < 0 || srcPort >= from.unit.Outputs() {
		return n.reject("connect output", fmt.Errorf("%w: node %s output %d of %d",
			ErrPortRange, src, srcPort, from.unit.Outputs()))
	}
	if ch < 0 || ch >= n.outputs {
		return n.reject("connect output", fmt.Errorf("%w: output %d of %d", ErrPortRange, ch, n.outputs))
	}
	n.outputSources[ch] = Output(src, srcPort)
	n.debug("connect output", logrus.Fields{"source": n.outputSources[ch], "output": ch})
	return nil
}

// Disconnect makes input port of node id read zero.
func (n *Net) Disconnect(id NodeID, port int) error {
	return n.setSource(id, port, Zero())
}

// DisconnectOutput makes global output ch read zero.
func (n *Net) DisconnectOutput(ch int) error {
	if ch < 0 || ch >= n.outputs {
		return n.reject("disconnect output", fmt.Errorf("%w: output %d of %d", ErrPortRange, ch, n.outputs))
	}
	n.outputSources[ch] = Zero()
	return nil
}

func (n *Net) setSource(dst NodeID, port int, src Source) error {
	v, err := n.lookup(dst)
	if err != nil {
		return n.reject("connect", err)
	}
	if port < 0 || port >= len(v.sources) {
		return n.reject("connect", fmt.Errorf("%w: node %s input %d of %d",
			ErrPortRange, dst, port, len(v.sources)))
	}

	prev := v.sources[port]
	v.sources[port] = src

	order, err := n.sort()
	if err != nil {
		v.sources[port] = prev
		return n.reject("connect", fmt.Errorf("%w: %s into %s:%d", err, src, dst, port))
	}

	n.order = order
	n.debug("connect", logrus.Fields{"source": src, "node": dst, "port": port})
	return nil
}

// Pipe connects every output of src to the same-numbered input of dst.
func (n *Net) Pipe(src, dst NodeID) error {
	from, err := n.lookup(src)
	if err != nil {
		return n.reject("pipe", err)
	}
	to, err := n.lookup(dst)
	if err != nil {
		return n.reject("pipe", err)
	}
	if from.unit.Outputs() != to.unit.Inputs() {
		return n.reject("pipe", fmt.Errorf("%w: node %s has %d outputs, node %s has %d inputs",
			node.ErrChannelMismatch, src, from.unit.Outputs(), dst, to.unit.Inputs()))
	}

	sources := make([]Source, len(to.sources))
	for i := range sources {
		sources[i] = Output(src, i)
	}
	return n.setSources(to, sources)
}

// PipeInput connects every global input to the same-numbered input of dst.
func (n *Net) PipeInput(dst NodeID) error {
	to, err := n.lookup(dst)
	if err != nil {
		return n.reject("pipe input", err)
	}
	if to.unit.Inputs() != n.inputs {
		return n.reject("pipe input", fmt.Errorf("%w: graph has %d inputs, node %s has %d",
			node.ErrChannelMismatch, n.inputs, dst, to.unit.Inputs()))
	}

	for i := range to.sources {
		to.sources[i] = Input(i)
	}
	n.edited()
	n.debug("pipe input", logrus.Fields{"node": dst})
	return nil
}

// PipeOutput drives every global output from the same-numbered output of
// src.
func (n *Net) PipeOutput(src NodeID) error {
	from, err := n.lookup(src)
	if err != nil {
		return n.reject("pipe output", err)
	}
	if from.unit.Outputs() != n.outputs {
		return n.reject("pipe output", fmt.Errorf("%w: node %s has %d outputs, graph has %d",
			node.ErrChannelMismatch, src, from.unit.Outputs(), n.outputs))
	}

	for i := range n.outputSources {
		n.outputSources[i] = Output(src, i)
	}
	n.debug("pipe output", logrus.Fields{"node": src})
	return nil
}

func (n *Net) setSources(v *vertex, sources []Source) error {
	prev := v.sources
	v.sources = sources

	order, err := n.sort()
	if err != nil {
		v.sources = prev
		return n.reject("pipe", fmt.Errorf("%w: into %s", err, v.id))
	}

	n.order = order
	n.debug("pipe", logrus.Fields{"node": v.id, "sources": len(sources)})
	return nil
}

// Replace swaps the unit at id for u, keeping its connections, and
// returns the previous unit. u must have the same channel counts.
func (n *Net) Replace(id NodeID, u node.Unit) (node.Unit, error) {
	v, err := n.lookup(id)
	if err != nil {
		return nil, n.reject("replace", err)
	}
	if u.Inputs() != v.unit.Inputs() || u.Outputs() != v.unit.Outputs() {
		return nil, n.reject("replace", fmt.Errorf("%w: node %s is %d→%d, unit is %d→%d",
			node.ErrChannelMismatch, id, v.unit.Inputs(), v.unit.Outputs(), u.Inputs(), u.Outputs()))
	}

	u.SetSampleRate(n.sampleRate)
	prev := v.unit
	v.unit = u
	n.debug("replace", logrus.Fields{"node": id, "unit": fmt.Sprintf("%T", u)})
	return prev, nil
}

// Remove deletes node id and returns its unit. Inputs and outputs that
// read from it read zero afterwards.
func (n *Net) Remove(id NodeID) (node.Unit, error) {
	i, ok := n.index[id]
	if !ok {
		return nil, n.reject("remove", fmt.Errorf("%w: %s", ErrUnknownNode, id))
	}
	removed := n.vertices[i]

	n.vertices = append(n.vertices[:i], n.vertices[i+1:]...)
	delete(n.index, id)
	for j := i; j < len(n.vertices); j++ {
		n.index[n.vertices[j].id] = j
	}

	for _, v := range n.vertices {
		for port, src := range v.sources {
			if src.Kind == SourceNode && src.Node == id {
				v.sources[port] = Zero()
			}
		}
	}
	for ch, src := range n.outputSources {
		if src.Kind == SourceNode && src.Node == id {
			n.outputSources[ch] = Zero()
		}
	}

	n.edited()
	n.debug("remove", logrus.Fields{"node": id})
	return removed.unit, nil
}

// Check verifies that every source refers to an existing port and that
// the graph is acyclic.
func (n *Net) Check() error {
	valid := func(src Source) error {
		switch src.Kind {
		case SourceInput:
			if src.Port < 0 || src.Port >= n.inputs {
				return fmt.Errorf("%w: input %d of %d", ErrPortRange, src.Port, n.inputs)
			}
		case SourceNode:
			v, err := n.lookup(src.Node)
			if err != nil {
				return err
			}
			if src.Port < 0 || src.Port >= v.unit.Outputs() {
				return fmt.Errorf("%w: node %s output %d of %d", ErrPortRange, src.Node, src.Port, v.unit.Outputs())
			}
		}
		return nil
	}

	for _, v := range n.vertices {
		if len(v.sources) != v.unit.Inputs() {
			return fmt.Errorf("%w: node %s has %d sources for %d inputs",
				node.ErrChannelMismatch, v.id, len(v.sources), v.unit.Inputs())
		}
		for _, src := range v.sources {
			if err := valid(src); err != nil {
				return err
			}
		}
	}
	for _, src := range n.outputSources {
		if err := valid(src); err != nil {
			return err
		}
	}

	_, err := n.sort()
	return err
}
