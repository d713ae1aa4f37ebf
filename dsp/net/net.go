package net

import (
	"errors"
	"fmt"

	"github.com/rs/xid"
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-dspgraph/dsp/buffer"
	"github.com/cwbudde/algo-dspgraph/dsp/core"
	"github.com/cwbudde/algo-dspgraph/dsp/node"
	"github.com/cwbudde/algo-dspgraph/dsp/signal"
	"github.com/cwbudde/algo-dspgraph/internal/log"
)

var (
	// ErrUnknownNode is returned when an edit names a node not in the graph.
	ErrUnknownNode = errors.New("net: unknown node")
	// ErrPortRange is returned when a channel index is out of range.
	ErrPortRange = errors.New("net: port out of range")
	// ErrCycle is returned when a connection would close a cycle.
	ErrCycle = errors.New("net: connection would create a cycle")
)

// netTag seeds structural identifiers of graphs.
const netTag = 0x6e6574

// NodeID identifies a node within a graph. IDs are unique across graphs,
// so nodes keep their IDs when graphs are combined.
type NodeID string

func newNodeID() NodeID {
	return NodeID(xid.New().String())
}

// Option configures a Net.
type Option func(*Net)

// WithSampleRate sets the sample rate applied to every unit in the graph.
func WithSampleRate(sampleRate float64) Option {
	return func(n *Net) {
		if sampleRate > 0 {
			n.sampleRate = sampleRate
		}
	}
}

// WithLogger sets the logger used for structural edits.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(n *Net) {
		if logger != nil {
			n.logger = logger
		}
	}
}

type vertex struct {
	id      NodeID
	unit    node.Unit
	sources []Source

	input, output     []float64
	inBlock, outBlock buffer.Block
	route             signal.Frame
}

func newVertex(id NodeID, u node.Unit) *vertex {
	return &vertex{
		id:      id,
		unit:    u,
		sources: make([]Source, u.Inputs()),
		input:   make([]float64, u.Inputs()),
		output:  make([]float64, u.Outputs()),
	}
}

// Net is a dynamic graph of units. It implements node.Unit.
type Net struct {
	inputs, outputs int
	sampleRate      float64

	vertices      []*vertex
	index         map[NodeID]int
	outputSources []Source
	order         []int

	logger logrus.FieldLogger
}

// New returns an empty graph. All outputs read zero until connected.
// It panics if a count is negative.
func New(inputs, outputs int, opts ...Option) *Net {
	if inputs < 0 || outputs < 0 {
		panic(fmt.Sprintf("net: negative channel count %d→%d", inputs, outputs))
	}

	n := &Net{
		inputs:        inputs,
		outputs:       outputs,
		sampleRate:    core.DefaultSampleRate,
		index:         make(map[NodeID]int),
		outputSources: make([]Source, outputs),
		logger:        log.GetLogger(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(n)
		}
	}
	return n
}

// Wrap returns a graph holding only u, wired to all inputs and outputs.
func Wrap(u node.Unit, opts ...Option) *Net {
	n := New(u.Inputs(), u.Outputs(), opts...)
	id := n.Push(u)
	for i := range u.Inputs() {
		n.vertices[0].sources[i] = Input(i)
	}
	for i := range u.Outputs() {
		n.outputSources[i] = Output(id, i)
	}
	n.order = nil
	return n
}

// Size returns the number of nodes.
func (n *Net) Size() int { return len(n.vertices) }

// Contains reports whether id is a node of the graph.
func (n *Net) Contains(id NodeID) bool {
	_, ok := n.index[id]
	return ok
}

// IDs returns the node IDs in insertion order.
func (n *Net) IDs() []NodeID {
	ids := make([]NodeID, len(n.vertices))
	for i, v := range n.vertices {
		ids[i] = v.id
	}
	return ids
}

// Node returns the unit stored at id.
func (n *Net) Node(id NodeID) (node.Unit, bool) {
	v, ok := n.vertex(id)
	if !ok {
		return nil, false
	}
	return v.unit, true
}

// Source returns the source feeding input port of node id.
func (n *Net) Source(id NodeID, port int) (Source, error) {
	v, err := n.lookup(id)
	if err != nil {
		return Source{}, err
	}
	if port < 0 || port >= len(v.sources) {
		return Source{}, fmt.Errorf("%w: node %s input %d of %d", ErrPortRange, id, port, len(v.sources))
	}
	return v.sources[port], nil
}

// OutputSource returns the source feeding global output ch.
func (n *Net) OutputSource(ch int) (Source, error) {
	if ch < 0 || ch >= n.outputs {
		return Source{}, fmt.Errorf("%w: output %d of %d", ErrPortRange, ch, n.outputs)
	}
	return n.outputSources[ch], nil
}

func (n *Net) vertex(id NodeID) (*vertex, bool) {
	i, ok := n.index[id]
	if !ok {
		return nil, false
	}
	return n.vertices[i], true
}

func (n *Net) lookup(id NodeID) (*vertex, error) {
	v, ok := n.vertex(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNode, id)
	}
	return v, nil
}

// Addressed is a setting for one node of a graph.
type Addressed struct {
	Node    NodeID
	Setting node.Setting
}

// For addresses setting to node id of a graph.
func For(id NodeID, setting node.Setting) node.Setting {
	return Addressed{Node: id, Setting: setting}
}

// ID returns a structural identifier derived from the node units in
// insertion order.
func (n *Net) ID() uint64 {
	h := core.Hashk(netTag + uint64(n.inputs)<<16 + uint64(n.outputs))
	for _, v := range n.vertices {
		h = core.Hashk(h + core.Hashk(v.unit.ID()))
	}
	return h
}

func (n *Net) Inputs() int  { return n.inputs }
func (n *Net) Outputs() int { return n.outputs }

// Reset resets every node.
func (n *Net) Reset() {
	for _, v := range n.vertices {
		v.unit.Reset()
	}
}

// SetSampleRate sets the sample rate of every node, including nodes
// added later.
func (n *Net) SetSampleRate(sampleRate float64) {
	n.sampleRate = sampleRate
	for _, v := range n.vertices {
		v.unit.SetSampleRate(sampleRate)
	}
}

// Set delivers a setting made with For to its node. Other settings and
// unknown nodes are ignored.
func (n *Net) Set(setting node.Setting) {
	a, ok := setting.(Addressed)
	if !ok {
		return
	}
	if v, ok := n.vertex(a.Node); ok {
		v.unit.Set(a.Setting)
	}
}

// sorted returns the cached evaluation order. Edits keep the graph
// acyclic, so sorting cannot fail here.
func (n *Net) sorted() []int {
	if n.order == nil {
		order, err := n.sort()
		if err != nil {
			panic(err)
		}
		n.order = order
	}
	return n.order
}

func (n *Net) Tick(input, output []float64) {
	for _, i := range n.sorted() {
		v := n.vertices[i]
		for port, src := range v.sources {
			v.input[port] = n.sample(src, input)
		}
		v.unit.Tick(v.input, v.output)
	}
	for ch, src := range n.outputSources {
		output[ch] = n.sample(src, input)
	}
}

func (n *Net) sample(src Source, input []float64) float64 {
	switch src.Kind {
	case SourceInput:
		return input[src.Port]
	case SourceNode:
		return n.vertices[n.index[src.Node]].output[src.Port]
	default:
		return 0
	}
}

func (n *Net) Process(size int, input, output [][]float64) {
	for _, i := range n.sorted() {
		v := n.vertices[i]
		v.inBlock.Resize(len(v.sources), size)
		for port, src := range v.sources {
			n.fill(v.inBlock.Channel(port)[:size], src, input, size)
		}
		v.outBlock.Resize(v.unit.Outputs(), size)
		v.unit.Process(size, v.inBlock.Channels(), v.outBlock.Channels())
	}
	for ch, src := range n.outputSources {
		n.fill(output[ch][:size], src, input, size)
	}
}

func (n *Net) fill(dst []float64, src Source, input [][]float64, size int) {
	switch src.Kind {
	case SourceInput:
		copy(dst, input[src.Port][:size])
	case SourceNode:
		copy(dst, n.vertices[n.index[src.Node]].outBlock.Channel(src.Port)[:size])
	default:
		clear(dst)
	}
}

// Route propagates descriptors through the nodes in evaluation order.
// Unconnected inputs carry the constant zero.
func (n *Net) Route(input signal.Frame, frequency float64) signal.Frame {
	for _, i := range n.sorted() {
		v := n.vertices[i]
		in := signal.NewFrame(len(v.sources))
		for port, src := range v.sources {
			in[port] = n.descriptor(src, input)
		}
		v.route = v.unit.Route(in, frequency)
	}

	out := signal.NewFrame(n.outputs)
	for ch, src := range n.outputSources {
		out[ch] = n.descriptor(src, input)
	}
	return out
}

func (n *Net) descriptor(src Source, input signal.Frame) signal.Signal {
	switch src.Kind {
	case SourceInput:
		return input[src.Port]
	case SourceNode:
		return n.vertices[n.index[src.Node]].route[src.Port]
	default:
		return signal.NewValue(0)
	}
}
