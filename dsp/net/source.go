package net

import "fmt"

// SourceKind says where a Source reads from.
type SourceKind uint8

const (
	// SourceZero feeds constant zero.
	SourceZero SourceKind = iota
	// SourceInput reads a global input channel.
	SourceInput
	// SourceNode reads an output port of a node.
	SourceNode
)

// Source identifies the signal feeding one node input or one graph output.
// The zero value is a zero source.
type Source struct {
	Kind SourceKind
	Node NodeID
	Port int
}

// Zero returns a zero source.
func Zero() Source { return Source{} }

// Input returns a source reading global input channel ch.
func Input(ch int) Source { return Source{Kind: SourceInput, Port: ch} }

// Output returns a source reading output port of node id.
func Output(id NodeID, port int) Source { return Source{Kind: SourceNode, Node: id, Port: port} }

// String implements fmt.Stringer.
func (s Source) String() string {
	switch s.Kind {
	case SourceInput:
		return fmt.Sprintf("input(%d)", s.Port)
	case SourceNode:
		return fmt.Sprintf("%s:%d", s.Node, s.Port)
	default:
		return "zero"
	}
}
