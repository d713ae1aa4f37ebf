// Package net provides Net, a runtime-editable graph of units that is
// itself a node.Unit.
//
// A Net has fixed input and output counts chosen at construction. Inside,
// it holds an ordered table of boxed units, each with one [Source] per
// input. Units are added with [Net.Push] or [Net.Chain] and wired with the
// Connect and Pipe methods. Every edit is checked: channel counts must
// agree, ports must exist and connections that would close a cycle are
// rejected. Feedback belongs inside units that own delay state.
//
// Tick, Process and Route replay the table in topological order, so a Net
// can be grown one unit at a time and still behave like the equivalent
// static combinator expression.
package net
