// Package node defines the processing-unit contract and the combinator
// algebra that builds larger units from smaller ones.
//
// Every [Unit] has input and output channel counts fixed at construction,
// a per-sample [Unit.Tick], a block [Unit.Process] that must agree with
// repeated ticks, and a [Unit.Route] that carries [signal.Signal]
// descriptors instead of samples so the transfer function of a composed
// graph can be evaluated without rendering audio.
//
// Combinators ([Pipe], [Sum], [Stack], [Branch], [Bus] and their n-ary
// and generator forms) check channel counts when they are built and return
// an error wrapping [ErrChannelMismatch] on disagreement. Wrap a call in
// [Must] to panic instead:
//
//	chain := node.Must(node.Pipe(node.Split(2), node.Join(2)))
//
// Units are not safe for concurrent use. Combinators own their children.
package node
