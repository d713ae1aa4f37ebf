// Package signal describes what flows through a unit graph during an
// analytic response query.
//
// A [Signal] is not a sample value. It describes, for one channel and one
// analysis frequency, how that channel relates to the query input: not at
// all ([KindUnknown]), as a constant ([KindValue]), with a known latency
// only ([KindLatency]), or as a complex gain ([KindResponse]). Units
// transform descriptors in Route the same way they transform samples in
// Tick, so a whole graph can be queried without rendering audio.
package signal

import (
	"fmt"
	"math"
)

// Kind classifies a descriptor.
type Kind uint8

const (
	// KindUnknown carries no definite response. It is the zero value.
	KindUnknown Kind = iota
	// KindValue is a constant that does not depend on the query input.
	KindValue
	// KindLatency depends on the query input with a known latency but
	// without a linear response.
	KindLatency
	// KindResponse is a complex gain relative to the query input.
	KindResponse
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindUnknown:
		return "unknown"
	case KindValue:
		return "value"
	case KindLatency:
		return "latency"
	case KindResponse:
		return "response"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Signal is a frequency-response descriptor for one channel.
// Latencies are in samples.
type Signal struct {
	Kind    Kind
	Value   float64
	Gain    complex128
	Latency float64
}

// NewValue returns a constant descriptor.
func NewValue(x float64) Signal {
	return Signal{Kind: KindValue, Value: x}
}

// NewLatency returns a latency-only descriptor.
func NewLatency(latency float64) Signal {
	return Signal{Kind: KindLatency, Latency: latency}
}

// NewResponse returns a complex gain descriptor.
func NewResponse(gain complex128, latency float64) Signal {
	return Signal{Kind: KindResponse, Gain: gain, Latency: latency}
}

// Response returns the complex gain and true if s is a response.
func (s Signal) Response() (complex128, bool) {
	if s.Kind != KindResponse {
		return 0, false
	}
	return s.Gain, true
}

// String implements fmt.Stringer.
func (s Signal) String() string {
	switch s.Kind {
	case KindValue:
		return fmt.Sprintf("value(%g)", s.Value)
	case KindLatency:
		return fmt.Sprintf("latency(%g)", s.Latency)
	case KindResponse:
		return fmt.Sprintf("response(%g, %g)", s.Gain, s.Latency)
	default:
		return "unknown"
	}
}

// Scale multiplies the descriptor by a constant factor.
func (s Signal) Scale(factor float64) Signal {
	switch s.Kind {
	case KindValue:
		return NewValue(s.Value * factor)
	case KindResponse:
		return NewResponse(s.Gain*complex(factor, 0), s.Latency)
	default:
		return s
	}
}

// Filter applies a linear filter with the given latency and gain
// transform. Constants lose their definite value because the filter's
// DC behaviour is not known here.
func (s Signal) Filter(latency float64, gain func(complex128) complex128) Signal {
	switch s.Kind {
	case KindResponse:
		return NewResponse(gain(s.Gain), s.Latency+latency)
	case KindLatency:
		return NewLatency(s.Latency + latency)
	default:
		return Signal{}
	}
}

// Delay adds latency. Constants stay constant under a pure delay.
func (s Signal) Delay(latency float64) Signal {
	switch s.Kind {
	case KindLatency:
		return NewLatency(s.Latency + latency)
	case KindResponse:
		return NewResponse(s.Gain, s.Latency+latency)
	default:
		return s
	}
}

// CombineLinear merges two descriptors that are combined by a linear
// operation, for example two paths summed into one channel. value folds
// constants and gain folds complex gains; a constant contributes a zero
// gain to the combination. Latency is the minimum of the known latencies.
func (s Signal) CombineLinear(
	other Signal,
	value func(x, y float64) float64,
	gain func(x, y complex128) complex128,
) Signal {
	if s.Kind == KindUnknown || other.Kind == KindUnknown {
		return Signal{}
	}

	switch {
	case s.Kind == KindValue && other.Kind == KindValue:
		return NewValue(value(s.Value, other.Value))
	case s.Kind == KindValue && other.Kind == KindResponse:
		return NewResponse(gain(0, other.Gain), other.Latency)
	case s.Kind == KindResponse && other.Kind == KindValue:
		return NewResponse(gain(s.Gain, 0), s.Latency)
	case s.Kind == KindResponse && other.Kind == KindResponse:
		return NewResponse(gain(s.Gain, other.Gain), math.Min(s.Latency, other.Latency))
	default:
		return NewLatency(minLatency(s, other))
	}
}

// CombineNonlinear merges two descriptors combined by an arbitrary
// pointwise operation. Only constants survive with a definite value.
func (s Signal) CombineNonlinear(other Signal, value func(x, y float64) float64) Signal {
	if s.Kind == KindUnknown || other.Kind == KindUnknown {
		return Signal{}
	}

	if s.Kind == KindValue && other.Kind == KindValue {
		return NewValue(value(s.Value, other.Value))
	}

	return NewLatency(minLatency(s, other))
}

// Add is the descriptor of the sum of two channels.
func (s Signal) Add(other Signal) Signal {
	return s.CombineLinear(other,
		func(x, y float64) float64 { return x + y },
		func(x, y complex128) complex128 { return x + y })
}

// Sub is the descriptor of the difference of two channels.
func (s Signal) Sub(other Signal) Signal {
	return s.CombineLinear(other,
		func(x, y float64) float64 { return x - y },
		func(x, y complex128) complex128 { return x - y })
}

// Mul is the descriptor of the product of two channels. A product with a
// constant is a scaling; any other product is nonlinear.
func (s Signal) Mul(other Signal) Signal {
	switch {
	case s.Kind == KindValue && other.Kind != KindUnknown:
		return other.Scale(s.Value)
	case other.Kind == KindValue && s.Kind != KindUnknown:
		return s.Scale(other.Value)
	default:
		return s.CombineNonlinear(other, func(x, y float64) float64 { return x * y })
	}
}

// minLatency returns the smallest latency among input-dependent descriptors.
func minLatency(a, b Signal) float64 {
	switch {
	case a.Kind == KindValue:
		return b.Latency
	case b.Kind == KindValue:
		return a.Latency
	default:
		return math.Min(a.Latency, b.Latency)
	}
}

// Frame holds one descriptor per channel.
type Frame []Signal

// NewFrame returns a frame of n unknown descriptors.
func NewFrame(n int) Frame {
	return make(Frame, n)
}

// Copy returns an independent copy of f.
func (f Frame) Copy() Frame {
	out := make(Frame, len(f))
	copy(out, f)
	return out
}
