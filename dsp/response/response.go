package response

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-dspgraph/dsp/core"
	"github.com/cwbudde/algo-dspgraph/dsp/node"
	"github.com/cwbudde/algo-dspgraph/dsp/signal"
)

// Comparison tolerances used by Equal.
const (
	AmplitudeToleranceDB = 0.05
	PhaseTolerance       = 1e-4 * 2 * math.Pi
	AbsoluteTolerance    = 1e-9
)

// latencyProbe is the frequency at which Latency routes. Latency
// descriptors do not depend on frequency.
const latencyProbe = 1000.0

// Response returns the complex gain from input 0 of u to output at
// frequency Hz. Other inputs carry the constant zero. It reports false
// when u has no inputs, output is out of range, or the output has no
// definite linear response.
func Response(u node.Unit, output int, frequency float64) (complex128, bool) {
	if u.Inputs() == 0 || output < 0 || output >= u.Outputs() {
		return 0, false
	}

	in := signal.NewFrame(u.Inputs())
	in[0] = signal.NewResponse(1, 0)
	for i := 1; i < len(in); i++ {
		in[i] = signal.NewValue(0)
	}

	return u.Route(in, frequency)[output].Response()
}

// Latency returns the smallest latency in samples from any input to any
// output of u. It reports false when no output depends on the inputs.
func Latency(u node.Unit) (float64, bool) {
	in := signal.NewFrame(u.Inputs())
	for i := range in {
		in[i] = signal.NewLatency(0)
	}

	latency, found := math.Inf(1), false
	for _, s := range u.Route(in, latencyProbe) {
		if s.Kind == signal.KindLatency || s.Kind == signal.KindResponse {
			latency = math.Min(latency, s.Latency)
			found = true
		}
	}
	if !found {
		return 0, false
	}
	return latency, true
}

// Equal reports whether two complex responses agree in magnitude within
// AmplitudeToleranceDB and in phase within PhaseTolerance. Phase is not
// compared when both magnitudes are within AbsoluteTolerance of zero.
func Equal(x, y complex128) bool {
	amp := core.DBToLinear(AmplitudeToleranceDB)
	xn, yn := cmplx.Abs(x), cmplx.Abs(y)
	if xn/amp-AbsoluteTolerance > yn || xn*amp+AbsoluteTolerance < yn {
		return false
	}
	if xn <= AbsoluteTolerance && yn <= AbsoluteTolerance {
		return true
	}

	d := math.Abs(cmplx.Phase(x) - cmplx.Phase(y))
	d = math.Min(d, math.Abs(d-2*math.Pi))
	return d <= PhaseTolerance
}
