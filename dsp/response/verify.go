package response

import (
	"errors"
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-dspgraph/dsp/node"
)

var (
	// ErrNoResponse is returned by Verify when Route reports no definite
	// response at a frequency.
	ErrNoResponse = errors.New("response: no definite response")
	// ErrMismatch is returned by Verify when the routed and measured
	// responses disagree.
	ErrMismatch = errors.New("response: routed and measured responses differ")
)

// Grid returns the standard verification frequencies: 10 Hz steps below
// 1 kHz, then 100 Hz steps up to maxFrequency.
func Grid(maxFrequency float64) []float64 {
	var freqs []float64
	for f := 10.0; f <= maxFrequency; {
		freqs = append(freqs, f)
		if f < 1000 {
			f += 10
		} else {
			f += 100
		}
	}
	return freqs
}

// Verify measures the impulse response of u and checks that Route agrees
// with it at every frequency, snapped to the nearest FFT bin. A nil
// frequency list selects Grid(22000).
func Verify(u node.Unit, frequencies []float64, opts ...Option) error {
	cfg, err := applyOptions(u, opts)
	if err != nil {
		return err
	}

	m, err := Measure(u, opts...)
	if err != nil {
		return err
	}

	if frequencies == nil {
		frequencies = Grid(22000)
	}

	for _, f := range frequencies {
		measured, fi := m.At(f)
		routed, ok := Response(u, cfg.output, fi)
		if !ok {
			return fmt.Errorf("%w: output %d at %g Hz", ErrNoResponse, cfg.output, fi)
		}
		if !Equal(routed, measured) {
			return fmt.Errorf("%w: output %d at %g Hz: routed |%g| ∠%g, measured |%g| ∠%g",
				ErrMismatch, cfg.output, fi,
				cmplx.Abs(routed), cmplx.Phase(routed), cmplx.Abs(measured), cmplx.Phase(measured))
		}
	}
	return nil
}

// Check verifies each unit in turn and joins the failures.
func Check(units []node.Unit, frequencies []float64, opts ...Option) error {
	var errs []error
	for i, u := range units {
		if err := Verify(u, frequencies, opts...); err != nil {
			errs = append(errs, fmt.Errorf("unit %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}
