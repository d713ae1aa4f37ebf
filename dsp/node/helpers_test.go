package node

import (
	"testing"

	"github.com/cwbudde/algo-dspgraph/dsp/delay"
	"github.com/cwbudde/algo-dspgraph/dsp/filter/biquad"
	"github.com/cwbudde/algo-dspgraph/internal/testutil"
)

// smoother is a stable lowpass-shaped biquad.
var smoother = biquad.Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}

func mustDelay(t testing.TB, seconds float64) *Delay {
	t.Helper()
	d, err := NewDelay(seconds)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func mustFractionalDelay(t testing.TB, seconds float64, mode delay.Mode) *FractionalDelay {
	t.Helper()
	d, err := NewFractionalDelay(seconds, mode)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func mustUnit(t testing.TB, u Unit, err error) Unit {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
	return u
}

// tickAll runs u sample by sample over a block.
func tickAll(u Unit, input [][]float64, length int) [][]float64 {
	out := testutil.ZeroBlock(u.Outputs(), length)
	in := make([]float64, u.Inputs())
	frame := make([]float64, u.Outputs())
	for i := range length {
		for ch := range in {
			in[ch] = input[ch][i]
		}
		u.Tick(in, frame)
		for ch, y := range frame {
			out[ch][i] = y
		}
	}
	return out
}

// processAll runs u in uneven chunks over a block.
func processAll(u Unit, input [][]float64, length int) [][]float64 {
	out := testutil.ZeroBlock(u.Outputs(), length)
	chunks := []int{1, 7, 33, 2, 59, 64}
	for pos, k := 0, 0; pos < length; k++ {
		size := min(chunks[k%len(chunks)], length-pos)
		in := make([][]float64, len(input))
		for ch := range input {
			in[ch] = input[ch][pos:]
		}
		o := make([][]float64, len(out))
		for ch := range out {
			o[ch] = out[ch][pos:]
		}
		u.Process(size, in, o)
		pos += size
	}
	return out
}

// requireProcessMatchesTick checks that block processing reproduces
// per-sample ticking on two fresh instances.
func requireProcessMatchesTick(t *testing.T, build func() Unit) {
	t.Helper()
	const length = 300

	ticked, processed := build(), build()
	input := testutil.NoiseBlock(11, ticked.Inputs(), length)

	want := tickAll(ticked, input, length)
	got := processAll(processed, input, length)
	testutil.RequireBlockNearlyEqual(t, got, want, 1e-9)
}
