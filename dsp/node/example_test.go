package node_test

import (
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-dspgraph/dsp/node"
	"github.com/cwbudde/algo-dspgraph/dsp/signal"
)

func ExamplePanWeights() {
	for _, pan := range []float64{-1, 0, 1} {
		l, r := node.PanWeights(pan)
		fmt.Printf("pan %+.0f: left %.4f right %.4f\n", pan, l, r)
	}
	// Output:
	// pan -1: left 1.0000 right 0.0000
	// pan +0: left 0.7071 right 0.7071
	// pan +1: left 0.0000 right 1.0000
}

func ExampleSum() {
	// A comb filter: the direct path plus a one-sample delay.
	comb := node.Must(node.Sum(node.Pass(), node.Tick()))

	for _, f := range []float64{0, 11025, 22050} {
		out := comb.Route(signal.Frame{signal.NewResponse(1, 0)}, f)
		g, _ := out[0].Response()
		fmt.Printf("%5.0f Hz: |H| = %.3f\n", f, cmplx.Abs(g))
	}
	// Output:
	//     0 Hz: |H| = 2.000
	// 11025 Hz: |H| = 1.414
	// 22050 Hz: |H| = 0.000
}

func ExamplePipe() {
	_, err := node.Pipe(node.Split(2), node.Pass())
	fmt.Println(err)
	// Output:
	// node: channel count mismatch: pipe stage 0 has 2 outputs but stage 1 has 1 inputs
}
