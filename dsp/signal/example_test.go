package signal_test

import (
	"fmt"

	"github.com/cwbudde/algo-dspgraph/dsp/signal"
)

func ExampleSignal_Add() {
	direct := signal.NewResponse(0.5, 0)
	echo := signal.NewResponse(0.25i, 3)
	offset := signal.NewValue(1)

	fmt.Println(direct.Add(echo))
	fmt.Println(direct.Add(offset))
	fmt.Println(offset.Add(signal.NewValue(2)))
	fmt.Println(direct.Add(signal.Signal{}))

	// Output:
	// response((0.5+0.25i), 0)
	// response((0.5+0i), 0)
	// value(3)
	// unknown
}

func ExampleSignal_Mul() {
	x := signal.NewResponse(2, 1)

	fmt.Println(x.Mul(signal.NewValue(0.5)))
	fmt.Println(x.Mul(x))

	// Output:
	// response((1+0i), 1)
	// latency(1)
}
