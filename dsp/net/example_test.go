package net_test

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-dspgraph/dsp/net"
	"github.com/cwbudde/algo-dspgraph/dsp/node"
)

func ExampleNet_Chain() {
	n := net.New(1, 1)
	if _, err := n.Chain(node.Scale(node.Pass(), 0.5)); err != nil {
		panic(err)
	}
	if _, err := n.Chain(node.Tick()); err != nil {
		panic(err)
	}

	fmt.Println(node.TickFrame(n, []float64{4}))
	fmt.Println(node.TickFrame(n, []float64{0}))
	// Output:
	// [0]
	// [2]
}

func ExampleNet_Connect() {
	n := net.New(1, 1)
	a := n.Push(node.Pass())
	b := n.Push(node.Pass())

	if err := n.Connect(a, 0, b, 0); err != nil {
		panic(err)
	}
	err := n.Connect(b, 0, a, 0)
	fmt.Println(errors.Is(err, net.ErrCycle))
	// Output:
	// true
}
