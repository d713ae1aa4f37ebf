package node

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-dspgraph/dsp/signal"
)

func TestPanWeights(t *testing.T) {
	tests := []struct {
		pan         float64
		left, right float64
	}{
		{0, math.Sqrt2 / 2, math.Sqrt2 / 2},
		{-1, 1, 0},
		{1, 0, 1},
		{-3, 1, 0},
		{2, 0, 1},
	}

	for _, tt := range tests {
		l, r := PanWeights(tt.pan)
		if math.Abs(l-tt.left) > 1e-12 || math.Abs(r-tt.right) > 1e-12 {
			t.Errorf("PanWeights(%v) = (%v, %v), want (%v, %v)", tt.pan, l, r, tt.left, tt.right)
		}
	}
}

func TestPanWeightsEqualPower(t *testing.T) {
	for i := 0; i <= 200; i++ {
		pan := -1 + float64(i)/100
		l, r := PanWeights(pan)
		if p := l*l + r*r; math.Abs(p-1) > 1e-12 {
			t.Fatalf("pan %v: power %v, want 1", pan, p)
		}
		if l < 0 || r < 0 {
			t.Fatalf("pan %v: negative weight (%v, %v)", pan, l, r)
		}
	}
}

func TestPannerTick(t *testing.T) {
	p := Pan(0.5)
	l, r := PanWeights(0.5)

	out := TickFrame(p, []float64{2})
	if out[0] != 2*l || out[1] != 2*r {
		t.Fatalf("Tick = %v, want [%v %v]", out, 2*l, 2*r)
	}

	p.Set(Position(-1))
	out = TickFrame(p, []float64{2})
	if math.Abs(out[0]-2) > 1e-12 || math.Abs(out[1]) > 1e-12 {
		t.Fatalf("hard left Tick = %v, want [2 0]", out)
	}
}

func TestPannerControlInput(t *testing.T) {
	p, err := NewPanner(2, 0)
	if err != nil {
		t.Fatal(err)
	}

	out := TickFrame(p, []float64{1, 1})
	if math.Abs(out[0]) > 1e-12 || math.Abs(out[1]-1) > 1e-12 {
		t.Fatalf("Tick with control 1 = %v, want [0 1]", out)
	}

	// Route freezes the weights left by the last control value.
	TickFrame(p, []float64{1, -0.25})
	l, r := PanWeights(-0.25)
	route := p.Route(signal.Frame{signal.NewResponse(1, 0), signal.NewValue(0)}, 1000)

	gl, okl := route[0].Response()
	gr, okr := route[1].Response()
	if !okl || !okr || gl != complex(l, 0) || gr != complex(r, 0) {
		t.Fatalf("Route = %v, want responses (%v, %v)", route, l, r)
	}
}

func TestPannerRouteScalesMonoInput(t *testing.T) {
	p := Pan(0)
	route := p.Route(signal.Frame{signal.NewValue(2)}, 100)

	w := math.Sqrt2 / 2
	for i, s := range route {
		if s.Kind != signal.KindValue || math.Abs(s.Value-2*w) > 1e-12 {
			t.Fatalf("route[%d] = %v, want value(%v)", i, s, 2*w)
		}
	}
}
