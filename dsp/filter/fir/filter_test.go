package fir

import (
	"math"
	"math/cmplx"
	"testing"
)

const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestNewCopiesTaps(t *testing.T) {
	coeffs := []float64{0.25, 0.5, 0.25}
	f := New(coeffs)

	if f.Order() != 2 {
		t.Fatalf("Order: got %d, want 2", f.Order())
	}

	coeffs[0] = 999
	if f.coeffs[0] == 999 {
		t.Error("New did not copy coefficients")
	}

	c := f.Coefficients()
	c[1] = 999
	if f.coeffs[1] == 999 {
		t.Error("Coefficients did not return a copy")
	}
}

func TestProcessSample(t *testing.T) {
	tests := []struct {
		name   string
		coeffs []float64
		input  []float64
		want   []float64
	}{
		{
			name:   "impulse yields taps",
			coeffs: []float64{0.25, 0.5, 0.25},
			input:  []float64{1, 0, 0, 0, 0},
			want:   []float64{0.25, 0.5, 0.25, 0, 0},
		},
		{
			name:   "moving average",
			coeffs: []float64{1.0 / 3, 1.0 / 3, 1.0 / 3},
			input:  []float64{3, 3, 3, 0},
			want:   []float64{1, 2, 3, 2},
		},
		{
			name:   "differentiator",
			coeffs: []float64{1, -1},
			input:  []float64{0, 1, 3, 6},
			want:   []float64{0, 1, 2, 3},
		},
		{
			name:   "single tap gain",
			coeffs: []float64{0.5},
			input:  []float64{1, 2, 3},
			want:   []float64{0.5, 1, 1.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New(tt.coeffs)
			for i, x := range tt.input {
				if y := f.ProcessSample(x); !almostEqual(y, tt.want[i], eps) {
					t.Errorf("sample %d: got %v, want %v", i, y, tt.want[i])
				}
			}
		})
	}
}

func TestProcessBlockToMatchesSample(t *testing.T) {
	coeffs := []float64{0.1, -0.3, 0.5, 0.2}
	input := []float64{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8}

	ref := New(coeffs)
	blk := New(coeffs)
	dst := make([]float64, len(input))
	blk.ProcessBlockTo(dst, input)

	for i, x := range input {
		if want := ref.ProcessSample(x); !almostEqual(dst[i], want, eps) {
			t.Errorf("sample %d: block=%v sample=%v", i, dst[i], want)
		}
	}
}

func TestResetAndSetCoefficients(t *testing.T) {
	f := New([]float64{0, 1})
	f.ProcessSample(5)
	f.Reset()

	if y := f.ProcessSample(0); y != 0 {
		t.Fatalf("after reset: got %v, want 0", y)
	}

	f.ProcessSample(2)
	f.SetCoefficients([]float64{0, 2})
	if y := f.ProcessSample(0); y != 4 {
		t.Fatalf("same-length swap should keep history: got %v, want 4", y)
	}

	f.SetCoefficients([]float64{1, 1, 1})
	if f.Order() != 2 {
		t.Fatalf("Order after resize: got %d", f.Order())
	}
	if y := f.ProcessSample(1); y != 1 {
		t.Fatalf("resize should clear history: got %v, want 1", y)
	}
}

func TestResponse(t *testing.T) {
	sr := 48000.0
	f := New([]float64{0.25, 0.5, 0.25})

	if h := f.Response(0, sr); !almostEqual(cmplx.Abs(h), 1, 1e-12) {
		t.Errorf("DC gain: got %v, want 1", cmplx.Abs(h))
	}

	if h := New([]float64{1, -1}).Response(0, sr); !almostEqual(cmplx.Abs(h), 0, 1e-12) {
		t.Errorf("differentiator DC gain: got %v, want 0", cmplx.Abs(h))
	}

	for _, freq := range []float64{100, 1000, 10000} {
		w := 2 * math.Pi * freq / sr
		want := 0.25 + 0.5*cmplx.Rect(1, -w) + 0.25*cmplx.Rect(1, -2*w)
		h := f.Response(freq, sr)

		if cmplx.Abs(h-want) > 1e-12 {
			t.Errorf("freq=%v: got %v, want %v", freq, h, want)
		}

		if db := f.MagnitudeDB(freq, sr); !almostEqual(db, 20*math.Log10(cmplx.Abs(want)), 1e-9) {
			t.Errorf("freq=%v: MagnitudeDB=%v", freq, db)
		}
	}
}
