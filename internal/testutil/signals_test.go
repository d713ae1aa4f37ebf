package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1.0, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	for i, v := range s {
		if v < -1 || v > 1 {
			t.Fatalf("s[%d] = %v out of range", i, v)
		}
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 0.5, 64)
	b := DeterministicNoise(42, 0.5, 64)
	c := DeterministicNoise(43, 0.5, 64)

	same := true
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
		if math.Abs(a[i]) > 0.5 {
			t.Fatalf("a[%d] = %v exceeds amplitude", i, a[i])
		}
		if a[i] != c[i] {
			same = false
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestNoiseBlock(t *testing.T) {
	b := NoiseBlock(7, 3, 16)
	if len(b) != 3 || len(b[2]) != 16 {
		t.Fatalf("shape = %dx%d, want 3x16", len(b), len(b[2]))
	}
	RequireSliceNearlyEqual(t, b[1], DeterministicNoise(8, 1, 16), 0)
}

func TestZeroBlock(t *testing.T) {
	b := ZeroBlock(2, 4)
	RequireBlockNearlyEqual(t, b, [][]float64{{0, 0, 0, 0}, {0, 0, 0, 0}}, 0)
}

func TestImpulse(t *testing.T) {
	RequireSliceNearlyEqual(t, Impulse(5, 3), []float64{0, 0, 0, 1, 0}, 0)
	RequireSliceNearlyEqual(t, Impulse(4, 10), []float64{0, 0, 0, 0}, 0)
}

func TestDC(t *testing.T) {
	RequireSliceNearlyEqual(t, DC(0.5, 3), []float64{0.5, 0.5, 0.5}, 0)
}
