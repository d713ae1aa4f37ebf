package core

import "testing"

func TestWeightingNormalizedAt1kHz(t *testing.T) {
	if got := AWeight(1000); !NearlyEqual(got, 1, 1e-3) {
		t.Fatalf("AWeight(1k) = %v, want ~1", got)
	}

	if got := MWeight(1000); !NearlyEqual(got, 1, 1e-3) {
		t.Fatalf("MWeight(1k) = %v, want ~1", got)
	}

	if AWeight(50) >= AWeight(1000) {
		t.Fatal("A-weighting should attenuate low frequencies")
	}
}
