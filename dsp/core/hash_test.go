package core

import "testing"

func TestRndRange(t *testing.T) {
	for i := int64(-100); i < 100; i++ {
		v := Rnd(i)
		if v < 0 || v >= 1 {
			t.Fatalf("Rnd(%d) = %v out of [0, 1)", i, v)
		}
	}

	if Rnd(1) == Rnd(2) {
		t.Fatal("Rnd should differ for different indices")
	}
}

func TestHashDeterministic(t *testing.T) {
	if Hashk(42) != Hashk(42) || Hashw(42) != Hashw(42) {
		t.Fatal("hashes must be deterministic")
	}

	if Hashk(1) == Hashk(2) {
		t.Fatal("Hashk collision on adjacent inputs")
	}
}

func TestRandFloat11(t *testing.T) {
	a := NewRand(7)
	b := NewRand(7)

	for range 1000 {
		x := a.Float11()
		if x < -1 || x > 1 {
			t.Fatalf("Float11 = %v out of range", x)
		}

		if y := b.Float11(); x != y {
			t.Fatalf("same seed diverged: %v vs %v", x, y)
		}
	}
}
