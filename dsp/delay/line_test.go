package delay

import (
	"math"
	"testing"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// --- construction and validation ---

func TestNewValidation(t *testing.T) {
	if _, err := New(0); err == nil {
		t.Fatal("expected error for size=0")
	}

	if _, err := New(-1); err == nil {
		t.Fatal("expected error for size=-1")
	}
}

func TestNewDefaults(t *testing.T) {
	d, err := New(16)
	if err != nil {
		t.Fatal(err)
	}

	if d.Len() != 16 {
		t.Fatalf("Len: got %d want 16", d.Len())
	}

	if d.Mode() != Spline {
		t.Fatalf("default mode: got %v want Spline", d.Mode())
	}
}

func TestNewWithOptions(t *testing.T) {
	d, err := New(16, WithMode(Linear))
	if err != nil {
		t.Fatal(err)
	}

	if d.Mode() != Linear {
		t.Fatalf("mode: got %v want Linear", d.Mode())
	}
}

// --- integer Read/Write ---

func TestReadWrite(t *testing.T) {
	d, err := New(8)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 8; i++ {
		d.Write(float64(i))
	}
	// delay=0 => most recently written (7)
	if got := d.Read(0); got != 7 {
		t.Fatalf("got %v want 7", got)
	}
	// delay=3 => 3 samples before the newest
	if got := d.Read(3); got != 4 {
		t.Fatalf("got %v want 4", got)
	}
	// delay=7 => oldest sample still held
	if got := d.Read(7); got != 0 {
		t.Fatalf("got %v want 0", got)
	}
}

func TestReadWraparound(t *testing.T) {
	d, err := New(4)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 10; i++ {
		d.Write(float64(i))
	}
	if got := d.Read(0); got != 9 {
		t.Fatalf("got %v want 9", got)
	}
	if got := d.Read(3); got != 6 {
		t.Fatalf("got %v want 6", got)
	}
}

func TestShiftIsFixedDelay(t *testing.T) {
	d, err := New(3)
	if err != nil {
		t.Fatal(err)
	}

	in := []float64{1, 2, 3, 4, 5, 6}
	want := []float64{0, 0, 0, 1, 2, 3}
	for i, x := range in {
		if got := d.Shift(x); got != want[i] {
			t.Fatalf("Shift step %d: got %v want %v", i, got, want[i])
		}
	}
}

func TestResizeClears(t *testing.T) {
	d, err := New(4)
	if err != nil {
		t.Fatal(err)
	}

	d.Write(1)
	if err := d.Resize(2); err != nil {
		t.Fatal(err)
	}

	if d.Len() != 2 || d.Read(0) != 0 || d.Read(1) != 0 {
		t.Fatalf("Resize left state behind: len=%d", d.Len())
	}

	if err := d.Resize(0); err == nil {
		t.Fatal("expected error for size=0")
	}
}

func TestReset(t *testing.T) {
	d, err := New(4)
	if err != nil {
		t.Fatal(err)
	}

	d.Write(1)
	d.Write(2)
	d.Reset()

	for i := 0; i < 4; i++ {
		if got := d.Read(i); got != 0 {
			t.Fatalf("after reset Read(%d): got %v want 0", i, got)
		}
	}
}

// --- fractional reads ---

func fillRamp(d *Line) {
	for i := 0; i < d.Len(); i++ {
		d.Write(float64(i))
	}
}

func TestReadFractionalLinearRamp(t *testing.T) {
	d, err := New(16)
	if err != nil {
		t.Fatal(err)
	}

	fillRamp(d)

	if got := d.ReadFractional(3.5); got < 11.49 || got > 11.51 {
		t.Fatalf("got %v want about 11.5", got)
	}
}

func TestReadFractionalNearNewest(t *testing.T) {
	for _, mode := range []Mode{Linear, Spline} {
		d, err := New(8, WithMode(mode))
		if err != nil {
			t.Fatal(err)
		}

		for i := 0; i < 8; i++ {
			d.Write(float64(i + 1))
		}

		if got := d.ReadFractional(0); got != 8 {
			t.Fatalf("mode %v: delay 0 got %v want 8", mode, got)
		}
		if got := d.ReadFractional(1); got != 7 {
			t.Fatalf("mode %v: delay 1 got %v want 7", mode, got)
		}
		if got := d.ReadFractional(0.5); got <= 7 || got >= 8.1 {
			t.Fatalf("mode %v: delay 0.5 got %v want between the two newest samples", mode, got)
		}
	}
}

func TestReadFractionalNegativeClamped(t *testing.T) {
	d, err := New(8)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 8; i++ {
		d.Write(float64(i + 1))
	}

	got := d.ReadFractional(-1.0)
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("negative delay produced %v", got)
	}
}

func TestAllModesExactOnRamp(t *testing.T) {
	for _, mode := range []Mode{Linear, Spline} {
		d, err := New(32, WithMode(mode))
		if err != nil {
			t.Fatal(err)
		}

		fillRamp(d)

		want := float64(d.Len()) - 1 - 5.5
		if got := d.ReadFractional(5.5); !approxEqual(got, want, 1e-10) {
			t.Fatalf("mode %v: got %v want %v", mode, got, want)
		}
	}
}

func TestAllModesSineQuality(t *testing.T) {
	freq := 0.02
	size := 256

	modes := []struct {
		name string
		mode Mode
		tol  float64
	}{
		{"Linear", Linear, 0.01},
		{"Spline", Spline, 1e-4},
	}

	for _, tc := range modes {
		d, err := New(size, WithMode(tc.mode))
		if err != nil {
			t.Fatal(err)
		}

		for i := 0; i < size; i++ {
			d.Write(math.Sin(2 * math.Pi * freq * float64(i)))
		}

		delay := 20.37
		// Read(k) returns the sample written at index size-1-k.
		want := math.Sin(2 * math.Pi * freq * (float64(size-1) - delay))
		got := d.ReadFractional(delay)

		if e := math.Abs(got - want); e > tc.tol {
			t.Fatalf("%s sine: got %v want %v (err=%e, tol=%e)", tc.name, got, want, e, tc.tol)
		}
	}
}

func BenchmarkReadFractionalSpline(b *testing.B) {
	d, _ := New(1024)
	fillRamp(d)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		d.ReadFractional(100.37)
	}
}
