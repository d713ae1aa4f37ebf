package core

import "math"

// Lerp interpolates linearly from a (t = 0) to b (t = 1).
func Lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// Lerp11 is Lerp with t in [-1, 1].
func Lerp11(a, b, t float64) float64 {
	return Lerp(a, b, t*0.5+0.5)
}

// Delerp recovers t from a linearly interpolated x.
// A zero-length interval yields Inf or NaN.
func Delerp(a, b, x float64) float64 {
	return (x - a) / (b - a)
}

// Delerp11 recovers t in [-1, 1] from a linearly interpolated x.
func Delerp11(a, b, x float64) float64 {
	return (x-a)/(b-a)*2 - 1
}

// Xerp interpolates exponentially from a to b. a and b must be positive;
// non-positive endpoints propagate NaN.
func Xerp(a, b, t float64) float64 {
	return Exp(Lerp(Log(a), Log(b), t))
}

// Xerp11 is Xerp with t in [-1, 1].
func Xerp11(a, b, t float64) float64 {
	return Exp(Lerp(Log(a), Log(b), t*0.5+0.5))
}

// Dexerp recovers t from an exponentially interpolated x. a, b, x > 0.
func Dexerp(a, b, x float64) float64 {
	return Log(x/a) / Log(b/a)
}

// Dexerp11 recovers t in [-1, 1] from an exponentially interpolated x.
func Dexerp11(a, b, x float64) float64 {
	return Log(x/a)/Log(b/a)*2 - 1
}

// Spline is Catmull-Rom interpolation between y1 (x = 0) and y2 (x = 1),
// with y0 and y3 shaping the end slopes. Overshoot is at most 1/8 of the range.
func Spline(y0, y1, y2, y3, x float64) float64 {
	return y1 + x/2*(y2-y0+x*(2*y0-5*y1+4*y2-y3+x*(3*(y1-y2)+y3-y0)))
}

// SplineMono is monotonic cubic interpolation (Steffen). It never overshoots.
func SplineMono(y0, y1, y2, y3, x float64) float64 {
	d0 := y1 - y0
	d1 := y2 - y1
	d2 := y3 - y2
	d1d := (sign(d0) + sign(d1)) * math.Min(d0+d1, math.Min(math.Abs(d0), math.Abs(d1)))
	d2d := (sign(d1) + sign(d2)) * math.Min(d1+d2, math.Min(math.Abs(d1), math.Abs(d2)))

	return x*x*x*(2*y1-2*y2+d1d+d2d) +
		x*x*(-3*y1+3*y2-2*d1d-d2d) +
		x*d1d +
		y1
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Softsign is x / (1 + |x|).
func Softsign(x float64) float64 {
	return x / (1 + math.Abs(x))
}

// Softexp is an exp-like curve, second order continuous, with
// Softexp(0) = Softexp'(0) = 1 and Softexp(x) >= 0.
func Softexp(x float64) float64 {
	p := math.Max(x, 0)
	return p*p + p + 1/(1+p-x)
}

// Softmix is a soft minimum when bias < 0, a soft maximum when bias > 0
// and the average when bias = 0.
func Softmix(x, y, bias float64) float64 {
	xw := Softexp(x * bias)
	yw := Softexp(y * bias)

	return (x*xw + y*yw) / (xw + yw + 1e-10)
}

// Smooth3 is the 3rd degree easing polynomial.
func Smooth3(x float64) float64 {
	return (3 - 2*x) * x * x
}

// Smooth5 is the 5th degree easing polynomial.
func Smooth5(x float64) float64 {
	return ((x*6-15)*x + 10) * x * x * x
}

// Semitone converts a semitone interval to a frequency ratio.
func Semitone(x float64) float64 {
	return math.Exp2(x / 12)
}

// MidiHz converts a MIDI note number to Hz (69 -> 440 Hz).
func MidiHz(x float64) float64 {
	return 440 * math.Exp2((x-69)/12)
}

// BpmHz converts beats per minute to Hz.
func BpmHz(bpm float64) float64 {
	return bpm / 60
}

// SinHz is a sine at hz evaluated at time t seconds.
func SinHz(hz, t float64) float64 {
	return math.Sin(t * hz * 2 * math.Pi)
}

// CosHz is a cosine at hz evaluated at time t seconds.
func CosHz(hz, t float64) float64 {
	return math.Cos(t * hz * 2 * math.Pi)
}
