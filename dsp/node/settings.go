package node

// Setting types understood by the units in this package.
type (
	// Position sets a panner position in [-1, 1].
	Position float64
	// Value sets every channel of a constant.
	Value float64
	// Values sets the channels of a constant. The length must match.
	Values []float64
	// Cutoff sets a one-pole filter cutoff in Hz.
	Cutoff float64
	// Frequency sets an oscillator frequency in Hz.
	Frequency float64
	// Seed reseeds a noise generator.
	Seed uint64
	// Matrix replaces a mixing matrix of the same shape.
	Matrix [][]float64
	// Taps replaces FIR coefficients.
	Taps []float64
)

// Addressed routes a setting to one child of a combinator.
type Addressed struct {
	Index   int
	Setting Setting
}

// At addresses setting to child index of a combinator. Addresses nest:
// At(1, At(0, Position(0.5))) reaches the first child of the second child.
func At(index int, setting Setting) Setting {
	return Addressed{Index: index, Setting: setting}
}

// forward delivers an addressed setting to the matching child.
func forward(children []Unit, setting Setting) {
	a, ok := setting.(Addressed)
	if !ok || a.Index < 0 || a.Index >= len(children) {
		return
	}
	children[a.Index].Set(a.Setting)
}
