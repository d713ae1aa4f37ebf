package node

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-dspgraph/dsp/signal"
)

// Mixer is a static mixing matrix with M inputs and N outputs. Output i
// is the dot product of the input frame with row i.
type Mixer struct {
	matrix  [][]float64
	inputs  int
	scratch []float64
}

// NewMixer returns a mixer for an N×M matrix. Rows must be non-empty and
// of equal length. The matrix is copied.
func NewMixer(matrix [][]float64) (*Mixer, error) {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return nil, fmt.Errorf("%w: mixer matrix must be at least 1x1", ErrInvalidArgument)
	}

	inputs := len(matrix[0])
	m := &Mixer{matrix: make([][]float64, len(matrix)), inputs: inputs}
	for i, row := range matrix {
		if len(row) != inputs {
			return nil, fmt.Errorf("%w: mixer row %d has %d columns, want %d",
				ErrInvalidArgument, i, len(row), inputs)
		}
		m.matrix[i] = append([]float64(nil), row...)
	}
	return m, nil
}

// Matrix returns a copy of the mixing matrix.
func (m *Mixer) Matrix() [][]float64 {
	out := make([][]float64, len(m.matrix))
	for i, row := range m.matrix {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

// ID depends on the matrix shape, not on its coefficients.
func (m *Mixer) ID() uint64 {
	return structID(idMixer, uint64(m.inputs), uint64(len(m.matrix)))
}

func (m *Mixer) Inputs() int           { return m.inputs }
func (m *Mixer) Outputs() int          { return len(m.matrix) }
func (m *Mixer) Reset()                {}
func (m *Mixer) SetSampleRate(float64) {}

// Set accepts a Matrix of the same shape.
func (m *Mixer) Set(setting Setting) {
	matrix, ok := setting.(Matrix)
	if !ok || len(matrix) != len(m.matrix) {
		return
	}
	for _, row := range matrix {
		if len(row) != m.inputs {
			return
		}
	}
	for i, row := range matrix {
		copy(m.matrix[i], row)
	}
}

// Tick writes the matrix product of the input frame.
func (m *Mixer) Tick(input, output []float64) {
	for i, row := range m.matrix {
		var y float64
		for j, c := range row {
			y += input[j] * c
		}
		output[i] = y
	}
}

// Process is Tick over a block.
func (m *Mixer) Process(size int, input, output [][]float64) {
	if cap(m.scratch) < size {
		m.scratch = make([]float64, size)
	}
	tmp := m.scratch[:size]

	for i, row := range m.matrix {
		y := output[i][:size]
		clear(y)
		for j, c := range row {
			vecmath.ScaleBlock(tmp, input[j][:size], c)
			vecmath.AddBlockInPlace(y, tmp)
		}
	}
}

// Route combines the upstream descriptors linearly, so paths reaching
// one output interfere at the query frequency.
func (m *Mixer) Route(input signal.Frame, _ float64) signal.Frame {
	out := signal.NewFrame(len(m.matrix))
	for i, row := range m.matrix {
		out[i] = input[0].Scale(row[0])
		for j := 1; j < len(row); j++ {
			out[i] = out[i].Add(input[j].Scale(row[j]))
		}
	}
	return out
}
