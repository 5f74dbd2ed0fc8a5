// Package matrix wraps the sparse solver with the complex nodal matrix
// used by AC impedance analysis.
package matrix

import (
	"fmt"

	"github.com/edp1096/sparse"
)

// Stamper is the surface analysis code uses to load admittances and test
// currents into the nodal matrix. 1-based indexing, index 0 is ground and
// must be skipped by the caller.
type Stamper interface {
	AddComplexElement(i, j int, real, imag float64)
	AddComplexRHS(i int, real, imag float64)
}

type NodalMatrix struct {
	Size     int
	matrix   *sparse.Matrix
	rhs      []float64
	rhsImag  []float64
	solution []float64
	config   *sparse.Configuration
}

var _ Stamper = (*NodalMatrix)(nil)

func NewNodalMatrix(size int) (*NodalMatrix, error) {
	config := &sparse.Configuration{
		Real:                    true,
		Complex:                 true,
		SeparatedComplexVectors: false,
		Expandable:              true,
		Translate:               false,
		ModifiedNodal:           true,
		TiesMultiplier:          5,
		PrinterWidth:            140,
		Annotate:                0,
	}

	mat, err := sparse.Create(int64(size), config)
	if err != nil {
		return nil, fmt.Errorf("creating sparse matrix: %v", err)
	}

	// Interleaved complex vectors, 1-based indexing
	vectorSize := (size + 1) * 2

	return &NodalMatrix{
		Size:     size,
		matrix:   mat,
		rhs:      make([]float64, vectorSize),
		rhsImag:  make([]float64, 1),
		solution: make([]float64, vectorSize),
		config:   config,
	}, nil
}

// SetupElements pre-creates every element so the sparsity pattern is fixed
// before the first factorization.
func (m *NodalMatrix) SetupElements() {
	for i := 1; i <= m.Size; i++ {
		for j := 1; j <= m.Size; j++ {
			m.matrix.GetElement(int64(i), int64(j))
		}
	}
}

func (m *NodalMatrix) AddComplexElement(i, j int, real, imag float64) {
	if i <= 0 || j <= 0 || i > m.Size || j > m.Size {
		return
	}
	element := m.matrix.GetElement(int64(i), int64(j))
	element.Real += real
	element.Imag += imag
}

func (m *NodalMatrix) AddComplexRHS(i int, real, imag float64) {
	if i <= 0 || i > m.Size {
		return
	}
	m.rhs[2*i] += real
	m.rhs[2*i+1] += imag
}

func (m *NodalMatrix) Clear() {
	m.matrix.Clear()
	for i := range m.rhs {
		m.rhs[i] = 0
	}
	for i := range m.rhsImag {
		m.rhsImag[i] = 0
	}
}

func (m *NodalMatrix) Solve() error {
	var err error

	err = m.matrix.Factor()
	if err != nil {
		return fmt.Errorf("matrix factorization failed: %v", err)
	}

	m.solution, _, err = m.matrix.SolveComplex(m.rhs, m.rhsImag)
	if err != nil {
		return fmt.Errorf("matrix solve failed: %v", err)
	}

	return nil
}

// GetComplexSolution reads the solved value for node i. The solution
// vector shares the interleaved layout of the RHS: real at 2i, imaginary
// at 2i+1.
func (m *NodalMatrix) GetComplexSolution(i int) (float64, float64) {
	if i <= 0 || i > m.Size {
		return 0, 0
	}
	return m.solution[2*i], m.solution[2*i+1]
}

func (m *NodalMatrix) Destroy() {
	if m.matrix != nil {
		m.matrix.Destroy()
	}
}
