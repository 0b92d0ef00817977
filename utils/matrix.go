package utils

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrSingularMatrix = errors.New("matrix is singular")
	ErrNonFinite      = errors.New("non-finite value")
)

type Matrix struct {
	M        *mat.Dense
	readOnly bool
	name     string
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v\n", nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{
		m,
		false,
		"unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }

// Chainable methods
func (m *Matrix) SetReadOnly(name ...string) Matrix {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
	return *m
}

func (m Matrix) Copy() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
		dataR  = make([]float64, nr*nc)
	)
	copy(dataR, m.M.RawMatrix().Data)
	R = NewMatrix(nr, nc, dataR)
	return
}

func (m Matrix) Set(i, j int, val float64) Matrix { // Changes receiver
	m.checkWritable()
	m.M.Set(i, j, val)
	return m
}

func (m Matrix) Zero() Matrix { // Changes receiver
	m.checkWritable()
	m.M.Zero()
	return m
}

func (m Matrix) MulVec(v Vector) (R Vector) { // Does not change receiver
	var (
		nr, _ = m.Dims()
	)
	R = NewVector(nr)
	R.V.MulVec(m.M, v.V)
	return
}

// Solve returns x with m x = b using an LU factorization of a copy of m.
// Zero pivots return ErrSingularMatrix; NaN or Inf in the inputs or the
// result return ErrNonFinite.
func (m Matrix) Solve(b Vector) (x Vector, err error) {
	var (
		nr, nc = m.Dims()
	)
	if nr != nc || b.Len() != nr {
		err = fmt.Errorf("dimension mismatch: matrix is %dx%d, rhs has %d rows", nr, nc, b.Len())
		return
	}
	if !IsFinite(m) || !IsFinite(b) {
		err = fmt.Errorf("%w in linear system", ErrNonFinite)
		return
	}
	LU := m.Copy()
	iPiv := make([]int, nr)
	if ok := lapack64.Getrf(LU.RawMatrix(), iPiv); !ok {
		err = fmt.Errorf("unable to solve, %w", ErrSingularMatrix)
		return
	}
	x = b.Copy()
	rhs := blas64.General{Rows: nr, Cols: 1, Stride: 1, Data: x.Data()}
	lapack64.Getrs(blas.NoTrans, LU.RawMatrix(), rhs, iPiv)
	if !IsFinite(x) {
		err = fmt.Errorf("%w in solution", ErrNonFinite)
	}
	return
}

func (m Matrix) ConditionNumber() float64 {
	var svd mat.SVD
	if !svd.Factorize(m.M, mat.SVDNone) {
		return 1e16
	}
	values := svd.Values(nil)
	if len(values) == 0 {
		return 1e16
	}
	// Singular values are in descending order
	minVal, maxVal := values[len(values)-1], values[0]
	if minVal < 1e-16 {
		return 1e16
	}
	return maxVal / minVal
}

func (m Matrix) checkWritable() {
	if m.readOnly {
		err := fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.name)
		panic(err)
	}
}
