package utils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V *mat.VecDense
}

func NewVector(N int, dataO ...[]float64) Vector {
	if len(dataO) != 0 {
		if len(dataO[0]) != N {
			panic(fmt.Errorf("mismatch in allocation: NewVector N = %v, len(data[0]) = %v", N, len(dataO[0])))
		}
		return Vector{mat.NewVecDense(N, dataO[0])}
	}
	return Vector{mat.NewVecDense(N, make([]float64, N))}
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)    { return v.V.Dims() }
func (v Vector) At(i, j int) float64 { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix       { return v.V.T() }
func (v Vector) AtVec(i int) float64 { return v.V.AtVec(i) }
func (v Vector) Len() int            { return v.V.Len() }
func (v Vector) Data() []float64     { return v.V.RawVector().Data }

// Chainable methods
func (v Vector) Set(i int, val float64) Vector { v.V.SetVec(i, val); return v }

func (v Vector) Zero() Vector { v.V.Zero(); return v }

func (v Vector) Copy() Vector {
	var (
		data = make([]float64, v.Len())
	)
	copy(data, v.Data())
	return NewVector(len(data), data)
}
