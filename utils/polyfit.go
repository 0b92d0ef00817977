package utils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// PolyFit returns least-squares coefficients c[0] + c[1] x + ... + c[degree] x^degree
// through the points (x[i], y[i]).
func PolyFit(x, y []float64, degree int) (c []float64, err error) {
	var (
		np = len(x)
		nc = degree + 1
	)
	switch {
	case len(y) != np:
		err = fmt.Errorf("polyfit: %d abscissas and %d ordinates", np, len(y))
		return
	case degree < 0:
		err = fmt.Errorf("polyfit: negative degree %d", degree)
		return
	case np < nc:
		err = fmt.Errorf("polyfit: %d points cannot determine a degree %d polynomial", np, degree)
		return
	}
	if !IsFinite(x) || !IsFinite(y) {
		err = fmt.Errorf("polyfit: %w in data", ErrNonFinite)
		return
	}
	V := NewMatrix(np, nc)
	for i, xi := range x {
		for j := 0; j < nc; j++ {
			V.Set(i, j, POW(xi, j))
		}
	}
	var (
		qr  mat.QR
		sol = mat.NewVecDense(nc, nil)
	)
	qr.Factorize(V.M)
	if err = qr.SolveVecTo(sol, false, mat.NewVecDense(np, y)); err != nil {
		err = fmt.Errorf("polyfit: %w", err)
		return
	}
	c = sol.RawVector().Data
	return
}

// PolyVal evaluates the polynomial with coefficients c at x by Horner's rule.
func PolyVal(c []float64, x float64) (y float64) {
	for i := len(c) - 1; i >= 0; i-- {
		y = y*x + c[i]
	}
	return
}
