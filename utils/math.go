package utils

import (
	"errors"
	"fmt"
	"math"
)

var ErrNonPositive = errors.New("non-positive argument")

// SafeLog is math.Log restricted to positive finite arguments.
func SafeLog(x float64) (float64, error) {
	if !(x > 0) || math.IsInf(x, 1) {
		return 0, fmt.Errorf("%w to log: %g", ErrNonPositive, x)
	}
	return math.Log(x), nil
}

// Arange returns min, min+step, ... up to and including max within a
// hundredth of a step.
func Arange(min, max, step float64) (v []float64) {
	if !(step > 0) || max < min {
		return
	}
	n := int(math.Floor((max-min)/step+0.01)) + 1
	v = make([]float64, n)
	for i := range v {
		// Round away the accumulation error of min + i*step
		v[i] = math.Round((min+float64(i)*step)*1e12) / 1e12
	}
	return
}

func ConstArray(N int, val float64) (v []float64) {
	v = make([]float64, N)
	for i := range v {
		v[i] = val
	}
	return
}

func POW(x float64, pp int) (y float64) {
	var (
		p       = pp
		flipped bool
	)
	if pp > 8 || pp < -8 {
		goto MATHPOW
	}

	if p < 0 {
		p = -pp
		flipped = true
	}
	switch p {
	case 0:
		y = 1
	case 1:
		y = x
	case 2:
		y = x * x
	case 3:
		y = x * x * x
	case 4:
		y = x * x
		y = y * y
	case 5:
		y = x * x
		y = y * y * x
	case 6:
		y = x * x
		y = y * y * y
	case 7:
		y = x * x
		y = y * y * y * x
	case 8:
		y = x * x
		y = y * y * y * y
	}
	if flipped {
		y = 1. / y
	}
	return

MATHPOW:
	y = math.Pow(x, float64(p))
	return
}
