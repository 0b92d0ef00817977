package mixture

import (
	"errors"
	"fmt"
	"strings"
)

// Element indexes the atoms tracked by the solver.
type Element uint8

const (
	C Element = iota
	H
	O
	N
	NumElements
)

func (e Element) String() string {
	return [...]string{"C", "H", "O", "N"}[e]
}

// Atomic weights in kg/kmol
var AtomicWeight = [NumElements]float64{
	C: 12.0107,
	H: 1.00794,
	O: 15.9994,
	N: 14.0067,
}

// Composition holds atom counts indexed by Element.
type Composition [NumElements]int

// MolarMass returns the molecular weight in kg/kmol.
func (c Composition) MolarMass() (mw float64) {
	for e, count := range c {
		mw += float64(count) * AtomicWeight[e]
	}
	return
}

var ErrMalformedFormula = errors.New("mixture: malformed formula")

// ParseFormula extracts C, H, O and N counts from a species token such as
// "C2H2(ACETY)" or "CH3NO2(L)". The parenthesized suffix is dropped, an element
// without digits counts once, and any other uppercase symbol is skipped along
// with its count.
func ParseFormula(token string) (atoms Composition, err error) {
	var (
		formula = token
		found   bool
	)
	if open := strings.IndexByte(token, '('); open >= 0 {
		if !strings.HasSuffix(token, ")") || strings.Count(token, "(") != 1 ||
			strings.Count(token, ")") != 1 {
			err = fmt.Errorf("%w: %q has an unbalanced suffix", ErrMalformedFormula, token)
			return
		}
		formula = token[:open]
	} else if strings.IndexByte(token, ')') >= 0 {
		err = fmt.Errorf("%w: %q has an unbalanced suffix", ErrMalformedFormula, token)
		return
	}
	if len(formula) == 0 {
		err = fmt.Errorf("%w: %q is empty", ErrMalformedFormula, token)
		return
	}
	for i := 0; i < len(formula); {
		ch := formula[i]
		if ch < 'A' || ch > 'Z' {
			err = fmt.Errorf("%w: unexpected %q at position %d in %q", ErrMalformedFormula, ch, i, token)
			return
		}
		i++
		count := 0
		digits := 0
		for i < len(formula) && formula[i] >= '0' && formula[i] <= '9' {
			count = 10*count + int(formula[i]-'0')
			digits++
			i++
		}
		if digits == 0 {
			count = 1
		}
		var el Element
		switch ch {
		case 'C':
			el = C
		case 'H':
			el = H
		case 'O':
			el = O
		case 'N':
			el = N
		default:
			continue
		}
		atoms[el] += count
		found = true
	}
	if !found {
		err = fmt.Errorf("%w: %q contains no C, H, O or N", ErrMalformedFormula, token)
	}
	return
}
