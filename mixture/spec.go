package mixture

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Validity window for requests
const (
	PhiMin            = 0.1
	PhiMax            = 3.
	TMin              = 200.
	TMax              = 6000.
	FractionTolerance = 1.e-3
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnknownSpecies    = errors.New("unknown species")
	ErrMoleFractionSum   = errors.New("mole fractions do not sum to 1")
	ErrOutOfWindow       = errors.New("value outside validity window")
	ErrDegenerateMixture = errors.New("degenerate mixture")
)

// ValidationError describes a request rejected before any solve attempt. It
// matches ErrInvalidInput as well as the specific cause.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() []error { return []error{ErrInvalidInput, e.Err} }

// Invalid builds a ValidationError for a named field.
func Invalid(field string, cause error, format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		Field: field,
		Err:   fmt.Errorf("%w: "+format, append([]interface{}{cause}, args...)...),
	}
}

// Component is one named species with its mole fraction.
type Component struct {
	Name     string  `json:"name" toml:"name"`
	Fraction float64 `json:"fraction" toml:"fraction"`
}

// Spec is a reactant mixture request: fuel and oxidizer compositions, the
// equivalence ratio and the initial (or held) temperature in K.
type Spec struct {
	Fuel     []Component `json:"fuel" toml:"fuel"`
	Oxidizer []Component `json:"oxidizer" toml:"oxidizer"`
	Phi      float64     `json:"phi" toml:"phi"`
	T        float64     `json:"temperature" toml:"temperature"`
}

// Validate checks species names, mole fraction sums and the φ and T windows.
func (s Spec) Validate() error {
	if err := validateSide(Fuel, s.Fuel); err != nil {
		return err
	}
	if err := validateSide(Oxidizer, s.Oxidizer); err != nil {
		return err
	}
	if math.IsNaN(s.Phi) || s.Phi < PhiMin || s.Phi > PhiMax {
		return Invalid("phi", ErrOutOfWindow, "%g not in [%g, %g]", s.Phi, PhiMin, PhiMax)
	}
	if math.IsNaN(s.T) || s.T < TMin || s.T > TMax {
		return Invalid("temperature", ErrOutOfWindow, "%g K not in [%g, %g] K", s.T, TMin, TMax)
	}
	return nil
}

func validateSide(side Side, comps []Component) error {
	var (
		field = side.String()
		sum   float64
	)
	if len(comps) == 0 {
		return Invalid(field, ErrMoleFractionSum, "no species given")
	}
	for _, c := range comps {
		if _, err := LookupReactant(side, c.Name); err != nil {
			return &ValidationError{Field: field, Err: err}
		}
		if math.IsNaN(c.Fraction) || c.Fraction < 0 || c.Fraction > 1 {
			return Invalid(field, ErrMoleFractionSum, "fraction of %s is %g", c.Name, c.Fraction)
		}
		sum += c.Fraction
	}
	if math.Abs(sum-1) > FractionTolerance {
		return Invalid(field, ErrMoleFractionSum, "sum is %g", sum)
	}
	return nil
}

func (s Spec) String() string {
	var b strings.Builder
	side := func(comps []Component) {
		for i, c := range comps {
			if i > 0 {
				b.WriteString(" + ")
			}
			fmt.Fprintf(&b, "%g %s", c.Fraction, c.Name)
		}
	}
	side(s.Fuel)
	b.WriteString(" / ")
	side(s.Oxidizer)
	fmt.Fprintf(&b, ", phi = %g, T = %g K", s.Phi, s.T)
	return b.String()
}
