// Package thermo evaluates ideal-gas heat capacity, enthalpy and entropy from
// NASA-Glenn nine-coefficient polynomial fits.
//
// All results are molar and scaled by the universal gas constant R, so Cp and S
// are in J/(kmol K) and H is in J/kmol.
package thermo

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// R is the universal gas constant in J/(kmol K).
const R = 8314.46261815324

// PRef is the reference pressure of the fits in Pa.
const PRef = 101325.

// TRef is the standard reference temperature in K.
const TRef = 298.15

var (
	ErrUnknownSpecies = errors.New("thermo: unknown species")
	ErrOutOfRange     = errors.New("thermo: temperature outside fitted range")
)

// RangeError reports a temperature that no band of a species covers.
type RangeError struct {
	Species    string
	T          float64
	TMin, TMax float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("thermo: %s evaluated at T = %g K, valid range is [%g, %g] K",
		e.Species, e.T, e.TMin, e.TMax)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// Band is one temperature interval of a fit. A holds a1..a7, B holds b1, b2.
type Band struct {
	TMin, TMax float64
	A          [7]float64
	B          [2]float64
}

func newBand(tmin, tmax, a1, a2, a3, a4, a5, a6, a7, b1, b2 float64) Band {
	return Band{
		TMin: tmin,
		TMax: tmax,
		A:    [7]float64{a1, a2, a3, a4, a5, a6, a7},
		B:    [2]float64{b1, b2},
	}
}

// Properties holds the molar properties of a species at one temperature.
type Properties struct {
	Cp, H, S float64
}

// G returns the molar Gibbs energy H - T*S.
func (p Properties) G(T float64) float64 { return p.H - T*p.S }

// Species is an immutable thermodynamic record. Condensed reactants carry an
// assigned enthalpy in place of polynomial bands.
type Species struct {
	Name     string
	Bands    []Band
	Assigned *AssignedState
}

// AssignedState is the fixed enthalpy of a condensed species at its
// reference temperature.
type AssignedState struct {
	T float64 // K
	H float64 // J/kmol
}

// Condensed reports whether the species has no gas-phase fit.
func (s *Species) Condensed() bool { return s.Assigned != nil }

// Range returns the temperature window covered by the species' bands.
func (s *Species) Range() (tmin, tmax float64) {
	if s.Condensed() {
		return 0, math.Inf(1)
	}
	return s.Bands[0].TMin, s.Bands[len(s.Bands)-1].TMax
}

func (s *Species) band(T float64) (b *Band, err error) {
	var (
		last = len(s.Bands) - 1
	)
	for i := range s.Bands {
		b = &s.Bands[i]
		if T >= b.TMin && (T < b.TMax || (i == last && T == b.TMax)) {
			return b, nil
		}
	}
	tmin, tmax := s.Range()
	return nil, &RangeError{Species: s.Name, T: T, TMin: tmin, TMax: tmax}
}

// Evaluate returns Cp, H and S at temperature T. Condensed species return
// their assigned enthalpy with zero Cp and S; they only ever appear as
// reactants.
func (s *Species) Evaluate(T float64) (p Properties, err error) {
	if s.Condensed() {
		p.H = s.Assigned.H
		return
	}
	if math.IsNaN(T) || T <= 0 {
		tmin, tmax := s.Range()
		err = &RangeError{Species: s.Name, T: T, TMin: tmin, TMax: tmax}
		return
	}
	var b *Band
	if b, err = s.band(T); err != nil {
		return
	}
	return b.properties(T), nil
}

// properties evaluates the band polynomials at T without a range check.
func (b *Band) properties(T float64) Properties {
	var (
		a   = b.A
		lnT = math.Log(T)
		oT  = 1. / T
		T2  = T * T
		T3  = T2 * T
		T4  = T3 * T
		oT2 = oT * oT
		cpR = a[0]*oT2 + a[1]*oT + a[2] + a[3]*T + a[4]*T2 + a[5]*T3 + a[6]*T4
		hR  = -a[0]*oT + a[1]*lnT + a[2]*T + a[3]*T2/2 + a[4]*T3/3 + a[5]*T4/4 + a[6]*T4*T/5 + b.B[0]
		sR  = -a[0]*oT2/2 - a[1]*oT + a[2]*lnT + a[3]*T + a[4]*T2/2 + a[5]*T3/3 + a[6]*T4/4 + b.B[1]
	)
	return Properties{Cp: cpR * R, H: hR * R, S: sR * R}
}

var index map[string]*Species

func init() {
	index = make(map[string]*Species, len(nasaGlenn)+len(assigned))
	for name, bands := range nasaGlenn {
		index[strings.ToUpper(name)] = &Species{Name: name, Bands: bands}
	}
	for name, st := range assigned {
		st := st
		index[strings.ToUpper(name)] = &Species{Name: name, Assigned: &st}
	}
}

// Lookup returns the species record for a name, ignoring case.
func Lookup(name string) (*Species, error) {
	if s, ok := index[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSpecies, name)
}

// Evaluate is shorthand for Lookup followed by Species.Evaluate.
func Evaluate(name string, T float64) (p Properties, err error) {
	var s *Species
	if s, err = Lookup(name); err != nil {
		return
	}
	return s.Evaluate(T)
}

// Names lists every compiled species in sorted order.
func Names() (names []string) {
	names = make([]string, 0, len(index))
	for _, s := range index {
		names = append(names, s.Name)
	}
	sort.Strings(names)
	return
}
