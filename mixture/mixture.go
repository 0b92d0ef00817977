// Package mixture parses reactant formulas and reduces a fuel/oxidizer request
// to the scalar balances consumed by the equilibrium solver.
package mixture

import (
	"github.com/notargets/ceq/thermo"
)

// Balance holds mole-fraction weighted atom counts of each side.
type Balance struct {
	FuelC, FuelH, FuelO, FuelN float64
	OxH, OxO, OxN              float64
}

// Mixture is a validated reactant request reduced to per unit mass quantities.
// Energies are J/kg of reactants and element densities are kmol/kg.
type Mixture struct {
	Spec              Spec
	Balance           Balance
	FuelMolarMass     float64 // kg/kmol
	OxidizerMolarMass float64 // kg/kmol
	Stoichiometric    float64 // kmol oxidizer per kmol fuel at φ = 1
	OF                float64 // oxidizer to fuel mass ratio
	Enthalpy          float64
	InternalEnergy    float64
	Elements          [NumElements]float64
}

type side struct {
	species []*Species
	atoms   [NumElements]float64
	mw      float64
	h, u    float64 // J/kmol of side mixture
}

func accumulate(sd Side, comps []Component, T float64) (s side, err error) {
	var p thermo.Properties
	s.species = make([]*Species, len(comps))
	for i, c := range comps {
		var sp *Species
		if sp, err = LookupReactant(sd, c.Name); err != nil {
			return
		}
		s.species[i] = sp
		for e := C; e < NumElements; e++ {
			s.atoms[e] += c.Fraction * float64(sp.Atoms[e])
		}
		s.mw += c.Fraction * sp.MolarMass
		if p, err = sp.Thermo.Evaluate(T); err != nil {
			return
		}
		s.h += c.Fraction * p.H
		if sp.Thermo.Condensed() {
			s.u += c.Fraction * p.H
		} else {
			s.u += c.Fraction * (p.H - thermo.R*T)
		}
	}
	return
}

// New validates the request and accumulates the reactant balances.
func New(spec Spec) (m *Mixture, err error) {
	var (
		fuel, ox side
	)
	if err = spec.Validate(); err != nil {
		return
	}
	if fuel, err = accumulate(Fuel, spec.Fuel, spec.T); err != nil {
		return
	}
	if ox, err = accumulate(Oxidizer, spec.Oxidizer, spec.T); err != nil {
		return
	}
	m = &Mixture{
		Spec: spec,
		Balance: Balance{
			FuelC: fuel.atoms[C], FuelH: fuel.atoms[H], FuelO: fuel.atoms[O], FuelN: fuel.atoms[N],
			OxH: ox.atoms[H], OxO: ox.atoms[O], OxN: ox.atoms[N],
		},
		FuelMolarMass:     fuel.mw,
		OxidizerMolarMass: ox.mw,
	}
	var (
		bal   = m.Balance
		numer = 4*bal.FuelC + bal.FuelH - 2*bal.FuelO
		denom = 2*bal.OxO - bal.OxH
	)
	switch {
	case !(numer > 0):
		return nil, Invalid("fuel", ErrDegenerateMixture,
			"fuel needs no oxygen (4C + H - 2O = %g)", numer)
	case !(denom > 0):
		return nil, Invalid("oxidizer", ErrDegenerateMixture,
			"oxidizer supplies no free oxygen (2O - H = %g)", denom)
	case bal.FuelH+bal.OxH == 0:
		return nil, Invalid("fuel", ErrDegenerateMixture, "mixture contains no hydrogen")
	}
	m.Stoichiometric = numer / denom
	m.OF = (ox.mw / fuel.mw) * (m.Stoichiometric / spec.Phi)

	var (
		wf = m.FuelMassFraction() / fuel.mw
		wo = m.FuelMassFraction() * m.OF / ox.mw
	)
	for e := C; e < NumElements; e++ {
		m.Elements[e] = wf*fuel.atoms[e] + wo*ox.atoms[e]
	}
	// No product holds carbon without oxygen, so carbon beyond CO has no home
	if m.Elements[C] > m.Elements[O] {
		return nil, Invalid("phi", ErrDegenerateMixture,
			"carbon exceeds oxygen (C = %g, O = %g kmol/kg), no gaseous product set can hold it",
			m.Elements[C], m.Elements[O])
	}
	m.Enthalpy = wf*fuel.h + wo*ox.h
	m.InternalEnergy = wf*fuel.u + wo*ox.u
	return
}

// HasCarbon reports whether any carbon enters with the reactants.
func (m *Mixture) HasCarbon() bool { return m.Elements[C] > 0 }

// HasNitrogen reports whether any nitrogen enters with the reactants.
func (m *Mixture) HasNitrogen() bool { return m.Elements[N] > 0 }

// FuelMassFraction is the mass fraction of fuel in the reactants.
func (m *Mixture) FuelMassFraction() float64 { return 1. / (1. + m.OF) }
