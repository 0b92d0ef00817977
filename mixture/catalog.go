package mixture

import (
	"fmt"
	"strings"

	"github.com/notargets/ceq/thermo"
)

// Species is a reactant that may appear in a fuel or oxidizer mixture.
type Species struct {
	Name      string
	Atoms     Composition
	MolarMass float64 // kg/kmol
	Thermo    *thermo.Species
}

var (
	// FuelSpecies lists, in display order, every species accepted on the fuel side.
	FuelSpecies = []string{
		"CO2", "CO", "H2O", "H2", "N2", "H", "N", "CH4",
		"C2H2(ACETY)", "C2H2(VINY)", "C2H4", "C2H6", "C3H8",
		"C4H8(ISOBUT)", "C4H10(NBUT)", "C4H10(ISOBUT)", "C5H12(NPENT)",
		"C6H14(NHEX)", "C7H16(NHEP)", "C7H16(2METH)", "C8H18(NOCT)", "C8H18(ISOCT)",
		"NH", "NH2", "NH3", "N2H2", "N2H4", "N3H",
		"CH3NO2(L)", "CH6N2(L)", "C2H8N2(L)", "CH4(L)",
	}
	// OxidizerSpecies lists, in display order, every species accepted on the oxidizer side.
	OxidizerSpecies = []string{
		"N2", "N", "H2O", "O", "O2", "NO", "NO2", "N2O", "N2O3", "N2O4", "N2O5",
		"OH", "HO2", "H2O2", "O2(L)",
	}
)

type Side uint8

const (
	Fuel Side = iota
	Oxidizer
)

func (s Side) String() string {
	if s == Oxidizer {
		return "oxidizer"
	}
	return "fuel"
}

var catalog [2]map[string]*Species

func init() {
	for side, names := range [][]string{FuelSpecies, OxidizerSpecies} {
		catalog[side] = make(map[string]*Species, len(names))
		for _, name := range names {
			atoms, err := ParseFormula(name)
			if err != nil {
				panic(err)
			}
			ts, err := thermo.Lookup(name)
			if err != nil {
				panic(fmt.Errorf("reactant catalog: %w", err))
			}
			catalog[side][name] = &Species{
				Name:      name,
				Atoms:     atoms,
				MolarMass: atoms.MolarMass(),
				Thermo:    ts,
			}
		}
	}
}

// LookupReactant finds a species in the fuel or oxidizer catalog, ignoring case.
func LookupReactant(side Side, name string) (*Species, error) {
	if sp, ok := catalog[side][strings.ToUpper(strings.TrimSpace(name))]; ok {
		return sp, nil
	}
	return nil, fmt.Errorf("%w: %q is not a %s species", ErrUnknownSpecies, name, side)
}
