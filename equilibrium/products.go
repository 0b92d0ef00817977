package equilibrium

import (
	"fmt"

	"github.com/notargets/ceq/mixture"
	"github.com/notargets/ceq/thermo"
	"github.com/notargets/ceq/utils"
)

// ProductNames is the canonical product list reported in every Solution.
var ProductNames = []string{"CO2", "CO", "H2O", "H2", "N2", "O2", "H", "N", "O", "NO", "OH"}

// ProductSet is the subset of products able to form from the elements present.
// A[i][j] is the count of Elements[i] in Species[j].
type ProductSet struct {
	Species  []string
	Elements []mixture.Element
	A        [][]float64
	stoich   utils.Matrix // A, shared read only between solves
	thermo   []*thermo.Species
	tMin     float64
	tMax     float64
}

func (ps *ProductSet) NS() int { return len(ps.Species) }
func (ps *ProductSet) NE() int { return len(ps.Elements) }

// Range is the temperature window shared by every species in the set.
func (ps *ProductSet) Range() (tmin, tmax float64) { return ps.tMin, ps.tMax }

var (
	productSet11 = newProductSet(true, true)  // C, H, O, N
	productSet9  = newProductSet(false, true) // H, O, N
	productSet8  = newProductSet(true, false) // C, H, O
	productSet6  = newProductSet(false, false)
)

func newProductSet(carbon, nitrogen bool) (ps *ProductSet) {
	ps = &ProductSet{}
	for _, el := range []mixture.Element{mixture.C, mixture.H, mixture.O, mixture.N} {
		if (el == mixture.C && !carbon) || (el == mixture.N && !nitrogen) {
			continue
		}
		ps.Elements = append(ps.Elements, el)
	}
	var atoms []mixture.Composition
	for _, name := range ProductNames {
		comp, err := mixture.ParseFormula(name)
		if err != nil {
			panic(err)
		}
		if (comp[mixture.C] > 0 && !carbon) || (comp[mixture.N] > 0 && !nitrogen) {
			continue
		}
		ts, err := thermo.Lookup(name)
		if err != nil {
			panic(fmt.Errorf("product set: %w", err))
		}
		ps.Species = append(ps.Species, name)
		ps.thermo = append(ps.thermo, ts)
		atoms = append(atoms, comp)
	}
	ps.A = make([][]float64, len(ps.Elements))
	stoich := utils.NewMatrix(len(ps.Elements), len(ps.Species))
	for i, el := range ps.Elements {
		ps.A[i] = make([]float64, len(ps.Species))
		for j := range ps.Species {
			ps.A[i][j] = float64(atoms[j][el])
			stoich.Set(i, j, ps.A[i][j])
		}
	}
	ps.stoich = stoich.SetReadOnly("stoichiometry")
	ps.tMin, ps.tMax = 0, 1.e30
	for _, ts := range ps.thermo {
		lo, hi := ts.Range()
		ps.tMin, ps.tMax = max(ps.tMin, lo), min(ps.tMax, hi)
	}
	return
}

// SelectProductSet chooses the product set from the elements present in the
// reactants: 6 species without carbon or nitrogen, 9 without carbon, 8 without
// nitrogen and 11 otherwise.
func SelectProductSet(m *mixture.Mixture) *ProductSet {
	switch {
	case !m.HasCarbon() && !m.HasNitrogen():
		return productSet6
	case !m.HasCarbon():
		return productSet9
	case !m.HasNitrogen():
		return productSet8
	default:
		return productSet11
	}
}
