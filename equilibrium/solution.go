package equilibrium

import (
	"fmt"
	"sort"
	"strings"

	"github.com/notargets/ceq/thermo"
	"github.com/notargets/ceq/types"
	"github.com/notargets/ceq/utils"
)

// Solution is a converged equilibrium state. Energies are kJ/kg, entropy is
// kJ/(kg K) and mole numbers are kmol/kg. MoleFractions always carries every
// name in ProductNames; species outside the active set are exactly zero.
type Solution struct {
	Problem         types.ProblemType  `json:"-"`
	ProblemName     string             `json:"problem"`
	Phi             float64            `json:"phi"`
	OF              float64            `json:"of"`
	Species         []string           `json:"species"`
	MoleFractions   map[string]float64 `json:"moleFractions"`
	Moles           map[string]float64 `json:"moles"`
	T               float64            `json:"T"`
	N               float64            `json:"N"`
	H               float64            `json:"H"`
	S               float64            `json:"S"`
	G               float64            `json:"G"`
	U               float64            `json:"U"`
	MolarMass       float64            `json:"molarMass"`
	Density         float64            `json:"density"`  // kg/m^3
	Pressure        float64            `json:"pressure"` // atm
	Volume          float64            `json:"volume"`   // m^3/kg
	ElementResidual float64            `json:"elementResidual"`
	Attempts        int                `json:"attempts"`
	Iterations      int                `json:"iterations"`
}

func (sys *system) solution(st *state) (sol *Solution, err error) {
	if err = st.evaluate(sys.ps); err != nil {
		return
	}
	var (
		sum = st.sumMoles()
		RT  = thermo.R * st.T
	)
	// Report against the summed mole numbers
	st.N = sum
	if st.lnN, err = utils.SafeLog(sum); err != nil {
		return
	}
	sol = &Solution{
		Problem:       sys.mode,
		ProblemName:   sys.mode.String(),
		Phi:           sys.mix.Spec.Phi,
		OF:            sys.mix.OF,
		Species:       append([]string(nil), sys.ps.Species...),
		MoleFractions: make(map[string]float64, len(ProductNames)),
		Moles:         make(map[string]float64, len(ProductNames)),
		T:             st.T,
		N:             sum,
		MolarMass:     1. / sum,
	}
	for _, name := range ProductNames {
		sol.MoleFractions[name] = 0
		sol.Moles[name] = 0
	}
	for j, name := range sys.ps.Species {
		var (
			nj = st.n[j]
			p  = st.props[j]
		)
		sol.Moles[name] = nj
		sol.MoleFractions[name] = nj / sum
		sol.H += nj * p.H
		sol.U += nj * (p.H - RT)
		if nj > 0 {
			sol.S += nj * (p.S - thermo.R*sys.fam.logActivity(st, j))
		}
	}
	sol.H /= 1000
	sol.U /= 1000
	sol.S /= 1000
	sol.G = sol.H - st.T*sol.S
	sol.Pressure, sol.Volume = sys.fam.pressureVolume(sum, st.T)
	sol.Density = 1. / sol.Volume
	if sys.bMax > 0 {
		sol.ElementResidual = sys.elementResidual(st) / sys.bMax
	}
	return
}

// Value returns a named result for sweeps and fits: T, Ntot, H, S, G, U, M,
// rho, P, V, OF, or X(name) for the mole fraction of a product species.
func (s *Solution) Value(field string) (float64, error) {
	switch field {
	case "T":
		return s.T, nil
	case "Ntot":
		return s.N, nil
	case "H":
		return s.H, nil
	case "S":
		return s.S, nil
	case "G":
		return s.G, nil
	case "U":
		return s.U, nil
	case "M":
		return s.MolarMass, nil
	case "rho":
		return s.Density, nil
	case "P":
		return s.Pressure, nil
	case "V":
		return s.Volume, nil
	case "OF":
		return s.OF, nil
	}
	if strings.HasPrefix(field, "X(") && strings.HasSuffix(field, ")") {
		name := strings.ToUpper(field[2 : len(field)-1])
		if x, ok := s.MoleFractions[name]; ok {
			return x, nil
		}
	}
	return 0, fmt.Errorf("unknown solution field %q", field)
}

// Dominant returns the active species ordered by decreasing mole fraction.
func (s *Solution) Dominant() (names []string) {
	names = append(names, s.Species...)
	sort.SliceStable(names, func(i, j int) bool {
		return s.MoleFractions[names[i]] > s.MoleFractions[names[j]]
	})
	return
}
