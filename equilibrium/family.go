package equilibrium

import (
	"math"

	"github.com/notargets/ceq/mixture"
	"github.com/notargets/ceq/thermo"
)

// family holds what differs between the constant pressure and constant volume
// formulations. Product selection and the linearize, solve and update loop are
// shared.
type family interface {
	// totalMoles is true when N is carried as an independent unknown.
	totalMoles() bool
	// logActivity is the concentration part of μ_j/RT.
	logActivity(st *state, j int) float64
	// energy is the molar H or U paired with the held energy, J/kmol.
	energy(p thermo.Properties, T float64) float64
	// heatCapacity is the molar Cp or Cv, J/(kmol K).
	heatCapacity(p thermo.Properties) float64
	// reactantEnergy is the held specific energy of the reactants, J/kg.
	reactantEnergy(m *mixture.Mixture) float64
	// pressureVolume returns P in atm and V in m^3/kg for N kmol/kg at T.
	pressureVolume(N, T float64) (P, V float64)
}

type constantPressure struct {
	P, lnP float64 // atm
}

func newConstantPressure(P float64) *constantPressure {
	return &constantPressure{P: P, lnP: math.Log(P)}
}

func (f *constantPressure) totalMoles() bool { return true }

func (f *constantPressure) logActivity(st *state, j int) float64 {
	return st.lnn[j] - st.lnN + f.lnP
}

func (f *constantPressure) energy(p thermo.Properties, T float64) float64 { return p.H }

func (f *constantPressure) heatCapacity(p thermo.Properties) float64 { return p.Cp }

func (f *constantPressure) reactantEnergy(m *mixture.Mixture) float64 { return m.Enthalpy }

func (f *constantPressure) pressureVolume(N, T float64) (P, V float64) {
	return f.P, N * thermo.R * T / (f.P * thermo.PRef)
}

type constantVolume struct {
	V, lnV float64 // m^3/kg
}

func newConstantVolume(V float64) *constantVolume {
	return &constantVolume{V: V, lnV: math.Log(V)}
}

func (f *constantVolume) totalMoles() bool { return false }

// Partial pressure in atm is n_j R T / (V PRef).
func (f *constantVolume) logActivity(st *state, j int) float64 {
	return st.lnn[j] + math.Log(thermo.R*st.T/thermo.PRef) - f.lnV
}

func (f *constantVolume) energy(p thermo.Properties, T float64) float64 { return p.H - thermo.R*T }

func (f *constantVolume) heatCapacity(p thermo.Properties) float64 { return p.Cp - thermo.R }

func (f *constantVolume) reactantEnergy(m *mixture.Mixture) float64 { return m.InternalEnergy }

func (f *constantVolume) pressureVolume(N, T float64) (P, V float64) {
	return N * thermo.R * T / (f.V * thermo.PRef), f.V
}
