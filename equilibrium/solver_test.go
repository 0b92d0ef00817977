package equilibrium

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/ceq/mixture"
	"github.com/notargets/ceq/types"
	"github.com/notargets/ceq/utils"
)

func newTestSolver(seed uint64) *Solver {
	s := NewSolver(Config{Seed: seed})
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	s.Log = logger
	return s
}

func fuelOxidizer(fuel, ox []mixture.Component) mixture.Spec {
	return mixture.Spec{Fuel: fuel, Oxidizer: ox, Phi: 1, T: 300}
}

var (
	methane  = []mixture.Component{{Name: "CH4", Fraction: 1}}
	hydrogen = []mixture.Component{{Name: "H2", Fraction: 1}}
	oxygen   = []mixture.Component{{Name: "O2", Fraction: 1}}
	air      = []mixture.Component{{Name: "O2", Fraction: 0.21}, {Name: "N2", Fraction: 0.79}}
)

// checkInvariants verifies normalization and element conservation.
func checkInvariants(t *testing.T, spec mixture.Spec, sol *Solution) {
	t.Helper()
	m, err := mixture.New(spec)
	require.NoError(t, err)

	var sum float64
	for _, name := range ProductNames {
		x, ok := sol.MoleFractions[name]
		require.Truef(t, ok, "missing %s", name)
		assert.GreaterOrEqual(t, x, 0.)
		sum += x
	}
	assert.InDelta(t, 1., sum, 1.e-2)
	assert.Len(t, sol.MoleFractions, len(ProductNames))

	var b [mixture.NumElements]float64
	for name, nj := range sol.Moles {
		atoms, err := mixture.ParseFormula(name)
		require.NoError(t, err)
		for e := mixture.C; e < mixture.NumElements; e++ {
			b[e] += float64(atoms[e]) * nj
		}
	}
	var bMax float64
	for _, v := range m.Elements {
		bMax = math.Max(bMax, v)
	}
	for e := mixture.C; e < mixture.NumElements; e++ {
		assert.InDeltaf(t, m.Elements[e], b[e], 1.e-6*bMax, "element %s", e)
	}
	assert.LessOrEqual(t, sol.ElementResidual, 1.e-6)
	assert.InDelta(t, sol.H-sol.T*sol.S, sol.G, 1.e-9*math.Abs(sol.G)+1.e-9)
	assert.InEpsilon(t, 1./sol.N, sol.MolarMass, 1.e-12)
}

func TestProductSets(t *testing.T) {
	assert.Equal(t, ProductNames, productSet11.Species)
	assert.Equal(t, []string{"H2O", "H2", "N2", "O2", "H", "N", "O", "NO", "OH"}, productSet9.Species)
	assert.Equal(t, []string{"CO2", "CO", "H2O", "H2", "O2", "H", "O", "OH"}, productSet8.Species)
	assert.Equal(t, []string{"H2O", "H2", "O2", "H", "O", "OH"}, productSet6.Species)
	assert.Equal(t, []mixture.Element{mixture.H, mixture.O}, productSet6.Elements)
	assert.Equal(t, 4, productSet11.NE())

	// H2O column of the full set: C=0, H=2, O=1, N=0
	col := 2
	assert.Equal(t, []float64{0, 2, 1, 0}, []float64{
		productSet11.A[0][col], productSet11.A[1][col], productSet11.A[2][col], productSet11.A[3][col]})
	// The shared stoichiometric matrix counts atoms and refuses writes
	b := productSet11.stoich.MulVec(utils.NewVector(productSet11.NS(), utils.ConstArray(productSet11.NS(), 1)))
	assert.Equal(t, []float64{2, 6, 9, 4}, b.Data())
	assert.Panics(t, func() { productSet11.stoich.Set(0, col, 1) })
	tmin, tmax := productSet11.Range()
	assert.Equal(t, 200., tmin)
	assert.Equal(t, 6000., tmax)

	cases := []struct {
		fuel, ox []mixture.Component
		ns       int
	}{
		{methane, oxygen, 8},
		{methane, air, 11},
		{hydrogen, oxygen, 6},
		{hydrogen, air, 9},
	}
	for _, c := range cases {
		m, err := mixture.New(fuelOxidizer(c.fuel, c.ox))
		require.NoError(t, err)
		assert.Equal(t, c.ns, SelectProductSet(m).NS())
	}
}

func TestMethaneOxygenHP(t *testing.T) {
	s := newTestSolver(1)
	spec := fuelOxidizer(methane, oxygen)
	sol, err := s.SolveConstantPressure(spec, 1, types.Problem_HP)
	require.NoError(t, err)
	checkInvariants(t, spec, sol)

	// Adiabatic flame of stoichiometric methane in oxygen
	assert.Greater(t, sol.T, 2950.)
	assert.Less(t, sol.T, 3150.)
	assert.Equal(t, "H2O", sol.Dominant()[0])
	x := sol.MoleFractions
	assert.Greater(t, x["H2O"]+x["CO2"]+x["CO"], 0.5)
	for _, name := range []string{"N2", "N", "NO"} {
		assert.Equal(t, 0., x[name])
	}
	assert.Len(t, sol.Species, 8)

	m, _ := mixture.New(spec)
	assert.InDelta(t, m.Enthalpy/1000, sol.H, 5.)
	assert.Equal(t, 1., sol.Pressure)
	assert.InEpsilon(t, 1./sol.Volume, sol.Density, 1.e-12)
	assert.LessOrEqual(t, sol.Iterations, DefaultPressureIterations)
	assert.GreaterOrEqual(t, sol.Attempts, 1)
	assert.Equal(t, "HP", sol.ProblemName)
}

func TestMethaneAirHP(t *testing.T) {
	s := newTestSolver(2)
	spec := fuelOxidizer(methane, air)
	sol, err := s.SolveConstantPressure(spec, 1, types.Problem_HP)
	require.NoError(t, err)
	checkInvariants(t, spec, sol)
	assert.Greater(t, sol.T, 2150.)
	assert.Less(t, sol.T, 2300.)
	assert.Equal(t, "N2", sol.Dominant()[0])
	assert.Greater(t, sol.MoleFractions["NO"], 0.)
	assert.Len(t, sol.Species, 11)
}

func TestMethaneOxygenTP(t *testing.T) {
	s := newTestSolver(3)
	spec := fuelOxidizer(methane, oxygen)
	spec.T = 2000
	sol, err := s.SolveConstantPressure(spec, 1, types.Problem_TP)
	require.NoError(t, err)
	checkInvariants(t, spec, sol)
	assert.Equal(t, 2000., sol.T)
	// Little dissociation at 2000 K
	assert.InDelta(t, 2./3, sol.MoleFractions["H2O"], 0.03)
	assert.InDelta(t, 1./3, sol.MoleFractions["CO2"], 0.03)
}

func TestSeedIndependence(t *testing.T) {
	spec := fuelOxidizer(methane, air)
	spec.Phi = 1.3
	a, err := newTestSolver(11).SolveConstantPressure(spec, 2, types.Problem_HP)
	require.NoError(t, err)
	b, err := newTestSolver(97).SolveConstantPressure(spec, 2, types.Problem_HP)
	require.NoError(t, err)
	assert.InEpsilon(t, a.T, b.T, 1.e-3)
	for _, name := range ProductNames {
		if a.MoleFractions[name] > 1.e-2 {
			assert.InEpsilonf(t, a.MoleFractions[name], b.MoleFractions[name], 1.e-3, "species %s", name)
		}
	}
}

func TestAbsentElements(t *testing.T) {
	s := newTestSolver(5)
	{ // Hydrogen and oxygen only
		spec := fuelOxidizer(hydrogen, oxygen)
		sol, err := s.SolveConstantPressure(spec, 1, types.Problem_HP)
		require.NoError(t, err)
		checkInvariants(t, spec, sol)
		for _, name := range []string{"CO2", "CO", "N2", "N", "NO"} {
			assert.Equal(t, 0., sol.MoleFractions[name])
			assert.Equal(t, 0., sol.Moles[name])
		}
		assert.Len(t, sol.Species, 6)
		assert.Equal(t, "H2O", sol.Dominant()[0])
		assert.Greater(t, sol.T, 2900.)
		assert.Less(t, sol.T, 3300.)
	}
	{ // Hydrogen and air
		spec := fuelOxidizer(hydrogen, air)
		sol, err := s.SolveConstantPressure(spec, 1, types.Problem_HP)
		require.NoError(t, err)
		checkInvariants(t, spec, sol)
		assert.Equal(t, 0., sol.MoleFractions["CO2"])
		assert.Equal(t, 0., sol.MoleFractions["CO"])
		assert.Greater(t, sol.MoleFractions["N2"], 0.5)
		assert.Len(t, sol.Species, 9)
		assert.Greater(t, sol.T, 2250.)
		assert.Less(t, sol.T, 2500.)
	}
}

func TestConstantVolume(t *testing.T) {
	s := newTestSolver(7)
	spec := fuelOxidizer(methane, oxygen)
	hp, err := s.SolveConstantPressure(spec, 1, types.Problem_HP)
	require.NoError(t, err)

	{ // Holding T and V at the HP state recovers the HP state
		tv := spec
		tv.T = hp.T
		sol, err := s.SolveConstantVolume(tv, hp.Volume, types.Problem_TV)
		require.NoError(t, err)
		checkInvariants(t, tv, sol)
		assert.Equal(t, hp.T, sol.T)
		assert.InDelta(t, 1., sol.Pressure, 1.e-3)
		assert.InEpsilon(t, hp.Density, sol.Density, 1.e-12)
		for _, name := range ProductNames {
			if hp.MoleFractions[name] > 1.e-3 {
				assert.InEpsilonf(t, hp.MoleFractions[name], sol.MoleFractions[name], 1.e-2, "species %s", name)
			}
		}
		assert.InEpsilon(t, hp.S, sol.S, 1.e-3)
		assert.InEpsilon(t, hp.H, sol.H, 1.e-2)
	}
	{ // Burning at the same specific volume keeps the reactant internal energy
		sol, err := s.SolveConstantVolume(spec, hp.Volume, types.Problem_UV)
		require.NoError(t, err)
		checkInvariants(t, spec, sol)
		m, _ := mixture.New(spec)
		assert.InDelta(t, m.InternalEnergy/1000, sol.U, 5.)
		assert.Greater(t, sol.T, hp.T)
		assert.Greater(t, sol.Pressure, 1.)
		assert.Equal(t, hp.Volume, sol.Volume)
		assert.LessOrEqual(t, sol.Iterations, DefaultVolumeIterations)
	}
}

func TestValidationBeforeSolve(t *testing.T) {
	s := newTestSolver(1)
	spec := fuelOxidizer([]mixture.Component{{Name: "CH4", Fraction: 0.5}, {Name: "C2H6", Fraction: 0.45}}, oxygen)
	sol, err := s.SolveConstantPressure(spec, 1, types.Problem_HP)
	assert.Nil(t, sol)
	assert.True(t, errors.Is(err, mixture.ErrInvalidInput))
	assert.True(t, errors.Is(err, mixture.ErrMoleFractionSum))
	assert.False(t, errors.Is(err, ErrNotConverged))

	spec = fuelOxidizer(methane, oxygen)
	_, err = s.SolveConstantPressure(spec, 0, types.Problem_HP)
	assert.True(t, errors.Is(err, mixture.ErrOutOfWindow))
	_, err = s.SolveConstantVolume(spec, -1, types.Problem_UV)
	assert.True(t, errors.Is(err, mixture.ErrOutOfWindow))
	_, err = s.SolveConstantPressure(spec, 1, types.Problem_UV)
	assert.True(t, errors.Is(err, ErrUnsupportedProblem))
	_, err = s.SolveConstantVolume(spec, 1, types.Problem_TP)
	assert.True(t, errors.Is(err, ErrUnsupportedProblem))
	_, err = s.Solve(Problem{Type: types.Problem_None, Mixture: spec, Pressure: 1})
	assert.True(t, errors.Is(err, mixture.ErrInvalidInput))

	spec.Phi = 4
	_, err = s.Solve(Problem{Type: types.Problem_HP, Mixture: spec, Pressure: 1})
	assert.True(t, errors.Is(err, mixture.ErrOutOfWindow))
}

func TestAttemptCap(t *testing.T) {
	s := newTestSolver(3)
	s.MaxAttempts, s.MaxIterations = 3, 1
	sol, err := s.Solve(Problem{Type: types.Problem_HP, Mixture: fuelOxidizer(methane, oxygen), Pressure: 1})
	assert.Nil(t, sol)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotConverged))
	assert.False(t, errors.Is(err, mixture.ErrInvalidInput))
	var ce *ConvergenceError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 3, ce.Attempts)
	assert.Equal(t, types.Problem_HP, ce.Problem)
	assert.Error(t, ce.Last)
}

func TestNewSolverDefaults(t *testing.T) {
	s := NewSolver(Config{MaxIterations: -4})
	assert.Equal(t, DefaultMaxAttempts, s.MaxAttempts)
	assert.Equal(t, 0, s.MaxIterations)
	assert.Equal(t, DefaultSpeciesTolerance, s.SpeciesTolerance)
	assert.Equal(t, DefaultElementTolerance, s.ElementTolerance)
	assert.NotNil(t, s.Log)
}

func TestSolutionValue(t *testing.T) {
	sol, err := newTestSolver(9).Solve(Problem{Type: types.Problem_HP, Mixture: fuelOxidizer(hydrogen, oxygen), Pressure: 1})
	require.NoError(t, err)
	v, err := sol.Value("T")
	require.NoError(t, err)
	assert.Equal(t, sol.T, v)
	v, err = sol.Value("X(h2o)")
	require.NoError(t, err)
	assert.Equal(t, sol.MoleFractions["H2O"], v)
	v, err = sol.Value("rho")
	require.NoError(t, err)
	assert.Equal(t, sol.Density, v)
	_, err = sol.Value("X(Ar)")
	assert.Error(t, err)
	_, err = sol.Value("enthalpy")
	assert.Error(t, err)
}
