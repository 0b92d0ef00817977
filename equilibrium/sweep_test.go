package equilibrium

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/ceq/types"
	"github.com/notargets/ceq/utils"
)

func TestPhiRange(t *testing.T) {
	phis := PhiRange(DefaultPhiMin, DefaultPhiMax, DefaultPhiStep)
	assert.Equal(t, 20, len(phis))
	assert.Equal(t, 0.3, phis[0])
	assert.InDelta(t, 2.2, phis[len(phis)-1], 1.e-12)
}

func TestSweep(t *testing.T) {
	var (
		s       = newTestSolver(21)
		problem = Problem{Type: types.Problem_HP, Mixture: fuelOxidizer(methane, air), Pressure: 1}
		phis    = PhiRange(0.5, 1.5, 0.25)
	)
	points, err := s.Sweep(context.Background(), problem, phis, 2)
	require.NoError(t, err)
	require.Len(t, points, 5)
	var (
		peak  float64
		iPeak int
	)
	for i, pt := range points {
		assert.Equal(t, phis[i], pt.Phi)
		require.NoError(t, pt.Err)
		require.NotNil(t, pt.Solution)
		assert.Equal(t, pt.Phi, pt.Solution.Phi)
		if pt.Solution.T > peak {
			peak, iPeak = pt.Solution.T, i
		}
	}
	// Flame temperature peaks near stoichiometric
	assert.True(t, iPeak == 2 || iPeak == 3)
	assert.Less(t, points[0].Solution.T, peak)
	assert.Less(t, points[4].Solution.T, peak)
	// Lean mixtures keep oxygen, rich ones keep carbon monoxide
	assert.Greater(t, points[0].Solution.MoleFractions["O2"], points[4].Solution.MoleFractions["O2"])
	assert.Less(t, points[0].Solution.MoleFractions["CO"], points[4].Solution.MoleFractions["CO"])

	// Same results serially
	serial, err := s.Sweep(context.Background(), problem, phis[:2], 1)
	require.NoError(t, err)
	assert.InEpsilon(t, points[1].Solution.T, serial[1].Solution.T, 1.e-3)

	fits, err := FitSweep(points, 2, "T", "X(H2O)", "X(co)")
	require.NoError(t, err)
	require.Len(t, fits, 3)
	assert.Equal(t, "T", fits[0].Field)
	assert.Equal(t, "X(co)", fits[2].Field)
	coeffs := fits[0].Coeffs
	require.Len(t, coeffs, 3)
	assert.Less(t, coeffs[2], 0.)
	for _, pt := range points {
		assert.InEpsilon(t, pt.Solution.T, utils.PolyVal(coeffs, pt.Phi), 0.1)
	}
	// Each field is fitted on its own
	single, err := FitSweep(points, 2, "X(H2O)")
	require.NoError(t, err)
	assert.Equal(t, single[0].Coeffs, fits[1].Coeffs)

	_, err = FitSweep(points, 2, "T", "enthalpy")
	assert.Error(t, err)
	_, err = FitSweep(points, 2)
	assert.Error(t, err)
}

func TestSweepCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	problem := Problem{Type: types.Problem_HP, Mixture: fuelOxidizer(hydrogen, oxygen), Pressure: 1}
	points, err := newTestSolver(1).Sweep(ctx, problem, []float64{0.5, 1, 1.5}, 4)
	assert.True(t, errors.Is(err, context.Canceled))
	require.Len(t, points, 3)
	for _, pt := range points {
		assert.Nil(t, pt.Solution)
		assert.True(t, errors.Is(pt.Err, context.Canceled))
	}
}

func TestSweepFailuresStayPerPoint(t *testing.T) {
	problem := Problem{Type: types.Problem_HP, Mixture: fuelOxidizer(hydrogen, oxygen), Pressure: 1}
	points, err := newTestSolver(1).Sweep(context.Background(), problem, []float64{1, 5}, 2)
	require.NoError(t, err)
	assert.NoError(t, points[0].Err)
	assert.Error(t, points[1].Err)
	assert.Nil(t, points[1].Solution)
	// Fitting skips the failed point and then lacks data for a line
	_, err = FitSweep(points, 1, "T")
	assert.Error(t, err)
}
