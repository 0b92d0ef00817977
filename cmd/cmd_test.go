package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ghodss/yaml"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/ceq/InputParameters"
	"github.com/notargets/ceq/equilibrium"
	"github.com/notargets/ceq/mixture"
	"github.com/notargets/ceq/types"
)

func problemFlags(t *testing.T, args ...string) *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addProblemFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestReadInputFromFlags(t *testing.T) {
	fs := problemFlags(t, "--fuel", "CH4=0.9,C2H6=0.1", "--oxidizer", "O2=0.21,N2=0.79",
		"--phi", "0.8", "-P", "3")
	ip, err := readInput(fs)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"CH4": 0.9, "C2H6": 0.1}, ip.Fuel)
	assert.Equal(t, 0.79, ip.Oxidizer["N2"])
	p, err := ip.ProblemDefinition()
	require.NoError(t, err)
	assert.Equal(t, types.Problem_HP, p.Type)
	assert.Equal(t, 0.8, p.Mixture.Phi)
	assert.Equal(t, 3., p.Pressure)
	assert.Equal(t, InputParameters.DefaultTemperature, p.Mixture.T)
	assert.NoError(t, p.Mixture.Validate())

	_, err = readInput(problemFlags(t, "--fuel", "CH4=lots"))
	assert.True(t, errors.Is(err, mixture.ErrInvalidInput))
}

func TestReadInputFileOverride(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "case.yaml")
	require.NoError(t, os.WriteFile(fileName, []byte(`
Problem: TV
Fuel: {H2: 1.}
Oxidizer: {O2: 1.}
Phi: 0.5
Temperature: 2500
Volume: 10
Sweep: {PhiMin: 0.6, PhiMax: 1.0, PhiStep: 0.2, Degree: 1}
`), 0644))
	fs := problemFlags(t, "-I", fileName, "--phi", "1.5")
	ip, err := readInput(fs)
	require.NoError(t, err)
	// The file wins except for flags given on the command line
	assert.Equal(t, "TV", ip.Problem)
	assert.Equal(t, 1.5, ip.Phi)
	assert.Equal(t, 10., ip.Volume)
	assert.Equal(t, map[string]float64{"H2": 1}, ip.Fuel)

	sfs := pflag.NewFlagSet("sweep", pflag.ContinueOnError)
	addProblemFlags(sfs)
	addSweepFlags(sfs)
	require.NoError(t, sfs.Parse([]string{"--degree", "2"}))
	sw, err := readSweep(sfs, ip)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.6, 0.8, 1}, sw.Phis())
	assert.Equal(t, 2, sw.Degree)
	assert.Equal(t, []string{"T"}, sw.Fields)

	require.NoError(t, sfs.Parse([]string{"--field", "T,X(OH)", "--field", "X(H2O)"}))
	sw, err = readSweep(sfs, ip)
	require.NoError(t, err)
	assert.Equal(t, []string{"T", "X(OH)", "X(H2O)"}, sw.Fields)
	assert.GreaterOrEqual(t, sw.Parallel, 1)
}

func TestReadInputDefaultProblem(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "case.toml")
	require.NoError(t, os.WriteFile(fileName, []byte(`
Phi = 0.9
[Fuel]
H2 = 1.0
[Oxidizer]
O2 = 1.0
`), 0644))
	ip, err := readInput(problemFlags(t, "-I", fileName))
	require.NoError(t, err)
	assert.Equal(t, "HP", ip.Problem)
	p, err := ip.ProblemDefinition()
	require.NoError(t, err)
	assert.Equal(t, types.Problem_HP, p.Type)
	assert.Equal(t, 0.9, p.Mixture.Phi)

	ip, err = readInput(problemFlags(t, "-I", fileName, "-p", "TP"))
	require.NoError(t, err)
	assert.Equal(t, "TP", ip.Problem)
}

func TestWriteSolution(t *testing.T) {
	s := equilibrium.NewSolver(equilibrium.Config{Seed: 4})
	sol, err := s.Solve(equilibrium.Problem{
		Type:     types.Problem_TP,
		Mixture:  mixture.Spec{Fuel: []mixture.Component{{Name: "H2", Fraction: 1}}, Oxidizer: []mixture.Component{{Name: "O2", Fraction: 1}}, Phi: 1, T: 1500},
		Pressure: 1,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeSolution(&buf, sol, false))
	assert.Contains(t, buf.String(), "Problem TP")
	assert.Contains(t, buf.String(), "1500.000\t= T (K)")

	buf.Reset()
	require.NoError(t, writeSolution(&buf, sol, true))
	var back equilibrium.Solution
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, sol.T, back.T)
	assert.Equal(t, "TP", back.ProblemName)
	assert.InDelta(t, sol.MoleFractions["H2O"], back.MoleFractions["H2O"], 1.e-12)

	points := []equilibrium.SweepPoint{
		{Phi: 1, Solution: sol},
		{Phi: 5, Err: errors.New("phi out of range")},
	}
	buf.Reset()
	fits := []equilibrium.SweepFit{
		{Field: "T", Coeffs: []float64{1500, 0}},
		{Field: "X(OH)", Coeffs: []float64{0.1, 0}},
	}
	require.NoError(t, writeSweep(&buf, points, fits, false))
	assert.Contains(t, buf.String(), "5.000 failed: phi out of range")
	assert.Contains(t, buf.String(), "T(phi) =")
	assert.Contains(t, buf.String(), "X(OH)(phi) =")

	buf.Reset()
	require.NoError(t, writeSweep(&buf, points, fits, true))
	var records struct {
		Points []sweepRecord           `json:"points"`
		Fits   []equilibrium.SweepFit `json:"fits"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &records))
	require.Len(t, records.Points, 2)
	assert.Equal(t, fits, records.Fits)
	assert.Equal(t, "phi out of range", records.Points[1].Error)
	assert.Equal(t, sol.T, records.Points[0].Solution.T)
}

func TestListSpecies(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, listSpecies(&buf, "all"))
	out := buf.String()
	assert.Contains(t, out, "fuel species")
	assert.Contains(t, out, "oxidizer species")
	assert.Contains(t, out, "C8H18(ISOCT)")
	assert.Contains(t, out, "condensed")
	assert.Contains(t, out, "products")
	assert.Error(t, listSpecies(&buf, "catalysts"))
}

func TestNewSolverSettings(t *testing.T) {
	viper.Set("seed", "17")
	viper.Set("maxAttempts", 5)
	defer func() {
		viper.Set("seed", "0")
		viper.Set("maxAttempts", equilibrium.DefaultMaxAttempts)
	}()
	s, err := newSolver()
	require.NoError(t, err)
	assert.Equal(t, uint64(17), s.Seed)
	assert.Equal(t, 5, s.MaxAttempts)

	viper.Set("seed", "-3")
	_, err = newSolver()
	assert.Error(t, err)
}

func TestSolveCommand(t *testing.T) {
	var out, logs bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&logs)
	rootCmd.SetArgs([]string{"solve", "--fuel", "H2=1", "--oxidizer", "O2=0.21,N2=0.79", "--seed", "3", "--yaml"})
	require.NoError(t, rootCmd.Execute())
	var sol equilibrium.Solution
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &sol))
	assert.Equal(t, "HP", sol.ProblemName)
	assert.Greater(t, sol.T, 2250.)
	assert.Equal(t, 0., sol.MoleFractions["CO2"])
	assert.NotContains(t, logs.String(), "input parameters")

	// At debug level the merged input is echoed before solving
	fileName := filepath.Join(t.TempDir(), "lean.yaml")
	require.NoError(t, os.WriteFile(fileName, []byte("Title: Lean\nFuel: {H2: 1.}\nOxidizer: {O2: 1.}\nPhi: 0.8\n"), 0644))
	defer func() {
		require.NoError(t, rootCmd.PersistentFlags().Set("logLevel", "info"))
		logrus.SetLevel(logrus.InfoLevel)
	}()
	out.Reset()
	logs.Reset()
	rootCmd.SetArgs([]string{"solve", "-I", fileName, "--logLevel", "debug", "--yaml"})
	require.NoError(t, rootCmd.Execute())
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &sol))
	assert.Equal(t, "HP", sol.ProblemName)
	assert.Equal(t, 0.8, sol.Phi)
	assert.Contains(t, logs.String(), "input parameters")
	assert.Contains(t, logs.String(), "= Phi")
}
