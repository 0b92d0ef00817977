package cmd

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ghodss/yaml"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"

	"github.com/notargets/ceq/InputParameters"
	"github.com/notargets/ceq/equilibrium"
	"github.com/notargets/ceq/mixture"
)

const exampleFile = `
########################################
Title: "Stoichiometric methane in air"
Problem: HP          # HP, TP, UV or TV
Fuel:
  CH4: 1.
Oxidizer:            # quote NO and N, YAML reads them as booleans
  O2: 0.21
  N2: 0.79
Phi: 1.
Temperature: 298.15  # K, initial or held
Pressure: 1.         # atm, HP and TP
#Volume: 7.5         # m^3/kg, UV and TV
########################################
`

// addProblemFlags defines the flags describing one problem. Flags given on the
// command line override the input file.
func addProblemFlags(fs *pflag.FlagSet) {
	fs.StringP("inputFile", "I", "", "YAML or TOML input file, for example:\n"+exampleFile)
	fs.StringP("problem", "p", "HP", "problem type: HP, TP, UV or TV")
	fs.StringToString("fuel", map[string]string{"CH4": "1"}, "fuel species and mole fractions, as CH4=0.9,C2H6=0.1")
	fs.StringToString("oxidizer", map[string]string{"O2": "1"}, "oxidizer species and mole fractions, as O2=0.21,N2=0.79")
	fs.Float64("phi", 1, "equivalence ratio")
	fs.Float64P("temperature", "T", InputParameters.DefaultTemperature, "reactant temperature, or the held temperature of TP and TV, K")
	fs.Float64P("pressure", "P", InputParameters.DefaultPressure, "pressure of HP and TP, atm")
	fs.Float64P("volume", "V", 0, "specific volume of UV and TV, m^3/kg")
	fs.Bool("yaml", false, "write results as YAML")
}

// readInput merges the input file, if any, with the problem flags.
func readInput(fs *pflag.FlagSet) (ip *InputParameters.InputParameters, err error) {
	var fileName string
	if fileName, err = fs.GetString("inputFile"); err != nil {
		return
	}
	if fileName != "" {
		if ip, err = InputParameters.ReadFile(fileName); err != nil {
			return
		}
	} else {
		ip = &InputParameters.InputParameters{}
	}
	use := func(name string) bool { return fileName == "" || fs.Changed(name) }
	if use("problem") || ip.Problem == "" {
		if ip.Problem, err = fs.GetString("problem"); err != nil {
			return
		}
	}
	for _, side := range []struct {
		name string
		dst  *map[string]float64
	}{
		{"fuel", &ip.Fuel},
		{"oxidizer", &ip.Oxidizer},
	} {
		if !use(side.name) {
			continue
		}
		if *side.dst, err = fractionsFlag(fs, side.name); err != nil {
			return
		}
	}
	for _, f := range []struct {
		name string
		dst  *float64
	}{
		{"phi", &ip.Phi},
		{"temperature", &ip.Temperature},
		{"pressure", &ip.Pressure},
		{"volume", &ip.Volume},
	} {
		if !use(f.name) {
			continue
		}
		if *f.dst, err = fs.GetFloat64(f.name); err != nil {
			return
		}
	}
	return
}

// echoInput logs the merged input parameters at debug level.
func echoInput(ip *InputParameters.InputParameters) {
	if !logrus.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	var buf bytes.Buffer
	ip.Print(&buf)
	logrus.Debug("input parameters\n" + buf.String())
}

// fractionsFlag reads a name=fraction flag.
func fractionsFlag(fs *pflag.FlagSet, name string) (fractions map[string]float64, err error) {
	var raw map[string]string
	if raw, err = fs.GetStringToString(name); err != nil {
		return
	}
	fractions = make(map[string]float64, len(raw))
	for species, v := range raw {
		if fractions[species], err = cast.ToFloat64E(v); err != nil {
			return nil, mixture.Invalid(name, mixture.ErrMoleFractionSum, "%s=%q is not a number", species, v)
		}
	}
	return
}

func writeSolution(w io.Writer, sol *equilibrium.Solution, asYAML bool) (err error) {
	if asYAML {
		var data []byte
		if data, err = yaml.Marshal(sol); err != nil {
			return
		}
		_, err = w.Write(data)
		return
	}
	fmt.Fprintf(w, "Problem %s, phi = %.4f, O/F = %.5f\n", sol.ProblemName, sol.Phi, sol.OF)
	fmt.Fprintf(w, "%12.3f\t= T (K)\n", sol.T)
	fmt.Fprintf(w, "%12.5f\t= P (atm)\n", sol.Pressure)
	fmt.Fprintf(w, "%12.5e\t= rho (kg/m^3)\n", sol.Density)
	fmt.Fprintf(w, "%12.3f\t= H (kJ/kg)\n", sol.H)
	fmt.Fprintf(w, "%12.3f\t= U (kJ/kg)\n", sol.U)
	fmt.Fprintf(w, "%12.5f\t= S (kJ/kg K)\n", sol.S)
	fmt.Fprintf(w, "%12.3f\t= G (kJ/kg)\n", sol.G)
	fmt.Fprintf(w, "%12.5f\t= M (kg/kmol)\n", sol.MolarMass)
	fmt.Fprintf(w, "%12.5e\t= element residual\n", sol.ElementResidual)
	fmt.Fprintf(w, "%d attempts, %d iterations\n", sol.Attempts, sol.Iterations)
	fmt.Fprintf(w, "%-8s %14s %14s\n", "Species", "X", "n (kmol/kg)")
	for _, name := range sol.Dominant() {
		fmt.Fprintf(w, "%-8s %14.6e %14.6e\n", name, sol.MoleFractions[name], sol.Moles[name])
	}
	return
}
