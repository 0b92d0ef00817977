/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"

	"github.com/ghodss/yaml"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/notargets/ceq/InputParameters"
	"github.com/notargets/ceq/equilibrium"
	"github.com/notargets/ceq/utils"
)

// SweepCmd represents the sweep command
var SweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Equilibrium products over a range of equivalence ratios",
	Long: `
Solves one problem per equivalence ratio in [phiMin, phiMax] and optionally fits
a polynomial in phi to each of the result fields (T, H, S, G, U, M, rho, P, V,
Ntot, OF or X(species)),

ceq sweep --fuel H2=1 --oxidizer O2=1 --phiMin 0.5 --phiMax 2 --field T,X(OH) --degree 3`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			fs = cmd.Flags()
		)
		ip, err := readInput(fs)
		if err != nil {
			return
		}
		sw, err := readSweep(fs, ip)
		if err != nil {
			return
		}
		ip.Sweep = sw
		echoInput(ip)
		p, err := ip.ProblemDefinition()
		if err != nil {
			return
		}
		s, err := newSolver()
		if err != nil {
			return
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		points, err := s.Sweep(ctx, p, sw.Phis(), sw.Parallel)
		if err != nil {
			return
		}
		logrus.WithField("memory", utils.GetMemUsage()).Debug("sweep memory")
		var fits []equilibrium.SweepFit
		if sw.Degree > 0 {
			if fits, err = equilibrium.FitSweep(points, sw.Degree, sw.Fields...); err != nil {
				return
			}
		}
		asYAML, _ := fs.GetBool("yaml")
		return writeSweep(cmd.OutOrStdout(), points, fits, asYAML)
	},
}

func init() {
	rootCmd.AddCommand(SweepCmd)
	addProblemFlags(SweepCmd.Flags())
	addSweepFlags(SweepCmd.Flags())
}

func addSweepFlags(fs *pflag.FlagSet) {
	fs.Float64("phiMin", equilibrium.DefaultPhiMin, "smallest equivalence ratio")
	fs.Float64("phiMax", equilibrium.DefaultPhiMax, "largest equivalence ratio")
	fs.Float64("phiStep", equilibrium.DefaultPhiStep, "equivalence ratio increment")
	fs.StringSlice("field", []string{"T"}, "result fields to fit against phi, as T,X(OH)")
	fs.Int("degree", 0, "degree of the fitted polynomial, 0 for no fit")
	fs.Int("parallel", runtime.NumCPU(), "number of concurrent solves")
}

// readSweep merges the sweep section of the input file with the sweep flags.
func readSweep(fs *pflag.FlagSet, ip *InputParameters.InputParameters) (sw *InputParameters.SweepParameters, err error) {
	fromFile := ip.Sweep != nil
	sw = &InputParameters.SweepParameters{}
	if fromFile {
		*sw = *ip.Sweep
	}
	use := func(name string) bool { return !fromFile || fs.Changed(name) }
	for _, f := range []struct {
		name string
		dst  *float64
	}{
		{"phiMin", &sw.PhiMin},
		{"phiMax", &sw.PhiMax},
		{"phiStep", &sw.PhiStep},
	} {
		if use(f.name) {
			if *f.dst, err = fs.GetFloat64(f.name); err != nil {
				return
			}
		}
	}
	if use("field") || len(sw.Fields) == 0 {
		if sw.Fields, err = fs.GetStringSlice("field"); err != nil {
			return
		}
	}
	for _, f := range []struct {
		name string
		dst  *int
	}{
		{"degree", &sw.Degree},
		{"parallel", &sw.Parallel},
	} {
		if use(f.name) {
			if *f.dst, err = fs.GetInt(f.name); err != nil {
				return
			}
		}
	}
	if sw.Parallel < 1 {
		sw.Parallel = runtime.NumCPU()
	}
	return
}

type sweepRecord struct {
	Phi      float64               `json:"phi"`
	Solution *equilibrium.Solution `json:"solution,omitempty"`
	Error    string                `json:"error,omitempty"`
}

func writeSweep(w io.Writer, points []equilibrium.SweepPoint, fits []equilibrium.SweepFit, asYAML bool) (err error) {
	if asYAML {
		out := struct {
			Points []sweepRecord          `json:"points"`
			Fits   []equilibrium.SweepFit `json:"fits,omitempty"`
		}{Fits: fits}
		for _, pt := range points {
			rec := sweepRecord{Phi: pt.Phi, Solution: pt.Solution}
			if pt.Err != nil {
				rec.Error = pt.Err.Error()
			}
			out.Points = append(out.Points, rec)
		}
		var data []byte
		if data, err = yaml.Marshal(out); err != nil {
			return
		}
		_, err = w.Write(data)
		return
	}
	fmt.Fprintf(w, "%6s %10s %10s %10s", "phi", "T (K)", "P (atm)", "M")
	for _, name := range equilibrium.ProductNames {
		fmt.Fprintf(w, " %10s", name)
	}
	fmt.Fprintln(w)
	for _, pt := range points {
		if pt.Err != nil {
			fmt.Fprintf(w, "%6.3f failed: %v\n", pt.Phi, pt.Err)
			continue
		}
		sol := pt.Solution
		fmt.Fprintf(w, "%6.3f %10.2f %10.4f %10.4f", pt.Phi, sol.T, sol.Pressure, sol.MolarMass)
		for _, name := range equilibrium.ProductNames {
			fmt.Fprintf(w, " %10.3e", sol.MoleFractions[name])
		}
		fmt.Fprintln(w)
	}
	for _, fit := range fits {
		fmt.Fprintf(w, "%s(phi) =", fit.Field)
		for i, c := range fit.Coeffs {
			fmt.Fprintf(w, " %+.6e phi^%d", c, i)
		}
		fmt.Fprintln(w)
	}
	return
}
