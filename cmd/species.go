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
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/notargets/ceq/equilibrium"
	"github.com/notargets/ceq/mixture"
	"github.com/notargets/ceq/thermo"
)

// SpeciesCmd represents the species command
var SpeciesCmd = &cobra.Command{
	Use:   "species",
	Short: "List the accepted fuel and oxidizer species and the products",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		side, _ := cmd.Flags().GetString("side")
		return listSpecies(cmd.OutOrStdout(), side)
	},
}

func init() {
	rootCmd.AddCommand(SpeciesCmd)
	SpeciesCmd.Flags().StringP("side", "s", "all", "which list to show: fuel, oxidizer, products or all")
}

func listSpecies(w io.Writer, side string) (err error) {
	var (
		sides []mixture.Side
	)
	switch side {
	case "fuel":
		sides = []mixture.Side{mixture.Fuel}
	case "oxidizer":
		sides = []mixture.Side{mixture.Oxidizer}
	case "products":
	case "all":
		sides = []mixture.Side{mixture.Fuel, mixture.Oxidizer}
	default:
		return fmt.Errorf("unknown species list %q", side)
	}
	for _, sd := range sides {
		names := mixture.FuelSpecies
		if sd == mixture.Oxidizer {
			names = mixture.OxidizerSpecies
		}
		fmt.Fprintf(w, "%s species\n", sd)
		fmt.Fprintf(w, "%-14s %12s %16s\n", "Name", "M (kg/kmol)", "H298 (kJ/mol)")
		for _, name := range names {
			var (
				sp *mixture.Species
				p  thermo.Properties
			)
			if sp, err = mixture.LookupReactant(sd, name); err != nil {
				return
			}
			if p, err = sp.Thermo.Evaluate(thermo.TRef); err != nil {
				return
			}
			phase := ""
			if sp.Thermo.Condensed() {
				phase = "condensed"
			}
			fmt.Fprintf(w, "%-14s %12.5f %16.3f %s\n", sp.Name, sp.MolarMass, p.H/1.e6, phase)
		}
		fmt.Fprintln(w)
	}
	if side == "products" || side == "all" {
		fmt.Fprintf(w, "products\n")
		for _, name := range equilibrium.ProductNames {
			fmt.Fprintf(w, "%s\n", name)
		}
	}
	return
}
