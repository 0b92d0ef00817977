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
	"github.com/spf13/cobra"
)

// SolveCmd represents the solve command
var SolveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Equilibrium products of one mixture",
	Long: `
Solves one HP, TP, UV or TV problem, read from an input file (-I) or from flags,

ceq solve --fuel CH4=1 --oxidizer O2=0.21,N2=0.79 --phi 1 --pressure 1`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			fs = cmd.Flags()
		)
		ip, err := readInput(fs)
		if err != nil {
			return
		}
		echoInput(ip)
		p, err := ip.ProblemDefinition()
		if err != nil {
			return
		}
		s, err := newSolver()
		if err != nil {
			return
		}
		sol, err := s.Solve(p)
		if err != nil {
			return
		}
		asYAML, _ := fs.GetBool("yaml")
		return writeSolution(cmd.OutOrStdout(), sol, asYAML)
	},
}

func init() {
	rootCmd.AddCommand(SolveCmd)
	addProblemFlags(SolveCmd.Flags())
}
