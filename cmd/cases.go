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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/lwrtraffic/lwr_riemann"
)

// CasesCmd represents the cases command
var CasesCmd = &cobra.Command{
	Use:     "cases",
	Short:   "List the wave patterns with a representative problem for each",
	PreRunE: bindFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunCases(viper.GetBool("verbose"))
	},
}

func init() {
	rootCmd.AddCommand(CasesCmd)
}

var representativeCases = []struct {
	Case    lwr_riemann.CaseType
	Problem lwr_riemann.Problem
}{
	{lwr_riemann.ContactOnly, lwr_riemann.NewProblem(0.2, 0.2, 60, 60)},
	{lwr_riemann.LeftShock, lwr_riemann.NewProblem(0.8, 0.8, 60, 40)},
	{lwr_riemann.RightShock, lwr_riemann.NewProblem(0.3, 0.6, 40, 60)},
	{lwr_riemann.LeftShockRightRarefaction, lwr_riemann.NewProblem(0.7, 0.3, 60, 40)},
	{lwr_riemann.LeftRarefactionRightShock, lwr_riemann.NewProblem(0.6, 0.4, 40, 60)},
	{lwr_riemann.TransonicLeftStar, lwr_riemann.NewProblem(0.8, 0.3, 60, 40)},
	{lwr_riemann.TransonicRightStar, lwr_riemann.NewProblem(0.9, 0.2, 40, 60)},
	{lwr_riemann.TransonicEqualLimits, lwr_riemann.NewProblem(0.6, 0.45, 60, 60)},
	{lwr_riemann.LeftRarefaction, lwr_riemann.NewProblem(0.9, 0.6, 60, 40)},
	{lwr_riemann.RightRarefaction, lwr_riemann.NewProblem(0.4, 0.1, 60, 60)},
}

func RunCases(verbose bool) (err error) {
	c := lwr_riemann.NewClassifier(lwr_riemann.DefaultTolerance)
	for i, rc := range representativeCases {
		var sol *lwr_riemann.Solution
		if sol, err = c.Classify(rc.Problem); err != nil {
			return
		}
		if sol.Case != rc.Case {
			return fmt.Errorf("%s: classified as %q, expected %q", rc.Problem, sol.Case, rc.Case)
		}
		fmt.Printf("[%2d] %-45s %v\n", i, rc.Case, sol.WaveTypes())
		if verbose {
			fmt.Printf("%s\n", sol)
		}
	}
	return
}
