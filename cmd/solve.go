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
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/lwrtraffic/InputParameters"
	"github.com/notargets/lwrtraffic/lwr_riemann"
	"github.com/notargets/lwrtraffic/utils"
)

// SolveCmd represents the solve command
var SolveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Classify and solve one or more Riemann problems",
	Long: `
Prints the wave pattern, intermediate states and wave speeds of each Riemann problem,
followed by the density sampled in xi = x/t. Problems come from the command line or
from a YAML file (-I) like:

########################################
Title: "Speed limit drop"
Time: 0.5
XiMin: -70
XiMax: 70
Samples: 15
Cases:
  - Name: congested approach
    QL: 0.8
    QR: 0.8
    VL: 60
    VR: 40
########################################

lwr solve --ql 0.8 --qr 0.8 --vl 60 --vr 40`,
	PreRunE: bindFlags,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip *InputParameters.RiemannParameters
		)
		if ip, err = solveParameters(); err != nil {
			return
		}
		ip.Print()
		_, err = RunSolve(ip, viper.GetBool("verbose"))
		return
	},
}

func init() {
	rootCmd.AddCommand(SolveCmd)
	addProblemFlags(SolveCmd)
	SolveCmd.Flags().IntP("samples", "n", 11, "number of xi samples to print")
	SolveCmd.Flags().Float64("xiMin", -1, "lower end of the xi = x/t sample range")
	SolveCmd.Flags().Float64("xiMax", 1, "upper end of the xi = x/t sample range")
	SolveCmd.Flags().Float64P("time", "t", 0, "if > 0, also print q(x, t) at the wave edges and the mass on [xiMin t, xiMax t]")
	SolveCmd.Flags().StringP("inputFile", "I", "", "YAML file with a list of Riemann problems, overrides the problem flags")
}

func addProblemFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("ql", 0.8, "density for x < 0, in [0, 1]")
	cmd.Flags().Float64("qr", 0.8, "density for x > 0, in [0, 1]")
	cmd.Flags().Float64("vl", 60, "speed limit for x < 0")
	cmd.Flags().Float64("vr", 40, "speed limit for x > 0")
	cmd.Flags().Float64("tol", lwr_riemann.DefaultTolerance, "relative tolerance for case boundaries, 0 for exact comparisons")
}

func problemFromFlags() lwr_riemann.Problem {
	return lwr_riemann.NewProblem(
		viper.GetFloat64("ql"), viper.GetFloat64("qr"),
		viper.GetFloat64("vl"), viper.GetFloat64("vr"))
}

func solveParameters() (ip *InputParameters.RiemannParameters, err error) {
	ip = InputParameters.NewRiemannParameters()
	if fileName := viper.GetString("inputFile"); len(fileName) != 0 {
		var data []byte
		if data, err = os.ReadFile(fileName); err != nil {
			return nil, err
		}
		if err = ip.Parse(data); err != nil {
			return nil, fmt.Errorf("%s: %w", fileName, err)
		}
	} else {
		p := problemFromFlags()
		ip.Title = "command line"
		ip.Tolerance = viper.GetFloat64("tol")
		ip.Samples = viper.GetInt("samples")
		ip.XiMin, ip.XiMax = viper.GetFloat64("xiMin"), viper.GetFloat64("xiMax")
		ip.Time = viper.GetFloat64("time")
		ip.Cases = []InputParameters.RiemannCase{{QL: p.QL, QR: p.QR, VL: p.VL, VR: p.VR}}
	}
	if err = ip.Validate(); err != nil {
		return nil, err
	}
	return
}

// RunSolve solves every case in the parameters and prints the results
func RunSolve(ip *InputParameters.RiemannParameters, verbose bool) (sols []*lwr_riemann.Solution, err error) {
	var (
		c  = lwr_riemann.NewClassifier(ip.Tolerance)
		xi = utils.Linspace(ip.XiMin, ip.XiMax, ip.Samples)
	)
	for i, rc := range ip.Cases {
		var sol *lwr_riemann.Solution
		fmt.Printf("\nCase[%d] %s\n", i, rc.Name)
		if sol, err = c.Classify(rc.Problem()); err != nil {
			return nil, fmt.Errorf("case %d %q: %w", i, rc.Name, err)
		}
		sols = append(sols, sol)
		fmt.Printf("%s", sol)
		if verbose {
			for j, q := range sol.States {
				fmt.Printf("State[%d]: q = %8.5f, v = %8.3f, f = %9.5f\n",
					j, q, sol.StateSpeedLimit(j), sol.StateFlux(j))
			}
		}
		q := sol.Evaluate(xi)
		fmt.Printf("%10s %10s\n", "xi", "q")
		for j := range xi {
			fmt.Printf("%10.4f %10.6f\n", xi[j], q[j])
		}
		if ip.Time > 0 {
			var (
				xMin, xMax = ip.XiMin * ip.Time, ip.XiMax * ip.Time
			)
			X, Q := sol.KeyPoints(ip.Time, xMin, xMax, 1.e-8*(xMax-xMin), 0)
			fmt.Printf("t = %8.5f\n%10s %10s\n", ip.Time, "x", "q")
			for j := range X {
				fmt.Printf("%10.4f %10.6f\n", X[j], Q[j])
			}
			fmt.Printf("Mass on [%8.4f,%8.4f] = %12.6f\n", xMin, xMax, sol.Mass(ip.Time, xMin, xMax))
		}
	}
	return
}
