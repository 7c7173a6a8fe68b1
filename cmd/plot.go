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
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/lwrtraffic/lwr_riemann"
	"github.com/notargets/lwrtraffic/phase_plane"
)

// PlotCmd represents the plot command
var PlotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot a Riemann solution in the density-flux plane",
	Long: `
Opens a window with both flux curves, the left and right states, the path each wave
takes between its states and the solution sampled just either side of every wave.

lwr plot --ql 0.7 --qr 0.3 --vl 60 --vr 40`,
	PreRunE: bindFlags,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			sol *lwr_riemann.Solution
			p   = problemFromFlags()
		)
		if sol, err = lwr_riemann.NewClassifier(viper.GetFloat64("tol")).Classify(p); err != nil {
			return
		}
		fmt.Printf("%s", sol)
		opts := phase_plane.DefaultPlotOptions()
		opts.NCurve = viper.GetInt("curvePoints")
		opts.Hold = time.Duration(viper.GetInt("hold")) * time.Millisecond
		return phase_plane.Plot(sol, opts)
	},
}

func init() {
	rootCmd.AddCommand(PlotCmd)
	addProblemFlags(PlotCmd)
	PlotCmd.Flags().Int("curvePoints", phase_plane.DefaultCurvePoints, "points along each flux curve and fan path")
	PlotCmd.Flags().IntP("hold", "d", 0, "milliseconds to keep the window open, 0 keeps it open until interrupted")
}
