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
	"math"
	"runtime"
	"sort"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/lwrtraffic/lwr_riemann"
	"github.com/notargets/lwrtraffic/utils"
)

type Sweep struct {
	VL, VR, Tol float64
	N           int // Densities per axis, the sweep covers N x N problems
	Threads     int
}

type SweepResult struct {
	Counts   map[lwr_riemann.CaseType]int
	Failures []error
	// Largest flux jump across the contact and largest wave speed crossing, relative to max(v)/4 and max(v)
	MaxContactResidual, MaxOrderViolation float64
	Elapsed                               time.Duration
}

// SweepCmd represents the sweep command
var SweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Solve every (q_l, q_r) pair on a grid for a fixed pair of speed limits",
	Long: `
Solves N x N Riemann problems in parallel and reports how many fall in each wave
pattern, along with the worst flux mismatch across the contact and the worst
crossing of adjacent wave speeds.

lwr sweep --vl 60 --vr 40 -n 401 --profile cpu`,
	PreRunE: bindFlags,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		switch prof := viper.GetString("profile"); prof {
		case "":
		case "cpu":
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		case "mem":
			defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
		default:
			return fmt.Errorf("unknown profile type %q, use cpu or mem", prof)
		}
		sw := &Sweep{
			VL:      viper.GetFloat64("vl"),
			VR:      viper.GetFloat64("vr"),
			Tol:     viper.GetFloat64("tol"),
			N:       viper.GetInt("n"),
			Threads: viper.GetInt("threads"),
		}
		var res *SweepResult
		if res, err = RunSweep(sw); err != nil {
			return
		}
		res.Print(viper.GetBool("verbose"))
		if len(res.Failures) != 0 {
			err = fmt.Errorf("%d of %d problems failed", len(res.Failures), sw.N*sw.N)
		}
		return
	},
}

func init() {
	rootCmd.AddCommand(SweepCmd)
	SweepCmd.Flags().Float64("vl", 60, "speed limit for x < 0")
	SweepCmd.Flags().Float64("vr", 40, "speed limit for x > 0")
	SweepCmd.Flags().Float64("tol", lwr_riemann.DefaultTolerance, "relative tolerance for case boundaries, 0 for exact comparisons")
	SweepCmd.Flags().IntP("n", "n", 101, "densities per axis")
	SweepCmd.Flags().IntP("threads", "p", runtime.NumCPU(), "number of goroutines")
	SweepCmd.Flags().String("profile", "", "write a cpu or mem profile to the current directory")
}

func RunSweep(sw *Sweep) (res *SweepResult, err error) {
	if sw.N < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 densities per axis, got %d", sw.N)
	}
	if err = lwr_riemann.NewProblem(0, 0, sw.VL, sw.VR).Validate(); err != nil {
		return
	}
	var (
		start    = time.Now()
		q        = utils.Linspace(0, 1, sw.N)
		total    = sw.N * sw.N
		pm       = utils.NewPartitionMap(sw.Threads, total)
		c        = lwr_riemann.NewClassifier(sw.Tol)
		cases    = make([]lwr_riemann.CaseType, total)
		residual = make([]float64, total)
		crossing = make([]float64, total)
		failures = make([][]error, pm.ParallelDegree)
		fScale   = lwr_riemann.MaxFlux(math.Max(sw.VL, sw.VR))
		vScale   = math.Max(sw.VL, sw.VR)
	)
	pm.ForEachBucket(func(bn, kMin, kMax int) {
		for k := kMin; k < kMax; k++ {
			sol, err := c.Classify(lwr_riemann.NewProblem(q[k/sw.N], q[k%sw.N], sw.VL, sw.VR))
			if err != nil {
				failures[bn] = append(failures[bn], err)
				continue
			}
			cases[k] = sol.Case
			if ci := sol.ContactIndex(); ci >= 0 {
				residual[k] = math.Abs(sol.StateFlux(ci)-sol.StateFlux(ci+1)) / fScale
			}
			sp := sol.Speeds()
			for i := 1; i < len(sp); i++ {
				crossing[k] = math.Max(crossing[k], (sp[i-1][1]-sp[i][0])/vScale)
			}
		}
	})
	res = &SweepResult{
		Counts:             make(map[lwr_riemann.CaseType]int),
		MaxContactResidual: floats.Max(residual),
		MaxOrderViolation:  floats.Max(crossing),
	}
	for _, ct := range cases {
		res.Counts[ct]++
	}
	for _, f := range failures {
		res.Failures = append(res.Failures, f...)
	}
	// Failed problems were left Unclassified
	res.Counts[lwr_riemann.Unclassified] -= len(res.Failures)
	if res.Counts[lwr_riemann.Unclassified] == 0 {
		delete(res.Counts, lwr_riemann.Unclassified)
	}
	res.Elapsed = time.Since(start)
	return
}

func (res *SweepResult) Print(verbose bool) {
	var (
		keys  []int
		total int
	)
	for ct, n := range res.Counts {
		keys = append(keys, int(ct))
		total += n
	}
	sort.Ints(keys)
	for _, key := range keys {
		ct := lwr_riemann.CaseType(key)
		fmt.Printf("%-45s %8d\n", ct, res.Counts[ct])
	}
	fmt.Printf("%d problems solved in %v\n", total, res.Elapsed)
	fmt.Printf("Max contact flux residual = %8.2e, max wave order violation = %8.2e\n",
		res.MaxContactResidual, res.MaxOrderViolation)
	if len(res.Failures) != 0 {
		fmt.Printf("%d failures\n", len(res.Failures))
		if verbose {
			for _, err := range res.Failures {
				fmt.Printf("\t%v\n", err)
			}
		}
	}
}
