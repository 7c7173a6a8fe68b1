package lwr_riemann

import (
	"sort"

	"github.com/notargets/lwrtraffic/utils"
)

// Sample returns q(x, t) = q(x/t). At t <= 0 it returns the initial data.
func (sol *Solution) Sample(x []float64, t float64) (q []float64) {
	q = make([]float64, len(x))
	for i, xx := range x {
		switch {
		case t > 0:
			q[i] = sol.At(xx / t)
		case xx < 0:
			q[i] = sol.Problem.QL
		default:
			q[i] = sol.Problem.QR
		}
	}
	return
}

// FluxAt returns f(q(xi), v(xi)), using v_l for xi < 0 and v_r otherwise
func (sol *Solution) FluxAt(xi []float64) (f []float64) {
	f = make([]float64, len(xi))
	for i, x := range xi {
		v := sol.Problem.VR
		if x < 0 {
			v = sol.Problem.VL
		}
		f[i] = Flux(sol.At(x), v)
	}
	return
}

/*
KeyPoints returns a sorted grid on [xMin, xMax] that straddles every wave edge at time t by
+/- tol, with fanPoints interior samples in each rarefaction, and the density on it.
Between neighboring points q(x, t) is linear (constant or inside a fan), so the grid
represents the solution exactly up to the straddle width.
*/
func (sol *Solution) KeyPoints(t, xMin, xMax, tol float64, fanPoints int) (X, Q []float64) {
	var (
		inside = func(x float64) bool { return x > xMin && x < xMax }
	)
	X = []float64{xMin, xMax}
	addStraddle := func(x float64) {
		for _, xx := range []float64{x - tol, x + tol} {
			if inside(xx) {
				X = append(X, xx)
			}
		}
	}
	if t <= 0 {
		addStraddle(0)
	} else {
		for _, w := range sol.Waves {
			addStraddle(w.Lo * t)
			if w.Type == Rarefaction {
				addStraddle(w.Hi * t)
				if fanPoints > 0 {
					fan := utils.Linspace(w.Lo*t, w.Hi*t, fanPoints+2)
					for _, xx := range fan[1 : len(fan)-1] {
						if inside(xx) {
							X = append(X, xx)
						}
					}
				}
			}
		}
	}
	sort.Float64s(X)
	Q = sol.Sample(X, t)
	return
}

// Mass integrates q(x, t) over [xMin, xMax]. While no wave has left the interval it equals
// -xMin q_l + xMax q_r + t (f_l - f_r).
func (sol *Solution) Mass(t, xMin, xMax float64) float64 {
	var (
		tol = 1.e-10 * (xMax - xMin)
	)
	X, Q := sol.KeyPoints(t, xMin, xMax, tol, 1)
	return utils.Integrate(X, Q)
}
