package phase_plane

import (
	"fmt"
	"math"

	"github.com/notargets/lwrtraffic/lwr_riemann"
	"github.com/notargets/lwrtraffic/utils"
)

const (
	DefaultCurvePoints = 500
	// ProbeOffset is the distance in xi either side of a wave speed at which the solution is sampled
	ProbeOffset = 1.e-7
)

type ContractError struct {
	Reason string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("malformed Riemann solution: %s", e.Reason)
}

type Point struct {
	Q, F float64
}

// Curve is the flux parabola f(q, V) on [0, 1]
type Curve struct {
	V    float64
	Q, F []float64
}

type Marker struct {
	Label string
	Point
}

// Segment is the path a wave traces between its two states in the q-f plane
type Segment struct {
	Type lwr_riemann.WaveType
	Q, F []float64
}

/*
PhasePlane is everything needed to draw a Riemann solution in the (q, f) plane:
  - Curves:   the flux parabolas for v_l and v_r
  - Markers:  the left and right states
  - Segments: one per wave, fans along their parabola, jumps as chords
  - Probes:   the solution sampled just either side of every wave speed
*/
type PhasePlane struct {
	Problem    lwr_riemann.Problem
	Case       lwr_riemann.CaseType
	Curves     [2]Curve
	Markers    [2]Marker
	Segments   []Segment
	Probes     []Point
	YMax       float64
	SonicGuide [2]Point
}

// Build converts a solution into plot data. The states and speeds are taken from the solution
// as they are, nothing is recomputed beyond the flux of each state.
func Build(sol *lwr_riemann.Solution, nCurve int) (pp *PhasePlane, err error) {
	if err = checkSolution(sol); err != nil {
		return
	}
	if nCurve < 2 {
		nCurve = DefaultCurvePoints
	}
	var (
		p      = sol.Problem
		fluxes = make([]float64, len(sol.States))
	)
	for i := range sol.States {
		fluxes[i] = sol.StateFlux(i)
	}
	pp = &PhasePlane{
		Problem: p,
		Case:    sol.Case,
		Curves:  [2]Curve{fluxCurve(p.VL, 0, 1, nCurve), fluxCurve(p.VR, 0, 1, nCurve)},
		Markers: [2]Marker{
			{Label: "q_l", Point: Point{p.QL, lwr_riemann.Flux(p.QL, p.VL)}},
			{Label: "q_r", Point: Point{p.QR, lwr_riemann.Flux(p.QR, p.VR)}},
		},
		YMax: 0.3 * math.Max(p.VL, p.VR),
	}
	pp.SonicGuide = [2]Point{{lwr_riemann.SonicDensity, 0}, {lwr_riemann.SonicDensity, pp.YMax}}
	for i, w := range sol.Waves {
		var seg Segment
		switch w.Type {
		case lwr_riemann.Rarefaction:
			c := fluxCurve(w.V, sol.States[i], sol.States[i+1], nCurve)
			seg = Segment{Type: w.Type, Q: c.Q, F: c.F}
		default:
			seg = Segment{
				Type: w.Type,
				Q:    []float64{sol.States[i], sol.States[i+1]},
				F:    []float64{fluxes[i], fluxes[i+1]},
			}
		}
		pp.Segments = append(pp.Segments, seg)
	}
	pp.Probes = probes(sol)
	return
}

func checkSolution(sol *lwr_riemann.Solution) error {
	switch {
	case sol == nil:
		return &ContractError{"nil solution"}
	case len(sol.States) < 2:
		return &ContractError{fmt.Sprintf("%d states, need at least 2", len(sol.States))}
	case len(sol.Waves) != len(sol.States)-1:
		return &ContractError{fmt.Sprintf("%d waves for %d states", len(sol.Waves), len(sol.States))}
	case sol.Profile == nil:
		return &ContractError{"no evaluator"}
	case utils.IsNan(sol.States...):
		return &ContractError{fmt.Sprintf("NaN in states %v", sol.States)}
	}
	for i, w := range sol.Waves {
		switch w.Type {
		case lwr_riemann.Shock, lwr_riemann.Contact:
		case lwr_riemann.Rarefaction:
			if !(w.V > 0) {
				return &ContractError{fmt.Sprintf("wave %d: rarefaction without a speed limit", i)}
			}
		default:
			return &ContractError{fmt.Sprintf("wave %d: unknown wave type %s", i, w.Type)}
		}
	}
	return nil
}

func fluxCurve(v, qMin, qMax float64, n int) (c Curve) {
	c = Curve{V: v, Q: utils.Linspace(qMin, qMax, n)}
	c.F = make([]float64, n)
	for i, q := range c.Q {
		c.F[i] = lwr_riemann.Flux(q, v)
	}
	return
}

// probes samples the solution at s - ProbeOffset and s + ProbeOffset for every wave speed,
// both edges of a fan included
func probes(sol *lwr_riemann.Solution) (pts []Point) {
	var speeds []float64
	for _, w := range sol.Waves {
		speeds = append(speeds, w.Lo)
		if w.Type == lwr_riemann.Rarefaction {
			speeds = append(speeds, w.Hi)
		}
	}
	for _, s := range speeds {
		for _, xi := range []float64{s - ProbeOffset, s + ProbeOffset} {
			v := sol.Problem.VR
			if xi < 0 {
				v = sol.Problem.VL
			}
			q := sol.At(xi)
			pts = append(pts, Point{q, lwr_riemann.Flux(q, v)})
		}
	}
	return
}
