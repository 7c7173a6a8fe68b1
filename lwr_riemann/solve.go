package lwr_riemann

import (
	"fmt"
	"math"
	"strings"
)

const (
	// DefaultTolerance is the relative band inside which case boundary comparisons are
	// treated as ties. Fluxes are scaled by max(v_l, v_r)/4, speed limits by max(v_l, v_r)
	DefaultTolerance = 1.e-12
)

type Classifier struct {
	Tol float64
}

// NewClassifier with tol = 0 uses exact floating point comparisons for the case predicates
func NewClassifier(tol float64) *Classifier {
	return &Classifier{Tol: math.Abs(tol)}
}

// Classify solves the Riemann problem with the default tolerance
func Classify(qL, qR, vL, vR float64) (sol *Solution, err error) {
	return NewClassifier(DefaultTolerance).Classify(NewProblem(qL, qR, vL, vR))
}

func (c *Classifier) ClassifyCase(p Problem) (ct CaseType, err error) {
	if err = p.Validate(); err != nil {
		return Unclassified, err
	}
	return newCaseState(p, c.Tol).classify()
}

func (c *Classifier) Classify(p Problem) (sol *Solution, err error) {
	var (
		s      *caseState
		ct     CaseType
		states []float64
		waves  []Wave
	)
	if err = p.Validate(); err != nil {
		return
	}
	s = newCaseState(p, c.Tol)
	if ct, err = s.classify(); err != nil {
		return
	}
	states, waves = caseHandlers[ct](s)
	clampToInterface(waves)
	sol = &Solution{
		Problem: p,
		Case:    ct,
		States:  states,
		Waves:   waves,
	}
	if sol.Profile, err = NewProfile(p.QL, waves); err != nil {
		err = fmt.Errorf("%s: %w", ct, err)
		return nil, err
	}
	return
}

type caseHandler func(s *caseState) (states []float64, waves []Wave)

var caseHandlers = map[CaseType]caseHandler{
	// Equal fluxes: q_l for xi < 0 and q_r from the interface on, not q_l everywhere
	ContactOnly: func(s *caseState) ([]float64, []Wave) {
		return []float64{s.QL, s.QR}, []Wave{NewContact(s.QL, s.QR)}
	},
	LeftShock: func(s *caseState) ([]float64, []Wave) {
		// q* is the congested state under v_l carrying the right flux
		qs := CongestedDensity(s.FR, s.VL)
		return []float64{s.QL, qs, s.QR}, []Wave{
			NewShock(s.QL, qs, ShockSpeed(s.QL, qs, s.FL, s.FR, s.VL), s.VL),
			NewContact(qs, s.QR),
		}
	},
	RightShock: func(s *caseState) ([]float64, []Wave) {
		qs := FreeDensity(s.FL, s.VR)
		return []float64{s.QL, qs, s.QR}, []Wave{
			NewContact(s.QL, qs),
			NewShock(qs, s.QR, ShockSpeed(qs, s.QR, s.FL, s.FR, s.VR), s.VR),
		}
	},
	LeftShockRightRarefaction: func(s *caseState) ([]float64, []Wave) {
		// Interface flux is the right side capacity v_r/4
		qs := CongestedDensity(s.FMaxR, s.VL)
		return []float64{s.QL, qs, SonicDensity, s.QR}, []Wave{
			NewShock(s.QL, qs, ShockSpeed(s.QL, qs, s.FL, s.FMaxR, s.VL), s.VL),
			NewContact(qs, SonicDensity),
			NewRarefaction(SonicDensity, s.QR, s.VR),
		}
	},
	LeftRarefactionRightShock: func(s *caseState) ([]float64, []Wave) {
		qs := FreeDensity(s.FMaxL, s.VR)
		return []float64{s.QL, SonicDensity, qs, s.QR}, []Wave{
			NewRarefaction(s.QL, SonicDensity, s.VL),
			NewContact(SonicDensity, qs),
			NewShock(qs, s.QR, ShockSpeed(qs, s.QR, s.FMaxL, s.FR, s.VR), s.VR),
		}
	},
	TransonicLeftStar: func(s *caseState) ([]float64, []Wave) {
		qs := CongestedDensity(s.FMaxR, s.VL)
		return []float64{s.QL, qs, SonicDensity, s.QR}, []Wave{
			NewRarefaction(s.QL, qs, s.VL),
			NewContact(qs, SonicDensity),
			NewRarefaction(SonicDensity, s.QR, s.VR),
		}
	},
	TransonicRightStar: func(s *caseState) ([]float64, []Wave) {
		qs := FreeDensity(s.FMaxL, s.VR)
		return []float64{s.QL, SonicDensity, qs, s.QR}, []Wave{
			NewRarefaction(s.QL, SonicDensity, s.VL),
			NewContact(SonicDensity, qs),
			NewRarefaction(qs, s.QR, s.VR),
		}
	},
	TransonicEqualLimits: func(s *caseState) ([]float64, []Wave) {
		// A single fan through the sonic point, the interface is invisible
		return []float64{s.QL, s.QR}, []Wave{
			NewRarefaction(s.QL, s.QR, s.VL),
		}
	},
	LeftRarefaction: func(s *caseState) ([]float64, []Wave) {
		qs := CongestedDensity(s.FR, s.VL)
		return []float64{s.QL, qs, s.QR}, []Wave{
			NewRarefaction(s.QL, qs, s.VL),
			NewContact(qs, s.QR),
		}
	},
	RightRarefaction: func(s *caseState) ([]float64, []Wave) {
		qs := FreeDensity(s.FL, s.VR)
		return []float64{s.QL, qs, s.QR}, []Wave{
			NewContact(s.QL, qs),
			NewRarefaction(qs, s.QR, s.VR),
		}
	},
}

// clampToInterface pins waves to their side of the contact. Tie breaking at a case
// boundary can leave a fan edge a rounding error across xi = 0.
func clampToInterface(waves []Wave) {
	ci := contactIndex(waves)
	if ci < 0 {
		return
	}
	for i := range waves {
		w := &waves[i]
		switch {
		case i < ci:
			w.Lo, w.Hi = math.Min(w.Lo, 0), math.Min(w.Hi, 0)
		case i > ci:
			w.Lo, w.Hi = math.Max(w.Lo, 0), math.Max(w.Hi, 0)
		}
		if w.Hi < w.Lo {
			w.Hi = w.Lo
		}
	}
}

func contactIndex(waves []Wave) int {
	for i, w := range waves {
		if w.Type == Contact {
			return i
		}
	}
	return -1
}

/*
Solution is the self-similar solution of one Riemann problem. States runs from q_l to q_r
and Waves[i] separates States[i] from States[i+1]. The embedded Profile evaluates q(xi).
*/
type Solution struct {
	Problem Problem
	Case    CaseType
	States  []float64
	Waves   []Wave
	*Profile
}

// Speeds returns [lo, hi] for every wave, lo == hi for shocks and contacts
func (sol *Solution) Speeds() (speeds [][2]float64) {
	speeds = make([][2]float64, len(sol.Waves))
	for i, w := range sol.Waves {
		speeds[i] = [2]float64{w.Lo, w.Hi}
	}
	return
}

func (sol *Solution) WaveTypes() (wt []WaveType) {
	wt = make([]WaveType, len(sol.Waves))
	for i, w := range sol.Waves {
		wt[i] = w.Type
	}
	return
}

// ContactIndex is the index into Waves of the contact, -1 when the speed limits are equal
// and the solution is a single transonic fan
func (sol *Solution) ContactIndex() int {
	return contactIndex(sol.Waves)
}

// StateSpeedLimit is the speed limit in effect for States[i]
func (sol *Solution) StateSpeedLimit(i int) float64 {
	ci := sol.ContactIndex()
	if ci >= 0 && i > ci {
		return sol.Problem.VR
	}
	return sol.Problem.VL
}

func (sol *Solution) StateFlux(i int) float64 {
	return Flux(sol.States[i], sol.StateSpeedLimit(i))
}

func (sol *Solution) String() string {
	var (
		sb strings.Builder
	)
	fmt.Fprintf(&sb, "%s\nCase: %s\n", sol.Problem, sol.Case)
	fmt.Fprintf(&sb, "States: %v\n", sol.States)
	for i, w := range sol.Waves {
		fmt.Fprintf(&sb, "Wave[%d]: %s\n", i, w)
	}
	return sb.String()
}
