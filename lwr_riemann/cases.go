package lwr_riemann

import (
	"math"

	"github.com/notargets/lwrtraffic/utils"
)

type CaseType uint8

const (
	Unclassified CaseType = iota
	ContactOnly
	LeftShock
	RightShock
	LeftShockRightRarefaction
	LeftRarefactionRightShock
	TransonicLeftStar
	TransonicRightStar
	TransonicEqualLimits
	LeftRarefaction
	RightRarefaction
)

var (
	caseNames = []string{
		"Unclassified",
		"Contact only",
		"Left-going shock",
		"Right-going shock",
		"Left-going shock, right-going rarefaction",
		"Left-going rarefaction, right-going shock",
		"Transonic rarefaction, q* on left side",
		"Transonic rarefaction, q* on right side",
		"Transonic rarefaction, equal speed limits",
		"Left-going rarefaction",
		"Right-going rarefaction",
	}
)

func (ct CaseType) String() string {
	if int(ct) < len(caseNames) {
		return caseNames[ct]
	}
	return caseNames[Unclassified]
}

// caseState holds the quantities every case predicate and handler is built from
type caseState struct {
	Problem
	FL, FR       float64 // Flux of the left and right states
	CL, CR       float64 // Characteristic speeds of the left and right states
	FMaxL, FMaxR float64 // Capacity of each side
	tol          float64
	fScale       float64
	vScale       float64
}

func newCaseState(p Problem, tol float64) (s *caseState) {
	s = &caseState{
		Problem: p,
		FL:      Flux(p.QL, p.VL),
		FR:      Flux(p.QR, p.VR),
		CL:      CharSpeed(p.QL, p.VL),
		CR:      CharSpeed(p.QR, p.VR),
		FMaxL:   MaxFlux(p.VL),
		FMaxR:   MaxFlux(p.VR),
		tol:     tol,
		vScale:  math.Max(p.VL, p.VR),
	}
	s.fScale = MaxFlux(s.vScale)
	return
}

func (s *caseState) flux(a float64, op utils.EvalOp, b float64) bool {
	return utils.Compare(a, op, b, s.tol, s.fScale)
}

func (s *caseState) density(q float64, op utils.EvalOp, b float64) bool {
	return utils.Compare(q, op, b, s.tol, 1)
}

// limits compares v_r against v_l
func (s *caseState) limits(op utils.EvalOp) bool {
	return utils.Compare(s.VR, op, s.VL, s.tol, s.vScale)
}

func (s *caseState) transonic() bool {
	return s.density(s.QL, utils.GreaterOrEqual, SonicDensity) &&
		s.density(s.QR, utils.LessOrEqual, SonicDensity) &&
		s.flux(s.FL, utils.LessOrEqual, s.FMaxR) &&
		s.flux(s.FR, utils.LessOrEqual, s.FMaxL)
}

type caseRule struct {
	Case  CaseType
	Match func(s *caseState) bool
}

/*
caseRules is walked in order and the first match wins. The predicates partition the
valid input space only up to their boundaries, e.g. q_l = 0.5 satisfies both the transonic
and the right-going rarefaction predicates, so the order is part of the definition.
*/
var caseRules = []caseRule{
	{ContactOnly, func(s *caseState) bool {
		return s.flux(s.FL, utils.Equal, s.FR)
	}},
	{LeftShock, func(s *caseState) bool {
		return s.flux(s.FR, utils.Less, s.FL) && s.density(s.QR, utils.Greater, SonicDensity)
	}},
	{RightShock, func(s *caseState) bool {
		return s.flux(s.FR, utils.Greater, s.FL) && s.density(s.QL, utils.Less, SonicDensity)
	}},
	{LeftShockRightRarefaction, func(s *caseState) bool {
		return s.flux(s.FL, utils.Greater, s.FMaxR) && s.density(s.QR, utils.LessOrEqual, SonicDensity)
	}},
	{LeftRarefactionRightShock, func(s *caseState) bool {
		return s.flux(s.FR, utils.Greater, s.FMaxL) && s.density(s.QL, utils.GreaterOrEqual, SonicDensity)
	}},
	{TransonicLeftStar, func(s *caseState) bool {
		return s.transonic() && s.limits(utils.Less)
	}},
	{TransonicRightStar, func(s *caseState) bool {
		return s.transonic() && s.limits(utils.Greater)
	}},
	{TransonicEqualLimits, func(s *caseState) bool {
		return s.transonic() && s.limits(utils.Equal)
	}},
	{LeftRarefaction, func(s *caseState) bool {
		return s.flux(s.FL, utils.Less, s.FR) && s.flux(s.FR, utils.LessOrEqual, s.FMaxL) &&
			s.density(s.QL, utils.Greater, SonicDensity) && s.density(s.QR, utils.GreaterOrEqual, SonicDensity)
	}},
	{RightRarefaction, func(s *caseState) bool {
		return s.flux(s.FR, utils.Less, s.FL) && s.flux(s.FL, utils.LessOrEqual, s.FMaxR) &&
			s.density(s.QL, utils.LessOrEqual, SonicDensity) && s.density(s.QR, utils.Less, SonicDensity)
	}},
}

func (s *caseState) classify() (ct CaseType, err error) {
	for _, rule := range caseRules {
		if rule.Match(s) {
			return rule.Case, nil
		}
	}
	return Unclassified, &UnclassifiedStateError{Problem: s.Problem, FL: s.FL, FR: s.FR}
}

// MatchingCases lists every case whose predicate holds, in priority order. More than one
// entry means the problem sits on a boundary between wave patterns.
func (c *Classifier) MatchingCases(p Problem) (cases []CaseType) {
	s := newCaseState(p, c.Tol)
	for _, rule := range caseRules {
		if rule.Match(s) {
			cases = append(cases, rule.Case)
		}
	}
	return
}
