package utils

import "math"

type EvalOp uint8

const (
	Equal EvalOp = iota
	Less
	Greater
	LessOrEqual
	GreaterOrEqual
)

func (op EvalOp) String() string {
	switch op {
	case Equal:
		return "=="
	case Less:
		return "<"
	case Greater:
		return ">"
	case LessOrEqual:
		return "<="
	case GreaterOrEqual:
		return ">="
	}
	return "?"
}

// Compare reports whether "a op b" holds when values within tol*|scale| of each other are
// treated as equal. A zero tol gives exact floating point comparison.
func Compare(a float64, op EvalOp, b, tol, scale float64) bool {
	var (
		eq = math.Abs(a-b) <= tol*math.Abs(scale)
	)
	switch op {
	case Equal:
		return eq
	case Less:
		return a < b && !eq
	case Greater:
		return a > b && !eq
	case LessOrEqual:
		return a < b || eq
	case GreaterOrEqual:
		return a > b || eq
	}
	return false
}
