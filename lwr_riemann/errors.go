package lwr_riemann

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnclassified   = errors.New("unhandled Riemann state")
	ErrInvalidProblem = errors.New("invalid Riemann problem")
)

// UnclassifiedStateError means no wave pattern matched the inputs. It carries the two
// fluxes that drive the case selection for diagnosis.
type UnclassifiedStateError struct {
	Problem Problem
	FL, FR  float64
}

func (e *UnclassifiedStateError) Error() string {
	return fmt.Sprintf("%s: f_l = %v, f_r = %v (%s)", ErrUnclassified, e.FL, e.FR, e.Problem)
}

func (e *UnclassifiedStateError) Is(target error) bool {
	return target == ErrUnclassified
}

type InvalidProblemError struct {
	Problem Problem
	Reasons []string
}

func (e *InvalidProblemError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidProblem, strings.Join(e.Reasons, "; "))
}

func (e *InvalidProblemError) Is(target error) bool {
	return target == ErrInvalidProblem
}
