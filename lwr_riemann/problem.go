package lwr_riemann

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

var (
	validate = validator.New()
)

// Problem is a Riemann problem with the speed limit interface fixed at x = 0
type Problem struct {
	QL float64 `validate:"gte=0,lte=1"` // Density for x < 0
	QR float64 `validate:"gte=0,lte=1"` // Density for x > 0
	VL float64 `validate:"gt=0"`        // Speed limit for x < 0
	VR float64 `validate:"gt=0"`        // Speed limit for x > 0
}

func NewProblem(qL, qR, vL, vR float64) Problem {
	return Problem{QL: qL, QR: qR, VL: vL, VR: vR}
}

func (p Problem) Validate() error {
	var (
		reasons []string
	)
	if err := validate.Struct(p); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, e := range verrs {
				reasons = append(reasons, describeFieldError(e))
			}
		} else {
			reasons = append(reasons, err.Error())
		}
	}
	for _, fv := range []struct {
		name string
		val  float64
	}{{"QL", p.QL}, {"QR", p.QR}, {"VL", p.VL}, {"VR", p.VR}} {
		if math.IsNaN(fv.val) || math.IsInf(fv.val, 0) {
			reasons = append(reasons, fmt.Sprintf("%s: must be finite, got %v", fv.name, fv.val))
		}
	}
	if len(reasons) != 0 {
		return &InvalidProblemError{Problem: p, Reasons: reasons}
	}
	return nil
}

// Mirror is the same problem seen from the other side of the interface. With
// x -> -x and q -> 1-q the LWR equation is unchanged, so the mirror solution satisfies
// q'(xi) = 1 - q(-xi)
func (p Problem) Mirror() Problem {
	return Problem{QL: 1. - p.QR, QR: 1. - p.QL, VL: p.VR, VR: p.VL}
}

func (p Problem) String() string {
	return fmt.Sprintf("q_l = %8.5f, q_r = %8.5f, v_l = %8.5f, v_r = %8.5f", p.QL, p.QR, p.VL, p.VR)
}

func describeFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "gte":
		return fmt.Sprintf("%s: must be at least %s, got %v", e.Field(), e.Param(), e.Value())
	case "lte":
		return fmt.Sprintf("%s: must not exceed %s, got %v", e.Field(), e.Param(), e.Value())
	case "gt":
		return fmt.Sprintf("%s: must be greater than %s, got %v", e.Field(), e.Param(), e.Value())
	default:
		return fmt.Sprintf("%s: validation failed (%s)", e.Field(), e.Tag())
	}
}
