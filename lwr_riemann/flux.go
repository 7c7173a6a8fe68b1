package lwr_riemann

import "math"

/*
	LWR traffic flux with speed limit v, density normalized to [0,1]:
		f(q, v) = v q (1-q),  c(q, v) = df/dq = v (1-2q)
	The flux is a concave parabola with maximum v/4 at the sonic density q = 0.5.
*/

const (
	SonicDensity = 0.5
	shockJumpTol = 1.e-8
)

func Flux(q, v float64) float64 {
	return v * q * (1. - q)
}

func CharSpeed(q, v float64) float64 {
	return v * (1. - 2.*q)
}

func MaxFlux(v float64) float64 {
	return 0.25 * v
}

// FanDensity inverts CharSpeed: the density carried by the characteristic xi = x/t
func FanDensity(xi, v float64) float64 {
	return 0.5 * (1. - xi/v)
}

// CongestedDensity is the root q >= 0.5 of Flux(q, v) = f
func CongestedDensity(f, v float64) float64 {
	return 0.5 * (1. + math.Sqrt(discriminant(f, v)))
}

// FreeDensity is the root q <= 0.5 of Flux(q, v) = f
func FreeDensity(f, v float64) float64 {
	return 0.5 * (1. - math.Sqrt(discriminant(f, v)))
}

func discriminant(f, v float64) float64 {
	// Clamped, f can exceed v/4 by the classification tolerance
	return math.Max(0, 1.-4.*f/v)
}

/*
ShockSpeed is the Rankine-Hugoniot speed of a jump from (qa, fa) to (qb, fb) on the flux curve
of speed limit v. Below shockJumpTol the quotient is dominated by rounding, so the jump moves at
the chord slope v (1 - qa - qb), which is the characteristic speed when qa == qb.
*/
func ShockSpeed(qa, qb, fa, fb, v float64) float64 {
	if math.Abs(qb-qa) <= shockJumpTol {
		return v * (1. - qa - qb)
	}
	return (fb - fa) / (qb - qa)
}
