package utils

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Linspace returns N equally spaced values spanning [min, max], inclusive
func Linspace(min, max float64, N int) (x []float64) {
	if N < 2 {
		return []float64{min}
	}
	x = make([]float64, N)
	floats.Span(x, min, max)
	x[N-1] = max
	return
}

// Integrate is the trapezoid rule over the (sorted) abscissa x
func Integrate(x, u []float64) (result float64) {
	L := len(x)
	for i := 0; i < L-1; i++ {
		delx := x[i+1] - x[i]
		uave := 0.5 * (u[i+1] + u[i])
		result += uave * delx
	}
	return
}

func IsNan(v ...float64) bool {
	for _, f := range v {
		if math.IsNaN(f) {
			return true
		}
	}
	return false
}
