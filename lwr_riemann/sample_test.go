package lwr_riemann

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSample(t *testing.T) {
	sol, err := Classify(0.9, 0.2, 40, 60)
	require.NoError(t, err)
	x := []float64{-1, -0.5, 0.5, 2}
	// Initial data
	assert.Equal(t, []float64{0.9, 0.9, 0.2, 0.2}, sol.Sample(x, 0))
	// x/t scaling
	assert.InDeltaSlice(t, sol.Evaluate([]float64{-10, -5, 5, 20}), sol.Sample(x, 0.1), 1.e-15)

	X, Q := sol.KeyPoints(0.1, -5, 5, 1.e-6, 3)
	require.Equal(t, len(X), len(Q))
	assert.True(t, sort.Float64sAreSorted(X))
	assert.Equal(t, -5., X[0])
	assert.Equal(t, 5., X[len(X)-1])
	// Fan edges at -3.2, 0, 3.464, 3.6 are straddled
	for _, edge := range []float64{-3.2, 3.6} {
		assert.True(t, hasNear(X, edge-1.e-6, 1.e-9), "edge %v", edge)
		assert.True(t, hasNear(X, edge+1.e-6, 1.e-9), "edge %v", edge)
	}
	assert.Equal(t, 0.9, Q[0])
	assert.Equal(t, 0.2, Q[len(Q)-1])
	// Points outside the window are dropped
	X, _ = sol.KeyPoints(1, -1, 1, 1.e-6, 3)
	for _, xx := range X {
		assert.True(t, xx >= -1 && xx <= 1)
	}
	X, Q = sol.KeyPoints(0, -1, 1, 1.e-3, 3)
	assert.Equal(t, []float64{-1, -1.e-3, 1.e-3, 1}, X)
	assert.Equal(t, []float64{0.9, 0.9, 0.2, 0.2}, Q)
}

func TestFluxAtInterface(t *testing.T) {
	sol, err := Classify(0.7, 0.3, 60, 40)
	require.NoError(t, err)
	f := sol.FluxAt([]float64{-1.e-9, 1.e-9, -1000, 1000})
	// Flux is continuous through the stationary contact
	assert.InDelta(t, f[0], f[1], 1.e-6)
	assert.InDelta(t, MaxFlux(40), f[1], 1.e-6)
	assert.InDelta(t, Flux(0.7, 60), f[2], 1.e-12)
	assert.InDelta(t, Flux(0.3, 40), f[3], 1.e-12)
}

func TestMass(t *testing.T) {
	sol, err := Classify(0.6, 0.4, 40, 60)
	require.NoError(t, err)
	for _, tt := range []float64{0.1, 0.5, 1} {
		exact := 100*(0.6+0.4) + tt*(Flux(0.6, 40)-Flux(0.4, 60))
		assert.InDelta(t, exact, sol.Mass(tt, -100, 100), 1.e-6)
	}
}

func TestFluxModel(t *testing.T) {
	assert.Equal(t, 15., MaxFlux(60))
	assert.Equal(t, 15., Flux(SonicDensity, 60))
	assert.Equal(t, 0., CharSpeed(SonicDensity, 60))
	for _, q := range []float64{0, 0.1, 0.35, 0.5} {
		f := Flux(q, 60)
		assert.InDelta(t, q, FreeDensity(f, 60), 1.e-7)
		assert.InDelta(t, 1-q, CongestedDensity(f, 60), 1.e-7)
		assert.InDelta(t, q, FanDensity(CharSpeed(q, 60), 60), 1.e-14)
	}
	// Above capacity clamps to the sonic point
	assert.Equal(t, 0.5, CongestedDensity(15+1.e-12, 60))
	assert.InDelta(t, -12., ShockSpeed(0.3, 0.9, Flux(0.3, 60), Flux(0.9, 60), 60), 1.e-12)
	// A vanishing jump moves at the characteristic speed
	assert.Equal(t, CharSpeed(0.3, 60), ShockSpeed(0.3, 0.3, Flux(0.3, 60), Flux(0.3, 60), 60))
}

func hasNear(x []float64, target, tol float64) bool {
	for _, xx := range x {
		if math.Abs(xx-target) < tol {
			return true
		}
	}
	return false
}
