package phase_plane

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/lwrtraffic/lwr_riemann"
)

func TestBuild(t *testing.T) {
	sol, err := lwr_riemann.Classify(0.7, 0.3, 60, 40)
	require.NoError(t, err)
	require.Equal(t, lwr_riemann.LeftShockRightRarefaction, sol.Case)
	pp, err := Build(sol, 101)
	require.NoError(t, err)

	var (
		qs = sol.States[1]
	)
	assert.Equal(t, 18., pp.YMax)
	assert.Equal(t, [2]Point{{0.5, 0}, {0.5, 18}}, pp.SonicGuide)
	for i, v := range []float64{60, 40} {
		c := pp.Curves[i]
		assert.Equal(t, v, c.V)
		require.Len(t, c.Q, 101)
		assert.Equal(t, 0., c.Q[0])
		assert.Equal(t, 1., c.Q[100])
		assert.InDelta(t, v/4, c.F[50], 1.e-12)
	}
	assert.Equal(t, "q_l", pp.Markers[0].Label)
	assert.InDelta(t, 12.6, pp.Markers[0].F, 1.e-12)
	assert.InDelta(t, 8.4, pp.Markers[1].F, 1.e-12)

	require.Len(t, pp.Segments, 3)
	assert.Equal(t, lwr_riemann.Shock, pp.Segments[0].Type)
	assert.Equal(t, []float64{0.7, qs}, pp.Segments[0].Q)
	assert.InDeltaSlice(t, []float64{12.6, 10}, pp.Segments[0].F, 1.e-9)
	// The contact joins equal fluxes on the two parabolas
	contact := pp.Segments[1]
	assert.Equal(t, lwr_riemann.Contact, contact.Type)
	assert.Equal(t, []float64{qs, 0.5}, contact.Q)
	assert.InDelta(t, contact.F[0], contact.F[1], 1.e-9)
	// The fan follows the v_r parabola from the sonic point down to q_r
	fan := pp.Segments[2]
	assert.Equal(t, lwr_riemann.Rarefaction, fan.Type)
	require.Len(t, fan.Q, 101)
	assert.Equal(t, 0.5, fan.Q[0])
	assert.Equal(t, 0.3, fan.Q[100])
	for i, q := range fan.Q {
		assert.InDelta(t, lwr_riemann.Flux(q, 40), fan.F[i], 1.e-12)
	}

	// Shock, contact and both fan edges are probed on each side
	require.Len(t, pp.Probes, 8)
	assert.InDelta(t, 0.7, pp.Probes[0].Q, 1.e-12)
	assert.InDelta(t, qs, pp.Probes[1].Q, 1.e-12)
	assert.InDelta(t, qs, pp.Probes[2].Q, 1.e-12)
	assert.InDelta(t, 0.5, pp.Probes[3].Q, 1.e-6)
	assert.InDelta(t, 0.3, pp.Probes[7].Q, 1.e-12)
	for _, pt := range pp.Probes {
		assert.True(t, pt.F >= 0 && pt.F <= pp.YMax)
	}
}

func TestBuildSingleFan(t *testing.T) {
	sol, err := lwr_riemann.Classify(0.5, 0.2, 60, 60)
	require.NoError(t, err)
	pp, err := Build(sol, 0)
	require.NoError(t, err)
	require.Len(t, pp.Segments, 1)
	assert.Equal(t, lwr_riemann.Rarefaction, pp.Segments[0].Type)
	assert.Len(t, pp.Segments[0].Q, DefaultCurvePoints)
	assert.Len(t, pp.Probes, 4)
}

func TestBuildContract(t *testing.T) {
	sol, err := lwr_riemann.Classify(0.8, 0.8, 60, 40)
	require.NoError(t, err)
	var ce *ContractError

	_, err = Build(nil, 10)
	assert.True(t, errors.As(err, &ce))

	short := *sol
	short.Waves = sol.Waves[:1]
	short.States = sol.States
	_, err = Build(&short, 10)
	require.True(t, errors.As(err, &ce))
	assert.Contains(t, ce.Reason, "1 waves for 3 states")

	bad := *sol
	bad.Waves = append([]lwr_riemann.Wave{}, sol.Waves...)
	bad.Waves[0].Type = lwr_riemann.WaveType(7)
	_, err = Build(&bad, 10)
	require.True(t, errors.As(err, &ce))
	assert.Contains(t, ce.Error(), "unknown wave type")

	nan := *sol
	nan.States = []float64{0.8, math.NaN(), 0.8}
	_, err = Build(&nan, 10)
	require.True(t, errors.As(err, &ce))
	assert.Contains(t, ce.Reason, "NaN")

	noEval := *sol
	noEval.Profile = nil
	_, err = Build(&noEval, 10)
	assert.True(t, errors.As(err, &ce))
}

func TestLineSegments(t *testing.T) {
	line := polyline([]float64{0, 1, 2}, []float64{0, 1, 0})
	assert.Equal(t, []float32{0, 0, 1, 1, 1, 1, 2, 0}, line)
	d := dashed(Point{0.5, 0}, Point{0.5, 5}, 3)
	assert.Len(t, d, 12)
	assert.Equal(t, float32(0), d[1])
	assert.Len(t, crossHair(Point{0.5, 1}, 0.1, 0.2), 8)
}
