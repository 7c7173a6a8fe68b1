package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/lwrtraffic/InputParameters"
	"github.com/notargets/lwrtraffic/lwr_riemann"
)

func TestRunSolve(t *testing.T) {
	fileInput := []byte(`
Title: Test Case
Time: 0.5
XiMin: -50
XiMax: 50
Samples: 5
Cases:
  - Name: congested approach
    QL: 0.8
    QR: 0.8
    VL: 60
    VR: 40
  - Name: free flow
    QL: 0.4
    QR: 0.1
    VL: 60
    VR: 60
`)
	ip := InputParameters.NewRiemannParameters()
	require.NoError(t, ip.Parse(fileInput))
	require.NoError(t, ip.Validate())
	sols, err := RunSolve(ip, true)
	require.NoError(t, err)
	require.Len(t, sols, 2)
	assert.Equal(t, lwr_riemann.LeftShock, sols[0].Case)
	assert.Equal(t, lwr_riemann.RightRarefaction, sols[1].Case)

	ip.Cases = append(ip.Cases, InputParameters.RiemannCase{Name: "bad", QL: 2, QR: 0, VL: 1, VR: 1})
	_, err = RunSolve(ip, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, lwr_riemann.ErrInvalidProblem))
	assert.Contains(t, err.Error(), `case 2 "bad"`)
}

func TestRunCases(t *testing.T) {
	require.NoError(t, RunCases(true))
	seen := make(map[lwr_riemann.CaseType]bool)
	for _, rc := range representativeCases {
		seen[rc.Case] = true
	}
	// Every pattern but Unclassified has an example
	assert.Len(t, seen, int(lwr_riemann.RightRarefaction))
}

func TestRunSweep(t *testing.T) {
	res, err := RunSweep(&Sweep{VL: 60, VR: 40, Tol: lwr_riemann.DefaultTolerance, N: 21, Threads: 4})
	require.NoError(t, err)
	res.Print(true)
	assert.Empty(t, res.Failures)
	assert.Equal(t, map[lwr_riemann.CaseType]int{
		lwr_riemann.ContactOnly:               8,
		lwr_riemann.LeftShock:                 150,
		lwr_riemann.RightShock:                61,
		lwr_riemann.LeftShockRightRarefaction: 121,
		lwr_riemann.TransonicLeftStar:         53,
		lwr_riemann.LeftRarefaction:           28,
		lwr_riemann.RightRarefaction:          20,
	}, res.Counts)
	assert.Less(t, res.MaxContactResidual, 1.e-9)
	assert.Equal(t, 0., res.MaxOrderViolation)

	// The result does not depend on how the grid is split
	res1, err := RunSweep(&Sweep{VL: 60, VR: 40, Tol: lwr_riemann.DefaultTolerance, N: 21, Threads: 1})
	require.NoError(t, err)
	assert.Equal(t, res.Counts, res1.Counts)

	_, err = RunSweep(&Sweep{VL: 60, VR: 0, N: 21})
	assert.Error(t, err)
	_, err = RunSweep(&Sweep{VL: 60, VR: 40, N: 1})
	assert.Error(t, err)
}
