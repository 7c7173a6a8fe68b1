package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/lwrtraffic/lwr_riemann"
)

func TestParse(t *testing.T) {
	fileInput := []byte(`
Title: Speed limit drop
Time: 0.5
XiMin: -70
XiMax: 70
Cases:
  - Name: congested approach
    QL: 0.8
    QR: 0.8
    VL: 60
    VR: 40
  - Name: transonic
    QL: 0.5
    QR: 0.2
    VL: 60
    VR: 60
`)
	ip := NewRiemannParameters()
	require.NoError(t, ip.Parse(fileInput))
	require.NoError(t, ip.Validate())
	ip.Print()
	assert.Equal(t, "Speed limit drop", ip.Title)
	assert.Equal(t, 0.5, ip.Time)
	assert.Equal(t, -70., ip.XiMin)
	// Defaults survive when not in the file
	assert.Equal(t, 11, ip.Samples)
	assert.Equal(t, lwr_riemann.DefaultTolerance, ip.Tolerance)
	require.Len(t, ip.Cases, 2)
	assert.Equal(t, "transonic", ip.Cases[1].Name)
	assert.Equal(t, []lwr_riemann.Problem{
		{QL: 0.8, QR: 0.8, VL: 60, VR: 40},
		{QL: 0.5, QR: 0.2, VL: 60, VR: 60},
	}, ip.Problems())
}

func TestValidate(t *testing.T) {
	ip := NewRiemannParameters()
	require.NoError(t, ip.Parse([]byte(`
XiMin: 1
XiMax: -1
Cases:
  - QL: 1.2
    QR: 0.5
    VL: 0
    VR: 40
`)))
	err := ip.Validate()
	require.Error(t, err)
	for _, s := range []string{"XiMax: failed gtfield=XiMin", "Cases[0].QL: failed lte=1", "Cases[0].VL: failed gt=0"} {
		assert.Contains(t, err.Error(), s)
	}

	ip = NewRiemannParameters()
	err = ip.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cases: failed required")
}
