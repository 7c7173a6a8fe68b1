package phase_plane

import (
	"image/color"
	"time"

	"github.com/notargets/avs/assets"
	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"

	"github.com/notargets/lwrtraffic/lwr_riemann"
	"github.com/notargets/lwrtraffic/utils"
)

var (
	waveColors = map[lwr_riemann.WaveType]color.RGBA{
		lwr_riemann.Shock:       utils.GetColor(utils.Red),
		lwr_riemann.Rarefaction: utils.GetColor(utils.Blue),
		lwr_riemann.Contact:     utils.GetColor(utils.White),
	}
	curveColors = [2]color.RGBA{utils.GetColor(utils.Green), utils.GetColor(utils.Orange)}
)

type PlotOptions struct {
	Width, Height int
	NCurve        int
	// Hold is how long the window stays up, zero holds it open until the process exits
	Hold time.Duration
}

func DefaultPlotOptions() PlotOptions {
	return PlotOptions{Width: 1024, Height: 1024, NCurve: DefaultCurvePoints}
}

// Plot opens a window with the phase plane of the solution
func Plot(sol *lwr_riemann.Solution, opts PlotOptions) (err error) {
	var (
		pp *PhasePlane
	)
	if pp, err = Build(sol, opts.NCurve); err != nil {
		return
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 1024, 1024
	}
	ch := chart2d.NewChart2D(0, 1, 0, float32(pp.YMax),
		opts.Width, opts.Height, utils2.WHITE, utils2.BLACK)
	Render(pp, ch)
	if opts.Hold > 0 {
		time.Sleep(opts.Hold)
		return
	}
	select {}
}

// Render draws the phase plane onto an open chart
func Render(pp *PhasePlane, ch *chart2d.Chart2D) {
	for i, c := range pp.Curves {
		ch.AddLine(polyline(c.Q, c.F), curveColors[i])
	}
	for _, seg := range pp.Segments {
		ch.AddLine(polyline(seg.Q, seg.F), waveColors[seg.Type])
	}
	ch.AddLine(dashed(pp.SonicGuide[0], pp.SonicGuide[1], 40), utils.GetColor(utils.Gray))
	var (
		size  = 0.01
		cross []float32
	)
	for _, pt := range pp.Probes {
		cross = append(cross, crossHair(pt, size, size*pp.YMax)...)
	}
	ch.AddLine(cross, utils2.WHITE)
	cross = []float32{}
	for _, m := range pp.Markers {
		cross = append(cross, crossHair(m.Point, 2*size, 2*size*pp.YMax)...)
	}
	ch.AddLine(cross, utils2.RED)
	tf := assets.NewTextFormatter("NotoSans", "Regular", 24, utils2.WHITE, true, false)
	for _, m := range pp.Markers {
		ch.Printf(tf, float32(m.Q), float32(m.F+0.02*pp.YMax), "%s", m.Label)
	}
}

// polyline converts a path into the segment list form the chart draws, x1 y1 x2 y2 per segment
func polyline(x, y []float64) (line []float32) {
	for i := 0; i < len(x)-1; i++ {
		line = append(line,
			float32(x[i]), float32(y[i]),
			float32(x[i+1]), float32(y[i+1]),
		)
	}
	return
}

func dashed(a, b Point, nDash int) (line []float32) {
	var (
		q = utils.Linspace(a.Q, b.Q, 2*nDash)
		f = utils.Linspace(a.F, b.F, 2*nDash)
	)
	for i := 0; i < len(q)-1; i += 2 {
		line = append(line,
			float32(q[i]), float32(f[i]),
			float32(q[i+1]), float32(f[i+1]),
		)
	}
	return
}

func crossHair(pt Point, dq, df float64) []float32 {
	q, f := float32(pt.Q), float32(pt.F)
	hq, hf := float32(dq), float32(df)
	return []float32{
		q - hq, f, q + hq, f,
		q, f - hf, q, f + hf,
	}
}
