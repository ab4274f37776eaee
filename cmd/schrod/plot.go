package main

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/qgridlab/schrod/solver"
)

// densityScale stretches probability densities so they are readable
// against the potential curve, mirroring the usual textbook rendering
// of eigenstates stacked at their energies.
const densityScale = 0.5

// writePlot1D renders the potential and each computed state's
// probability density offset by its energy.
func writePlot1D(s *solver.Solver1D, c cliConfig) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s potential, lowest %d states", c.potName, c.states)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "energy"

	xs := s.Grid().Points()
	v := s.PotentialValues()
	energies, err := s.Energies()
	if err != nil {
		return err
	}

	// Clip the potential to the spectrum's window so hard walls do not
	// flatten everything else.
	eTop := energies[len(energies)-1] + 1
	vPts := make(plotter.XYs, 0, len(xs))
	for i, x := range xs {
		y := v[i]
		if y > eTop {
			y = eTop
		}
		vPts = append(vPts, plotter.XY{X: x, Y: y})
	}
	vLine, err := plotter.NewLine(vPts)
	if err != nil {
		return err
	}
	vLine.Color = color.Gray{Y: 80}
	vLine.Width = vg.Points(2)
	p.Add(vLine)
	p.Legend.Add("V(x)", vLine)

	span := energies[len(energies)-1] - energies[0]
	if span == 0 {
		span = 1
	}
	for i := range energies {
		rho, err := s.ProbabilityDensity(i)
		if err != nil {
			return err
		}
		pts := make(plotter.XYs, len(xs))
		for j, x := range xs {
			pts[j] = plotter.XY{X: x, Y: energies[i] + densityScale*span*rho[j]}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.Color = stateColor(i)
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("E%d=%.3f", i, energies[i]), line)
	}

	return p.Save(10*vg.Inch, 6*vg.Inch, c.plotPath)
}

// writePlot2D renders the ground-state probability density as a
// heat map.
func writePlot2D(s *solver.Solver2D, c cliConfig) error {
	rho, err := s.ProbabilityDensity(0)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s potential, ground-state density", c.potName)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	hm := plotter.NewHeatMap(&densityGrid{s: s, rho: rho}, palette.Heat(12, 1))
	p.Add(hm)

	return p.Save(8*vg.Inch, 8*vg.Inch, c.plotPath)
}

// densityGrid adapts a flat row-major density to plotter.GridXYZ.
type densityGrid struct {
	s   *solver.Solver2D
	rho []float64
}

func (d *densityGrid) Dims() (int, int)   { return d.s.Grid().Nx(), d.s.Grid().Ny() }
func (d *densityGrid) X(ix int) float64   { return d.s.Grid().X().At(ix) }
func (d *densityGrid) Y(iy int) float64   { return d.s.Grid().Y().At(iy) }
func (d *densityGrid) Z(ix, iy int) float64 {
	return d.rho[iy*d.s.Grid().Nx()+ix]
}

func stateColor(i int) color.Color {
	colors := []color.RGBA{
		{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
		{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
		{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
		{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
		{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
		{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
	}
	return colors[i%len(colors)]
}
