package main

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/qgridlab/schrod/solver"
)

// viridis-like ramp for the 2D density visual map.
var densityRamp = []string{
	"#440154", "#482777", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
}

// writeReport1D renders an interactive report: the energy ladder and
// one density curve per state shifted by its energy.
func writeReport1D(s *solver.Solver1D, c cliConfig) error {
	energies, err := s.Energies()
	if err != nil {
		return err
	}
	xs := s.Grid().Points()

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Schrödinger spectrum",
			Width:     "1000px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%s potential", c.potName),
			Subtitle: fmt.Sprintf("domain [%g, %g], %d points, %d states", c.min, c.max, c.points, len(energies)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "x"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "E"}),
	)

	labels := make([]string, len(xs))
	for i, x := range xs {
		labels[i] = fmt.Sprintf("%.3f", x)
	}
	line.SetXAxis(labels)

	span := energies[len(energies)-1] - energies[0]
	if span == 0 {
		span = 1
	}
	for i, e := range energies {
		rho, err := s.ProbabilityDensity(i)
		if err != nil {
			return err
		}
		data := make([]opts.LineData, len(rho))
		for j, r := range rho {
			data[j] = opts.LineData{Value: e + densityScale*span*r}
		}
		line.AddSeries(fmt.Sprintf("E%d=%.4f", i, e), data,
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "1000px", Height: "400px"}),
		charts.WithTitleOpts(opts.Title{Title: "Energy ladder"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	levels := make([]string, len(energies))
	values := make([]opts.BarData, len(energies))
	for i, e := range energies {
		levels[i] = fmt.Sprintf("E%d", i)
		values[i] = opts.BarData{Value: e}
	}
	bar.SetXAxis(levels).AddSeries("energy", values,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}))

	page := components.NewPage()
	page.AddCharts(line, bar)

	f, err := os.Create(c.htmlPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return page.Render(f)
}

// writeReport2D renders the ground-state density as a colored scatter
// over the grid, one point per sample.
func writeReport2D(s *solver.Solver2D, c cliConfig) error {
	energies, err := s.Energies()
	if err != nil {
		return err
	}
	rho, err := s.ProbabilityDensity(0)
	if err != nil {
		return err
	}

	g := s.Grid()
	xs, ys := g.FlatCoords()
	data := make([]opts.ScatterData, len(rho))
	maxRho := 0.0
	for i, r := range rho {
		data[i] = opts.ScatterData{Value: []interface{}{xs[i], ys[i], r}}
		if r > maxRho {
			maxRho = r
		}
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Schrödinger 2D density",
			Width:     "900px",
			Height:    "900px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%s potential, ground-state density", c.potName),
			Subtitle: fmt.Sprintf("E0 = %.6f, grid %dx%d", energies[0], g.Nx(), g.Ny()),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: c.min, Max: c.max, Name: "x"}),
		charts.WithYAxisOpts(opts.YAxis{Min: c.min, Max: c.max, Name: "y"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxRho),
			InRange:    &opts.VisualMapInRange{Color: densityRamp},
		}),
	)
	scatter.AddSeries("density", data,
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}))

	f, err := os.Create(c.htmlPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return scatter.Render(f)
}
