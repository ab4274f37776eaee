// Command schrod solves the time-independent Schrödinger equation on a
// uniform grid and optionally renders the spectrum as a PNG plot or an
// interactive HTML report.
//
// Usage:
//
//	schrod -dim 1 -potential harmonic -points 1000 -states 6 -plot spectrum.png
//	schrod -dim 2 -potential circular -points 64 -states 4 -html report.html
//	schrod -dim 1 -potential barrier -evolve -tmax 10 -steps 100
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/cmplx"
	"strings"

	"github.com/qgridlab/schrod/eigen"
	"github.com/qgridlab/schrod/operator"
	"github.com/qgridlab/schrod/potential"
	"github.com/qgridlab/schrod/solver"
)

// max points per axis in 2D; the flat operator grows quadratically.
const max2DPointsPerAxis = 100

type cliConfig struct {
	dim       int
	potName   string
	points    int
	min, max  float64
	states    int
	boundary  string
	hbar      float64
	mass      float64
	evolve    bool
	tMax      float64
	steps     int
	plotPath  string
	htmlPath  string
}

func parseFlags() cliConfig {
	var c cliConfig
	flag.IntVar(&c.dim, "dim", 1, "dimension of the problem (1 or 2)")
	flag.StringVar(&c.potName, "potential", "harmonic",
		"potential: infinite_well, harmonic, barrier, double_well, morse (1D), circular (2D)")
	flag.IntVar(&c.points, "points", 1000, "grid points (per axis in 2D, capped at 100)")
	flag.Float64Var(&c.min, "min", -5.0, "domain minimum (both axes in 2D)")
	flag.Float64Var(&c.max, "max", 5.0, "domain maximum (both axes in 2D)")
	flag.IntVar(&c.states, "states", 6, "number of eigenstates")
	flag.StringVar(&c.boundary, "boundary", "dirichlet", "boundary condition: dirichlet or periodic")
	flag.Float64Var(&c.hbar, "hbar", 1.0, "reduced Planck constant")
	flag.Float64Var(&c.mass, "mass", 1.0, "particle mass")
	flag.BoolVar(&c.evolve, "evolve", false, "propagate a Gaussian wave packet after solving")
	flag.Float64Var(&c.tMax, "tmax", 10.0, "evolution time horizon")
	flag.IntVar(&c.steps, "steps", 100, "evolution time steps")
	flag.StringVar(&c.plotPath, "plot", "", "write a PNG plot to this path")
	flag.StringVar(&c.htmlPath, "html", "", "write an HTML report to this path")
	flag.Parse()
	return c
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("schrod: ")

	c := parseFlags()
	var err error
	switch c.dim {
	case 1:
		err = run1D(c)
	case 2:
		err = run2D(c)
	default:
		err = fmt.Errorf("unsupported dimension %d", c.dim)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func parseBoundary(name string) (operator.Boundary, error) {
	switch strings.ToLower(name) {
	case "dirichlet":
		return operator.Dirichlet, nil
	case "periodic":
		return operator.Periodic, nil
	}
	return 0, fmt.Errorf("unknown boundary condition %q", name)
}

// field1D maps a potential name to its conventional parameters.
func field1D(name string) (potential.Field1D, error) {
	switch name {
	case "infinite_well":
		return potential.InfiniteWell{Width: 5.0, WallValue: potential.DefaultWallValue}, nil
	case "harmonic":
		return potential.Harmonic{K: 1.0}, nil
	case "barrier":
		return potential.Barrier{Height: 5.0, Width: 0.5}, nil
	case "double_well":
		return potential.DoubleWell{Height: 1.0, Width: 4.0, BarrierWidth: 0.5, BarrierHeight: 5.0}, nil
	case "morse":
		return potential.Morse{D: 10.0, A: 1.0}, nil
	}
	return nil, fmt.Errorf("unknown 1D potential %q", name)
}

func field2D(name string) (potential.Field2D, error) {
	switch name {
	case "infinite_well":
		return potential.InfiniteWell2D{WidthX: 5.0, WidthY: 5.0, WallValue: potential.DefaultWallValue}, nil
	case "harmonic":
		return potential.Harmonic2D{KX: 1.0, KY: 1.0}, nil
	case "circular":
		return potential.CircularWell{Radius: 2.0, WallValue: potential.DefaultWallValue}, nil
	case "double_well":
		return potential.DoubleWell2D{Height: 1.0, Width: 4.0, BarrierWidth: 0.5, BarrierHeight: 5.0}, nil
	}
	return nil, fmt.Errorf("unknown 2D potential %q", name)
}

func run1D(c cliConfig) error {
	bc, err := parseBoundary(c.boundary)
	if err != nil {
		return err
	}
	field, err := field1D(c.potName)
	if err != nil {
		return err
	}

	s, err := solver.NewSolver1D(c.min, c.max, c.points, field,
		solver.WithHbar(c.hbar), solver.WithMass(c.mass), solver.WithBoundary(bc))
	if err != nil {
		return err
	}

	energies, _, err := s.Solve(c.states, eigen.SmallestAlgebraic)
	if err != nil {
		return err
	}
	log.Printf("%s potential on [%g, %g], %d points", c.potName, c.min, c.max, c.points)
	for i, e := range energies {
		log.Printf("  E%-2d = %12.6f", i, e)
	}

	if c.evolve {
		if err := evolve1D(s, c); err != nil {
			return err
		}
	}
	if c.plotPath != "" {
		if err := writePlot1D(s, c); err != nil {
			return err
		}
		log.Printf("plot written to %s", c.plotPath)
	}
	if c.htmlPath != "" {
		if err := writeReport1D(s, c); err != nil {
			return err
		}
		log.Printf("report written to %s", c.htmlPath)
	}
	return nil
}

func run2D(c cliConfig) error {
	bc, err := parseBoundary(c.boundary)
	if err != nil {
		return err
	}
	field, err := field2D(c.potName)
	if err != nil {
		return err
	}

	n := c.points
	if n > max2DPointsPerAxis {
		n = max2DPointsPerAxis
	}
	s, err := solver.NewSolver2D(c.min, c.max, n, c.min, c.max, n, field,
		solver.WithHbar(c.hbar), solver.WithMass(c.mass), solver.WithBoundary(bc))
	if err != nil {
		return err
	}

	energies, _, err := s.Solve(c.states, eigen.SmallestAlgebraic)
	if err != nil {
		return err
	}
	log.Printf("%s potential on [%g, %g]^2, %dx%d points", c.potName, c.min, c.max, n, n)
	for i, e := range energies {
		log.Printf("  E%-2d = %12.6f", i, e)
	}

	if c.evolve {
		if err := evolve2D(s, c); err != nil {
			return err
		}
	}
	if c.plotPath != "" {
		if err := writePlot2D(s, c); err != nil {
			return err
		}
		log.Printf("plot written to %s", c.plotPath)
	}
	if c.htmlPath != "" {
		if err := writeReport2D(s, c); err != nil {
			return err
		}
		log.Printf("report written to %s", c.htmlPath)
	}
	return nil
}

// evolve1D launches a Gaussian packet from the domain center with
// momentum 2 and reports the norm drift over the run, a direct check
// of the propagation's unitarity on the captured spectrum.
func evolve1D(s *solver.Solver1D, c cliConfig) error {
	center := (c.min + c.max) / 2
	width := (c.max - c.min) / 10
	packet, err := solver.GaussianPacket1D(s.Grid(), center, width, 2.0)
	if err != nil {
		return err
	}

	times, states, err := s.EvolveState(packet, c.tMax, c.steps)
	if err != nil {
		return err
	}
	log.Printf("evolved %d steps to t=%g, norm drift %.3e",
		len(times), times[len(times)-1], normDrift(states))
	return nil
}

func evolve2D(s *solver.Solver2D, c cliConfig) error {
	center := (c.min + c.max) / 2
	width := (c.max - c.min) / 10
	packet, err := solver.GaussianPacket2D(s.Grid(), center, center, width, width, 2.0, 0)
	if err != nil {
		return err
	}

	times, states, err := s.EvolveState(packet, c.tMax, c.steps)
	if err != nil {
		return err
	}
	log.Printf("evolved %d steps to t=%g, norm drift %.3e",
		len(times), times[len(times)-1], normDrift(states))
	return nil
}

func normDrift(states [][]complex128) float64 {
	norm := func(st []complex128) float64 {
		var sum float64
		for _, v := range st {
			m := cmplx.Abs(v)
			sum += m * m
		}
		return math.Sqrt(sum)
	}
	return math.Abs(norm(states[len(states)-1]) - norm(states[0]))
}
