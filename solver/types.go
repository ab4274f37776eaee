package solver

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/qgridlab/schrod/operator"
)

// Sentinel errors for the solver facades.
var (
	// ErrNotSolved indicates an eigenpair query before a successful
	// Solve or SolveWithOptions.
	ErrNotSolved = errors.New("solver: eigenstates not computed; call Solve first")
	// ErrStateIndex indicates an eigenstate index outside [0, k).
	ErrStateIndex = errors.New("solver: eigenstate index out of range")
	// ErrInvalidTimeGrid indicates a non-positive step count or a
	// negative time horizon.
	ErrInvalidTimeGrid = errors.New("solver: time grid must have at least one step and a non-negative horizon")
	// ErrInvalidPacket indicates a non-positive wave-packet width.
	ErrInvalidPacket = errors.New("solver: wave-packet width must be positive")
)

// config carries the physical constants and the boundary condition
// shared by both facades. Zero values are never used directly; the
// constructors start from defaultConfig.
type config struct {
	hbar float64
	mass float64
	bc   operator.Boundary
}

func defaultConfig() config {
	return config{hbar: 1.0, mass: 1.0, bc: operator.Dirichlet}
}

// Option adjusts a solver at construction time.
type Option func(*config)

// WithHbar sets the reduced Planck constant. Default 1 (atomic units).
func WithHbar(hbar float64) Option {
	return func(c *config) { c.hbar = hbar }
}

// WithMass sets the particle mass. Default 1 (atomic units).
func WithMass(mass float64) Option {
	return func(c *config) { c.mass = mass }
}

// WithBoundary sets the Laplacian boundary condition. Default
// operator.Dirichlet.
func WithBoundary(bc operator.Boundary) Option {
	return func(c *config) { c.bc = bc }
}

// eigenpairs is what Solve caches: a non-nil pointer tags the solver
// as solved.
type eigenpairs struct {
	energies []float64
	states   *mat.Dense
}

func (p *eigenpairs) count() int { return len(p.energies) }

// timeGrid returns steps uniformly spaced times on the closed interval
// [0, tMax]. A single step collapses to the instant t = 0.
func timeGrid(tMax float64, steps int) []float64 {
	times := make([]float64, steps)
	if steps == 1 {
		return times
	}
	dt := tMax / float64(steps-1)
	for i := range times {
		times[i] = float64(i) * dt
	}
	return times
}
