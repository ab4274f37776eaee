package solver

import (
	"math"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/mat"

	"github.com/qgridlab/schrod/eigen"
	"github.com/qgridlab/schrod/evolve"
	"github.com/qgridlab/schrod/grid"
	"github.com/qgridlab/schrod/operator"
	"github.com/qgridlab/schrod/potential"
)

// Solver1D solves the one-dimensional time-independent problem on a
// uniform grid. The Hamiltonian is assembled at construction; Solve
// computes and caches the lowest eigenpairs.
type Solver1D struct {
	g    grid.Grid1D
	v    []float64
	h    *sparse.CSR
	hbar float64
	mass float64
	bc   operator.Boundary

	pairs *eigenpairs
}

// NewSolver1D discretizes [min, max] into n points, samples field on
// the grid and assembles H = -ħ²/(2m)·∇² + V. Construction errors are
// the sentinel errors of grid and operator.
func NewSolver1D(min, max float64, n int, field potential.Field1D, opts ...Option) (*Solver1D, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	g, err := grid.NewGrid1D(min, max, n)
	if err != nil {
		return nil, err
	}
	v := field.Evaluate(g)

	lap, err := operator.Laplacian1D(g.Len(), g.Dx(), cfg.bc)
	if err != nil {
		return nil, err
	}
	h, err := operator.Hamiltonian(lap, v, cfg.hbar, cfg.mass)
	if err != nil {
		return nil, err
	}

	return &Solver1D{g: g, v: v, h: h, hbar: cfg.hbar, mass: cfg.mass, bc: cfg.bc}, nil
}

// Solve computes the k eigenstates selected by which using default
// eigensolver options, caches them on the solver and returns the
// ascending energies with the matching eigenvector columns.
func (s *Solver1D) Solve(k int, which eigen.Which) ([]float64, *mat.Dense, error) {
	o := eigen.DefaultOptions()
	o.Which = which
	return s.SolveWithOptions(k, o)
}

// SolveWithOptions is Solve with explicit eigensolver options. A
// failed solve leaves any previously cached result in place.
func (s *Solver1D) SolveWithOptions(k int, o eigen.Options) ([]float64, *mat.Dense, error) {
	vals, vecs, err := eigen.Solve(s.h, k, o)
	if err != nil {
		return nil, nil, err
	}
	s.pairs = &eigenpairs{energies: vals, states: vecs}
	out := make([]float64, len(vals))
	copy(out, vals)
	return out, vecs, nil
}

// Solved reports whether eigenstates have been computed.
func (s *Solver1D) Solved() bool { return s.pairs != nil }

// Grid returns the spatial grid.
func (s *Solver1D) Grid() grid.Grid1D { return s.g }

// PotentialValues returns a copy of the sampled potential.
func (s *Solver1D) PotentialValues() []float64 {
	out := make([]float64, len(s.v))
	copy(out, s.v)
	return out
}

// Hamiltonian returns the assembled sparse operator. Callers must not
// mutate it.
func (s *Solver1D) Hamiltonian() *sparse.CSR { return s.h }

// Energies returns a copy of the computed eigenvalues, ascending.
func (s *Solver1D) Energies() ([]float64, error) {
	if !s.Solved() {
		return nil, ErrNotSolved
	}
	out := make([]float64, len(s.pairs.energies))
	copy(out, s.pairs.energies)
	return out, nil
}

// Eigenfunction returns the i-th eigenstate, normalized so that the
// trapezoid integral of |ψ|² over the domain is one.
func (s *Solver1D) Eigenfunction(i int) ([]float64, error) {
	if !s.Solved() {
		return nil, ErrNotSolved
	}
	if i < 0 || i >= s.pairs.count() {
		return nil, ErrStateIndex
	}

	n := s.g.Len()
	psi := make([]float64, n)
	sq := make([]float64, n)
	for j := 0; j < n; j++ {
		psi[j] = s.pairs.states.At(j, i)
		sq[j] = psi[j] * psi[j]
	}
	norm := math.Sqrt(integrate.Trapezoidal(s.g.Points(), sq))
	for j := range psi {
		psi[j] /= norm
	}
	return psi, nil
}

// ProbabilityDensity returns |ψ_i|² for the normalized i-th eigenstate.
func (s *Solver1D) ProbabilityDensity(i int) ([]float64, error) {
	psi, err := s.Eigenfunction(i)
	if err != nil {
		return nil, err
	}
	for j, p := range psi {
		psi[j] = p * p
	}
	return psi, nil
}

// EvolveState propagates initial over steps uniformly spaced times on
// [0, tMax], returning the time points and one state per time. A
// cached eigenbasis is reused when present; otherwise a bounded
// truncated basis is computed for this call only, leaving the cache
// untouched.
func (s *Solver1D) EvolveState(initial []complex128, tMax float64, steps int) ([]float64, [][]complex128, error) {
	if steps < 1 || tMax < 0 {
		return nil, nil, ErrInvalidTimeGrid
	}
	times := timeGrid(tMax, steps)

	var (
		states [][]complex128
		err    error
	)
	if s.Solved() {
		basis := evolve.Basis{Energies: s.pairs.energies, States: s.pairs.states}
		states, err = evolve.Evolve(initial, basis, times, s.hbar)
	} else {
		states, err = evolve.EvolveHamiltonian(initial, s.h, times, s.hbar, evolve.DefaultOptions())
	}
	if err != nil {
		return nil, nil, err
	}
	return times, states, nil
}
