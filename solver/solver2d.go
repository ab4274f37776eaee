package solver

import (
	"math"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/qgridlab/schrod/eigen"
	"github.com/qgridlab/schrod/evolve"
	"github.com/qgridlab/schrod/grid"
	"github.com/qgridlab/schrod/operator"
	"github.com/qgridlab/schrod/potential"
)

// Solver2D solves the two-dimensional time-independent problem on a
// rectangular grid. States are stored flat in row-major order
// (index = iy·nx + ix); Eigenfunction2D restores the [ny][nx] layout.
type Solver2D struct {
	g    grid.Grid2D
	v    []float64
	h    *sparse.CSR
	hbar float64
	mass float64
	bc   operator.Boundary

	pairs *eigenpairs
}

// NewSolver2D discretizes [xMin, xMax]×[yMin, yMax] into an nx×ny grid,
// samples field and assembles the Kronecker-sum Hamiltonian.
func NewSolver2D(xMin, xMax float64, nx int, yMin, yMax float64, ny int, field potential.Field2D, opts ...Option) (*Solver2D, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	g, err := grid.NewGrid2D(xMin, xMax, nx, yMin, yMax, ny)
	if err != nil {
		return nil, err
	}
	v := field.Evaluate(g)

	lap, err := operator.Laplacian2D(g.Nx(), g.Ny(), g.X().Dx(), g.Y().Dx(), cfg.bc)
	if err != nil {
		return nil, err
	}
	h, err := operator.Hamiltonian(lap, v, cfg.hbar, cfg.mass)
	if err != nil {
		return nil, err
	}

	return &Solver2D{g: g, v: v, h: h, hbar: cfg.hbar, mass: cfg.mass, bc: cfg.bc}, nil
}

// Solve computes the k eigenstates selected by which using default
// eigensolver options, caches them on the solver and returns the
// ascending energies with the matching eigenvector columns.
func (s *Solver2D) Solve(k int, which eigen.Which) ([]float64, *mat.Dense, error) {
	o := eigen.DefaultOptions()
	o.Which = which
	return s.SolveWithOptions(k, o)
}

// SolveWithOptions is Solve with explicit eigensolver options. A
// failed solve leaves any previously cached result in place.
func (s *Solver2D) SolveWithOptions(k int, o eigen.Options) ([]float64, *mat.Dense, error) {
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
func (s *Solver2D) Solved() bool { return s.pairs != nil }

// Grid returns the spatial grid.
func (s *Solver2D) Grid() grid.Grid2D { return s.g }

// PotentialValues returns a copy of the sampled potential, flattened
// row-major.
func (s *Solver2D) PotentialValues() []float64 {
	out := make([]float64, len(s.v))
	copy(out, s.v)
	return out
}

// Hamiltonian returns the assembled sparse operator. Callers must not
// mutate it.
func (s *Solver2D) Hamiltonian() *sparse.CSR { return s.h }

// Energies returns a copy of the computed eigenvalues, ascending.
func (s *Solver2D) Energies() ([]float64, error) {
	if !s.Solved() {
		return nil, ErrNotSolved
	}
	out := make([]float64, len(s.pairs.energies))
	copy(out, s.pairs.energies)
	return out, nil
}

// Eigenfunction returns the i-th eigenstate flattened row-major,
// normalized so that the Riemann sum of |ψ|²·dx·dy over the domain
// is one.
func (s *Solver2D) Eigenfunction(i int) ([]float64, error) {
	if !s.Solved() {
		return nil, ErrNotSolved
	}
	if i < 0 || i >= s.pairs.count() {
		return nil, ErrStateIndex
	}

	n := s.g.Size()
	psi := make([]float64, n)
	var sum float64
	for j := 0; j < n; j++ {
		psi[j] = s.pairs.states.At(j, i)
		sum += psi[j] * psi[j]
	}
	norm := math.Sqrt(sum * s.g.X().Dx() * s.g.Y().Dx())
	for j := range psi {
		psi[j] /= norm
	}
	return psi, nil
}

// Eigenfunction2D returns the i-th normalized eigenstate reshaped to
// [ny][nx]: row iy holds the values along x at the iy-th y sample.
func (s *Solver2D) Eigenfunction2D(i int) ([][]float64, error) {
	psi, err := s.Eigenfunction(i)
	if err != nil {
		return nil, err
	}
	return Reshape(psi, s.g.Nx(), s.g.Ny()), nil
}

// ProbabilityDensity returns |ψ_i|² flattened row-major for the
// normalized i-th eigenstate.
func (s *Solver2D) ProbabilityDensity(i int) ([]float64, error) {
	psi, err := s.Eigenfunction(i)
	if err != nil {
		return nil, err
	}
	for j, p := range psi {
		psi[j] = p * p
	}
	return psi, nil
}

// EvolveState propagates initial (flattened row-major) over steps
// uniformly spaced times on [0, tMax], returning the time points and
// one state per time. A cached eigenbasis is reused when present;
// otherwise a bounded truncated basis is computed for this call only.
func (s *Solver2D) EvolveState(initial []complex128, tMax float64, steps int) ([]float64, [][]complex128, error) {
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

// Reshape rearranges a row-major flat field into nested [ny][nx] rows.
// The flat slice is not aliased.
func Reshape(flat []float64, nx, ny int) [][]float64 {
	out := make([][]float64, ny)
	for iy := 0; iy < ny; iy++ {
		row := make([]float64, nx)
		copy(row, flat[iy*nx:(iy+1)*nx])
		out[iy] = row
	}
	return out
}
