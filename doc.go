// Package schrod solves the time-independent and time-dependent
// Schrödinger equation on uniform grids in one and two dimensions.
//
// 🚀 What is schrod?
//
//	A sparse, finite-difference quantum mechanics toolkit:
//		• Grids: uniform 1D intervals and 2D rectangles
//		• Potentials: wells, oscillators, barriers, Morse, circular wells
//		• Operators: sparse Laplacians (Dirichlet / periodic) and Hamiltonians
//		• Eigensolver: Lanczos iteration for the lowest-lying spectrum
//		• Propagation: spectral time evolution through the eigenbasis
//		• Facades: Solver1D / Solver2D tie the pipeline together
//
// ✨ Why choose schrod?
//
//   - Sparse throughout: 2D problems with 10⁴ grid points stay cheap
//   - Explicit errors: sentinel errors per package, matched with errors.Is
//   - Deterministic: seeded eigensolves reproduce bit for bit
//   - Batteries included: a plotting CLI with PNG and HTML reports
//
// Quick start:
//
//	s, err := solver.NewSolver1D(-6, 6, 500, potential.DefaultHarmonic())
//	if err != nil { ... }
//	energies, _, err := s.Solve(4, eigen.SmallestAlgebraic)
//	if err != nil { ... }
//	// energies ≈ [0.5, 1.5, 2.5, 3.5] in atomic units
//
// See the package documentation of grid, potential, operator, eigen,
// evolve and solver for the individual layers.
package schrod
