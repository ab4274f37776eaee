// Package solver ties grids, potentials, sparse operators and the
// eigensolver together behind two small facades, one per dimension.
//
// What:
//
//   - Solver1D / Solver2D build the discretized Hamiltonian eagerly at
//     construction (grid, sampled potential, Laplacian, H = T + V) and
//     expose it read-only. Solve and SolveWithOptions run the sparse
//     eigensolver and cache the resulting eigenpairs on the solver.
//   - Eigenfunction returns a state normalized against the grid
//     measure, so that the probability density integrates to one over
//     the domain rather than summing to one over the samples.
//   - EvolveState propagates an arbitrary initial state over a uniform
//     closed time interval [0, tMax], reusing the cached basis when
//     one exists.
//   - GaussianPacket1D / GaussianPacket2D construct normalized moving
//     Gaussian wave packets, the usual initial states for scattering
//     and dispersion runs.
//
// Why:
//
//   - The underlying packages compose in exactly one order (grid,
//     potential, operator, eigen, evolve); the facade encodes that
//     order once so callers state only the physics: domain, potential,
//     constants, state count.
//   - Caching eigenpairs on the solver makes repeated queries
//     (energies, several eigenfunctions, densities, propagation) cost
//     a single factorization.
//
// Errors:
//
//   - Construction propagates the sentinel errors of grid and operator
//     unchanged (errors.Is works across the facade).
//   - ErrNotSolved: an eigenpair query before any successful Solve.
//   - ErrStateIndex: an eigenstate index outside [0, k).
//   - ErrInvalidTimeGrid, ErrInvalidPacket: malformed EvolveState or
//     wave-packet parameters.
package solver
