// Package evolve propagates quantum states in time under an already
// diagonalized, time-independent Hamiltonian.
//
// What:
//
//   - Basis couples the eigenvalues and eigenvectors produced by
//     eigen.Solve.
//   - Evolve projects an initial state onto the eigenbasis
//     (c_k = ⟨φ_k|ψ₀⟩), rotates each coefficient by the closed-form
//     phase exp(-i·E_k·t/ħ), and reconstructs the position-space state
//     at every requested time.
//   - EvolveHamiltonian is the convenience form that first performs a
//     bounded partial eigensolve of the operator itself.
//
// Why:
//
//   - For a time-independent Hamiltonian the Schrödinger equation has a
//     closed-form spectral solution; phase rotation is exact at
//     arbitrary times (up to eigenbasis truncation) with O(n·k) cost
//     per time point after the one-time projection — no time stepping,
//     no accumulation of integration error.
//   - The truncation is a deliberate accuracy/cost trade-off: packets
//     with significant overlap with states above the computed basis
//     lose that content. Options.MaxStates widens the basis when needed.
//
// The caller pre-normalizes ψ₀ if a probability-normalized trajectory
// is desired; states handed in are never silently renormalized.
//
// Errors:
//
//   - ErrDimensionMismatch: initial state length differs from the basis
//     dimension, or energies and eigenvector columns disagree.
//   - ErrInvalidConstant: non-positive ħ.
//
// An empty time list yields an empty trajectory, not an error.
package evolve
