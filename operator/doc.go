// Package operator builds the sparse finite-difference operators of the
// discretized Schrödinger equation.
//
// What:
//
//   - Laplacian1D: second-order central-difference Laplacian on n
//     points, tridiagonal (-2 diagonal, +1 off-diagonals), with
//     Dirichlet or periodic closure, scaled by -1/dx².
//   - Laplacian2D: the Kronecker sum I_ny ⊗ Lx + Ly ⊗ I_nx of the two
//     scaled 1D operators — the exact separable extension of the 1D
//     stencil, matching row-major flattening (index = iy*nx + ix).
//   - Hamiltonian: ħ²/(2m)·L + diag(V) where L carries the -1/dx²
//     scaling, i.e. the physical -ħ²/(2m)·∇² + V. Real symmetric,
//     hence Hermitian, by construction.
//
// Why:
//
//   - Operators are assembled once per configuration and are immutable
//     afterwards; everything downstream (eigensolve, propagation) only
//     multiplies by them.
//   - CSR storage keeps the matvec cost proportional to the stencil
//     size rather than n².
//
// Complexity: assembly is O(nnz) time and memory; nnz ≈ 3n in 1D and
// ≈ 5·nx·ny in 2D.
//
// Errors:
//
//   - ErrTooFewPoints, ErrInvalidStep, ErrUnknownBoundary,
//     ErrInvalidConstant: malformed construction parameters, surfaced
//     immediately and never recovered internally.
//   - ErrDimensionMismatch: potential array length differs from the
//     operator dimension.
package operator
