// Package eigen computes the lowest-lying eigenpairs of large sparse
// real symmetric operators, as produced by package operator.
//
// What:
//
//   - Solve runs a Lanczos iteration with full reorthogonalization,
//     projecting the operator onto a growing Krylov subspace. The small
//     projected tridiagonal problem is solved densely (gonum EigenSym)
//     and Ritz pairs are accepted once their residual bound
//     |β_m·s_mi| drops below the tolerance.
//   - Which selects the k smallest eigenvalues in magnitude or
//     algebraically; results are always returned sorted ascending with
//     eigenvector columns reordered to match.
//   - Degenerate eigenvalues are returned with their full multiplicity:
//     a single Krylov sequence carries one Ritz copy per eigenspace, so
//     an accepted set is verified by re-solving in the orthogonal
//     complement of its vectors and merging any better candidate.
//
// Why:
//
//   - A dense solver is infeasible for grids of hundreds to thousands
//     of points (the 2D operators reach 10⁴ rows); Lanczos touches the
//     operator only through matrix-vector products, costing O(nnz) per
//     iteration.
//   - For a symmetric real input every eigenvalue is real by
//     construction; there is no imaginary noise to discard.
//
// Complexity: O(m·nnz + n·m²) time and O(n·m) memory for a basis of m
// Lanczos vectors. The default iteration budget is the full dimension
// n: if the basis ever grows that far the projection is exact and the
// solve degenerates to a (guaranteed) dense tridiagonalization;
// convergence normally stops it much earlier.
//
// Errors:
//
//   - ErrNonSquare, ErrInvalidStateCount, ErrTooManyStates: malformed
//     requests (a partial solver cannot return a full basis, so
//     k must satisfy 1 <= k < n).
//   - ErrNotConverged: the iteration budget was exhausted before every
//     requested pair met the tolerance. Fatal for the call and never
//     retried internally; callers may retry with fewer states, a looser
//     tolerance, or a larger MaxIter.
package eigen
