// Package grid provides immutable, uniformly spaced coordinate grids
// for finite-difference discretizations in one and two dimensions.
//
// What:
//
//   - Grid1D: an ordered sequence of n uniformly spaced coordinates on
//     [min, max], with step Dx = (max-min)/(n-1).
//   - Grid2D: the outer product of two Grid1D axes; flattened states use
//     row-major layout, index = iy*nx + ix.
//
// Why:
//
//   - Spectral and finite-difference solvers need a single source of
//     truth for point counts, step sizes and coordinate values.
//   - Immutability after construction keeps operators and cached
//     eigenpairs consistent with the grid they were built on.
//
// Complexity:
//
//   - Construction: O(n) time, O(n) memory.
//   - All accessors: O(1), except Points/FlatCoords which copy O(n).
//
// Errors:
//
//   - ErrTooFewPoints: fewer than two points requested.
//   - ErrInvalidDomain: max <= min, or a non-finite bound.
package grid
