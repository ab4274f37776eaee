// Package potential provides the built-in potential-energy landscapes
// sampled onto a grid, plus the Field interfaces the solvers consume.
//
// What:
//
//   - Field1D / Field2D: a pure sampling capability — evaluate a scalar
//     potential over every grid point, flattened row-major in 2D.
//   - 1D kinds: InfiniteWell, Harmonic, Barrier, DoubleWell, Morse.
//   - 2D kinds: InfiniteWell2D, Harmonic2D, CircularWell, DoubleWell2D.
//
// Why:
//
//   - Each kind is a typed parameter record with its own Evaluate
//     method, so an unknown potential is unrepresentable and parameters
//     are named and compiler-checked rather than passed as loose maps.
//   - Solvers only depend on the Field interfaces; callers may inject
//     any custom landscape with the same shape contract.
//
// Complexity: Evaluate is O(n) over the grid, no allocation beyond the
// returned array, no side effects.
//
// The built-in Default* constructors carry the conventional textbook
// parameters (natural units, wall value 1e6 for hard walls).
package potential
