package eigen

import "errors"

// Sentinel errors for the sparse eigensolver.
var (
	// ErrNonSquare indicates a non-square operator.
	ErrNonSquare = errors.New("eigen: operator must be square")
	// ErrInvalidStateCount indicates a request for fewer than one eigenpair.
	ErrInvalidStateCount = errors.New("eigen: number of eigenstates must be at least 1")
	// ErrTooManyStates indicates k >= n; the partial solver cannot
	// return a full basis.
	ErrTooManyStates = errors.New("eigen: number of eigenstates must be less than the operator dimension")
	// ErrNotConverged indicates the iteration budget was exhausted
	// before all requested pairs met the tolerance.
	ErrNotConverged = errors.New("eigen: eigensolver did not converge within the iteration budget")
)

// Which selects the part of the spectrum to extract.
type Which int

const (
	// SmallestAlgebraic extracts the k algebraically smallest
	// eigenvalues: the ground state and the lowest excitations.
	SmallestAlgebraic Which = iota
	// SmallestMagnitude extracts the k eigenvalues closest to zero.
	// For positive-definite operators it coincides with
	// SmallestAlgebraic.
	SmallestMagnitude
)

// Options configures a Solve call.
//
// Fields:
//   - Which   — spectrum selection; default SmallestAlgebraic.
//   - Tol     — relative residual tolerance: a Ritz pair (θ, y) is
//     converged when its residual bound |β_m·s_mi| <= Tol·max(1, |θ|).
//     Zero means the default 1e-4.
//   - MaxIter — maximum Lanczos basis size. Zero means n, the operator
//     dimension, where the projection is exact; larger values are
//     capped at n.
//   - Seed    — seed for the deterministic start-vector perturbation.
//     Zero means 1; same seed, same result.
type Options struct {
	Which   Which
	Tol     float64
	MaxIter int
	Seed    int64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{Which: SmallestAlgebraic, Tol: defaultTol, MaxIter: 0, Seed: defaultSeed}
}

const (
	defaultTol  = 1e-4
	defaultSeed = 1
)
