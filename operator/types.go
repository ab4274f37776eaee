package operator

import "errors"

// Sentinel errors for operator assembly.
var (
	// ErrTooFewPoints indicates an operator over fewer than two points.
	ErrTooFewPoints = errors.New("operator: point count must be at least 2")
	// ErrInvalidStep indicates a non-positive or non-finite grid step.
	ErrInvalidStep = errors.New("operator: grid step must be positive and finite")
	// ErrUnknownBoundary indicates a Boundary value outside the enum.
	ErrUnknownBoundary = errors.New("operator: unknown boundary condition")
	// ErrInvalidConstant indicates a non-positive hbar or mass.
	ErrInvalidConstant = errors.New("operator: hbar and mass must be positive")
	// ErrDimensionMismatch indicates a potential array whose length
	// differs from the operator dimension.
	ErrDimensionMismatch = errors.New("operator: potential length does not match operator dimension")
)

// Boundary selects the closure of the finite-difference stencil at the
// domain edges.
//
//   - Dirichlet — the wave function vanishes at (just outside) the
//     boundary; the stencil is simply truncated.
//   - Periodic  — the domain wraps; corner entries (0,n-1) and (n-1,0)
//     connect the first and last points.
type Boundary int

const (
	// Dirichlet boundary: ψ = 0 outside the domain.
	Dirichlet Boundary = iota
	// Periodic boundary: the domain is a ring (a torus in 2D).
	Periodic
)

// String returns the conventional lowercase name of the boundary.
func (b Boundary) String() string {
	switch b {
	case Dirichlet:
		return "dirichlet"
	case Periodic:
		return "periodic"
	default:
		return "unknown"
	}
}

// valid reports whether b is one of the enum values.
func (b Boundary) valid() bool { return b == Dirichlet || b == Periodic }
