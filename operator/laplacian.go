package operator

import (
	"math"

	"github.com/james-bowman/sparse"
)

// Laplacian1D builds the scaled 1D finite-difference Laplacian on n
// points with step dx: tridiagonal(+1, -2, +1) with the chosen boundary
// closure, scaled by -1/dx². The result is symmetric.
// Deterministic, no side effects.
func Laplacian1D(n int, dx float64, bc Boundary) (*sparse.CSR, error) {
	if n < 2 {
		return nil, ErrTooFewPoints
	}
	if !(dx > 0) || math.IsInf(dx, 0) {
		return nil, ErrInvalidStep
	}
	if !bc.valid() {
		return nil, ErrUnknownBoundary
	}

	scale := -1.0 / (dx * dx)
	dok := sparse.NewDOK(n, n)
	for i := 0; i < n; i++ {
		dok.Set(i, i, -2.0*scale)
		if i+1 < n {
			dok.Set(i, i+1, 1.0*scale)
			dok.Set(i+1, i, 1.0*scale)
		}
	}
	if bc == Periodic && n > 2 {
		dok.Set(0, n-1, 1.0*scale)
		dok.Set(n-1, 0, 1.0*scale)
	}
	return dok.ToCSR(), nil
}

// Laplacian2D builds the scaled 2D Laplacian on an nx-by-ny grid as the
// Kronecker sum of the two scaled 1D operators:
//
//	L2d = I_ny ⊗ Lx + Ly ⊗ I_nx
//
// which is exact for the separable central-difference stencil under
// row-major flattening (index = iy*nx + ix). Both axes share the same
// boundary closure.
func Laplacian2D(nx, ny int, dx, dy float64, bc Boundary) (*sparse.CSR, error) {
	lx, err := Laplacian1D(nx, dx, bc)
	if err != nil {
		return nil, err
	}
	ly, err := Laplacian1D(ny, dy, bc)
	if err != nil {
		return nil, err
	}

	n := nx * ny
	dok := sparse.NewDOK(n, n)
	// I_ny ⊗ Lx: the x stencil repeated on each row of the grid.
	lx.DoNonZero(func(i, j int, v float64) {
		for iy := 0; iy < ny; iy++ {
			r, c := iy*nx+i, iy*nx+j
			dok.Set(r, c, dok.At(r, c)+v)
		}
	})
	// Ly ⊗ I_nx: the y stencil striding across rows.
	ly.DoNonZero(func(i, j int, v float64) {
		for ix := 0; ix < nx; ix++ {
			r, c := i*nx+ix, j*nx+ix
			dok.Set(r, c, dok.At(r, c)+v)
		}
	})
	return dok.ToCSR(), nil
}

// Hamiltonian assembles 0.5*(ħ²/m)·lap + diag(v). Because lap already
// carries the -1/h² scaling, the kinetic term equals -ħ²/(2m)·∇². The
// potential v must align index-for-index with the operator dimension.
// The result is real symmetric (Hermitian) whenever lap is.
func Hamiltonian(lap *sparse.CSR, v []float64, hbar, mass float64) (*sparse.CSR, error) {
	if !(hbar > 0) || !(mass > 0) {
		return nil, ErrInvalidConstant
	}
	n, m := lap.Dims()
	if len(v) != n || n != m {
		return nil, ErrDimensionMismatch
	}

	kinetic := 0.5 * hbar * hbar / mass
	dok := sparse.NewDOK(n, n)
	lap.DoNonZero(func(i, j int, val float64) {
		dok.Set(i, j, kinetic*val)
	})
	for i := 0; i < n; i++ {
		dok.Set(i, i, dok.At(i, i)+v[i])
	}
	return dok.ToCSR(), nil
}
