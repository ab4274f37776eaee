package operator_test

import (
	"errors"
	"math"
	"testing"

	"github.com/qgridlab/schrod/operator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonum.org/v1/gonum/mat"
)

// TestLaplacian1D_Errors verifies argument validation.
func TestLaplacian1D_Errors(t *testing.T) {
	cases := []struct {
		name string
		n    int
		dx   float64
		bc   operator.Boundary
		err  error
	}{
		{"OnePoint", 1, 0.1, operator.Dirichlet, operator.ErrTooFewPoints},
		{"ZeroStep", 10, 0, operator.Dirichlet, operator.ErrInvalidStep},
		{"NegativeStep", 10, -0.5, operator.Dirichlet, operator.ErrInvalidStep},
		{"NaNStep", 10, math.NaN(), operator.Dirichlet, operator.ErrInvalidStep},
		{"BadBoundary", 10, 0.1, operator.Boundary(7), operator.ErrUnknownBoundary},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := operator.Laplacian1D(tc.n, tc.dx, tc.bc)
			if !errors.Is(err, tc.err) {
				t.Errorf("Laplacian1D(%d, %v, %v) error = %v; want %v", tc.n, tc.dx, tc.bc, err, tc.err)
			}
		})
	}
}

// TestLaplacian1D_DirichletStencil checks the -2/+1 pattern, the -1/dx²
// scaling, and zero row sums on interior rows (before scaling: -2+1+1).
func TestLaplacian1D_DirichletStencil(t *testing.T) {
	const n, dx = 8, 0.5
	l, err := operator.Laplacian1D(n, dx, operator.Dirichlet)
	require.NoError(t, err)

	scale := -1.0 / (dx * dx)
	r, c := l.Dims()
	require.Equal(t, n, r)
	require.Equal(t, n, c)

	for i := 0; i < n; i++ {
		assert.InDelta(t, -2.0*scale, l.At(i, i), 1e-12, "diagonal at %d", i)
		if i+1 < n {
			assert.InDelta(t, scale, l.At(i, i+1), 1e-12, "super-diagonal at %d", i)
			assert.InDelta(t, scale, l.At(i+1, i), 1e-12, "sub-diagonal at %d", i)
		}
	}
	assert.Zero(t, l.At(0, n-1), "no corner wrap under Dirichlet")
	assert.Zero(t, l.At(n-1, 0), "no corner wrap under Dirichlet")

	for i := 1; i < n-1; i++ {
		sum := 0.0
		for j := 0; j < n; j++ {
			sum += l.At(i, j)
		}
		assert.InDelta(t, 0.0, sum, 1e-12, "interior row %d sums to zero", i)
	}
}

// TestLaplacian1D_PeriodicRowSums checks that every row, including the
// boundary rows, sums to zero under the periodic closure.
func TestLaplacian1D_PeriodicRowSums(t *testing.T) {
	const n, dx = 9, 0.25
	l, err := operator.Laplacian1D(n, dx, operator.Periodic)
	require.NoError(t, err)

	scale := -1.0 / (dx * dx)
	assert.InDelta(t, scale, l.At(0, n-1), 1e-12, "corner wrap (0,n-1)")
	assert.InDelta(t, scale, l.At(n-1, 0), 1e-12, "corner wrap (n-1,0)")

	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < n; j++ {
			sum += l.At(i, j)
		}
		assert.InDelta(t, 0.0, sum, 1e-12, "row %d sums to zero", i)
	}
}

// TestLaplacian1D_Symmetric checks L == L^T for both closures.
func TestLaplacian1D_Symmetric(t *testing.T) {
	for _, bc := range []operator.Boundary{operator.Dirichlet, operator.Periodic} {
		l, err := operator.Laplacian1D(12, 0.1, bc)
		require.NoError(t, err)
		assertSymmetric(t, l)
	}
}

// TestLaplacian2D_KroneckerSum verifies dimension, symmetry, and the
// stencil value at an interior point: diagonal 2/dx²+2/dy², x-neighbors
// -1/dx², y-neighbors -1/dy² (after the -1/h² scaling flips signs).
func TestLaplacian2D_KroneckerSum(t *testing.T) {
	const (
		nx, ny = 5, 4
		dx, dy = 0.5, 0.25
	)
	l, err := operator.Laplacian2D(nx, ny, dx, dy, operator.Dirichlet)
	require.NoError(t, err)

	r, c := l.Dims()
	require.Equal(t, nx*ny, r)
	require.Equal(t, nx*ny, c)
	assertSymmetric(t, l)

	// Interior point (ix=2, iy=1), row-major index iy*nx+ix.
	i := 1*nx + 2
	sx := 1.0 / (dx * dx)
	sy := 1.0 / (dy * dy)
	assert.InDelta(t, 2*sx+2*sy, l.At(i, i), 1e-12, "diagonal")
	assert.InDelta(t, -sx, l.At(i, i+1), 1e-12, "x neighbor")
	assert.InDelta(t, -sx, l.At(i, i-1), 1e-12, "x neighbor")
	assert.InDelta(t, -sy, l.At(i, i+nx), 1e-12, "y neighbor")
	assert.InDelta(t, -sy, l.At(i, i-nx), 1e-12, "y neighbor")
}

// TestLaplacian2D_PeriodicRowSums checks zero row sums on the torus.
func TestLaplacian2D_PeriodicRowSums(t *testing.T) {
	l, err := operator.Laplacian2D(4, 3, 0.5, 0.5, operator.Periodic)
	require.NoError(t, err)

	n, _ := l.Dims()
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < n; j++ {
			sum += l.At(i, j)
		}
		assert.InDelta(t, 0.0, sum, 1e-12, "row %d", i)
	}
}

// TestHamiltonian_Assembly checks H = ħ²/(2m)·L + diag(V) entrywise
// (L carries the -1/h² scaling) and Hermiticity for a real potential.
func TestHamiltonian_Assembly(t *testing.T) {
	const n, dx = 7, 0.2
	l, err := operator.Laplacian1D(n, dx, operator.Dirichlet)
	require.NoError(t, err)

	v := make([]float64, n)
	for i := range v {
		v[i] = float64(i) * 0.3
	}
	const hbar, mass = 2.0, 0.5
	h, err := operator.Hamiltonian(l, v, hbar, mass)
	require.NoError(t, err)

	kinetic := 0.5 * hbar * hbar / mass
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := kinetic * l.At(i, j)
			if i == j {
				want += v[i]
			}
			assert.InDelta(t, want, h.At(i, j), 1e-12, "entry (%d,%d)", i, j)
		}
	}
	assertSymmetric(t, h)
}

// TestHamiltonian_Errors checks dimension and constant validation.
func TestHamiltonian_Errors(t *testing.T) {
	l, err := operator.Laplacian1D(6, 0.1, operator.Dirichlet)
	require.NoError(t, err)

	_, err = operator.Hamiltonian(l, make([]float64, 5), 1, 1)
	assert.ErrorIs(t, err, operator.ErrDimensionMismatch)

	_, err = operator.Hamiltonian(l, make([]float64, 6), 0, 1)
	assert.ErrorIs(t, err, operator.ErrInvalidConstant)

	_, err = operator.Hamiltonian(l, make([]float64, 6), 1, -1)
	assert.ErrorIs(t, err, operator.ErrInvalidConstant)
}

// assertSymmetric checks m == m^T within floating-point tolerance.
func assertSymmetric(t *testing.T, m mat.Matrix) {
	t.Helper()
	r, c := m.Dims()
	require.Equal(t, r, c)
	for i := 0; i < r; i++ {
		for j := i + 1; j < c; j++ {
			assert.InDelta(t, m.At(i, j), m.At(j, i), 1e-12, "asymmetry at (%d,%d)", i, j)
		}
	}
}
