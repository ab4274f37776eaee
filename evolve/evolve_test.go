package evolve_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/james-bowman/sparse"
	"github.com/qgridlab/schrod/eigen"
	"github.com/qgridlab/schrod/evolve"
	"github.com/qgridlab/schrod/grid"
	"github.com/qgridlab/schrod/operator"
	"github.com/qgridlab/schrod/potential"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// harmonicBasis solves a small harmonic oscillator and returns its
// Hamiltonian and eigenbasis.
func harmonicBasis(t *testing.T, n, k int) (*sparse.CSR, evolve.Basis) {
	t.Helper()
	g, err := grid.NewGrid1D(-8, 8, n)
	require.NoError(t, err)
	lap, err := operator.Laplacian1D(n, g.Dx(), operator.Dirichlet)
	require.NoError(t, err)
	h, err := operator.Hamiltonian(lap, potential.DefaultHarmonic().Evaluate(g), 1, 1)
	require.NoError(t, err)
	vals, vecs, err := eigen.Solve(h, k, eigen.DefaultOptions())
	require.NoError(t, err)
	return h, evolve.Basis{Energies: vals, States: vecs}
}

// l2Norm computes the discrete l² norm of a complex state.
func l2Norm(psi []complex128) float64 {
	sum := 0.0
	for _, c := range psi {
		sum += real(c)*real(c) + imag(c)*imag(c)
	}
	return math.Sqrt(sum)
}

// TestEvolve_TimeZeroRoundTrip verifies exp(-i·E·0/ħ) = 1: evolving a
// basis-spanned state to t=0 reproduces it.
func TestEvolve_TimeZeroRoundTrip(t *testing.T) {
	_, basis := harmonicBasis(t, 200, 8)
	n, _ := basis.States.Dims()

	// Superpose the two lowest eigenstates with a relative phase.
	psi0 := make([]complex128, n)
	for i := 0; i < n; i++ {
		psi0[i] = complex(basis.States.At(i, 0), 0)*complex(1/math.Sqrt2, 0) +
			complex(basis.States.At(i, 1), 0)*complex(0, 1/math.Sqrt2)
	}

	states, err := evolve.Evolve(psi0, basis, []float64{0}, 1)
	require.NoError(t, err)
	require.Len(t, states, 1)
	for i := range psi0 {
		assert.InDelta(t, real(psi0[i]), real(states[0][i]), 1e-8)
		assert.InDelta(t, imag(psi0[i]), imag(states[0][i]), 1e-8)
	}
}

// TestEvolve_Unitarity verifies norm conservation across times for a
// state inside the computed subspace.
func TestEvolve_Unitarity(t *testing.T) {
	_, basis := harmonicBasis(t, 200, 8)
	n, _ := basis.States.Dims()

	psi0 := make([]complex128, n)
	for i := 0; i < n; i++ {
		psi0[i] = complex(0.6*basis.States.At(i, 0)+0.8*basis.States.At(i, 3), 0)
	}
	want := l2Norm(psi0)

	times := []float64{0, 0.1, 0.7, 3.0, 12.5}
	states, err := evolve.Evolve(psi0, basis, times, 1)
	require.NoError(t, err)
	require.Len(t, states, len(times))
	for ti, psi := range states {
		assert.InDelta(t, want, l2Norm(psi), 1e-8, "norm at t=%v", times[ti])
	}
}

// TestEvolve_EigenstatePhase verifies that a pure eigenstate only picks
// up the global phase exp(-i·E·t/ħ).
func TestEvolve_EigenstatePhase(t *testing.T) {
	_, basis := harmonicBasis(t, 200, 4)
	n, _ := basis.States.Dims()

	psi0 := make([]complex128, n)
	for i := 0; i < n; i++ {
		psi0[i] = complex(basis.States.At(i, 2), 0)
	}

	const tt, hbar = 1.37, 2.0
	states, err := evolve.Evolve(psi0, basis, []float64{tt}, hbar)
	require.NoError(t, err)

	phase := cmplx.Exp(complex(0, -basis.Energies[2]*tt/hbar))
	for i := range psi0 {
		want := psi0[i] * phase
		assert.InDelta(t, real(want), real(states[0][i]), 1e-8)
		assert.InDelta(t, imag(want), imag(states[0][i]), 1e-8)
	}
}

// TestEvolve_EmptyTimes confirms an empty time list is not an error.
func TestEvolve_EmptyTimes(t *testing.T) {
	_, basis := harmonicBasis(t, 120, 3)
	n, _ := basis.States.Dims()

	states, err := evolve.Evolve(make([]complex128, n), basis, nil, 1)
	require.NoError(t, err)
	assert.Empty(t, states)
}

// TestEvolve_Errors checks dimension and constant validation.
func TestEvolve_Errors(t *testing.T) {
	_, basis := harmonicBasis(t, 120, 3)

	_, err := evolve.Evolve(make([]complex128, 7), basis, []float64{0}, 1)
	assert.ErrorIs(t, err, evolve.ErrDimensionMismatch)

	n, _ := basis.States.Dims()
	_, err = evolve.Evolve(make([]complex128, n), basis, []float64{0}, 0)
	assert.ErrorIs(t, err, evolve.ErrInvalidConstant)

	short := evolve.Basis{Energies: basis.Energies[:2], States: basis.States}
	_, err = evolve.Evolve(make([]complex128, n), short, []float64{0}, 1)
	assert.ErrorIs(t, err, evolve.ErrDimensionMismatch)
}

// TestEvolveHamiltonian_Truncation verifies the internal bounded solve
// path and its truncation clamp on tiny operators.
func TestEvolveHamiltonian_Truncation(t *testing.T) {
	h, basis := harmonicBasis(t, 150, 6)
	n, _ := basis.States.Dims()

	psi0 := make([]complex128, n)
	for i := 0; i < n; i++ {
		psi0[i] = complex(basis.States.At(i, 0), 0)
	}

	// The ground state lies inside any truncated basis, so the
	// internally solved propagation must match the cached-basis one.
	times := []float64{0, 0.5, 2.0}
	got, err := evolve.EvolveHamiltonian(psi0, h, times, 1, evolve.DefaultOptions())
	require.NoError(t, err)
	want, err := evolve.Evolve(psi0, basis, times, 1)
	require.NoError(t, err)

	for ti := range times {
		for i := 0; i < n; i++ {
			assert.InDelta(t, real(want[ti][i]), real(got[ti][i]), 1e-6)
			assert.InDelta(t, imag(want[ti][i]), imag(got[ti][i]), 1e-6)
		}
	}
}
