package evolve

import (
	"errors"
	"math"

	"github.com/james-bowman/sparse"
	"github.com/qgridlab/schrod/eigen"
	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for time propagation.
var (
	// ErrDimensionMismatch indicates a state or basis whose dimensions
	// disagree with the operator.
	ErrDimensionMismatch = errors.New("evolve: state length does not match basis dimension")
	// ErrInvalidConstant indicates a non-positive hbar.
	ErrInvalidConstant = errors.New("evolve: hbar must be positive")
)

// defaultMaxStates is the truncation used when Evolve must diagonalize
// internally. Most physically relevant packets have negligible overlap
// with states far above this at the time scales of interest.
const defaultMaxStates = 20

// Basis is a computed eigenbasis: Energies[i] belongs to column i of
// States. Columns are unit vectors in the discrete l² sense, exactly as
// returned by eigen.Solve.
type Basis struct {
	Energies []float64
	States   *mat.Dense
}

// Options configures the internal eigensolve of EvolveHamiltonian.
//
// MaxStates bounds the truncated basis; zero means 20 (clamped to n-1).
// Propagation accuracy degrades for wave packets with significant
// high-energy content beyond the truncation.
type Options struct {
	MaxStates int
	Eigen     eigen.Options
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{MaxStates: defaultMaxStates, Eigen: eigen.DefaultOptions()}
}

// Evolve advances initial through the precomputed basis, returning one
// position-space state per requested time. The initial state is
// projected once; each time point then costs O(n·k).
func Evolve(initial []complex128, basis Basis, times []float64, hbar float64) ([][]complex128, error) {
	if !(hbar > 0) {
		return nil, ErrInvalidConstant
	}
	n, k := basis.States.Dims()
	if len(initial) != n || len(basis.Energies) != k {
		return nil, ErrDimensionMismatch
	}

	// c_k = ⟨φ_k|ψ₀⟩. Eigenvectors are real, so conjugation only
	// touches the state side.
	coeffs := make([]complex128, k)
	for j := 0; j < k; j++ {
		var c complex128
		for i := 0; i < n; i++ {
			c += complex(basis.States.At(i, j), 0) * initial[i]
		}
		coeffs[j] = c
	}

	states := make([][]complex128, len(times))
	for ti, t := range times {
		out := make([]complex128, n)
		for j := 0; j < k; j++ {
			// exp(-i·E·t/ħ), unitary per component.
			arg := -basis.Energies[j] * t / hbar
			rot := coeffs[j] * complex(math.Cos(arg), math.Sin(arg))
			if rot == 0 {
				continue
			}
			for i := 0; i < n; i++ {
				out[i] += complex(basis.States.At(i, j), 0) * rot
			}
		}
		states[ti] = out
	}
	return states, nil
}

// EvolveHamiltonian propagates initial directly under the sparse
// operator h, first computing a truncated eigenbasis of
// min(opts.MaxStates, n-1) states. Use Evolve with a cached basis when
// the operator has already been solved.
func EvolveHamiltonian(initial []complex128, h *sparse.CSR, times []float64, hbar float64, opts Options) ([][]complex128, error) {
	n, m := h.Dims()
	if n != m || len(initial) != n {
		return nil, ErrDimensionMismatch
	}

	k := opts.MaxStates
	if k <= 0 {
		k = defaultMaxStates
	}
	if k > n-1 {
		k = n - 1
	}
	vals, vecs, err := eigen.Solve(h, k, opts.Eigen)
	if err != nil {
		return nil, err
	}
	return Evolve(initial, Basis{Energies: vals, States: vecs}, times, hbar)
}
