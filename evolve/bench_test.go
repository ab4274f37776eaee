package evolve_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/qgridlab/schrod/evolve"
)

// benchBasis builds a synthetic orthonormal basis of k sine modes on n
// samples, energies 1..k.
func benchBasis(n, k int) evolve.Basis {
	states := mat.NewDense(n, k, nil)
	energies := make([]float64, k)
	for j := 0; j < k; j++ {
		energies[j] = float64(j + 1)
		norm := math.Sqrt(2 / float64(n+1))
		for i := 0; i < n; i++ {
			states.Set(i, j, norm*math.Sin(math.Pi*float64(j+1)*float64(i+1)/float64(n+1)))
		}
	}
	return evolve.Basis{Energies: energies, States: states}
}

func BenchmarkEvolve(b *testing.B) {
	const (
		n     = 4096
		k     = 32
		steps = 100
	)
	basis := benchBasis(n, k)
	initial := make([]complex128, n)
	for i := 0; i < k; i++ {
		for j := 0; j < n; j++ {
			initial[j] += complex(basis.States.At(j, i)/float64(k), 0)
		}
	}
	times := make([]float64, steps)
	for i := range times {
		times[i] = float64(i) * 0.01
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = evolve.Evolve(initial, basis, times, 1)
	}
}
