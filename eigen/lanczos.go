package eigen

import (
	"math"
	"math/rand"
	"sort"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Solve computes the k eigenpairs of the sparse symmetric operator h
// selected by opts.Which. Eigenvalues are returned sorted ascending;
// the i-th column of the returned matrix is the unit eigenvector of the
// i-th returned eigenvalue.
//
// A single Krylov sequence carries at most one Ritz copy per
// eigenspace, so the initial run is verified against degeneracies:
// the operator is re-solved in the orthogonal complement of the
// accepted vectors and the candidate merged in whenever it beats the
// worst accepted value. Repeated eigenvalues are therefore returned
// with their full multiplicity.
//
// Requires 1 <= k < n. Convergence failure is fatal for the call: no
// partial results are returned and the solve is not retried internally.
func Solve(h *sparse.CSR, k int, opts Options) ([]float64, *mat.Dense, error) {
	n, m := h.Dims()
	if n != m {
		return nil, nil, ErrNonSquare
	}
	if k < 1 {
		return nil, nil, ErrInvalidStateCount
	}
	if k >= n {
		return nil, nil, ErrTooManyStates
	}

	tol := opts.Tol
	if tol <= 0 {
		tol = defaultTol
	}
	maxIter := opts.MaxIter
	if maxIter <= 0 || maxIter > n {
		// A full basis makes the projection exact, so the operator
		// dimension is both the default budget and the hard cap.
		maxIter = n
	}
	seed := opts.Seed
	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	vals, vecs, err := lanczosRun(h, k, nil, rng, opts.Which, tol, maxIter)
	if err != nil {
		return nil, nil, err
	}

	// Degeneracy verification: as long as the complement of the
	// accepted vectors holds a better candidate than the worst accepted
	// value, the initial run skipped a repeated eigenvalue; swap the
	// candidate in and look again. At most k-1 copies can be missing.
	for pass := 0; pass < k; pass++ {
		cVals, cVecs, err := lanczosRun(h, 1, vecs, rng, opts.Which, tol, maxIter)
		if err != nil {
			return nil, nil, err
		}
		w := worstIndex(vals, opts.Which)
		if !beats(cVals[0], vals[w], opts.Which, tol) {
			break
		}
		vals[w], vecs[w] = cVals[0], cVecs[0]
	}

	order := make([]int, k)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return vals[order[a]] < vals[order[b]] })

	energies := make([]float64, k)
	out := mat.NewDense(n, k, nil)
	for c, idx := range order {
		energies[c] = vals[idx]
		out.SetCol(c, vecs[idx])
	}
	return energies, out, nil
}

// lanczosRun extracts want converged Ritz pairs of h restricted to the
// orthogonal complement of lock, using the Lanczos recurrence with full
// reorthogonalization.
func lanczosRun(h *sparse.CSR, want int, lock [][]float64, rng *rand.Rand, which Which, tol float64, maxIter int) ([]float64, [][]float64, error) {
	n, _ := h.Dims()
	if limit := n - len(lock); maxIter > limit {
		maxIter = limit
	}

	// Stage 1: start vector. The constant component is rich in the low
	// end of the spectrum for grid operators; the seeded perturbation
	// guarantees overlap with every symmetry sector.
	v := make([]float64, n)
	for i := range v {
		v[i] = 1 + 0.5*(rng.Float64()-0.5)
	}
	project(v, nil, lock)
	if nrm := floats.Norm(v, 2); nrm > 1e-8 {
		floats.Scale(1/nrm, v)
	} else if v = freshVector(rng, nil, lock, n); v == nil {
		return nil, nil, ErrNotConverged
	}

	// Stage 2: Lanczos recurrence.
	basis := make([][]float64, 0, maxIter)
	alphas := make([]float64, 0, maxIter)
	betas := make([]float64, 0, maxIter) // betas[j] couples v_j and v_{j+1}

	var prev []float64
	prevBeta := 0.0
	opScale := 1.0           // running magnitude estimate for breakdown detection
	nextCheck := 2*want + 10 // Ritz extraction is O(m³); check on a geometric schedule
	if nextCheck > maxIter {
		nextCheck = maxIter
	}

	for len(basis) < maxIter {
		basis = append(basis, v)

		w := matVec(h, v)
		if prev != nil {
			floats.AddScaled(w, -prevBeta, prev)
		}
		alpha := floats.Dot(v, w)
		floats.AddScaled(w, -alpha, v)

		// Full reorthogonalization, against the locked vectors too, so
		// the recurrence never leaks back into the deflated subspace.
		project(w, basis, lock)

		alphas = append(alphas, alpha)
		beta := floats.Norm(w, 2)
		mDim := len(alphas)
		if s := math.Abs(alpha) + beta; s > opScale {
			opScale = s
		}

		// Stage 3: Ritz extraction and convergence test.
		breakdown := beta <= 1e-12*opScale
		if mDim >= want && (breakdown || mDim >= nextCheck || mDim == maxIter) {
			vals, vecs, converged, err := ritzPairs(basis, alphas, betas, beta, want, which, tol)
			if err != nil {
				return nil, nil, err
			}
			if converged {
				return vals, vecs, nil
			}
			for nextCheck <= mDim {
				nextCheck = nextCheck*3/2 + 1
			}
		}

		if breakdown {
			if len(basis) == maxIter {
				break
			}
			// The Krylov space hit an invariant subspace; continue in
			// its orthogonal complement. The zero coupling keeps T
			// block tridiagonal.
			betas = append(betas, 0)
			prev = nil
			prevBeta = 0
			v = freshVector(rng, basis, lock, n)
			if v == nil {
				break
			}
			continue
		}

		betas = append(betas, beta)
		floats.Scale(1/beta, w)
		prev = basis[len(basis)-1]
		prevBeta = beta
		v = w
	}

	return nil, nil, ErrNotConverged
}

// ritzPairs solves the projected tridiagonal problem and, when every
// selected pair passes the residual bound |β·s| <= tol·max(1, |θ|),
// assembles the Ritz vectors in the original space.
func ritzPairs(basis [][]float64, alphas, betas []float64, beta float64, want int, which Which, tol float64) ([]float64, [][]float64, bool, error) {
	m := len(alphas)
	t := mat.NewSymDense(m, nil)
	for i, a := range alphas {
		t.SetSym(i, i, a)
	}
	for i, b := range betas {
		if i+1 < m {
			t.SetSym(i, i+1, b)
		}
	}

	var es mat.EigenSym
	if ok := es.Factorize(t, true); !ok {
		return nil, nil, false, ErrNotConverged
	}
	vals := es.Values(nil) // ascending
	var s mat.Dense
	es.VectorsTo(&s)

	sel := selectIndices(vals, want, which)
	for _, idx := range sel {
		bound := math.Max(1, math.Abs(vals[idx]))
		if beta*math.Abs(s.At(m-1, idx)) > tol*bound {
			return nil, nil, false, nil
		}
	}

	n := len(basis[0])
	energies := make([]float64, want)
	vecs := make([][]float64, want)
	for c, idx := range sel {
		col := make([]float64, n)
		for j := 0; j < m; j++ {
			if sji := s.At(j, idx); sji != 0 {
				floats.AddScaled(col, sji, basis[j])
			}
		}
		// Ritz vectors inherit unit norm from the orthonormal basis up
		// to roundoff; pin it exactly.
		if nrm := floats.Norm(col, 2); nrm > 0 {
			floats.Scale(1/nrm, col)
		}
		vecs[c] = col
		energies[c] = vals[idx]
	}
	return energies, vecs, true, nil
}

// selectIndices picks k indices from the ascending vals per which, in
// ascending eigenvalue order.
func selectIndices(vals []float64, k int, which Which) []int {
	idx := make([]int, len(vals))
	for i := range idx {
		idx[i] = i
	}
	if which == SmallestMagnitude {
		sort.SliceStable(idx, func(a, b int) bool {
			return math.Abs(vals[idx[a]]) < math.Abs(vals[idx[b]])
		})
	}
	sel := idx[:k]
	sort.Slice(sel, func(a, b int) bool { return vals[sel[a]] < vals[sel[b]] })
	return sel
}

// worstIndex returns the index of the accepted value a complement
// candidate has to beat: the largest value, or the largest magnitude
// under SmallestMagnitude selection.
func worstIndex(vals []float64, which Which) int {
	w := 0
	for i := 1; i < len(vals); i++ {
		if rank(vals[i], which) > rank(vals[w], which) {
			w = i
		}
	}
	return w
}

// beats reports whether a candidate improves on the incumbent by a
// margin above the Ritz accuracy, so near-equal copies of an already
// accepted eigenvalue never swap back and forth.
func beats(cand, worst float64, which Which, tol float64) bool {
	margin := 2 * tol * math.Max(1, math.Abs(worst))
	return rank(cand, which) < rank(worst, which)-margin
}

// rank is the ordering key of Which: the value itself, or its magnitude.
func rank(v float64, which Which) float64 {
	if which == SmallestMagnitude {
		return math.Abs(v)
	}
	return v
}

// project removes from w its components along every vector of both
// sets, twice, which keeps orthogonality at machine precision.
func project(w []float64, basis, lock [][]float64) {
	for pass := 0; pass < 2; pass++ {
		for _, set := range [2][][]float64{basis, lock} {
			for _, u := range set {
				if c := floats.Dot(u, w); c != 0 {
					floats.AddScaled(w, -c, u)
				}
			}
		}
	}
}

// freshVector draws a direction orthogonal to basis and lock, or nil
// when the space is numerically exhausted.
func freshVector(rng *rand.Rand, basis, lock [][]float64, n int) []float64 {
	for attempt := 0; attempt < 3; attempt++ {
		v := make([]float64, n)
		for i := range v {
			v[i] = rng.NormFloat64()
		}
		project(v, basis, lock)
		if nrm := floats.Norm(v, 2); nrm > 1e-8 {
			floats.Scale(1/nrm, v)
			return v
		}
	}
	return nil
}

// matVec computes h·x over the sparse structure only.
func matVec(h *sparse.CSR, x []float64) []float64 {
	y := make([]float64, len(x))
	h.DoNonZero(func(i, j int, v float64) {
		y[i] += v * x[j]
	})
	return y
}
