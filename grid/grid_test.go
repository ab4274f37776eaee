package grid_test

import (
	"errors"
	"math"
	"testing"

	"github.com/qgridlab/schrod/grid"
	"github.com/stretchr/testify/assert"
)

// TestNewGrid1D_Errors verifies that construction rejects malformed input.
func TestNewGrid1D_Errors(t *testing.T) {
	cases := []struct {
		name     string
		min, max float64
		n        int
		err      error
	}{
		{"OnePoint", 0, 1, 1, grid.ErrTooFewPoints},
		{"ZeroPoints", 0, 1, 0, grid.ErrTooFewPoints},
		{"NegativePoints", 0, 1, -3, grid.ErrTooFewPoints},
		{"EmptyDomain", 2, 2, 10, grid.ErrInvalidDomain},
		{"ReversedDomain", 5, -5, 10, grid.ErrInvalidDomain},
		{"NaNBound", math.NaN(), 1, 10, grid.ErrInvalidDomain},
		{"InfBound", 0, math.Inf(1), 10, grid.ErrInvalidDomain},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.NewGrid1D(tc.min, tc.max, tc.n)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGrid1D(%v, %v, %d) error = %v; want %v", tc.min, tc.max, tc.n, err, tc.err)
			}
		})
	}
}

// TestGrid1D_StepInvariant checks dx = (max-min)/(n-1) and endpoint placement.
func TestGrid1D_StepInvariant(t *testing.T) {
	g, err := grid.NewGrid1D(-5, 5, 1001)
	assert.NoError(t, err)

	assert.Equal(t, 1001, g.Len())
	assert.InDelta(t, 0.01, g.Dx(), 1e-12, "dx must equal (max-min)/(n-1)")
	assert.Equal(t, -5.0, g.At(0), "first point is min")
	assert.Equal(t, 5.0, g.At(g.Len()-1), "last point is max")

	pts := g.Points()
	for i := 1; i < len(pts); i++ {
		assert.InDelta(t, g.Dx(), pts[i]-pts[i-1], 1e-9, "uniform spacing")
	}
}

// TestGrid1D_PointsCopy ensures Points returns a defensive copy.
func TestGrid1D_PointsCopy(t *testing.T) {
	g, err := grid.NewGrid1D(0, 1, 11)
	assert.NoError(t, err)

	pts := g.Points()
	pts[0] = 42
	assert.Equal(t, 0.0, g.At(0), "mutating the copy must not affect the grid")
}

// TestGrid2D_FlatLayout verifies row-major flattening: index = iy*nx + ix.
func TestGrid2D_FlatLayout(t *testing.T) {
	g, err := grid.NewGrid2D(0, 2, 3, 10, 11, 2)
	assert.NoError(t, err)

	assert.Equal(t, 3, g.Nx())
	assert.Equal(t, 2, g.Ny())
	assert.Equal(t, 6, g.Size())

	xs, ys := g.FlatCoords()
	assert.Equal(t, []float64{0, 1, 2, 0, 1, 2}, xs)
	assert.Equal(t, []float64{10, 10, 10, 11, 11, 11}, ys)
}

// TestGrid2D_Errors checks that axis validation propagates.
func TestGrid2D_Errors(t *testing.T) {
	_, err := grid.NewGrid2D(0, 1, 1, 0, 1, 10)
	assert.ErrorIs(t, err, grid.ErrTooFewPoints)

	_, err = grid.NewGrid2D(0, 1, 10, 1, 0, 10)
	assert.ErrorIs(t, err, grid.ErrInvalidDomain)
}
