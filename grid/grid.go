package grid

import (
	"errors"
	"math"
)

// Sentinel errors for grid construction.
var (
	// ErrTooFewPoints indicates a grid with fewer than two points.
	ErrTooFewPoints = errors.New("grid: point count must be at least 2")
	// ErrInvalidDomain indicates max <= min or a non-finite bound.
	ErrInvalidDomain = errors.New("grid: domain bounds must be finite with max > min")
)

// Grid1D is an immutable uniform grid of n points on [min, max].
// The step size satisfies dx = (max - min) / (n - 1).
type Grid1D struct {
	min, max float64
	n        int
	dx       float64
	points   []float64
}

// NewGrid1D builds a uniform grid of n points spanning [min, max].
// Returns ErrTooFewPoints if n < 2 and ErrInvalidDomain if the bounds
// are non-finite or max <= min.
func NewGrid1D(min, max float64, n int) (Grid1D, error) {
	if n < 2 {
		return Grid1D{}, ErrTooFewPoints
	}
	if math.IsNaN(min) || math.IsInf(min, 0) || math.IsNaN(max) || math.IsInf(max, 0) || max <= min {
		return Grid1D{}, ErrInvalidDomain
	}

	dx := (max - min) / float64(n-1)
	points := make([]float64, n)
	for i := range points {
		points[i] = min + float64(i)*dx
	}
	// Pin the last point to the exact upper bound so dx rounding never
	// leaks past the domain.
	points[n-1] = max

	return Grid1D{min: min, max: max, n: n, dx: dx, points: points}, nil
}

// Min returns the lower domain bound.
func (g Grid1D) Min() float64 { return g.min }

// Max returns the upper domain bound.
func (g Grid1D) Max() float64 { return g.max }

// Len returns the number of grid points.
func (g Grid1D) Len() int { return g.n }

// Dx returns the uniform step size.
func (g Grid1D) Dx() float64 { return g.dx }

// At returns the coordinate of point i. i must be in [0, Len).
func (g Grid1D) At(i int) float64 { return g.points[i] }

// Points returns a copy of the coordinate array.
func (g Grid1D) Points() []float64 {
	out := make([]float64, len(g.points))
	copy(out, g.points)
	return out
}

// Grid2D is the outer product of two 1D axes. Flattened arrays aligned
// with the grid use row-major layout: index = iy*Nx + ix.
type Grid2D struct {
	x, y Grid1D
}

// NewGrid2D builds a 2D grid from independent x and y axis definitions.
func NewGrid2D(xMin, xMax float64, nx int, yMin, yMax float64, ny int) (Grid2D, error) {
	x, err := NewGrid1D(xMin, xMax, nx)
	if err != nil {
		return Grid2D{}, err
	}
	y, err := NewGrid1D(yMin, yMax, ny)
	if err != nil {
		return Grid2D{}, err
	}
	return Grid2D{x: x, y: y}, nil
}

// X returns the x axis.
func (g Grid2D) X() Grid1D { return g.x }

// Y returns the y axis.
func (g Grid2D) Y() Grid1D { return g.y }

// Nx returns the number of points along x.
func (g Grid2D) Nx() int { return g.x.n }

// Ny returns the number of points along y.
func (g Grid2D) Ny() int { return g.y.n }

// Size returns the total number of grid points, Nx*Ny.
func (g Grid2D) Size() int { return g.x.n * g.y.n }

// FlatCoords returns the x and y coordinates of every grid point in
// row-major order, so that xs[iy*Nx+ix] = x[ix] and ys[iy*Nx+ix] = y[iy].
func (g Grid2D) FlatCoords() (xs, ys []float64) {
	nx, ny := g.x.n, g.y.n
	xs = make([]float64, nx*ny)
	ys = make([]float64, nx*ny)
	for iy := 0; iy < ny; iy++ {
		for ix := 0; ix < nx; ix++ {
			xs[iy*nx+ix] = g.x.points[ix]
			ys[iy*nx+ix] = g.y.points[iy]
		}
	}
	return xs, ys
}
