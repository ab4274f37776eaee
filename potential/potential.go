package potential

import (
	"math"

	"github.com/qgridlab/schrod/grid"
)

// DefaultWallValue is the potential used for "infinite" hard walls.
// Large enough to suppress the wave function, small enough to keep the
// Hamiltonian comfortably inside float64 range.
const DefaultWallValue = 1e6

// Field1D samples a scalar potential over a 1D grid. Implementations
// must be pure: same grid in, same values out, index-aligned with the
// grid points.
type Field1D interface {
	Evaluate(g grid.Grid1D) []float64
}

// Field2D samples a scalar potential over a 2D grid, flattened
// row-major (index = iy*nx + ix).
type Field2D interface {
	Evaluate(g grid.Grid2D) []float64
}

// InfiniteWell is a particle-in-a-box potential: Depth inside a well of
// the given Width centered at Offset, WallValue outside.
type InfiniteWell struct {
	Width     float64
	Offset    float64
	Depth     float64
	WallValue float64
}

// DefaultInfiniteWell returns a unit-width well centered at the origin.
func DefaultInfiniteWell() InfiniteWell {
	return InfiniteWell{Width: 1.0, WallValue: DefaultWallValue}
}

// Evaluate implements Field1D.
func (p InfiniteWell) Evaluate(g grid.Grid1D) []float64 {
	v := make([]float64, g.Len())
	lo, hi := p.Offset-p.Width/2, p.Offset+p.Width/2
	for i := range v {
		if x := g.At(i); x >= lo && x <= hi {
			v[i] = p.Depth
		} else {
			v[i] = p.WallValue
		}
	}
	return v
}

// Harmonic is the harmonic oscillator potential
// V(x) = 0.5*K*(x-Center)^2.
type Harmonic struct {
	K      float64
	Center float64
}

// DefaultHarmonic returns a unit spring constant oscillator at the origin.
func DefaultHarmonic() Harmonic { return Harmonic{K: 1.0} }

// Evaluate implements Field1D.
func (p Harmonic) Evaluate(g grid.Grid1D) []float64 {
	v := make([]float64, g.Len())
	for i := range v {
		d := g.At(i) - p.Center
		v[i] = 0.5 * p.K * d * d
	}
	return v
}

// Barrier is a rectangular barrier of the given Height and Width
// centered at Position, zero elsewhere.
type Barrier struct {
	Height   float64
	Width    float64
	Position float64
}

// DefaultBarrier returns a unit-height barrier of width 0.1 at the origin.
func DefaultBarrier() Barrier { return Barrier{Height: 1.0, Width: 0.1} }

// Evaluate implements Field1D.
func (p Barrier) Evaluate(g grid.Grid1D) []float64 {
	v := make([]float64, g.Len())
	lo, hi := p.Position-p.Width/2, p.Position+p.Width/2
	for i := range v {
		if x := g.At(i); x >= lo && x <= hi {
			v[i] = p.Height
		}
	}
	return v
}

// DoubleWell is two wells of combined Width separated by a central
// barrier: the base plateau sits at Height, the wells at zero and the
// barrier at BarrierHeight.
type DoubleWell struct {
	Height        float64
	Width         float64
	BarrierWidth  float64
	BarrierHeight float64
}

// DefaultDoubleWell returns the conventional symmetric double well.
func DefaultDoubleWell() DoubleWell {
	return DoubleWell{Height: 1.0, Width: 2.0, BarrierWidth: 0.5, BarrierHeight: 2.0}
}

// Evaluate implements Field1D.
func (p DoubleWell) Evaluate(g grid.Grid1D) []float64 {
	v := make([]float64, g.Len())
	wellWidth := (p.Width - p.BarrierWidth) / 2
	leftMin := -p.Width / 2
	leftMax := leftMin + wellWidth
	rightMax := p.Width / 2
	rightMin := rightMax - wellWidth
	for i := range v {
		x := g.At(i)
		switch {
		case (x >= leftMin && x <= leftMax) || (x >= rightMin && x <= rightMax):
			v[i] = 0
		case x > leftMax && x < rightMin:
			v[i] = p.BarrierHeight
		default:
			v[i] = p.Height
		}
	}
	return v
}

// Morse is the Morse potential V(x) = D*(1-exp(-A*(x-Re)))^2.
type Morse struct {
	D  float64 // dissociation energy
	A  float64 // well width parameter
	Re float64 // equilibrium position
}

// DefaultMorse returns a unit Morse well at the origin.
func DefaultMorse() Morse { return Morse{D: 1.0, A: 1.0} }

// Evaluate implements Field1D.
func (p Morse) Evaluate(g grid.Grid1D) []float64 {
	v := make([]float64, g.Len())
	for i := range v {
		e := 1 - math.Exp(-p.A*(g.At(i)-p.Re))
		v[i] = p.D * e * e
	}
	return v
}
