package potential

import "github.com/qgridlab/schrod/grid"

// Axis selects the direction of an anisotropic 2D feature.
type Axis int

const (
	// AxisX orients the feature along x.
	AxisX Axis = iota
	// AxisY orients the feature along y.
	AxisY
)

// InfiniteWell2D is a rectangular box: Depth inside, WallValue outside.
type InfiniteWell2D struct {
	WidthX, WidthY   float64
	OffsetX, OffsetY float64
	Depth            float64
	WallValue        float64
}

// DefaultInfiniteWell2D returns a unit square box centered at the origin.
func DefaultInfiniteWell2D() InfiniteWell2D {
	return InfiniteWell2D{WidthX: 1.0, WidthY: 1.0, WallValue: DefaultWallValue}
}

// Evaluate implements Field2D.
func (p InfiniteWell2D) Evaluate(g grid.Grid2D) []float64 {
	xs, ys := g.FlatCoords()
	v := make([]float64, len(xs))
	xLo, xHi := p.OffsetX-p.WidthX/2, p.OffsetX+p.WidthX/2
	yLo, yHi := p.OffsetY-p.WidthY/2, p.OffsetY+p.WidthY/2
	for i := range v {
		if xs[i] >= xLo && xs[i] <= xHi && ys[i] >= yLo && ys[i] <= yHi {
			v[i] = p.Depth
		} else {
			v[i] = p.WallValue
		}
	}
	return v
}

// Harmonic2D is the anisotropic 2D oscillator
// V(x,y) = 0.5*KX*(x-CenterX)^2 + 0.5*KY*(y-CenterY)^2.
type Harmonic2D struct {
	KX, KY           float64
	CenterX, CenterY float64
}

// DefaultHarmonic2D returns an isotropic unit oscillator at the origin.
func DefaultHarmonic2D() Harmonic2D { return Harmonic2D{KX: 1.0, KY: 1.0} }

// Evaluate implements Field2D.
func (p Harmonic2D) Evaluate(g grid.Grid2D) []float64 {
	xs, ys := g.FlatCoords()
	v := make([]float64, len(xs))
	for i := range v {
		dx := xs[i] - p.CenterX
		dy := ys[i] - p.CenterY
		v[i] = 0.5*p.KX*dx*dx + 0.5*p.KY*dy*dy
	}
	return v
}

// CircularWell is a hard circular well: Depth inside Radius of the
// center, WallValue outside.
type CircularWell struct {
	Radius           float64
	CenterX, CenterY float64
	Depth            float64
	WallValue        float64
}

// DefaultCircularWell returns a unit-radius well centered at the origin.
func DefaultCircularWell() CircularWell {
	return CircularWell{Radius: 1.0, WallValue: DefaultWallValue}
}

// Evaluate implements Field2D.
func (p CircularWell) Evaluate(g grid.Grid2D) []float64 {
	xs, ys := g.FlatCoords()
	v := make([]float64, len(xs))
	r2 := p.Radius * p.Radius
	for i := range v {
		dx := xs[i] - p.CenterX
		dy := ys[i] - p.CenterY
		if dx*dx+dy*dy <= r2 {
			v[i] = p.Depth
		} else {
			v[i] = p.WallValue
		}
	}
	return v
}

// DoubleWell2D extrudes the 1D double well along the chosen Axis.
type DoubleWell2D struct {
	Height        float64
	Width         float64
	BarrierWidth  float64
	BarrierHeight float64
	Along         Axis
}

// DefaultDoubleWell2D returns the conventional double well along x.
func DefaultDoubleWell2D() DoubleWell2D {
	return DoubleWell2D{Height: 1.0, Width: 2.0, BarrierWidth: 0.5, BarrierHeight: 2.0, Along: AxisX}
}

// Evaluate implements Field2D.
func (p DoubleWell2D) Evaluate(g grid.Grid2D) []float64 {
	xs, ys := g.FlatCoords()
	coords := xs
	if p.Along == AxisY {
		coords = ys
	}

	v := make([]float64, len(coords))
	wellWidth := (p.Width - p.BarrierWidth) / 2
	leftMin := -p.Width / 2
	leftMax := leftMin + wellWidth
	rightMax := p.Width / 2
	rightMin := rightMax - wellWidth
	for i, c := range coords {
		switch {
		case (c >= leftMin && c <= leftMax) || (c >= rightMin && c <= rightMax):
			v[i] = 0
		case c > leftMax && c < rightMin:
			v[i] = p.BarrierHeight
		default:
			v[i] = p.Height
		}
	}
	return v
}
