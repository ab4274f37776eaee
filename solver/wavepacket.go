package solver

import (
	"math"
	"math/cmplx"

	"github.com/qgridlab/schrod/grid"
)

// GaussianPacket1D samples a moving Gaussian wave packet
//
//	ψ(x) = exp(-(x-center)²/(2·width²)) · exp(i·k0·x)
//
// on g and normalizes it to unit discrete l² norm, matching the
// normalization convention of the propagators.
func GaussianPacket1D(g grid.Grid1D, center, width, k0 float64) ([]complex128, error) {
	if !(width > 0) {
		return nil, ErrInvalidPacket
	}
	psi := make([]complex128, g.Len())
	for i := range psi {
		x := g.At(i)
		d := (x - center) / width
		psi[i] = complex(math.Exp(-0.5*d*d), 0) * cmplx.Exp(complex(0, k0*x))
	}
	normalize(psi)
	return psi, nil
}

// GaussianPacket2D samples a separable moving Gaussian wave packet with
// per-axis centers, widths and momenta, flattened row-major and
// normalized to unit discrete l² norm.
func GaussianPacket2D(g grid.Grid2D, centerX, centerY, widthX, widthY, kx, ky float64) ([]complex128, error) {
	if !(widthX > 0) || !(widthY > 0) {
		return nil, ErrInvalidPacket
	}
	psi := make([]complex128, g.Size())
	nx := g.Nx()
	for iy := 0; iy < g.Ny(); iy++ {
		y := g.Y().At(iy)
		dy := (y - centerY) / widthY
		fy := complex(math.Exp(-0.5*dy*dy), 0) * cmplx.Exp(complex(0, ky*y))
		for ix := 0; ix < nx; ix++ {
			x := g.X().At(ix)
			dx := (x - centerX) / widthX
			psi[iy*nx+ix] = fy * complex(math.Exp(-0.5*dx*dx), 0) * cmplx.Exp(complex(0, kx*x))
		}
	}
	normalize(psi)
	return psi, nil
}

func normalize(psi []complex128) {
	var sum float64
	for _, c := range psi {
		sum += real(c)*real(c) + imag(c)*imag(c)
	}
	norm := math.Sqrt(sum)
	if norm == 0 {
		return
	}
	for i := range psi {
		psi[i] /= complex(norm, 0)
	}
}
