package models

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// RectilinearField is a dense vector-field raster: two strictly
// increasing, evenly spaced coordinate axes plus flat ux/uy arrays
// indexed x-major (i*Ny + j). Cells with no interpolation support hold
// NaN. Built once by the gridder and read-only afterwards, so any
// number of crops may sample it concurrently.
type RectilinearField struct {
	X, Y   []float64 // axis values, len Nx / len Ny
	Ux, Uy []float64 // len Nx*Ny
	Nx, Ny int
}

// NewRectilinearField allocates an Nx×Ny field whose axes span
// [minX, maxX] and [minY, maxY] inclusively, all cells NaN.
func NewRectilinearField(nx, ny int, minX, maxX, minY, maxY float64) *RectilinearField {
	f := &RectilinearField{
		X:  make([]float64, nx),
		Y:  make([]float64, ny),
		Ux: make([]float64, nx*ny),
		Uy: make([]float64, nx*ny),
		Nx: nx,
		Ny: ny,
	}
	floats.Span(f.X, minX, maxX)
	floats.Span(f.Y, minY, maxY)
	for i := range f.Ux {
		f.Ux[i] = math.NaN()
		f.Uy[i] = math.NaN()
	}
	return f
}

// Idx converts (x-index, y-index) to the flat offset.
func (f *RectilinearField) Idx(i, j int) int { return i*f.Ny + j }

// Set stores both components at a node.
func (f *RectilinearField) Set(i, j int, ux, uy float64) {
	k := f.Idx(i, j)
	f.Ux[k] = ux
	f.Uy[k] = uy
}

// At bilinearly interpolates both components at a global position.
// Positions outside the axis bounds return NaN; this is the expected
// outcome near crop edges, never an error. NaN grid cells propagate
// into any interpolation stencil that touches them.
func (f *RectilinearField) At(x, y float64) (ux, uy float64) {
	if x < f.X[0] || x > f.X[f.Nx-1] || y < f.Y[0] || y > f.Y[f.Ny-1] {
		return math.NaN(), math.NaN()
	}

	dx := (f.X[f.Nx-1] - f.X[0]) / float64(f.Nx-1)
	dy := (f.Y[f.Ny-1] - f.Y[0]) / float64(f.Ny-1)

	i0 := int((x - f.X[0]) / dx)
	if i0 > f.Nx-2 {
		i0 = f.Nx - 2
	}
	j0 := int((y - f.Y[0]) / dy)
	if j0 > f.Ny-2 {
		j0 = f.Ny - 2
	}

	tx := (x - f.X[i0]) / dx
	ty := (y - f.Y[j0]) / dy
	sx := 1 - tx
	sy := 1 - ty

	k00 := f.Idx(i0, j0)
	k10 := f.Idx(i0+1, j0)
	k01 := f.Idx(i0, j0+1)
	k11 := f.Idx(i0+1, j0+1)

	ux = sx*sy*f.Ux[k00] + tx*sy*f.Ux[k10] + sx*ty*f.Ux[k01] + tx*ty*f.Ux[k11]
	uy = sx*sy*f.Uy[k00] + tx*sy*f.Uy[k10] + sx*ty*f.Uy[k01] + tx*ty*f.Uy[k11]
	return ux, uy
}
