package resample

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"windcrop/models"
)

// Crop resamples a rectilinear field into a window fixed to a rotating
// object: the output pixel grid lives in the object's LocalFrame, so
// whatever the heading was in the simulation, the raster always shows
// the object in its canonical unrotated pose.
//
// Every local pixel maps through the forward rigid transform into the
// global frame and is looked up with bilinear interpolation — the
// source is already rectilinear, so no re-triangulation happens here.
// Pixels landing outside the field's support come back NaN.
//
// Pure function of its inputs: same field, frame, window and
// resolution always yield identical arrays.
func Crop(field *models.RectilinearField, frame models.LocalFrame, width, height float64, nx, ny int) (*models.CroppedField, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: crop window %gx%g", models.ErrInvalidParameter, width, height)
	}
	if nx <= 0 || ny <= 0 {
		return nil, fmt.Errorf("%w: crop resolution %dx%d", models.ErrInvalidParameter, nx, ny)
	}

	xRel := spanCentered(nx, width)
	yRel := spanCentered(ny, height)

	crop := models.NewCroppedField(nx, ny)
	for i, xl := range xRel {
		for j, yl := range yRel {
			xg, yg := frame.ToGlobal(xl, yl)
			ux, uy := field.At(xg, yg)
			k := crop.Idx(i, j)
			crop.Ux[k] = ux
			crop.Uy[k] = uy
		}
	}
	return crop, nil
}

// spanCentered returns n evenly spaced values over [-size/2, +size/2].
// A single-pixel axis collapses to the window centre.
func spanCentered(n int, size float64) []float64 {
	vals := make([]float64, n)
	if n == 1 {
		vals[0] = 0
		return vals
	}
	floats.Span(vals, -size/2, size/2)
	return vals
}
