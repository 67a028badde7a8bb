package models

// CroppedField holds velocity samples of one configuration expressed
// in its LocalFrame: two Nx×Ny arrays (x-major, i*Ny+j) covering a
// physical window centred on the frame origin. Cells whose global
// position fell outside the source field's support are NaN.
type CroppedField struct {
	Ux, Uy []float64
	Nx, Ny int
}

// NewCroppedField allocates a zeroed Nx×Ny crop.
func NewCroppedField(nx, ny int) *CroppedField {
	return &CroppedField{
		Ux: make([]float64, nx*ny),
		Uy: make([]float64, nx*ny),
		Nx: nx,
		Ny: ny,
	}
}

// Idx converts (x-index, y-index) to the flat offset.
func (c *CroppedField) Idx(i, j int) int { return i*c.Ny + j }

// IncidentField is the undisturbed-inflow counterpart of a crop: the
// single global inflow vector decomposed onto the local axes and
// broadcast over the full resolution. Spatially constant, never NaN —
// it encodes only the heading/inflow relationship and serves as the
// reference channel beside the spatially varying CroppedField.
type IncidentField struct {
	Ux, Uy []float64
	Nx, Ny int

	// The broadcast pair, kept for metadata and cheap assertions.
	UxLocal, UyLocal float64
}

// NewIncidentField broadcasts (uxLocal, uyLocal) over Nx×Ny.
func NewIncidentField(nx, ny int, uxLocal, uyLocal float64) *IncidentField {
	f := &IncidentField{
		Ux:      make([]float64, nx*ny),
		Uy:      make([]float64, nx*ny),
		Nx:      nx,
		Ny:      ny,
		UxLocal: uxLocal,
		UyLocal: uyLocal,
	}
	for i := range f.Ux {
		f.Ux[i] = uxLocal
		f.Uy[i] = uyLocal
	}
	return f
}
