package views

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// rasterGrid adapts a flat x-major array to plotter.GridXYZ.
// NaN cells (out-of-domain crop pixels) render as the floor value so
// the heatmap plotter's min/max scan stays finite.
type rasterGrid struct {
	data   []float64
	nx, ny int
	floor  float64
}

func newRasterGrid(data []float64, nx, ny int) rasterGrid {
	floor := math.Inf(1)
	for _, v := range data {
		if !math.IsNaN(v) && v < floor {
			floor = v
		}
	}
	if math.IsInf(floor, 1) {
		floor = 0
	}
	return rasterGrid{data: data, nx: nx, ny: ny, floor: floor}
}

func (g rasterGrid) Dims() (c, r int) { return g.nx, g.ny }
func (g rasterGrid) X(c int) float64  { return float64(c) }
func (g rasterGrid) Y(r int) float64  { return float64(r) }
func (g rasterGrid) Z(c, r int) float64 {
	v := g.data[c*g.ny+r]
	if math.IsNaN(v) {
		return g.floor
	}
	return v
}

// RenderHeatmap writes one velocity component as a PNG heatmap with a
// diverging blue-red colormap, the conventional rendering for signed
// flow components.
func RenderHeatmap(path, title string, data []float64, nx, ny int) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x index"
	p.Y.Label.Text = "y index"

	pal := moreland.SmoothBlueRed().Palette(255)
	hm := plotter.NewHeatMap(newRasterGrid(data, nx, ny), pal)
	p.Add(hm)

	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save heatmap %s: %w", path, err)
	}
	return nil
}
