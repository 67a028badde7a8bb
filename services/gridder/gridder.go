package gridder

import (
	"fmt"
	"math"

	"github.com/fogleman/delaunay"

	"windcrop/models"
)

// Gridder turns a scattered sample set into a dense RectilinearField
// by piecewise-linear interpolation: Delaunay-triangulate the sample
// positions once, then evaluate every grid node that falls inside a
// triangle with barycentric weights. Nodes outside the convex hull are
// left NaN on purpose — extrapolating beyond sampled support would
// fabricate data.
type Gridder struct {
	Nx, Ny int
}

func New(nx, ny int) *Gridder {
	return &Gridder{Nx: nx, Ny: ny}
}

// barycentric weight tolerance: nodes sitting exactly on a shared
// triangle edge must land in one of the two triangles despite rounding.
const edgeEps = 1e-12

// Grid interpolates both velocity components onto an evenly spaced
// Nx×Ny grid spanning the sample bounding box inclusively. The input
// slice is never mutated; the returned field is fresh.
func (g *Gridder) Grid(samples []models.PointSample) (*models.RectilinearField, error) {
	if g.Nx < 2 || g.Ny < 2 {
		return nil, fmt.Errorf("%w: grid shape %dx%d", models.ErrInvalidParameter, g.Nx, g.Ny)
	}
	if !models.HasInterpolationSupport(samples) {
		return nil, fmt.Errorf("%w: %d samples", models.ErrInsufficientSupport, len(samples))
	}

	pts := make([]delaunay.Point, len(samples))
	for i, s := range samples {
		pts[i] = delaunay.Point{X: s.X, Y: s.Y}
	}
	tri, err := delaunay.Triangulate(pts)
	if err != nil {
		return nil, fmt.Errorf("%w: triangulation failed: %v", models.ErrInsufficientSupport, err)
	}

	minX, maxX, minY, maxY := models.Bounds(samples)
	field := models.NewRectilinearField(g.Nx, g.Ny, minX, maxX, minY, maxY)

	dx := (maxX - minX) / float64(g.Nx-1)
	dy := (maxY - minY) / float64(g.Ny-1)

	// Scan each triangle's bounding box in grid-index space. A node
	// covered by two triangles (shared edge) is written twice with the
	// same interpolated value, so order does not matter.
	for t := 0; t < len(tri.Triangles); t += 3 {
		a := samples[tri.Triangles[t]]
		b := samples[tri.Triangles[t+1]]
		c := samples[tri.Triangles[t+2]]

		denom := (b.Y-c.Y)*(a.X-c.X) + (c.X-b.X)*(a.Y-c.Y)
		if math.Abs(denom) < edgeEps {
			continue // degenerate sliver
		}

		txMin := math.Min(a.X, math.Min(b.X, c.X))
		txMax := math.Max(a.X, math.Max(b.X, c.X))
		tyMin := math.Min(a.Y, math.Min(b.Y, c.Y))
		tyMax := math.Max(a.Y, math.Max(b.Y, c.Y))

		i0 := clampIdx(int(math.Ceil((txMin-minX)/dx-edgeEps)), g.Nx)
		i1 := clampIdx(int(math.Floor((txMax-minX)/dx+edgeEps)), g.Nx)
		j0 := clampIdx(int(math.Ceil((tyMin-minY)/dy-edgeEps)), g.Ny)
		j1 := clampIdx(int(math.Floor((tyMax-minY)/dy+edgeEps)), g.Ny)

		for i := i0; i <= i1; i++ {
			nx := field.X[i]
			for j := j0; j <= j1; j++ {
				ny := field.Y[j]

				w1 := ((b.Y-c.Y)*(nx-c.X) + (c.X-b.X)*(ny-c.Y)) / denom
				w2 := ((c.Y-a.Y)*(nx-c.X) + (a.X-c.X)*(ny-c.Y)) / denom
				w3 := 1 - w1 - w2

				if w1 < -edgeEps || w2 < -edgeEps || w3 < -edgeEps {
					continue
				}

				ux := w1*a.Ux + w2*b.Ux + w3*c.Ux
				uy := w1*a.Uy + w2*b.Uy + w3*c.Uy
				field.Set(i, j, ux, uy)
			}
		}
	}

	return field, nil
}

func clampIdx(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}
