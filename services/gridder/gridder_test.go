package gridder

import (
	"errors"
	"math"
	"testing"

	"windcrop/models"
)

// lattice returns an n×n unit lattice over [0, n-1]² with ux = x, uy = 0.
func lattice(n int) []models.PointSample {
	samples := make([]models.PointSample, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x, y := float64(i), float64(j)
			samples = append(samples, models.PointSample{X: x, Y: y, Ux: x, Uy: 0})
		}
	}
	return samples
}

func TestGridRejectsInsufficientSupport(t *testing.T) {
	tests := []struct {
		name    string
		samples []models.PointSample
	}{
		{name: "none", samples: nil},
		{name: "one", samples: []models.PointSample{{X: 0, Y: 0}}},
		{name: "two", samples: []models.PointSample{{X: 0, Y: 0}, {X: 1, Y: 1}}},
		{
			name:    "collinear",
			samples: []models.PointSample{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(10, 10).Grid(tc.samples)
			if !errors.Is(err, models.ErrInsufficientSupport) {
				t.Errorf("Grid err = %v, want ErrInsufficientSupport", err)
			}
		})
	}
}

func TestGridRejectsBadShape(t *testing.T) {
	_, err := New(1, 10).Grid(lattice(4))
	if !errors.Is(err, models.ErrInvalidParameter) {
		t.Errorf("Grid err = %v, want ErrInvalidParameter", err)
	}
}

func TestGridAxesSpanSampleBounds(t *testing.T) {
	field, err := New(20, 30).Grid(lattice(10))
	if err != nil {
		t.Fatalf("Grid: %v", err)
	}
	if field.Nx != 20 || field.Ny != 30 {
		t.Fatalf("shape = %dx%d, want 20x30", field.Nx, field.Ny)
	}
	if field.X[0] != 0 || field.X[19] != 9 || field.Y[0] != 0 || field.Y[29] != 9 {
		t.Errorf("axes span [%g, %g]x[%g, %g], want [0, 9]x[0, 9]",
			field.X[0], field.X[19], field.Y[0], field.Y[29])
	}
}

func TestGridNoNaNInsideConvexHull(t *testing.T) {
	// The lattice's convex hull is its bounding box, so every grid
	// node must carry a value.
	field, err := New(50, 50).Grid(lattice(10))
	if err != nil {
		t.Fatalf("Grid: %v", err)
	}
	for i := 0; i < field.Nx; i++ {
		for j := 0; j < field.Ny; j++ {
			k := field.Idx(i, j)
			if math.IsNaN(field.Ux[k]) || math.IsNaN(field.Uy[k]) {
				t.Fatalf("NaN at node (%d, %d) inside convex hull", i, j)
			}
		}
	}
}

func TestGridReproducesLinearField(t *testing.T) {
	// ux = x is linear, so piecewise-linear interpolation is exact
	// (up to rounding) at every node.
	field, err := New(50, 50).Grid(lattice(10))
	if err != nil {
		t.Fatalf("Grid: %v", err)
	}
	for i := 0; i < field.Nx; i++ {
		for j := 0; j < field.Ny; j++ {
			k := field.Idx(i, j)
			if math.Abs(field.Ux[k]-field.X[i]) > 1e-9 {
				t.Fatalf("ux(%g, %g) = %g, want %g", field.X[i], field.Y[j], field.Ux[k], field.X[i])
			}
			if math.Abs(field.Uy[k]) > 1e-9 {
				t.Fatalf("uy(%g, %g) = %g, want 0", field.X[i], field.Y[j], field.Uy[k])
			}
		}
	}
}

func TestGridNaNOutsideConvexHull(t *testing.T) {
	// A right triangle: nodes in the opposite corner of the bounding
	// box lie outside the hull and must stay NaN.
	samples := []models.PointSample{
		{X: 0, Y: 0, Ux: 1},
		{X: 10, Y: 0, Ux: 2},
		{X: 0, Y: 10, Ux: 3},
	}
	field, err := New(11, 11).Grid(samples)
	if err != nil {
		t.Fatalf("Grid: %v", err)
	}

	// (10, 10) is far outside the triangle.
	k := field.Idx(10, 10)
	if !math.IsNaN(field.Ux[k]) {
		t.Errorf("node outside hull = %g, want NaN", field.Ux[k])
	}
	// The centroid region is inside.
	k = field.Idx(3, 3)
	if math.IsNaN(field.Ux[k]) {
		t.Errorf("node inside hull is NaN, want a value")
	}
}

func TestGridDoesNotMutateInput(t *testing.T) {
	samples := lattice(5)
	orig := make([]models.PointSample, len(samples))
	copy(orig, samples)

	if _, err := New(10, 10).Grid(samples); err != nil {
		t.Fatalf("Grid: %v", err)
	}
	for i := range samples {
		if samples[i] != orig[i] {
			t.Fatalf("input sample %d mutated", i)
		}
	}
}
