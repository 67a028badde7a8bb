package models

import "math"

// PointSample is one scattered velocity observation from a solver
// slice: a planar position and the in-plane velocity there. Samples
// carry no grid structure and may contain duplicates or noise.
type PointSample struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	Ux float64 `json:"ux"`
	Uy float64 `json:"uy"`
}

// Bounds returns the inclusive bounding box of a sample set.
// Callers must not pass an empty slice.
func Bounds(samples []PointSample) (minX, maxX, minY, maxY float64) {
	minX, maxX = samples[0].X, samples[0].X
	minY, maxY = samples[0].Y, samples[0].Y
	for _, s := range samples[1:] {
		minX = math.Min(minX, s.X)
		maxX = math.Max(maxX, s.X)
		minY = math.Min(minY, s.Y)
		maxY = math.Max(maxY, s.Y)
	}
	return
}

// HasInterpolationSupport reports whether the set spans a 2-D domain:
// at least three points not all on one line. Anything less cannot be
// triangulated and the configuration must be rejected.
func HasInterpolationSupport(samples []PointSample) bool {
	if len(samples) < 3 {
		return false
	}
	a := samples[0]
	// find a second point distinct from the first
	var b PointSample
	found := false
	for _, s := range samples[1:] {
		if s.X != a.X || s.Y != a.Y {
			b = s
			found = true
			break
		}
	}
	if !found {
		return false
	}
	// any third point off the a-b line gives nonzero cross product
	for _, c := range samples {
		cross := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
		if math.Abs(cross) > 1e-12 {
			return true
		}
	}
	return false
}
