package models

import "testing"

func TestBounds(t *testing.T) {
	samples := []PointSample{
		{X: 1, Y: 5}, {X: -3, Y: 2}, {X: 7, Y: -1}, {X: 0, Y: 0},
	}
	minX, maxX, minY, maxY := Bounds(samples)
	if minX != -3 || maxX != 7 || minY != -1 || maxY != 5 {
		t.Errorf("Bounds = (%g, %g, %g, %g), want (-3, 7, -1, 5)", minX, maxX, minY, maxY)
	}
}

func TestHasInterpolationSupport(t *testing.T) {
	tests := []struct {
		name    string
		samples []PointSample
		want    bool
	}{
		{name: "empty", samples: nil, want: false},
		{name: "two points", samples: []PointSample{{X: 0, Y: 0}, {X: 1, Y: 1}}, want: false},
		{name: "triangle", samples: []PointSample{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}, want: true},
		{
			name:    "collinear",
			samples: []PointSample{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}},
			want:    false,
		},
		{
			name:    "all duplicates",
			samples: []PointSample{{X: 2, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 2}},
			want:    false,
		},
		{
			name:    "duplicates plus a spanning point",
			samples: []PointSample{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}},
			want:    true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasInterpolationSupport(tc.samples); got != tc.want {
				t.Errorf("HasInterpolationSupport = %v, want %v", got, tc.want)
			}
		})
	}
}
