package models

import (
	"math"
	"testing"
)

func TestLocalFrameToGlobal(t *testing.T) {
	tests := []struct {
		name   string
		cx, cy float64
		angle  float64
		xl, yl float64
		wantX  float64
		wantY  float64
	}{
		{name: "identity", cx: 0, cy: 0, angle: 0, xl: 1, yl: 2, wantX: 1, wantY: 2},
		{name: "translation only", cx: 10, cy: -5, angle: 0, xl: 1, yl: 2, wantX: 11, wantY: -3},
		{name: "90deg ccw", cx: 0, cy: 0, angle: 90, xl: 1, yl: 0, wantX: 0, wantY: 1},
		{name: "90deg ccw y axis", cx: 0, cy: 0, angle: 90, xl: 0, yl: 1, wantX: -1, wantY: 0},
		{name: "180deg", cx: 0, cy: 0, angle: 180, xl: 1, yl: 2, wantX: -1, wantY: -2},
		{name: "rotate then translate", cx: 5, cy: 5, angle: 90, xl: 1, yl: 0, wantX: 5, wantY: 6},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fr := NewLocalFrame(tc.cx, tc.cy, tc.angle)
			xg, yg := fr.ToGlobal(tc.xl, tc.yl)
			if math.Abs(xg-tc.wantX) > 1e-12 || math.Abs(yg-tc.wantY) > 1e-12 {
				t.Errorf("ToGlobal(%g, %g) = (%g, %g), want (%g, %g)",
					tc.xl, tc.yl, xg, yg, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestRotateToLocalInvertsToGlobal(t *testing.T) {
	// Rotating a vector to local axes then applying the forward
	// transform (minus translation) must give the vector back.
	for _, angle := range []float64{0, 17.5, 90, 133, 270, 359} {
		fr := NewLocalFrame(0, 0, angle)
		vx, vy := 3.0, -4.0
		lx, ly := fr.RotateToLocal(vx, vy)
		gx, gy := fr.ToGlobal(lx, ly)
		if math.Abs(gx-vx) > 1e-12 || math.Abs(gy-vy) > 1e-12 {
			t.Errorf("angle %g: round trip (%g, %g) → (%g, %g)", angle, vx, vy, gx, gy)
		}
	}
}

func TestRotateToLocalPreservesNorm(t *testing.T) {
	for angle := 0.0; angle < 360; angle += 30 {
		fr := NewLocalFrame(0, 0, angle)
		lx, ly := fr.RotateToLocal(5, 0)
		norm := math.Hypot(lx, ly)
		if math.Abs(norm-5) > 1e-12 {
			t.Errorf("angle %g: |rotated| = %g, want 5", angle, norm)
		}
	}
}

func TestDegRadConversion(t *testing.T) {
	if got := DegToRad(180); math.Abs(got-math.Pi) > 1e-15 {
		t.Errorf("DegToRad(180) = %g", got)
	}
	if got := RadToDeg(math.Pi / 2); math.Abs(got-90) > 1e-12 {
		t.Errorf("RadToDeg(π/2) = %g", got)
	}
}
