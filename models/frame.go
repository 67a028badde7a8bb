package models

import "math"

// DegToRad converts degrees to radians.
func DegToRad(angle float64) float64 {
	return angle * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(angle float64) float64 {
	return angle * 180 / math.Pi
}

// LocalFrame is a rigid transform from the global simulation frame to
// a frame centred on an object and rotated by its heading.
//
// Sign conventions (kept consistent with the geometry rotation applied
// upstream when the case was meshed, so a crop at any heading shows
// the object in the same canonical pose):
//   - angles are counter-clockwise-positive, degrees at every interface;
//   - ToGlobal is the forward transform local→global:
//     xg = cosθ·xl − sinθ·yl + cx,  yg = sinθ·xl + cosθ·yl + cy;
//   - a constant global vector decomposed onto the local axes picks up
//     the inverse rotation (see resample.Incident).
type LocalFrame struct {
	CenterX  float64
	CenterY  float64
	AngleDeg float64

	sin, cos float64
}

// NewLocalFrame builds a frame at (cx, cy) rotated by angleDeg.
func NewLocalFrame(cx, cy, angleDeg float64) LocalFrame {
	rad := DegToRad(angleDeg)
	return LocalFrame{
		CenterX:  cx,
		CenterY:  cy,
		AngleDeg: angleDeg,
		sin:      math.Sin(rad),
		cos:      math.Cos(rad),
	}
}

// ToGlobal maps a local (object-relative) position into the global frame.
func (fr LocalFrame) ToGlobal(xl, yl float64) (xg, yg float64) {
	xg = fr.cos*xl - fr.sin*yl + fr.CenterX
	yg = fr.sin*xl + fr.cos*yl + fr.CenterY
	return
}

// RotateToLocal expresses a global-frame vector on the local axes
// (inverse rotation, no translation — vectors have no origin).
func (fr LocalFrame) RotateToLocal(vx, vy float64) (lx, ly float64) {
	lx = fr.cos*vx + fr.sin*vy
	ly = -fr.sin*vx + fr.cos*vy
	return
}
