package resample

import (
	"fmt"

	"windcrop/models"
)

// Incident synthesizes the undisturbed-inflow reference channel for a
// configuration: a uniform wind of the given speed blowing along the
// global +x axis (heading 0° is a fixed assumption of the upstream
// case setup, not a parameter — changing it would silently re-label
// every downstream sample), decomposed onto the same local axes the
// crop was taken in and broadcast over the output resolution.
//
// With the counter-clockwise-positive convention of LocalFrame this is
// ux_local = speed·cosθ, uy_local = −speed·sinθ; the vector norm stays
// speed for every angle.
func Incident(speed float64, frame models.LocalFrame, nx, ny int) (*models.IncidentField, error) {
	if speed < 0 {
		return nil, fmt.Errorf("%w: negative inflow speed %g", models.ErrInvalidParameter, speed)
	}
	if nx <= 0 || ny <= 0 {
		return nil, fmt.Errorf("%w: incident resolution %dx%d", models.ErrInvalidParameter, nx, ny)
	}

	uxLocal, uyLocal := frame.RotateToLocal(speed, 0)
	return models.NewIncidentField(nx, ny, uxLocal, uyLocal), nil
}
