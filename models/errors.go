package models

import "errors"

// Failure taxonomy for a single configuration. Both are fatal to that
// configuration only; the batch controller logs and moves on. Per-cell
// domain gaps are never errors — they are NaN cells in the output.
var (
	// ErrInsufficientSupport: too few or degenerate (collinear)
	// scattered samples to triangulate an interpolation domain.
	ErrInsufficientSupport = errors.New("insufficient scattered support")

	// ErrInvalidParameter: malformed caller configuration (negative
	// speed, non-positive crop size or resolution).
	ErrInvalidParameter = errors.New("invalid parameter")
)
