package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimensions is returned when a grid is requested with a non-positive width or height.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrPatternOutOfBounds is returned when a seed pattern names a cell outside the target grid.
	ErrPatternOutOfBounds = errors.New("pattern coordinate out of bounds")
	// ErrInvalidDensity is returned when a random fill density falls outside [0, 1].
	ErrInvalidDensity = errors.New("random fill density out of range")
)
