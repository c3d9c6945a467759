package model

import "github.com/pkg/errors"

// Coordinate addresses a cell. Raw values may lie outside the grid; Normalize
// maps them onto the torus.
type Coordinate struct {
	X, Y int
}

// Normalize wraps the coordinate into [0, width) x [0, height)
func (c Coordinate) Normalize(width, height int) Coordinate {
	return Coordinate{X: wrap(c.X, width), Y: wrap(c.Y, height)}
}

// Translate returns the coordinate shifted by (dx, dy), without wrapping
func (c Coordinate) Translate(dx, dy int) Coordinate {
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

// InBounds reports whether the coordinate already lies inside the grid
func (c Coordinate) InBounds(width, height int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}

// ValidatePattern rejects patterns that name cells outside the grid.
// Patterns are authored against known dimensions, so they are not wrapped.
func ValidatePattern(width, height int, pattern []Coordinate) error {
	for i, c := range pattern {
		if !c.InBounds(width, height) {
			return errors.Wrapf(ErrPatternOutOfBounds,
				"[ValidatePattern] coordinate %d (%d, %d) outside %dx%d grid", i, c.X, c.Y, width, height)
		}
	}
	return nil
}
