package model

import (
	"math/rand/v2"

	"github.com/pkg/errors"
)

// DefaultDensity is the per-cell probability RandomFill uses
const DefaultDensity = 0.5

// Seeder produces the first generation of a run
type Seeder interface {
	Build(width, height int) (*Grid, error)
}

// EmptySeed starts from an all-dead grid
type EmptySeed struct{}

// Build returns an all-dead grid
func (EmptySeed) Build(width, height int) (*Grid, error) {
	return Clear(width, height)
}

// PatternSeed starts from an explicit list of live cells
type PatternSeed struct {
	Coords []Coordinate
}

// Build places Coords on a cleared grid; see FromPattern
func (s PatternSeed) Build(width, height int) (*Grid, error) {
	return FromPattern(width, height, s.Coords)
}

// RandomSeed starts from a deterministic random fill with per-cell
// probability Density.
type RandomSeed struct {
	Seed    int64
	Density float64
}

// Build fills the grid with RandomFillDensity. Density is used as given, so
// zero yields an empty grid.
func (s RandomSeed) Build(width, height int) (*Grid, error) {
	return RandomFillDensity(width, height, s.Seed, s.Density)
}

// Clear returns an all-dead grid
func Clear(width, height int) (*Grid, error) {
	g, err := NewGrid(width, height)
	if err != nil {
		return nil, errors.Wrap(err, "[Clear]")
	}
	return g, nil
}

// FromPattern returns a grid with exactly the pattern's cells alive.
// Duplicate coordinates are allowed.
func FromPattern(width, height int, pattern []Coordinate) (*Grid, error) {
	g, err := NewGrid(width, height)
	if err != nil {
		return nil, errors.Wrap(err, "[FromPattern]")
	}
	if err = ValidatePattern(width, height, pattern); err != nil {
		return nil, errors.Wrap(err, "[FromPattern]")
	}
	for _, c := range pattern {
		g.cells[c.Y][c.X] = true
	}
	return g, nil
}

// RandomFill fills every cell with probability one half. See RandomFillDensity.
func RandomFill(width, height int, seed int64) (*Grid, error) {
	return RandomFillDensity(width, height, seed, DefaultDensity)
}

// RandomFillDensity sets each cell alive with probability density. Cells are
// drawn in row-major order (y outer, x inner) from a PCG generator seeded
// with (seed, 0), one Float64 per cell, so a seed reproduces the same grid on
// every platform.
func RandomFillDensity(width, height int, seed int64, density float64) (*Grid, error) {
	if density < 0 || density > 1 {
		return nil, errors.Wrapf(ErrInvalidDensity, "[RandomFillDensity] density: %v", density)
	}
	g, err := NewGrid(width, height)
	if err != nil {
		return nil, errors.Wrap(err, "[RandomFillDensity]")
	}
	r := rand.New(rand.NewPCG(uint64(seed), 0))
	for y := range height {
		for x := range width {
			g.cells[y][x] = r.Float64() < density
		}
	}
	return g, nil
}
