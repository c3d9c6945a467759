// Package patterns holds named seed patterns in grid coordinates, anchored at
// the origin unless noted otherwise.
package patterns

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-torus/model"
)

// ErrUnknownPattern is returned by Lookup for names that are not registered
var ErrUnknownPattern = errors.New("unknown pattern")

var (
	// Block is the 2x2 still life
	Block = []model.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}

	// Blinker is the horizontal period-2 oscillator
	Blinker = []model.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}

	// Glider moves one cell down and right every four generations
	Glider = []model.Coordinate{
		{X: 1, Y: 0},
		{X: 2, Y: 1},
		{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2},
	}

	// Default is the three-point seed, already placed at absolute positions.
	// It dies out after two generations.
	Default = []model.Coordinate{{X: 2, Y: 2}, {X: 3, Y: 3}, {X: 2, Y: 4}}
)

var registry = map[string][]model.Coordinate{
	"block":   Block,
	"blinker": Blinker,
	"glider":  Glider,
	"default": Default,
}

// Lookup returns a copy of the pattern registered under name
func Lookup(name string) ([]model.Coordinate, error) {
	p, ok := registry[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "[Lookup] name: %q", name)
	}
	return Translate(p, 0, 0), nil
}

// Names lists the registered pattern names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Translate returns a new slice with every coordinate shifted by (dx, dy)
func Translate(pattern []model.Coordinate, dx, dy int) []model.Coordinate {
	out := make([]model.Coordinate, len(pattern))
	for i, c := range pattern {
		out[i] = c.Translate(dx, dy)
	}
	return out
}
