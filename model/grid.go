package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

// Grid is a fixed-size toroidal board of boolean cells.
//
// A Grid is treated as immutable once it has been handed to a stepper or a
// renderer: stepping always produces a new Grid. SetCell exists only for the
// edit phase before the first step.
type Grid struct {
	width  int
	height int
	cells  [][]bool // indexed [y][x]
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] width: %d, height: %d", width, height)
	}
	return newGrid(width, height), nil
}

// newGrid allocates without validation; callers already hold valid dimensions.
func newGrid(width, height int) *Grid {
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Dimensions returns the width and height of the grid
func (g *Grid) Dimensions() (int, int) {
	return g.width, g.height
}

// wrap normalizes v into [0, n)
func wrap(v, n int) int {
	return ((v % n) + n) % n
}

// Get returns the state of a cell. Any integer coordinate is accepted and
// wrapped onto the torus.
func (g *Grid) Get(x, y int) bool {
	return g.cells[wrap(y, g.height)][wrap(x, g.width)]
}

// SetCell sets the wrapped cell in place. Only valid while editing a grid
// that no stepper or renderer has seen yet.
func (g *Grid) SetCell(x, y int, alive bool) {
	g.cells[wrap(y, g.height)][wrap(x, g.width)] = alive
}

// WithCell returns a copy of the grid with the wrapped cell set to alive
func (g *Grid) WithCell(x, y int, alive bool) *Grid {
	next := g.Clone()
	next.SetCell(x, y, alive)
	return next
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	next := newGrid(g.width, g.height)
	for y := range g.height {
		copy(next.cells[y], g.cells[y])
	}
	return next
}

// Each calls fn for every cell in row-major order. fn must not retain or
// modify the grid.
func (g *Grid) Each(fn func(x, y int, alive bool)) {
	for y := range g.height {
		for x := range g.width {
			fn(x, y, g.cells[y][x])
		}
	}
}

// Equal reports whether both grids have the same dimensions and cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}

// GetGridHash returns an MD5 hash of the grid state, dimensions included
func (g *Grid) GetGridHash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", g.width, g.height)
	row := make([]byte, g.width)
	for y := range g.height {
		for x := range g.width {
			row[x] = 0
			if g.cells[y][x] {
				row[x] = 1
			}
		}
		h.Write(row)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
