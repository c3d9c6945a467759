package model

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-torus/rules"
	"github.com/sheikhrachel/go-torus/utils"
)

// Step computes the next generation sequentially. The input grid is only
// read; the result is a freshly allocated grid.
func Step(g *Grid) *Grid {
	next := newGrid(g.width, g.height)
	stepRows(g, next, 0, g.height)
	return next
}

// stepRows fills rows [startRow, endRow) of next from g
func stepRows(g, next *Grid, startRow, endRow int) {
	for y := startRow; y < endRow; y++ {
		for x := range g.width {
			next.cells[y][x] = rules.ApplyConwayRules(CountLiveNeighbors(g, x, y), g.cells[y][x])
		}
	}
}

// StepParallel calculates the next generation with rows split into bands,
// one goroutine per band. workers <= 0 means runtime.NumCPU().
func StepParallel(g *Grid, workers int, pool *GridPool) *Grid {
	next := allocGrid(pool, g.width, g.height)

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	var (
		eg          errgroup.Group
		rowsPerBand = (g.height + workers - 1) / workers // Ceiling division
	)

	for i := range workers {
		var (
			startRow = i * rowsPerBand
			endRow   = min(startRow+rowsPerBand, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			stepRows(g, next, startRow, endRow)
			return nil
		})
	}

	// bands never fail; Wait is the barrier before next is visible
	_ = eg.Wait()

	return next
}

// StepBounded calculates the next generation only around live cells: the
// bounding box of the population plus a one-cell margin that wraps across
// the edges. Every cell outside that region has no live neighbor and stays
// dead.
func StepBounded(g *Grid, pool *GridPool) *Grid {
	next := allocGrid(pool, g.width, g.height)

	b, ok := g.activeBounds()
	if !ok {
		return next
	}

	xs := marginRange(b.minX, b.maxX, g.width)
	ys := marginRange(b.minY, b.maxY, g.height)
	for _, y := range ys {
		for _, x := range xs {
			next.cells[y][x] = rules.ApplyConwayRules(CountLiveNeighbors(g, x, y), g.cells[y][x])
		}
	}
	return next
}

type bounds struct {
	minX, maxX, minY, maxY int
}

// activeBounds calculates the bounding box of living cells
func (g *Grid) activeBounds() (b bounds, ok bool) {
	for y := range g.height {
		for x := range g.width {
			if !g.cells[y][x] {
				continue
			}
			if !ok {
				b = bounds{minX: x, maxX: x, minY: y, maxY: y}
				ok = true
				continue
			}
			b.minX = min(b.minX, x)
			b.maxX = max(b.maxX, x)
			b.minY = min(b.minY, y)
			b.maxY = max(b.maxY, y)
		}
	}
	return b, ok
}

// GetBoundingBoxSize returns the number of cells in the active region
func (g *Grid) GetBoundingBoxSize() int {
	b, ok := g.activeBounds()
	if !ok {
		return 0
	}
	return (b.maxX - b.minX + 1) * (b.maxY - b.minY + 1)
}

// marginRange lists the wrapped indices in [lo-1, hi+1], or the whole axis
// when the margin already covers it
func marginRange(lo, hi, n int) []int {
	span := hi - lo + 3
	if span >= n {
		span, lo = n, 1
	}
	out := make([]int, span)
	for i := range out {
		out[i] = wrap(lo-1+i, n)
	}
	return out
}

// Stepper advances generations using the strategy chosen in the config.
// Every strategy yields the same grid for the same input.
type Stepper struct {
	parallel bool
	bounded  bool
	workers  int
	pool     *GridPool
}

// NewStepper builds a Stepper from config; pool may be nil
func NewStepper(config utils.Config, pool *GridPool) *Stepper {
	return &Stepper{
		parallel: config.UseParallel,
		bounded:  config.UseBoundedGrid,
		workers:  config.Workers,
		pool:     pool,
	}
}

// Next calculates the next generation based on configuration
func (s *Stepper) Next(g *Grid) *Grid {
	switch {
	case s.bounded:
		return StepBounded(g, s.pool)
	case s.parallel:
		return StepParallel(g, s.workers, s.pool)
	default:
		if s.pool == nil {
			return Step(g)
		}
		next := s.pool.Get(g.width, g.height)
		stepRows(g, next, 0, g.height)
		return next
	}
}
