package model

import "sync"

// GridToPool returns a grid to the pool for reuse. The caller must be done
// with the grid: no stepper, renderer or history may still read it.
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles generation buffers between steps
type GridPool struct {
	pool sync.Pool
}

// NewGridPool creates an empty pool
func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get retrieves an all-dead grid of the given dimensions from the pool
func (p *GridPool) Get(width, height int) *Grid {
	g := p.pool.Get().(*Grid)
	g.reset(width, height)
	return g
}

// Put hands a grid back to the pool
func (p *GridPool) Put(g *Grid) {
	p.pool.Put(g)
}

// allocGrid takes a buffer from pool when one is configured
func allocGrid(pool *GridPool, width, height int) *Grid {
	if pool == nil {
		return newGrid(width, height)
	}
	return pool.Get(width, height)
}

// reset resizes the grid and clears every cell
func (g *Grid) reset(width, height int) {
	g.width = width
	g.height = height

	if len(g.cells) != height {
		g.cells = make([][]bool, height)
	}
	for i := range g.cells {
		if len(g.cells[i]) != width {
			g.cells[i] = make([]bool, width)
			continue
		}
		for j := range g.cells[i] {
			g.cells[i][j] = false
		}
	}
}
