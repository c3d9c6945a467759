package model

import (
	"math"
	"testing"

	"github.com/pkg/errors"
)

func mustPattern(t *testing.T, width, height int, coords ...Coordinate) *Grid {
	t.Helper()
	g, err := FromPattern(width, height, coords)
	if err != nil {
		t.Fatalf("FromPattern(%d, %d): %v", width, height, err)
	}
	return g
}

// fill sets every cell alive in place
func (g *Grid) fill() *Grid {
	g.Each(func(x, y int, _ bool) { g.SetCell(x, y, true) })
	return g
}

func TestNewGridInvalidDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 5},
		{"zero height", 5, 0},
		{"negative width", -3, 5},
		{"negative height", 5, -1},
		{"both zero", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGrid(tt.width, tt.height)
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Fatalf("NewGrid(%d, %d) error = %v, want ErrInvalidDimensions", tt.width, tt.height, err)
			}
			if g != nil {
				t.Fatalf("NewGrid(%d, %d) returned a grid alongside the error", tt.width, tt.height)
			}
		})
	}
}

func TestNewGridAllDead(t *testing.T) {
	g, err := NewGrid(7, 3)
	if err != nil {
		t.Fatal(err)
	}
	if w, h := g.Dimensions(); w != 7 || h != 3 {
		t.Fatalf("Dimensions() = (%d, %d), want (7, 3)", w, h)
	}
	if n := g.CountLivingCells(); n != 0 {
		t.Fatalf("CountLivingCells() = %d, want 0", n)
	}
}

func TestGetWraps(t *testing.T) {
	g := mustPattern(t, 5, 4, Coordinate{X: 0, Y: 0}, Coordinate{X: 4, Y: 3})

	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{5, 4, true},
		{-5, -4, true},
		{10, 8, true},
		{-1, -1, true},
		{4, -1, true},
		{-1, 3, true},
		{1, 0, false},
		{-2, 0, false},
		{math.MaxInt, math.MinInt, false}, // wraps to (2, 0)
	}
	for _, tt := range tests {
		if got := g.Get(tt.x, tt.y); got != tt.want {
			t.Errorf("Get(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestExtremeCoordinatesMatchNormalized(t *testing.T) {
	extremes := []int{math.MinInt, math.MinInt + 1, -7, -1, 0, 1, 7, math.MaxInt - 1, math.MaxInt}
	grids := []*Grid{
		mustPattern(t, 3, 3, Coordinate{X: 2, Y: 1}),
		mustPattern(t, 5, 4, Coordinate{X: 0, Y: 0}, Coordinate{X: 4, Y: 3}, Coordinate{X: 2, Y: 1}),
		mustPattern(t, 7, 2, Coordinate{X: 6, Y: 0}, Coordinate{X: 1, Y: 1}),
	}
	for _, g := range grids {
		w, h := g.Dimensions()
		for _, x := range extremes {
			for _, y := range extremes {
				nx, ny := wrap(x, w), wrap(y, h)
				if got, want := g.Get(x, y), g.Get(nx, ny); got != want {
					t.Errorf("%dx%d: Get(%d, %d) = %v, want %v from (%d, %d)", w, h, x, y, got, want, nx, ny)
				}
				if got, want := CountLiveNeighbors(g, x, y), CountLiveNeighbors(g, nx, ny); got != want {
					t.Errorf("%dx%d: CountLiveNeighbors(%d, %d) = %d, want %d from (%d, %d)", w, h, x, y, got, want, nx, ny)
				}
			}
		}
	}
}

func TestCountLiveNeighborsAtMaxInt(t *testing.T) {
	// math.MaxInt % 3 == 1, so column MaxInt is column 1
	g := mustPattern(t, 3, 3, Coordinate{X: 2, Y: 1})
	if n := CountLiveNeighbors(g, math.MaxInt, 1); n != 1 {
		t.Fatalf("CountLiveNeighbors(MaxInt, 1) = %d, want 1", n)
	}
	if n := CountLiveNeighbors(g, 1, math.MaxInt); n != 1 {
		t.Fatalf("CountLiveNeighbors(1, MaxInt) = %d, want 1", n)
	}
}

func TestWithCellLeavesReceiverUntouched(t *testing.T) {
	g := mustPattern(t, 4, 4)
	next := g.WithCell(-1, 5, true)

	if g.CountLivingCells() != 0 {
		t.Fatalf("receiver was modified:\n%s", g)
	}
	if !next.Get(3, 1) {
		t.Fatalf("WithCell(-1, 5) did not set wrapped cell (3, 1):\n%s", next)
	}
	if n := next.CountLivingCells(); n != 1 {
		t.Fatalf("CountLivingCells() = %d, want 1", n)
	}

	back := next.WithCell(3, 1, false)
	if !back.Equal(g) {
		t.Fatalf("clearing the cell again should give the original grid:\n%s", back)
	}
}

func TestSetCellWraps(t *testing.T) {
	g := mustPattern(t, 3, 2)
	g.SetCell(4, -1, true)
	if !g.Get(1, 1) {
		t.Fatalf("SetCell(4, -1) should set (1, 1):\n%s", g)
	}
}

func TestEqualAndHash(t *testing.T) {
	a := mustPattern(t, 4, 4, Coordinate{X: 1, Y: 2})
	b := mustPattern(t, 4, 4, Coordinate{X: 1, Y: 2})
	c := mustPattern(t, 4, 4, Coordinate{X: 2, Y: 1})
	d := mustPattern(t, 2, 8, Coordinate{X: 1, Y: 2})

	if !a.Equal(b) || a.GetGridHash() != b.GetGridHash() {
		t.Fatal("identical grids should be equal and hash the same")
	}
	if a.Equal(c) || a.GetGridHash() == c.GetGridHash() {
		t.Fatal("different cells should not compare equal")
	}
	if a.Equal(d) || a.GetGridHash() == d.GetGridHash() {
		t.Fatal("different dimensions should not compare equal")
	}
	if a.Equal(nil) {
		t.Fatal("grid should not equal nil")
	}
}

func TestEachRowMajor(t *testing.T) {
	g := mustPattern(t, 3, 2, Coordinate{X: 2, Y: 0}, Coordinate{X: 0, Y: 1})

	var (
		visited []Coordinate
		alive   []Coordinate
	)
	g.Each(func(x, y int, a bool) {
		visited = append(visited, Coordinate{X: x, Y: y})
		if a {
			alive = append(alive, Coordinate{X: x, Y: y})
		}
	})

	if len(visited) != 6 {
		t.Fatalf("visited %d cells, want 6", len(visited))
	}
	for i, c := range visited {
		if c.X != i%3 || c.Y != i/3 {
			t.Fatalf("visit %d = %+v, want row-major order", i, c)
		}
	}
	if len(alive) != 2 || alive[0] != (Coordinate{X: 2, Y: 0}) || alive[1] != (Coordinate{X: 0, Y: 1}) {
		t.Fatalf("alive cells = %+v", alive)
	}
}

func TestString(t *testing.T) {
	g := mustPattern(t, 2, 2, Coordinate{X: 0, Y: 0}, Coordinate{X: 1, Y: 1})
	want := gridPosBlock + gridPosEmpty + "\n" + gridPosEmpty + gridPosBlock + "\n"
	if got := g.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
