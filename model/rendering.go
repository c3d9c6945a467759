package model

import "strings"

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "
)

// String renders the grid as text rows, two runes per cell. It is meant for
// debugging output and test failure messages.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.height * (g.width*len(gridPosBlock) + 1))
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				b.WriteString(gridPosBlock)
			} else {
				b.WriteString(gridPosEmpty)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
