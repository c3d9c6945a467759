package model

// CountLiveNeighbors counts the live cells in the Moore neighborhood of (x, y).
//
// Every lookup wraps independently per axis, so on a grid that is one cell
// wide or tall the same cell can be counted more than once.
func CountLiveNeighbors(g *Grid, x, y int) int {
	// wrap before offsetting so x+dx cannot overflow
	x, y = wrap(x, g.width), wrap(y, g.height)
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.Get(x+dx, y+dy) {
				count++
			}
		}
	}
	return count
}
