package rules

const (
	// BirthNeighbors is the exact neighbor count that brings a dead cell to life.
	BirthNeighbors = 3
	// SurvivalNeighbors is the extra neighbor count, besides BirthNeighbors, that keeps a live cell alive.
	SurvivalNeighbors = 2
)

/*
ApplyConwayRules applies Conway's B3/S23 rule to a single cell.

A cell is alive in the next generation when it has exactly 3 live neighbors,
or when it is already alive and has exactly 2.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return neighbors == BirthNeighbors || (alive && neighbors == SurvivalNeighbors)
}
