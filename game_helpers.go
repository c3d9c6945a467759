package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-torus/model"
	"github.com/sheikhrachel/go-torus/patterns"
	"github.com/sheikhrachel/go-torus/utils"
)

// buildSeeder picks the initial grid strategy named by the config
func buildSeeder(config utils.Config) (model.Seeder, error) {
	switch config.InitMode {
	case utils.InitClear:
		return model.EmptySeed{}, nil
	case utils.InitPattern:
		coords, err := patternCoords(config)
		if err != nil {
			return nil, errors.Wrap(err, "[buildSeeder]")
		}
		return model.PatternSeed{Coords: coords}, nil
	case utils.InitRandom:
		return model.RandomSeed{Seed: config.Seed, Density: config.Density}, nil
	default:
		return nil, errors.Wrapf(utils.ErrInvalidConfig, "[buildSeeder] init_mode: %q", config.InitMode)
	}
}

// patternCoords merges the named pattern and the explicit cell list, both
// shifted by the configured offset. With neither given the default seed is used.
func patternCoords(config utils.Config) ([]model.Coordinate, error) {
	var coords []model.Coordinate
	if config.PatternName != "" {
		named, err := patterns.Lookup(config.PatternName)
		if err != nil {
			return nil, err
		}
		coords = append(coords, named...)
	}
	for _, p := range config.Pattern {
		coords = append(coords, model.Coordinate{X: p[0], Y: p[1]})
	}
	if len(coords) == 0 {
		coords = patterns.Default
	}
	return patterns.Translate(coords, config.OffsetX, config.OffsetY), nil
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (
	*model.Grid,
	*model.Stepper,
	*model.GridPool,
	error,
) {
	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	seeder, err := buildSeeder(config)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "[initializeGame]")
	}
	grid, err := seeder.Build(config.Width, config.Height)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "[initializeGame]")
	}

	return grid, model.NewStepper(config, pool), pool, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, grid *model.Grid) {
	fmt.Printf("Init: %s | Memory Pool: %v | Bounded: %v | Parallel: %v\n",
		config.InitMode, config.UseMemoryPool, config.UseBoundedGrid, config.UseParallel)
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		grid.GetWidth(), grid.GetHeight(), grid.CountLivingCells())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// updateGameState records a freshly computed generation and returns its status
func updateGameState(
	grid *model.Grid,
	generation int,
	frameDuration time.Duration,
	history *model.History,
	stats *utils.Stats,
) (int, float64, string, bool) {
	livingCells := grid.CountLivingCells()
	density := float64(livingCells) / float64(grid.GetWidth()*grid.GetHeight()) * 100

	stats.Update(generation, livingCells, frameDuration)
	history.Observe(grid)
	isStagnant := history.IsStagnant()

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	generation, livingCells int,
	density float64,
	status string,
	config utils.Config,
	grid *model.Grid,
) {
	fmt.Println(formatGameStatus(generation, livingCells, density, status, config, grid))
}

// formatGameStatus builds the per-generation status line
func formatGameStatus(
	generation, livingCells int,
	density float64,
	status string,
	config utils.Config,
	grid *model.Grid,
) string {
	// Show bounding box info for bounded grids
	boundingInfo := ""
	if config.UseBoundedGrid {
		boundingInfo = fmt.Sprintf(" | Bounding box: %d cells", grid.GetBoundingBoxSize())
	}

	return fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s%s",
		generation, livingCells, density, status, boundingInfo)
}

// checkStopConditions determines if the run should end
func checkStopConditions(
	livingCells, stagnantCount, generation int,
	config utils.Config,
) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
		return true, fmt.Sprintf("maximum generations limit (%d)", config.MaxGenerations)
	}
	return false, ""
}

// displayFinalStats prints the summary of a run
func displayFinalStats(generation int, stats *utils.Stats) {
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		generation, stats.Elapsed().Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}
