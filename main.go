package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-torus/model"
	"github.com/sheikhrachel/go-torus/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the JSON run configuration")
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		fmt.Printf("Using default configuration (%s not found)\n", *configPath)
		config = utils.DefaultConfig()
	case err != nil:
		fmt.Printf("Error loading configuration: %+v\n", err)
		os.Exit(1)
	}

	grid, stepper, pool, err := initializeGame(config)
	if err != nil {
		fmt.Printf("Error initializing game: %+v\n", err)
		os.Exit(1)
	}
	displayGameInfo(config, grid)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var (
		history       = model.NewHistory(0)
		stats         = utils.NewStats()
		generation    = 0
		stagnantCount = 0
	)
	history.Observe(grid)

loop:
	for {
		select {
		case <-sigChan:
			fmt.Println("\n🛑 Shutting down gracefully...")
			break loop
		default:
		}

		frameStart := time.Now()
		newGrid := stepper.Next(grid)
		generation++

		// the previous generation is no longer read by anyone
		model.GridToPool(grid, pool)
		grid = newGrid

		livingCells, density, status, isStagnant := updateGameState(grid, generation, time.Since(frameStart), history, stats)
		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}
		displayGameStatus(generation, livingCells, density, status, config, grid)

		if stop, reason := checkStopConditions(livingCells, stagnantCount, generation, config); stop {
			fmt.Printf("\n🏁 Stopping: %s\n", reason)
			break
		}
	}

	if config.PrintGrid {
		fmt.Print(grid.String())
	}
	displayFinalStats(generation, stats)
	model.GridToPool(grid, pool)
}
