package utils

import "time"

// Stats tracks run performance
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time

	samples int
}

// NewStats starts the run clock
func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one generation that took duration to compute
func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Exponential moving average for population
	if s.samples == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
	s.samples++
}

// Elapsed returns the time since the stats were created
func (s *Stats) Elapsed() time.Duration {
	return time.Since(s.StartTime)
}
