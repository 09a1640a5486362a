package genetic

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Statistics summarizes the fitness of one evaluated generation.
type Statistics struct {
	Size       int
	MinFitness float32
	MaxFitness float32
	AvgFitness float32
}

// NewStatistics computes fitness statistics over population.
// An empty population yields zero statistics.
func NewStatistics[I Individual](population []I) Statistics {
	if len(population) == 0 {
		return Statistics{}
	}

	fitness := make([]float64, len(population))
	for i, individual := range population {
		fitness[i] = float64(individual.Fitness())
	}

	return Statistics{
		Size:       len(population),
		MinFitness: float32(floats.Min(fitness)),
		MaxFitness: float32(floats.Max(fitness)),
		AvgFitness: float32(stat.Mean(fitness, nil)),
	}
}
