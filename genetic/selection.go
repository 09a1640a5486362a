package genetic

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// SelectionMethod picks one parent from a population.
type SelectionMethod interface {
	Select(rng *rand.Rand, population []Individual) (Individual, error)
}

// RouletteWheelSelection samples an individual with probability proportional
// to its fitness, with replacement.
type RouletteWheelSelection struct{}

// Select draws one individual. Fitness values must be finite and
// non-negative, and at least one must be positive.
func (RouletteWheelSelection) Select(rng *rand.Rand, population []Individual) (Individual, error) {
	if len(population) == 0 {
		return nil, ErrEmptyPopulation
	}

	weights := make([]float64, len(population))
	var total float64
	for i, individual := range population {
		f := float64(individual.Fitness())
		if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("individual %d has fitness %v: %w", i, f, ErrInvalidFitness)
		}
		weights[i] = f
		total += f
	}
	if total == 0 {
		return nil, ErrZeroFitness
	}

	wheel := distuv.NewCategorical(weights, rng)
	return population[int(wheel.Rand())], nil
}
