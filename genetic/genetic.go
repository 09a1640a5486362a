package genetic

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

var (
	// ErrEmptyPopulation is returned when selecting from or evolving an empty population.
	ErrEmptyPopulation = errors.New("genetic: empty population")
	// ErrInvalidFitness is returned when a fitness value is negative or not finite.
	ErrInvalidFitness = errors.New("genetic: fitness must be finite and non-negative")
	// ErrZeroFitness is returned when every individual has zero fitness,
	// leaving roulette-wheel weights undefined.
	ErrZeroFitness = errors.New("genetic: total fitness is zero")
	// ErrLengthMismatch is returned when crossing parents of different length.
	ErrLengthMismatch = errors.New("genetic: chromosome length mismatch")
	// ErrInvalidChance is returned for a mutation chance outside [0,1].
	ErrInvalidChance = errors.New("genetic: mutation chance must be in [0,1]")
	// ErrInvalidCoeff is returned for a negative mutation coefficient.
	ErrInvalidCoeff = errors.New("genetic: mutation coeff must be non-negative")
)

// GeneticAlgorithm breeds a new generation from an evaluated one.
// Selection, crossover and mutation are pluggable; the algorithm only talks
// to them through their interfaces.
type GeneticAlgorithm[I Individual] struct {
	selection SelectionMethod
	crossover CrossoverMethod
	mutation  MutationMethod
	create    Factory[I]
}

// New returns a genetic algorithm that materializes offspring with create.
func New[I Individual](
	create Factory[I],
	selection SelectionMethod,
	crossover CrossoverMethod,
	mutation MutationMethod,
) *GeneticAlgorithm[I] {
	return &GeneticAlgorithm[I]{
		selection: selection,
		crossover: crossover,
		mutation:  mutation,
		create:    create,
	}
}

// Evolve returns a new population of the same size. Every slot draws two
// parents independently (the same individual may be both), crosses them
// over and mutates the child. The input population is left untouched and
// nobody survives unchanged.
//
// The returned Statistics describe the input population.
func (ga *GeneticAlgorithm[I]) Evolve(rng *rand.Rand, population []I) ([]I, Statistics, error) {
	if len(population) == 0 {
		return nil, Statistics{}, ErrEmptyPopulation
	}

	pool := make([]Individual, len(population))
	for i, individual := range population {
		pool[i] = individual
	}

	offspring := make([]I, 0, len(population))
	for slot := range population {
		parentA, err := ga.selection.Select(rng, pool)
		if err != nil {
			return nil, Statistics{}, fmt.Errorf("slot %d: selecting first parent: %w", slot, err)
		}
		parentB, err := ga.selection.Select(rng, pool)
		if err != nil {
			return nil, Statistics{}, fmt.Errorf("slot %d: selecting second parent: %w", slot, err)
		}

		child, err := ga.crossover.Crossover(rng, parentA.Chromosome(), parentB.Chromosome())
		if err != nil {
			return nil, Statistics{}, fmt.Errorf("slot %d: crossover: %w", slot, err)
		}
		ga.mutation.Mutate(rng, &child)

		offspring = append(offspring, ga.create(child))
	}

	return offspring, NewStatistics(pool), nil
}
