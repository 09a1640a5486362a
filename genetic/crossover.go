package genetic

import (
	"fmt"
	"math/rand/v2"
)

// CrossoverMethod combines two parents into one child chromosome.
type CrossoverMethod interface {
	Crossover(rng *rand.Rand, parentA, parentB *Chromosome) (Chromosome, error)
}

// UniformCrossover takes every gene from either parent with equal
// probability, one fair coin flip per gene.
type UniformCrossover struct{}

// Crossover requires parents of equal length.
func (UniformCrossover) Crossover(rng *rand.Rand, parentA, parentB *Chromosome) (Chromosome, error) {
	if parentA.Len() != parentB.Len() {
		return Chromosome{}, fmt.Errorf("parents have %d and %d genes: %w",
			parentA.Len(), parentB.Len(), ErrLengthMismatch)
	}

	child := make([]float32, parentA.Len())
	for i := range child {
		if coinFlip(rng) {
			child[i] = parentA.genes[i]
		} else {
			child[i] = parentB.genes[i]
		}
	}
	return NewChromosome(child), nil
}

// coinFlip returns true with probability 0.5.
func coinFlip(rng *rand.Rand) bool {
	return rng.Float64() < 0.5
}
