package genetic

import (
	"fmt"
	"math/rand/v2"
)

// MutationMethod perturbs a chromosome in place.
type MutationMethod interface {
	Mutate(rng *rand.Rand, child *Chromosome)
}

// GaussianMutation nudges genes up or down by a bounded random amount.
//
//   - chance is the probability of touching a gene: 0 leaves every gene
//     alone, 1 touches all of them.
//   - coeff is the magnitude: a touched gene moves by at most ±coeff.
type GaussianMutation struct {
	chance float64
	coeff  float32
}

// NewGaussianMutation validates chance ∈ [0,1] and coeff ≥ 0.
func NewGaussianMutation(chance, coeff float32) (GaussianMutation, error) {
	if !(chance >= 0 && chance <= 1) {
		return GaussianMutation{}, fmt.Errorf("chance %v: %w", chance, ErrInvalidChance)
	}
	if !(coeff >= 0) {
		return GaussianMutation{}, fmt.Errorf("coeff %v: %w", coeff, ErrInvalidCoeff)
	}
	return GaussianMutation{chance: float64(chance), coeff: coeff}, nil
}

// Chance returns the per-gene mutation probability.
func (m GaussianMutation) Chance() float32 { return float32(m.chance) }

// Coeff returns the mutation magnitude.
func (m GaussianMutation) Coeff() float32 { return m.coeff }

// Mutate draws a sign for every gene, touched or not, then decides whether
// to apply it.
func (m GaussianMutation) Mutate(rng *rand.Rand, child *Chromosome) {
	for i := range child.genes {
		sign := float32(-1)
		if coinFlip(rng) {
			sign = 1
		}

		if rng.Float64() < m.chance {
			child.genes[i] += sign * m.coeff * rng.Float32()
		}
	}
}
