// Package genetic implements a generational genetic algorithm over flat
// real-valued chromosomes. It knows nothing about what a chromosome encodes.
package genetic

import (
	"iter"
	"slices"

	"gonum.org/v1/gonum/floats/scalar"
)

// geneTolerance is the absolute/relative tolerance used by Chromosome.Equal.
const geneTolerance = 1e-6

// Chromosome is an ordered sequence of genes.
// A chromosome is owned by exactly one holder at a time; constructors copy
// or take ownership so two holders never share the backing slice.
type Chromosome struct {
	genes []float32
}

// NewChromosome takes ownership of genes. The caller must not keep using
// the slice afterwards.
func NewChromosome(genes []float32) Chromosome {
	return Chromosome{genes: genes}
}

// Collect builds a chromosome from any sequence of genes.
func Collect(seq iter.Seq[float32]) Chromosome {
	return Chromosome{genes: slices.Collect(seq)}
}

// Len returns the number of genes.
func (c *Chromosome) Len() int {
	return len(c.genes)
}

// At returns the gene at index i.
func (c *Chromosome) At(i int) float32 {
	return c.genes[i]
}

// Set overwrites the gene at index i.
func (c *Chromosome) Set(i int, gene float32) {
	c.genes[i] = gene
}

// All iterates over (index, gene) pairs in order.
func (c *Chromosome) All() iter.Seq2[int, float32] {
	return func(yield func(int, float32) bool) {
		for i, g := range c.genes {
			if !yield(i, g) {
				return
			}
		}
	}
}

// Genes returns a copy of the genes.
func (c *Chromosome) Genes() []float32 {
	return slices.Clone(c.genes)
}

// IntoGenes hands the backing slice over to the caller and leaves the
// chromosome empty.
func (c *Chromosome) IntoGenes() []float32 {
	genes := c.genes
	c.genes = nil
	return genes
}

// Clone returns an independent copy.
func (c *Chromosome) Clone() Chromosome {
	return Chromosome{genes: slices.Clone(c.genes)}
}

// Equal reports whether both chromosomes have the same length and every
// gene pair is approximately equal. Intended for tests and debugging.
func (c *Chromosome) Equal(other *Chromosome) bool {
	if len(c.genes) != len(other.genes) {
		return false
	}
	for i, g := range c.genes {
		if !scalar.EqualWithinAbsOrRel(float64(g), float64(other.genes[i]), geneTolerance, geneTolerance) {
			return false
		}
	}
	return true
}
