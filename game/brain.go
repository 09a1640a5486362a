package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/pthm-cable/forage/genetic"
	"github.com/pthm-cable/forage/neural"
)

// Brain wraps an animal's network. Its topology is fixed by the sensor's
// cell count: cells inputs, one hidden layer of 2*cells, and 2*cells
// outputs of which only the first two steer the animal.
type Brain struct {
	nn *neural.Network
}

// Topology returns the network shape for a sensor with the given cells.
func Topology(cells int) []neural.LayerTopology {
	return []neural.LayerTopology{
		{Neurons: cells},
		{Neurons: 2 * cells},
		{Neurons: 2 * cells},
	}
}

// RandomBrain builds a brain with uniformly random weights.
func RandomBrain(rng *rand.Rand, cells int) (*Brain, error) {
	nn, err := neural.Random(rng, Topology(cells))
	if err != nil {
		return nil, fmt.Errorf("random brain: %w", err)
	}
	return &Brain{nn: nn}, nil
}

// BrainFromChromosome decodes a chromosome into a brain, taking ownership
// of its genes. The gene count must match the topology exactly.
func BrainFromChromosome(chromosome genetic.Chromosome, cells int) (*Brain, error) {
	nn, err := neural.FromWeights(Topology(cells), chromosome.IntoGenes())
	if err != nil {
		return nil, fmt.Errorf("decoding brain: %w", err)
	}
	return &Brain{nn: nn}, nil
}

// Chromosome encodes the brain's weights in canonical order.
func (b *Brain) Chromosome() genetic.Chromosome {
	return genetic.NewChromosome(b.nn.Weights())
}

// Propagate runs the network on a vision vector and returns the raw
// speed and rotation deltas, unclamped.
func (b *Brain) Propagate(vision []float32) (speedDelta, rotationDelta float32, err error) {
	out, err := b.nn.Propagate(vision)
	if err != nil {
		return 0, 0, err
	}
	return out[0], out[1], nil
}

// Network exposes the underlying network.
func (b *Brain) Network() *neural.Network {
	return b.nn
}
