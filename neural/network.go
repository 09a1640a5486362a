// Package neural provides the fixed-topology feed-forward networks used as
// animal brains, with a flat weight encoding for the genetic layer.
package neural

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

var (
	// ErrInvalidTopology is returned for fewer than two layers or a
	// non-positive neuron count.
	ErrInvalidTopology = errors.New("neural: invalid topology")
	// ErrInputSize is returned when the input vector does not match the
	// first layer.
	ErrInputSize = errors.New("neural: input size mismatch")
	// ErrInsufficientWeights is returned when a flat weight sequence runs
	// out before the topology is filled.
	ErrInsufficientWeights = errors.New("neural: not enough weights for topology")
	// ErrExcessWeights is returned when values remain after the topology is
	// filled.
	ErrExcessWeights = errors.New("neural: too many weights for topology")
)

// LayerTopology is the neuron count of one layer. The first entry of a
// topology is the input size.
type LayerTopology struct {
	Neurons int
}

// Network is an ordered list of ReLU layers. Layer i's output size equals
// layer i+1's input size.
type Network struct {
	layers []Layer
}

// NewNetwork assembles a network from prebuilt layers and checks that
// adjacent layers line up.
func NewNetwork(layers []Layer) (*Network, error) {
	if len(layers) == 0 {
		return nil, fmt.Errorf("no layers: %w", ErrInvalidTopology)
	}
	for i, l := range layers {
		if l.OutputSize() == 0 {
			return nil, fmt.Errorf("layer %d has no neurons: %w", i, ErrInvalidTopology)
		}
		in := l.InputSize()
		for j := range l.Neurons {
			if len(l.Neurons[j].Weights) != in {
				return nil, fmt.Errorf("layer %d neuron %d has %d weights, want %d: %w",
					i, j, len(l.Neurons[j].Weights), in, ErrInvalidTopology)
			}
		}
		if i > 0 && layers[i-1].OutputSize() != in {
			return nil, fmt.Errorf("layer %d reads %d inputs but layer %d emits %d: %w",
				i, in, i-1, layers[i-1].OutputSize(), ErrInvalidTopology)
		}
	}
	return &Network{layers: layers}, nil
}

// Random builds a network for topology with every bias and weight drawn
// uniformly from [-1, 1).
func Random(rng *rand.Rand, topology []LayerTopology) (*Network, error) {
	if err := validateTopology(topology); err != nil {
		return nil, err
	}

	layers := make([]Layer, 0, len(topology)-1)
	for i := 1; i < len(topology); i++ {
		layers = append(layers, randomLayer(rng, topology[i-1].Neurons, topology[i].Neurons))
	}
	return &Network{layers: layers}, nil
}

// FromWeights rebuilds a network from its flat encoding (see Weights).
// The sequence must hold exactly WeightCount(topology) values.
func FromWeights(topology []LayerTopology, weights []float32) (*Network, error) {
	if err := validateTopology(topology); err != nil {
		return nil, err
	}
	want := WeightCount(topology)
	if len(weights) < want {
		return nil, fmt.Errorf("got %d, want %d: %w", len(weights), want, ErrInsufficientWeights)
	}
	if len(weights) > want {
		return nil, fmt.Errorf("got %d, want %d: %w", len(weights), want, ErrExcessWeights)
	}

	next := 0
	take := func() float32 {
		w := weights[next]
		next++
		return w
	}

	layers := make([]Layer, 0, len(topology)-1)
	for i := 1; i < len(topology); i++ {
		inputSize := topology[i-1].Neurons
		l := Layer{Neurons: make([]Neuron, topology[i].Neurons)}
		for j := range l.Neurons {
			n := Neuron{Bias: take(), Weights: make([]float32, inputSize)}
			for k := range n.Weights {
				n.Weights[k] = take()
			}
			l.Neurons[j] = n
		}
		layers = append(layers, l)
	}
	return &Network{layers: layers}, nil
}

// WeightCount is the length of the flat encoding of topology: the sum over
// layers of neurons * (1 + input size).
func WeightCount(topology []LayerTopology) int {
	count := 0
	for i := 1; i < len(topology); i++ {
		count += topology[i].Neurons * (1 + topology[i-1].Neurons)
	}
	return count
}

func validateTopology(topology []LayerTopology) error {
	if len(topology) < 2 {
		return fmt.Errorf("%d layers, need at least 2: %w", len(topology), ErrInvalidTopology)
	}
	for i, t := range topology {
		if t.Neurons <= 0 {
			return fmt.Errorf("layer %d has %d neurons: %w", i, t.Neurons, ErrInvalidTopology)
		}
	}
	return nil
}

// Propagate feeds inputs through every layer and returns the last layer's
// activations.
func (nn *Network) Propagate(inputs []float32) ([]float32, error) {
	if want := nn.InputSize(); len(inputs) != want {
		return nil, fmt.Errorf("got %d inputs, want %d: %w", len(inputs), want, ErrInputSize)
	}
	for i := range nn.layers {
		inputs = nn.layers[i].propagate(inputs)
	}
	return inputs, nil
}

// Weights flattens the network layer by layer, neuron by neuron, bias first
// then weights. FromWeights is its inverse.
func (nn *Network) Weights() []float32 {
	flat := make([]float32, 0, WeightCount(nn.Topology()))
	for i := range nn.layers {
		for j := range nn.layers[i].Neurons {
			n := &nn.layers[i].Neurons[j]
			flat = append(flat, n.Bias)
			flat = append(flat, n.Weights...)
		}
	}
	return flat
}

// Topology reports the shape the network was built from.
func (nn *Network) Topology() []LayerTopology {
	topology := make([]LayerTopology, 0, len(nn.layers)+1)
	topology = append(topology, LayerTopology{Neurons: nn.InputSize()})
	for i := range nn.layers {
		topology = append(topology, LayerTopology{Neurons: nn.layers[i].OutputSize()})
	}
	return topology
}

// InputSize is the expected length of the Propagate input.
func (nn *Network) InputSize() int {
	return nn.layers[0].InputSize()
}

// OutputSize is the length of the Propagate output.
func (nn *Network) OutputSize() int {
	return nn.layers[len(nn.layers)-1].OutputSize()
}
