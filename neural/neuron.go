package neural

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/blas/blas32"
)

// Neuron is a bias plus one weight per input.
type Neuron struct {
	Bias    float32
	Weights []float32
}

func randomNeuron(rng *rand.Rand, inputSize int) Neuron {
	n := Neuron{
		Bias:    uniformParam(rng),
		Weights: make([]float32, inputSize),
	}
	for i := range n.Weights {
		n.Weights[i] = uniformParam(rng)
	}
	return n
}

// Propagate returns max(0, bias + w·x). The caller guarantees
// len(inputs) == len(n.Weights).
func (n *Neuron) Propagate(inputs []float32) float32 {
	x := blas32.Vector{N: len(inputs), Inc: 1, Data: inputs}
	w := blas32.Vector{N: len(n.Weights), Inc: 1, Data: n.Weights}
	return relu(n.Bias + blas32.Dot(x, w))
}

func relu(x float32) float32 {
	if x > 0 {
		return x
	}
	return 0
}

// uniformParam draws a bias or weight in [-1, 1).
func uniformParam(rng *rand.Rand) float32 {
	return rng.Float32()*2 - 1
}
