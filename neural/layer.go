package neural

import "math/rand/v2"

// Layer is a set of neurons that all read the same input vector.
type Layer struct {
	Neurons []Neuron
}

func randomLayer(rng *rand.Rand, inputSize, outputSize int) Layer {
	l := Layer{Neurons: make([]Neuron, outputSize)}
	for i := range l.Neurons {
		l.Neurons[i] = randomNeuron(rng, inputSize)
	}
	return l
}

// InputSize is the weight count shared by every neuron.
func (l *Layer) InputSize() int {
	if len(l.Neurons) == 0 {
		return 0
	}
	return len(l.Neurons[0].Weights)
}

// OutputSize is the neuron count.
func (l *Layer) OutputSize() int {
	return len(l.Neurons)
}

func (l *Layer) propagate(inputs []float32) []float32 {
	out := make([]float32, len(l.Neurons))
	for i := range l.Neurons {
		out[i] = l.Neurons[i].Propagate(inputs)
	}
	return out
}
