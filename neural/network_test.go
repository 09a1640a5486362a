package neural

import (
	"errors"
	"math"
	"math/rand/v2"
	"slices"
	"testing"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-6
}

func TestNeuronPropagate(t *testing.T) {
	n := Neuron{Bias: 0.5, Weights: []float32{-0.3, 0.8}}

	tests := []struct {
		name   string
		inputs []float32
		want   float32
	}{
		{"relu floor", []float32{-10, -10}, 0},
		{"positive sum", []float32{0.5, 1.0}, 0.5 + (-0.3 * 0.5) + (0.8 * 1.0)},
		{"exactly zero", []float32{0, -0.625}, 0},
		{"bias only", []float32{0, 0}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.Propagate(tt.inputs); !approx(got, tt.want) {
				t.Errorf("Propagate(%v) = %v, want %v", tt.inputs, got, tt.want)
			}
		})
	}
}

func TestNeuronReLUFloorIsExact(t *testing.T) {
	n := Neuron{Bias: 1, Weights: []float32{1, 1}}
	if got := n.Propagate([]float32{-1, -0.5}); got != 0 {
		t.Errorf("Propagate() = %v, want exactly 0", got)
	}
}

// handBuilt is a 2-2-1 network whose flat encoding is 0.1 .. 0.9.
func handBuilt(t *testing.T) *Network {
	t.Helper()
	nn, err := NewNetwork([]Layer{
		{Neurons: []Neuron{
			{Bias: 0.1, Weights: []float32{0.2, 0.3}},
			{Bias: 0.4, Weights: []float32{0.5, 0.6}},
		}},
		{Neurons: []Neuron{
			{Bias: 0.7, Weights: []float32{0.8, 0.9}},
		}},
	})
	if err != nil {
		t.Fatalf("NewNetwork: %v", err)
	}
	return nn
}

func TestNetworkWeightsOrder(t *testing.T) {
	nn := handBuilt(t)
	want := []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9}
	if got := nn.Weights(); !slices.Equal(got, want) {
		t.Errorf("Weights() = %v, want %v", got, want)
	}
}

func TestNetworkFromWeightsMatchesHandBuilt(t *testing.T) {
	topology := []LayerTopology{{2}, {2}, {1}}
	nn, err := FromWeights(topology, []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9})
	if err != nil {
		t.Fatalf("FromWeights: %v", err)
	}

	inputs := []float32{1, -0.5}
	got, err := nn.Propagate(inputs)
	if err != nil {
		t.Fatalf("Propagate: %v", err)
	}
	want, err := handBuilt(t).Propagate(inputs)
	if err != nil {
		t.Fatalf("Propagate: %v", err)
	}
	if !slices.Equal(got, want) {
		t.Errorf("decoded network output %v, want %v", got, want)
	}
}

func TestNetworkPropagate(t *testing.T) {
	nn := handBuilt(t)

	// hidden = relu(0.1 + 0.2 - 0.15), relu(0.4 + 0.5 - 0.3) = 0.15, 0.6
	// out = relu(0.7 + 0.8*0.15 + 0.9*0.6) = 1.36
	got, err := nn.Propagate([]float32{1, -0.5})
	if err != nil {
		t.Fatalf("Propagate: %v", err)
	}
	if len(got) != 1 || !approx(got[0], 1.36) {
		t.Errorf("Propagate() = %v, want [1.36]", got)
	}
}

func TestNetworkPropagateInputSize(t *testing.T) {
	nn := handBuilt(t)
	for _, inputs := range [][]float32{nil, {1}, {1, 2, 3}} {
		out, err := nn.Propagate(inputs)
		if !errors.Is(err, ErrInputSize) {
			t.Errorf("Propagate(%v) error = %v, want ErrInputSize", inputs, err)
		}
		if out != nil {
			t.Errorf("Propagate(%v) returned output alongside an error", inputs)
		}
	}
}

func TestNetworkWeightsRoundTrip(t *testing.T) {
	topologies := [][]LayerTopology{
		{{1}, {1}},
		{{3}, {2}, {1}},
		{{9}, {18}, {18}},
		{{4}, {8}, {8}, {2}},
	}

	rng := rand.New(rand.NewPCG(42, 42))
	for _, topology := range topologies {
		nn, err := Random(rng, topology)
		if err != nil {
			t.Fatalf("Random(%v): %v", topology, err)
		}
		weights := nn.Weights()
		if len(weights) != WeightCount(topology) {
			t.Errorf("topology %v: %d weights, want %d", topology, len(weights), WeightCount(topology))
		}

		rebuilt, err := FromWeights(topology, slices.Clone(weights))
		if err != nil {
			t.Fatalf("FromWeights(%v): %v", topology, err)
		}
		if !slices.Equal(rebuilt.Weights(), weights) {
			t.Errorf("topology %v: round trip changed weights", topology)
		}
		if !slices.Equal(rebuilt.Topology(), topology) {
			t.Errorf("Topology() = %v, want %v", rebuilt.Topology(), topology)
		}
	}
}

func TestRandomWeightRange(t *testing.T) {
	nn, err := Random(rand.New(rand.NewPCG(1, 2)), []LayerTopology{{9}, {18}, {18}})
	if err != nil {
		t.Fatalf("Random: %v", err)
	}
	for i, w := range nn.Weights() {
		if w < -1 || w > 1 {
			t.Errorf("weight %d = %v outside [-1, 1]", i, w)
		}
	}
}

func TestRandomDeterministic(t *testing.T) {
	topology := []LayerTopology{{3}, {6}, {6}}
	a, _ := Random(rand.New(rand.NewPCG(5, 5)), topology)
	b, _ := Random(rand.New(rand.NewPCG(5, 5)), topology)
	if !slices.Equal(a.Weights(), b.Weights()) {
		t.Error("same seed produced different networks")
	}
}

func TestFromWeightsCountMismatch(t *testing.T) {
	topology := []LayerTopology{{2}, {2}, {1}}

	tests := []struct {
		name string
		n    int
		want error
	}{
		{"empty", 0, ErrInsufficientWeights},
		{"one short", 8, ErrInsufficientWeights},
		{"one extra", 10, ErrExcessWeights},
		{"many extra", 20, ErrExcessWeights},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nn, err := FromWeights(topology, make([]float32, tt.n))
			if !errors.Is(err, tt.want) {
				t.Errorf("FromWeights(%d values) error = %v, want %v", tt.n, err, tt.want)
			}
			if nn != nil {
				t.Error("FromWeights returned a network alongside an error")
			}
		})
	}
}

func TestInvalidTopology(t *testing.T) {
	tests := []struct {
		name     string
		topology []LayerTopology
	}{
		{"empty", nil},
		{"single layer", []LayerTopology{{3}}},
		{"zero neurons", []LayerTopology{{3}, {0}}},
		{"negative neurons", []LayerTopology{{-1}, {2}}},
	}

	rng := rand.New(rand.NewPCG(1, 1))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Random(rng, tt.topology); !errors.Is(err, ErrInvalidTopology) {
				t.Errorf("Random() error = %v, want ErrInvalidTopology", err)
			}
			if _, err := FromWeights(tt.topology, nil); !errors.Is(err, ErrInvalidTopology) {
				t.Errorf("FromWeights() error = %v, want ErrInvalidTopology", err)
			}
		})
	}
}

func TestNewNetworkRejectsMisalignedLayers(t *testing.T) {
	_, err := NewNetwork([]Layer{
		{Neurons: []Neuron{{Bias: 0, Weights: []float32{1}}}},
		{Neurons: []Neuron{{Bias: 0, Weights: []float32{1, 2}}}},
	})
	if !errors.Is(err, ErrInvalidTopology) {
		t.Errorf("NewNetwork() error = %v, want ErrInvalidTopology", err)
	}
}

func BenchmarkPropagate(b *testing.B) {
	nn, err := Random(rand.New(rand.NewPCG(1, 1)), []LayerTopology{{9}, {18}, {18}})
	if err != nil {
		b.Fatal(err)
	}
	inputs := make([]float32, 9)
	for i := range inputs {
		inputs[i] = float32(i) / 9
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = nn.Propagate(inputs)
	}
}
