package genetic

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

// testIndividual is a minimal Individual for exercising the algorithm.
type testIndividual struct {
	fitness    float32
	chromosome Chromosome
}

func (ti *testIndividual) Fitness() float32        { return ti.fitness }
func (ti *testIndividual) Chromosome() *Chromosome { return &ti.chromosome }

func newTestIndividual(fitness float32, genes ...float32) *testIndividual {
	return &testIndividual{fitness: fitness, chromosome: NewChromosome(genes)}
}

func createTestIndividual(c Chromosome) *testIndividual {
	return &testIndividual{chromosome: c}
}

func TestRouletteWheelSelectionFrequencies(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1024))

	population := []Individual{
		newTestIndividual(2),
		newTestIndividual(1),
		newTestIndividual(4),
		newTestIndividual(3),
	}

	const draws = 20000
	histogram := make(map[float32]int)
	for range draws {
		picked, err := RouletteWheelSelection{}.Select(rng, population)
		if err != nil {
			t.Fatalf("Select: %v", err)
		}
		histogram[picked.Fitness()]++
	}

	// Expected share is fitness / total fitness (10).
	for _, fitness := range []float32{1, 2, 3, 4} {
		got := float64(histogram[fitness]) / draws
		want := float64(fitness) / 10
		if math.Abs(got-want) > 0.02 {
			t.Errorf("fitness %v selected %.3f of the time, want ~%.3f", fitness, got, want)
		}
	}
}

func TestRouletteWheelSelectionNeverPicksZeroFitness(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	population := []Individual{
		newTestIndividual(0),
		newTestIndividual(5),
		newTestIndividual(0),
	}

	for range 1000 {
		picked, err := RouletteWheelSelection{}.Select(rng, population)
		if err != nil {
			t.Fatalf("Select: %v", err)
		}
		if picked.Fitness() == 0 {
			t.Fatal("selected an individual with zero fitness")
		}
	}
}

func TestRouletteWheelSelectionErrors(t *testing.T) {
	tests := []struct {
		name       string
		population []Individual
		want       error
	}{
		{"empty", nil, ErrEmptyPopulation},
		{"all zero", []Individual{newTestIndividual(0), newTestIndividual(0)}, ErrZeroFitness},
		{"negative", []Individual{newTestIndividual(1), newTestIndividual(-1)}, ErrInvalidFitness},
		{"nan", []Individual{newTestIndividual(float32(math.NaN()))}, ErrInvalidFitness},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewPCG(1, 2))
			picked, err := RouletteWheelSelection{}.Select(rng, tt.population)
			if !errors.Is(err, tt.want) {
				t.Errorf("Select() error = %v, want %v", err, tt.want)
			}
			if picked != nil {
				t.Errorf("Select() returned %v alongside an error", picked)
			}
		})
	}
}
