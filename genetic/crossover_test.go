package genetic

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func TestUniformCrossover(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 42))

	a := make([]float32, 100)
	b := make([]float32, 100)
	for i := range a {
		a[i] = float32(i + 1)
		b[i] = -float32(i + 1)
	}
	parentA := NewChromosome(a)
	parentB := NewChromosome(b)

	child, err := UniformCrossover{}.Crossover(rng, &parentA, &parentB)
	if err != nil {
		t.Fatalf("Crossover: %v", err)
	}
	if child.Len() != parentA.Len() {
		t.Fatalf("child has %d genes, want %d", child.Len(), parentA.Len())
	}

	var fromA, fromB int
	for i, g := range child.All() {
		switch g {
		case parentA.At(i):
			fromA++
		case parentB.At(i):
			fromB++
		default:
			t.Errorf("gene %d = %v comes from neither parent", i, g)
		}
	}

	if fromA+fromB != 100 {
		t.Errorf("fromA + fromB = %d, want 100", fromA+fromB)
	}
	// Both parents contribute; a one-sided child has probability 2^-99.
	if fromA == 0 || fromB == 0 {
		t.Errorf("one parent contributed nothing: fromA=%d fromB=%d", fromA, fromB)
	}
}

func TestUniformCrossoverDoesNotTouchParents(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	parentA := NewChromosome([]float32{1, 2, 3})
	parentB := NewChromosome([]float32{4, 5, 6})
	wantA, wantB := parentA.Clone(), parentB.Clone()

	child, err := UniformCrossover{}.Crossover(rng, &parentA, &parentB)
	if err != nil {
		t.Fatalf("Crossover: %v", err)
	}
	child.Set(0, 100)

	if !parentA.Equal(&wantA) || !parentB.Equal(&wantB) {
		t.Error("crossover modified a parent")
	}
}

func TestUniformCrossoverLengthMismatch(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	parentA := NewChromosome([]float32{1, 2, 3})
	parentB := NewChromosome([]float32{1, 2})

	_, err := UniformCrossover{}.Crossover(rng, &parentA, &parentB)
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Crossover() error = %v, want ErrLengthMismatch", err)
	}
}
