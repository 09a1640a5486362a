package genetic

import (
	"slices"
	"testing"
)

func TestChromosomeAccess(t *testing.T) {
	c := NewChromosome([]float32{3, 1, 2})

	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
	if c.At(0) != 3 || c.At(1) != 1 || c.At(2) != 2 {
		t.Errorf("At() returned %v %v %v, want 3 1 2", c.At(0), c.At(1), c.At(2))
	}

	var seen []float32
	for i, g := range c.All() {
		if g != c.At(i) {
			t.Errorf("All() yielded %v at %d, want %v", g, i, c.At(i))
		}
		seen = append(seen, g)
	}
	if !slices.Equal(seen, []float32{3, 1, 2}) {
		t.Errorf("All() yielded %v", seen)
	}

	c.Set(1, 10)
	if c.At(1) != 10 {
		t.Errorf("Set did not update gene: got %v", c.At(1))
	}
}

func TestChromosomeCollect(t *testing.T) {
	c := Collect(slices.Values([]float32{0.5, -0.5}))
	if c.Len() != 2 || c.At(0) != 0.5 || c.At(1) != -0.5 {
		t.Errorf("Collect built %v", c.Genes())
	}
}

func TestChromosomeGenesIsCopy(t *testing.T) {
	c := NewChromosome([]float32{1, 2})
	genes := c.Genes()
	genes[0] = 99

	if c.At(0) != 1 {
		t.Error("Genes() aliases the chromosome")
	}

	clone := c.Clone()
	clone.Set(1, 42)
	if c.At(1) != 2 {
		t.Error("Clone() aliases the chromosome")
	}
}

func TestChromosomeIntoGenes(t *testing.T) {
	c := NewChromosome([]float32{1, 2, 3})
	genes := c.IntoGenes()

	if !slices.Equal(genes, []float32{1, 2, 3}) {
		t.Errorf("IntoGenes() = %v", genes)
	}
	if c.Len() != 0 {
		t.Errorf("chromosome still holds %d genes after IntoGenes", c.Len())
	}
}

func TestChromosomeEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want bool
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, true},
		{"within tolerance", []float32{1, 2, 3}, []float32{1, 2.0000001, 3}, true},
		{"different gene", []float32{1, 2, 3}, []float32{1, 2.1, 3}, false},
		{"different length", []float32{1, 2}, []float32{1, 2, 3}, false},
		{"both empty", nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewChromosome(tt.a)
			b := NewChromosome(tt.b)
			if got := a.Equal(&b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}
