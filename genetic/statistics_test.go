package genetic

import "testing"

func TestNewStatistics(t *testing.T) {
	tests := []struct {
		name    string
		fitness []float32
		want    Statistics
	}{
		{"empty", nil, Statistics{}},
		{"single", []float32{5}, Statistics{Size: 1, MinFitness: 5, MaxFitness: 5, AvgFitness: 5}},
		{"several", []float32{4, 1, 3, 2}, Statistics{Size: 4, MinFitness: 1, MaxFitness: 4, AvgFitness: 2.5}},
		{"all zero", []float32{0, 0, 0}, Statistics{Size: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			population := make([]*testIndividual, len(tt.fitness))
			for i, f := range tt.fitness {
				population[i] = newTestIndividual(f)
			}
			if got := NewStatistics(population); got != tt.want {
				t.Errorf("NewStatistics() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
