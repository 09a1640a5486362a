package telemetry

import (
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// NewRunID returns a fresh identifier stamped on every record of one run.
func NewRunID() string {
	return uuid.NewString()
}

// GenerationStats summarizes one finished generation, computed from the
// satiation of every animal just before it was replaced.
type GenerationStats struct {
	RunID      string `csv:"run_id"`
	Generation int    `csv:"generation"` // index of the generation that just ended
	Step       int64  `csv:"step"`       // total steps simulated so far

	Population int `csv:"population"`
	FoodEaten  int `csv:"food_eaten"` // sum of satiation
	Starved    int `csv:"starved"`    // animals that ate nothing

	// Fitness distribution
	MinFitness float64 `csv:"min_fitness"`
	MaxFitness float64 `csv:"max_fitness"`
	AvgFitness float64 `csv:"avg_fitness"`
	StdFitness float64 `csv:"std_fitness"`
	FitnessP10 float64 `csv:"fitness_p10"`
	FitnessP50 float64 `csv:"fitness_p50"`
	FitnessP90 float64 `csv:"fitness_p90"`
}

// NewGenerationStats builds the record for one generation from raw
// per-animal fitness values.
func NewGenerationStats(runID string, generation int, step int64, fitness []float64) GenerationStats {
	s := GenerationStats{
		RunID:      runID,
		Generation: generation,
		Step:       step,
		Population: len(fitness),
	}
	if len(fitness) == 0 {
		return s
	}

	for _, f := range fitness {
		s.FoodEaten += int(f)
		if f == 0 {
			s.Starved++
		}
	}

	s.MinFitness = floats.Min(fitness)
	s.MaxFitness = floats.Max(fitness)
	s.AvgFitness, s.StdFitness, s.FitnessP10, s.FitnessP50, s.FitnessP90 = ComputeFitnessStats(fitness)
	return s
}

// Percentile returns the empirical p-quantile of a sorted slice: the
// smallest value with at least a fraction p of the data at or below it.
// Returns 0 if the slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	p = min(max(p, 0), 1)
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// ComputeFitnessStats calculates mean, population std and percentiles.
func ComputeFitnessStats(values []float64) (mean, std, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0, 0
	}

	mean, std = stat.PopMeanStdDev(values, nil)

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	p10 = Percentile(sorted, 0.10)
	p50 = Percentile(sorted, 0.50)
	p90 = Percentile(sorted, 0.90)

	return mean, std, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s GenerationStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("run_id", s.RunID),
		slog.Int("generation", s.Generation),
		slog.Int64("step", s.Step),
		slog.Int("population", s.Population),
		slog.Int("food_eaten", s.FoodEaten),
		slog.Int("starved", s.Starved),
		slog.Float64("min_fitness", s.MinFitness),
		slog.Float64("max_fitness", s.MaxFitness),
		slog.Float64("avg_fitness", s.AvgFitness),
		slog.Float64("std_fitness", s.StdFitness),
		slog.Float64("fitness_p10", s.FitnessP10),
		slog.Float64("fitness_p50", s.FitnessP50),
		slog.Float64("fitness_p90", s.FitnessP90),
	)
}

// LogStats logs the generation summary using slog.
func (s GenerationStats) LogStats() {
	slog.Info("generation",
		"run_id", s.RunID,
		"generation", s.Generation,
		"step", s.Step,
		"food_eaten", s.FoodEaten,
		"starved", s.Starved,
		"min_fitness", s.MinFitness,
		"max_fitness", s.MaxFitness,
		"avg_fitness", s.AvgFitness,
		"fitness_p50", s.FitnessP50,
	)
}
