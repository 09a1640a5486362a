package main

import (
	"errors"
	"log/slog"
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/forage/config"
	"github.com/pthm-cable/forage/game"
	"github.com/pthm-cable/forage/genetic"
	"github.com/pthm-cable/forage/telemetry"
)

// FitnessEvaluator runs headless simulations and computes fitness.
type FitnessEvaluator struct {
	params      *ParamVector
	generations int
	seeds       []uint64
	baseConfig  *config.Config

	// Best run tracking
	mu             sync.Mutex
	bestFitness    float64
	bestHallOfFame *telemetry.HallOfFame
	lastSatiation  float64 // mean satiation from most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, generations int, seeds []uint64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		generations: generations,
		seeds:       seeds,
		baseConfig:  baseCfg,
		bestFitness: math.Inf(1),
	}
}

// BestHallOfFame returns the hall of fame from the best evaluation.
func (fe *FitnessEvaluator) BestHallOfFame() *telemetry.HallOfFame {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.bestHallOfFame
}

// LastSatiation returns the mean satiation from the most recent evaluation.
func (fe *FitnessEvaluator) LastSatiation() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastSatiation
}

// scoredTail is the share of generations, counted from the end, whose
// average satiation makes up a run's score.
const scoredTail = 0.25

// runResult holds the results from a single simulation run.
type runResult struct {
	avgFitness []float64 // per generation
	hallOfFame *telemetry.HallOfFame
}

// Evaluate computes fitness for a parameter vector (lower = better).
// Fitness is the negated mean satiation over the last generations of
// every seed.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	results := make([]runResult, len(fe.seeds))
	var wg sync.WaitGroup
	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s uint64) {
			defer wg.Done()
			results[idx] = fe.runSimulation(cfg, s)
		}(i, seed)
	}
	wg.Wait()

	scores := make([]float64, len(results))
	var bestSeed int
	for i, r := range results {
		scores[i] = score(r.avgFitness, fe.generations)
		if scores[i] > scores[bestSeed] {
			bestSeed = i
		}
	}
	satiation := stat.Mean(scores, nil)
	fitness := -satiation

	fe.mu.Lock()
	if fitness < fe.bestFitness {
		fe.bestFitness = fitness
		fe.bestHallOfFame = results[bestSeed].hallOfFame
	}
	fe.lastSatiation = satiation
	fe.mu.Unlock()

	return fitness
}

// runSimulation trains one world for the configured number of generations.
// A generation that starves completely ends the run early.
func (fe *FitnessEvaluator) runSimulation(shared *config.Config, seed uint64) runResult {
	cfg := *shared // NewSimulation refreshes derived values in place
	result := runResult{
		hallOfFame: telemetry.NewHallOfFame(cfg.Telemetry.HallOfFameSize),
	}

	rng := game.NewRNG(seed)
	sim, err := game.NewSimulation(rng, &cfg)
	if err != nil {
		slog.Error("creating simulation", "seed", seed, "error", err)
		return result
	}
	defer sim.Close()

	for gen := range fe.generations {
		stats, err := sim.Train(rng)
		if err != nil {
			if !errors.Is(err, genetic.ErrZeroFitness) {
				slog.Error("training", "seed", seed, "generation", gen, "error", err)
			}
			break
		}
		result.avgFitness = append(result.avgFitness, float64(stats.AvgFitness))

		for _, a := range sim.PreviousGeneration() {
			c := a.Brain().Chromosome()
			result.hallOfFame.Consider(gen, float32(a.Satiation), c.IntoGenes())
		}
	}
	return result
}

// score averages the last scoredTail of a run's generations. Runs cut short
// are padded with zeros up to generations.
func score(avgFitness []float64, generations int) float64 {
	if generations <= 0 {
		return 0
	}
	padded := make([]float64, max(generations, len(avgFitness)))
	copy(padded, avgFitness)
	n := max(1, int(math.Ceil(float64(len(padded))*scoredTail)))
	return stat.Mean(padded[len(padded)-n:], nil)
}

// copyConfig creates a deep copy of the base config.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}
