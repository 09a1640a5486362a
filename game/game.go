package game

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/pthm-cable/forage/config"
	"github.com/pthm-cable/forage/genetic"
	"github.com/pthm-cable/forage/telemetry"
)

// Options configures a Game.
type Options struct {
	Seed      uint64 // RNG seed (0 = time-based)
	LogStats  bool   // log generation and perf stats via slog
	OutputDir string // directory for CSV logs, config and hall of fame ("" = none)

	// StatsCallback, if set, receives every generation record.
	StatsCallback func(telemetry.GenerationStats)
}

// Game hosts a Simulation: it owns the RNG and feeds generation
// boundaries into telemetry.
type Game struct {
	sim  *Simulation
	rng  *rand.Rand
	seed uint64
	cfg  *config.Config

	runID         string
	logStats      bool
	statsCallback func(telemetry.GenerationStats)

	perf       *telemetry.PerfCollector
	perfWindow int
	hallOfFame *telemetry.HallOfFame
	output     *telemetry.OutputManager

	lastStats *telemetry.GenerationStats
	lastGA    genetic.Statistics
}

// NewRNG returns the generator used for a given seed.
func NewRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0x9e3779b97f4a7c15))
}

// NewGame builds a game from cfg.
func NewGame(cfg *config.Config, opts Options) (*Game, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := NewRNG(seed)

	sim, err := NewSimulation(rng, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating simulation: %w", err)
	}

	g := &Game{
		sim:           sim,
		rng:           rng,
		seed:          seed,
		cfg:           cfg,
		runID:         telemetry.NewRunID(),
		logStats:      opts.LogStats,
		statsCallback: opts.StatsCallback,
		perf:          telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		perfWindow:    cfg.Telemetry.PerfWindow,
		hallOfFame:    telemetry.NewHallOfFame(cfg.Telemetry.HallOfFameSize),
	}
	sim.SetPhaseTimer(g.perf)

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			return nil, err
		}
		if err := om.WriteConfig(cfg); err != nil {
			om.Close()
			return nil, err
		}
		g.output = om
	}

	slog.Info("game created",
		"run_id", g.runID,
		"seed", seed,
		"animals", cfg.World.Animals,
		"foods", cfg.World.Foods,
		"cells", cfg.Eye.Cells,
		"generation_length", cfg.Genetics.GenerationLength,
	)
	return g, nil
}

// Step advances the simulation by one step.
func (g *Game) Step() error {
	g.perf.StartTick()
	generation := g.sim.Generation()
	stats, err := g.sim.Step(g.rng)
	if err != nil {
		return err
	}
	if stats != nil {
		g.lastGA = *stats
		g.perf.StartPhase(telemetry.PhaseTelemetry)
		g.recordGeneration(generation)
	}
	g.perf.EndTick()

	if g.sim.Steps()%int64(g.perfWindow) == 0 {
		g.flushPerf()
	}
	return nil
}

// Train runs until the next generation boundary.
func (g *Game) Train() (genetic.Statistics, error) {
	for {
		generation := g.sim.Generation()
		if err := g.Step(); err != nil {
			return genetic.Statistics{}, err
		}
		if g.sim.Generation() != generation {
			return g.lastGA, nil
		}
	}
}

// recordGeneration feeds the population just replaced into the hall of
// fame, the generation log and the CSV output.
func (g *Game) recordGeneration(generation int) {
	previous := g.sim.PreviousGeneration()
	fitness := make([]float64, len(previous))
	for i := range previous {
		a := &previous[i]
		fitness[i] = float64(a.Satiation)
		g.hallOfFame.Consider(generation, float32(a.Satiation), a.brain.nn.Weights())
	}

	stats := telemetry.NewGenerationStats(g.runID, generation, g.sim.Steps(), fitness)
	g.lastStats = &stats

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}
	if g.logStats {
		stats.LogStats()
	}
	if g.output != nil {
		if err := g.output.WriteGeneration(stats); err != nil {
			slog.Error("failed to write generation", "error", err)
		}
	}
}

func (g *Game) flushPerf() {
	if g.perf.Samples() == 0 {
		return
	}
	perfStats := g.perf.Stats()
	if g.logStats {
		perfStats.LogStats()
	}
	if g.output != nil {
		if err := g.output.WritePerf(perfStats, g.runID, g.sim.Steps()); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}

// Snapshot copies the current world state.
func (g *Game) Snapshot() Snapshot {
	return g.sim.Snapshot()
}

// Simulation exposes the hosted simulation.
func (g *Game) Simulation() *Simulation {
	return g.sim
}

// Tick returns the total number of steps taken.
func (g *Game) Tick() int64 {
	return g.sim.Steps()
}

// Generation returns the current generation index.
func (g *Game) Generation() int {
	return g.sim.Generation()
}

// RunID identifies this run in every telemetry record.
func (g *Game) RunID() string {
	return g.runID
}

// Seed returns the seed the RNG was built from.
func (g *Game) Seed() uint64 {
	return g.seed
}

// HallOfFame returns the best brains seen so far, or nil when disabled.
func (g *Game) HallOfFame() *telemetry.HallOfFame {
	return g.hallOfFame
}

// LastStats returns the most recent generation record, if any.
func (g *Game) LastStats() (telemetry.GenerationStats, bool) {
	if g.lastStats == nil {
		return telemetry.GenerationStats{}, false
	}
	return *g.lastStats, true
}

// Close stops the simulation's workers, writes the hall of fame and a
// final snapshot, then closes output.
func (g *Game) Close() error {
	g.sim.Close()
	if g.output == nil {
		return nil
	}
	if g.hallOfFame != nil {
		if err := g.output.WriteHallOfFame(g.hallOfFame); err != nil {
			slog.Error("failed to write hall of fame", "error", err)
		}
	}
	if err := g.output.WriteSnapshot("final_snapshot.json", g.Snapshot()); err != nil {
		slog.Error("failed to write snapshot", "error", err)
	}
	err := g.output.Close()
	g.output = nil
	return err
}
