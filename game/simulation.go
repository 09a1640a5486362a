package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/pthm-cable/forage/components"
	"github.com/pthm-cable/forage/config"
	"github.com/pthm-cable/forage/genetic"
	"github.com/pthm-cable/forage/systems"
	"github.com/pthm-cable/forage/telemetry"
)

// PhaseTimer is notified as Step moves between phases.
// telemetry.PerfCollector satisfies it.
type PhaseTimer interface {
	StartPhase(phase string)
}

// Simulation is the steppable core: one world, one genetic algorithm and
// an age counter. It is single-threaded and owns no randomness; every call
// that needs it takes the caller's generator.
type Simulation struct {
	world  *World
	ga     *genetic.GeneticAlgorithm[*AnimalIndividual]
	sensor Sensor
	limits systems.Limits

	eatRadius        float32
	initialSpeed     float32
	generationLength int

	age        int
	generation int
	steps      int64
	previous   []Animal // population replaced at the last boundary

	timer       PhaseTimer
	foodScratch []components.Position
	parallel    *parallelState
}

// NewSimulation builds a random simulation with the default eye sensor.
func NewSimulation(rng *rand.Rand, cfg *config.Config) (*Simulation, error) {
	return NewSimulationWithSensor(rng, cfg, systems.NewEye(cfg))
}

// NewSimulationWithSensor builds a random simulation around any sensor.
// Animals are created first (brain, then pose), then foods.
func NewSimulationWithSensor(rng *rand.Rand, cfg *config.Config, sensor Sensor) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if sensor.Cells() <= 0 {
		return nil, fmt.Errorf("sensor has %d cells: %w", sensor.Cells(), ErrSensorOutput)
	}

	mutation, err := genetic.NewGaussianMutation(
		float32(cfg.Genetics.MutationChance),
		float32(cfg.Genetics.MutationCoeff),
	)
	if err != nil {
		return nil, err
	}

	s := &Simulation{
		ga: genetic.New(
			createAnimalIndividual,
			genetic.RouletteWheelSelection{},
			genetic.UniformCrossover{},
			mutation,
		),
		sensor:           sensor,
		limits:           systems.LimitsFromConfig(cfg),
		eatRadius:        cfg.Derived.EatRadius32,
		initialSpeed:     cfg.Derived.InitialSpeed32,
		generationLength: cfg.Genetics.GenerationLength,
		parallel:         newParallelState(cfg.World.Workers),
	}

	world := &World{
		animals: make([]Animal, 0, cfg.World.Animals),
		foods:   make([]Food, cfg.World.Foods),
	}
	for range cfg.World.Animals {
		brain, err := RandomBrain(rng, sensor.Cells())
		if err != nil {
			return nil, err
		}
		world.animals = append(world.animals, newAnimal(rng, sensor, brain, s.initialSpeed))
	}
	world.scatterFoods(rng)
	s.world = world

	return s, nil
}

// World returns the current world.
func (s *Simulation) World() *World {
	return s.world
}

// Age is the number of steps since the last generation boundary.
func (s *Simulation) Age() int {
	return s.age
}

// Generation counts completed generational replacements.
func (s *Simulation) Generation() int {
	return s.generation
}

// Steps counts every step taken since construction.
func (s *Simulation) Steps() int64 {
	return s.steps
}

// GenerationLength is the number of steps a generation lives for.
func (s *Simulation) GenerationLength() int {
	return s.generationLength
}

// PreviousGeneration returns the animals replaced at the most recent
// boundary, with their final satiation. Nil before the first boundary.
func (s *Simulation) PreviousGeneration() []Animal {
	return s.previous
}

// SetPhaseTimer installs a timer notified at each phase. Nil disables it.
func (s *Simulation) SetPhaseTimer(t PhaseTimer) {
	s.timer = t
}

func (s *Simulation) startPhase(phase string) {
	if s.timer != nil {
		s.timer.StartPhase(phase)
	}
}

// Step advances the world by one step: collisions, brains, movement, then
// the generation trigger. When a generation boundary fires it returns the
// statistics of the replaced population; otherwise the statistics are nil.
func (s *Simulation) Step(rng *rand.Rand) (*genetic.Statistics, error) {
	s.startPhase(telemetry.PhaseCollisions)
	s.processCollisions(rng)

	s.startPhase(telemetry.PhaseBrains)
	if err := s.processBrains(); err != nil {
		return nil, err
	}

	s.startPhase(telemetry.PhaseMovement)
	s.processMovement()

	s.steps++
	s.age++
	if s.age <= s.generationLength {
		return nil, nil
	}

	s.startPhase(telemetry.PhaseEvolve)
	stats, err := s.evolve(rng)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// Train steps until the next generation boundary and returns its
// statistics. Generation() reports the new generation index afterwards.
func (s *Simulation) Train(rng *rand.Rand) (genetic.Statistics, error) {
	for {
		stats, err := s.Step(rng)
		if err != nil {
			return genetic.Statistics{}, err
		}
		if stats != nil {
			return *stats, nil
		}
	}
}

// processCollisions feeds every animal within eating distance of a food.
// Eaten food respawns at once, so later pairs in the same step see its new
// position.
func (s *Simulation) processCollisions(rng *rand.Rand) {
	for i := range s.world.animals {
		animal := &s.world.animals[i]
		for j := range s.world.foods {
			food := &s.world.foods[j]
			if animal.Position.Distance(food.Position) < s.eatRadius {
				animal.Satiation++
				food.Position = components.RandomPosition(rng)
			}
		}
	}
}

// processBrains reads every animal's vision through its brain and applies
// the first two outputs as clamped speed and rotation deltas. Large
// populations are split across the worker pool; intents are applied in
// animal order.
func (s *Simulation) processBrains() error {
	s.foodScratch = s.foodScratch[:0]
	for _, food := range s.world.foods {
		s.foodScratch = append(s.foodScratch, food.Position)
	}

	n := len(s.world.animals)
	if cap(s.parallel.intents) < n {
		s.parallel.intents = make([]intent, n)
	}
	s.parallel.intents = s.parallel.intents[:n]

	if n < parallelThreshold || s.parallel.numWorkers == 1 {
		s.computeChunk(0, n)
	} else {
		s.computeParallel(n)
	}

	for i := range s.world.animals {
		in := &s.parallel.intents[i]
		if in.err != nil {
			return fmt.Errorf("animal %d: %w", i, in.err)
		}
		s.world.animals[i].Speed = in.speed
		s.world.animals[i].Rotation = in.rotation
	}
	return nil
}

// think computes one animal's next speed and rotation.
func (s *Simulation) think(animal *Animal) (float32, components.Rotation, error) {
	vision := animal.sensor.ProcessVision(animal.Position, animal.Rotation, s.foodScratch)
	if len(vision) != animal.sensor.Cells() {
		return 0, components.Rotation{}, fmt.Errorf("got %d cells, want %d: %w",
			len(vision), animal.sensor.Cells(), ErrSensorOutput)
	}

	speedDelta, rotationDelta, err := animal.brain.Propagate(vision)
	if err != nil {
		return 0, components.Rotation{}, err
	}
	speed, rotation := s.limits.Steer(animal.Speed, animal.Rotation, speedDelta, rotationDelta)
	return speed, rotation, nil
}

// processMovement advances every animal along its heading on the torus.
func (s *Simulation) processMovement() {
	for i := range s.world.animals {
		animal := &s.world.animals[i]
		animal.Position = systems.Move(animal.Position, animal.Rotation, animal.Speed)
	}
}
