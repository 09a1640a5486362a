package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/pthm-cable/forage/genetic"
)

// AnimalIndividual is an animal reduced to what the genetic algorithm
// needs: its encoded brain and its satiation as fitness.
type AnimalIndividual struct {
	fitness    float32
	chromosome genetic.Chromosome
}

func newAnimalIndividual(a *Animal) *AnimalIndividual {
	return &AnimalIndividual{
		fitness:    float32(a.Satiation),
		chromosome: a.brain.Chromosome(),
	}
}

// createAnimalIndividual is the genetic.Factory for offspring.
func createAnimalIndividual(chromosome genetic.Chromosome) *AnimalIndividual {
	return &AnimalIndividual{chromosome: chromosome}
}

// Fitness implements genetic.Individual.
func (ai *AnimalIndividual) Fitness() float32 { return ai.fitness }

// Chromosome implements genetic.Individual.
func (ai *AnimalIndividual) Chromosome() *genetic.Chromosome { return &ai.chromosome }

// evolve replaces the whole population with offspring bred from it, then
// scatters the food. On error the world is left untouched.
func (s *Simulation) evolve(rng *rand.Rand) (genetic.Statistics, error) {
	population := make([]*AnimalIndividual, len(s.world.animals))
	for i := range s.world.animals {
		population[i] = newAnimalIndividual(&s.world.animals[i])
	}

	offspring, stats, err := s.ga.Evolve(rng, population)
	if err != nil {
		return genetic.Statistics{}, fmt.Errorf("generation %d: %w", s.generation, err)
	}

	cells := s.sensor.Cells()
	animals := make([]Animal, 0, len(offspring))
	for i, individual := range offspring {
		brain, err := BrainFromChromosome(*individual.Chromosome(), cells)
		if err != nil {
			return genetic.Statistics{}, fmt.Errorf("generation %d offspring %d: %w", s.generation, i, err)
		}
		animals = append(animals, newAnimal(rng, s.sensor, brain, s.initialSpeed))
	}

	s.previous = s.world.animals
	s.world.animals = animals
	s.world.scatterFoods(rng)

	s.age = 0
	s.generation++
	return stats, nil
}
