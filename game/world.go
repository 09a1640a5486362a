package game

import (
	"math/rand/v2"

	"github.com/pthm-cable/forage/components"
)

// Animal is one forager. Satiation counts the food eaten this generation
// and is its fitness.
type Animal struct {
	Position  components.Position
	Rotation  components.Rotation
	Speed     float32
	Satiation int

	sensor Sensor
	brain  *Brain
}

// newAnimal places a brain at a random pose.
func newAnimal(rng *rand.Rand, sensor Sensor, brain *Brain, speed float32) Animal {
	return Animal{
		Position: components.RandomPosition(rng),
		Rotation: components.RandomRotation(rng),
		Speed:    speed,
		sensor:   sensor,
		brain:    brain,
	}
}

// Brain returns the animal's brain.
func (a *Animal) Brain() *Brain {
	return a.brain
}

// Sensor returns the animal's sensor.
func (a *Animal) Sensor() Sensor {
	return a.sensor
}

// Food is a pellet. Eaten food respawns elsewhere immediately.
type Food struct {
	Position components.Position
}

// World holds the animals and foods. The two collections never reference
// each other.
type World struct {
	animals []Animal
	foods   []Food
}

// Animals returns the animals in stable order. Callers must not modify them.
func (w *World) Animals() []Animal {
	return w.animals
}

// Foods returns the foods in stable order. Callers must not modify them.
func (w *World) Foods() []Food {
	return w.foods
}

// scatterFoods moves every food to a fresh random position.
func (w *World) scatterFoods(rng *rand.Rand) {
	for i := range w.foods {
		w.foods[i].Position = components.RandomPosition(rng)
	}
}
