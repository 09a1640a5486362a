// Package components defines the plain value types the simulation is built
// from. Positions live on the unit torus [0,1)×[0,1).
package components

import (
	"math"
	"math/rand/v2"
)

// RandomPosition draws a point uniformly from the unit torus.
func RandomPosition(rng *rand.Rand) Position {
	return Position{X: rng.Float32(), Y: rng.Float32()}
}

// RandomRotation draws an angle uniformly from [-π, π).
func RandomRotation(rng *rand.Rand) Rotation {
	return Rotation{Angle: rng.Float32()*2*math.Pi - math.Pi}
}
