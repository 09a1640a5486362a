package components

import "math"

// Position is a point on the unit torus.
type Position struct {
	X, Y float32
}

// Distance is the plain Euclidean distance, without wrapping.
func (p Position) Distance(q Position) float32 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return float32(math.Sqrt(float64(dx*dx + dy*dy)))
}

// Rotation is a heading angle in radians. It is free-running: adding to it
// never wraps. Angle 0 faces +Y.
type Rotation struct {
	Angle float32
}

// Heading is the unit vector the rotation faces: (0,1) rotated by Angle.
func (r Rotation) Heading() (x, y float32) {
	sin, cos := math.Sincos(float64(r.Angle))
	return float32(-sin), float32(cos)
}

// Normalized maps the angle into [-π, π) for display.
func (r Rotation) Normalized() float32 {
	a := math.Mod(float64(r.Angle)+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return float32(a - math.Pi)
}
