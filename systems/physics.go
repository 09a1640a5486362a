// Package systems holds the per-step rules the simulation applies to its
// entities: steering, toroidal movement and the default food sensor.
package systems

import (
	"github.com/pthm-cable/forage/components"
	"github.com/pthm-cable/forage/config"
)

// Limits bounds how fast an animal may change speed and heading.
type Limits struct {
	SpeedMin      float32
	SpeedMax      float32
	SpeedAccel    float32
	RotationAccel float32
}

// LimitsFromConfig reads the physics section.
func LimitsFromConfig(cfg *config.Config) Limits {
	p := cfg.Physics
	return Limits{
		SpeedMin:      float32(p.SpeedMin),
		SpeedMax:      float32(p.SpeedMax),
		SpeedAccel:    float32(p.SpeedAccel),
		RotationAccel: float32(p.RotationAccel),
	}
}

// Steer applies one step of brain output. Both deltas are clamped to their
// per-step bound; speed is then clamped to [SpeedMin, SpeedMax] while the
// rotation keeps accumulating without wrapping.
func (l Limits) Steer(speed float32, rot components.Rotation, speedDelta, rotationDelta float32) (float32, components.Rotation) {
	speedDelta = clampFloat(speedDelta, -l.SpeedAccel, l.SpeedAccel)
	rotationDelta = clampFloat(rotationDelta, -l.RotationAccel, l.RotationAccel)

	speed = clampFloat(speed+speedDelta, l.SpeedMin, l.SpeedMax)
	rot.Angle += rotationDelta
	return speed, rot
}

// Move advances pos along rot's heading by speed and wraps both
// coordinates back onto the torus.
func Move(pos components.Position, rot components.Rotation, speed float32) components.Position {
	hx, hy := rot.Heading()
	return components.Position{
		X: Wrap(pos.X + hx*speed),
		Y: Wrap(pos.Y + hy*speed),
	}
}
