package systems

import (
	"math"

	"github.com/pthm-cable/forage/components"
	"github.com/pthm-cable/forage/config"
)

// Eye is a field-of-view food sensor. Foods within FOVRange and inside the
// FOVAngle cone are binned into CellCount angular cells. Cell 0 is the
// clockwise (right-hand) edge of the cone.
type Eye struct {
	FOVRange  float32
	FOVAngle  float32
	CellCount int
}

// NewEye builds an eye from the eye config section.
func NewEye(cfg *config.Config) Eye {
	return Eye{
		FOVRange:  float32(cfg.Eye.FOVRange),
		FOVAngle:  float32(cfg.Eye.FOVAngle),
		CellCount: cfg.Eye.Cells,
	}
}

// Cells is the length of every vision vector.
func (e Eye) Cells() int {
	return e.CellCount
}

// ProcessVision returns one activation per cell. Each visible food adds
// (range - dist) / range to its cell, so nearer food reads stronger and
// several foods in one cell accumulate.
func (e Eye) ProcessVision(pos components.Position, rot components.Rotation, foods []components.Position) []float32 {
	cells := make([]float32, e.CellCount)
	halfFOV := e.FOVAngle / 2

	for _, food := range foods {
		dx := food.X - pos.X
		dy := food.Y - pos.Y
		dist := float32(math.Sqrt(float64(dx*dx + dy*dy)))
		if dist >= e.FOVRange {
			continue
		}

		// Angle from the +Y axis to the food, relative to our heading.
		toFood := float32(math.Atan2(float64(-dx), float64(dy)))
		angle := normalizeAngle(toFood - rot.Angle)
		if angle < -halfFOV || angle > halfFOV {
			continue
		}

		cell := int((angle + halfFOV) / e.FOVAngle * float32(e.CellCount))
		cell = min(cell, e.CellCount-1)

		cells[cell] += (e.FOVRange - dist) / e.FOVRange
	}

	return cells
}
