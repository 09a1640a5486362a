package game

import (
	"errors"

	"github.com/pthm-cable/forage/components"
)

// ErrSensorOutput is returned when a sensor's vision vector does not have
// Cells() entries.
var ErrSensorOutput = errors.New("game: sensor output length mismatch")

// Sensor turns the food field into a brain input vector. systems.Eye is
// the default implementation.
type Sensor interface {
	// Cells is fixed for the sensor's lifetime and must be positive.
	Cells() int
	// ProcessVision returns exactly Cells() values.
	ProcessVision(pos components.Position, rot components.Rotation, foods []components.Position) []float32
}
