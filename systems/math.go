package systems

import "math"

// clampFloat clamps a float32 value between min and max.
func clampFloat(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// normalizeAngle wraps an angle to [-Pi, Pi).
func normalizeAngle(angle float32) float32 {
	a := math.Mod(float64(angle)+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return float32(a - math.Pi)
}

// Wrap maps a coordinate onto [0, 1).
func Wrap(v float32) float32 {
	w := math.Mod(float64(v), 1)
	if w < 0 {
		w++
	}
	r := float32(w)
	if r >= 1 {
		// float32 rounding of values just below 1
		return 0
	}
	return r
}
