// Package main provides CMA-ES optimization for forage simulation parameters.
package main

import (
	"math"

	"github.com/pthm-cable/forage/config"
)

// ParamSpec defines a single optimizable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of optimizable parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			// Genetics
			{Name: "mutation_chance", Path: "genetics.mutation_chance", Min: 0.001, Max: 0.2, Default: 0.01},
			{Name: "mutation_coeff", Path: "genetics.mutation_coeff", Min: 0.01, Max: 1.0, Default: 0.3},
			// Eye
			{Name: "fov_range", Path: "eye.fov_range", Min: 0.05, Max: 0.5, Default: 0.25},
			{Name: "fov_angle", Path: "eye.fov_angle", Min: math.Pi / 4, Max: 2 * math.Pi, Default: math.Pi + math.Pi/4},
			// Physics
			{Name: "speed_accel", Path: "physics.speed_accel", Min: 0.01, Max: 1.0, Default: 0.2},
			{Name: "rotation_accel", Path: "physics.rotation_accel", Min: 0.1, Max: math.Pi, Default: math.Pi / 2},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		clamped[i] = min(max(v[i], spec.Min), spec.Max)
	}
	return clamped
}

// ApplyToConfig applies parameter values to a Config struct.
// Order must match Specs order.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)

	cfg.Genetics.MutationChance = clamped[0]
	cfg.Genetics.MutationCoeff = clamped[1]
	cfg.Eye.FOVRange = clamped[2]
	cfg.Eye.FOVAngle = clamped[3]
	cfg.Physics.SpeedAccel = clamped[4]
	cfg.Physics.RotationAccel = clamped[5]
}

// ExtractFromConfig extracts current parameter values from a Config struct.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{
		cfg.Genetics.MutationChance,
		cfg.Genetics.MutationCoeff,
		cfg.Eye.FOVRange,
		cfg.Eye.FOVAngle,
		cfg.Physics.SpeedAccel,
		cfg.Physics.RotationAccel,
	}
}

// evalRecord is one row of optimize_log.csv.
type evalRecord struct {
	Eval           int     `csv:"eval"`
	Fitness        float64 `csv:"fitness"`
	MeanSatiation  float64 `csv:"mean_satiation"`
	MutationChance float64 `csv:"mutation_chance"`
	MutationCoeff  float64 `csv:"mutation_coeff"`
	FOVRange       float64 `csv:"fov_range"`
	FOVAngle       float64 `csv:"fov_angle"`
	SpeedAccel     float64 `csv:"speed_accel"`
	RotationAccel  float64 `csv:"rotation_accel"`
}

// Record builds a log row from clamped parameter values.
func (pv *ParamVector) Record(eval int, fitness, meanSatiation float64, values []float64) evalRecord {
	return evalRecord{
		Eval:           eval,
		Fitness:        fitness,
		MeanSatiation:  meanSatiation,
		MutationChance: values[0],
		MutationCoeff:  values[1],
		FOVRange:       values[2],
		FOVAngle:       values[3],
		SpeedAccel:     values[4],
		RotationAccel:  values[5],
	}
}
