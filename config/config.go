// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalidConfig is returned by Validate and Load for out-of-range values.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds all simulation configuration parameters.
type Config struct {
	World     WorldConfig     `yaml:"world"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Eye       EyeConfig       `yaml:"eye"`
	Genetics  GeneticsConfig  `yaml:"genetics"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values (computed after load, not from YAML)
	Derived DerivedConfig `yaml:"-"`
}

// WorldConfig holds population sizes.
type WorldConfig struct {
	Animals int `yaml:"animals"`
	Foods   int `yaml:"foods"`
	Workers int `yaml:"workers"` // brain workers (0 = GOMAXPROCS, 1 = single-threaded)
}

// PhysicsConfig holds movement and eating parameters. Distances are in
// unit-torus coordinates, angles in radians.
type PhysicsConfig struct {
	SpeedMin      float64 `yaml:"speed_min"`
	SpeedMax      float64 `yaml:"speed_max"`
	InitialSpeed  float64 `yaml:"initial_speed"`
	SpeedAccel    float64 `yaml:"speed_accel"`    // max speed change per step
	RotationAccel float64 `yaml:"rotation_accel"` // max heading change per step
	EatRadius     float64 `yaml:"eat_radius"`
}

// EyeConfig holds the food sensor geometry.
type EyeConfig struct {
	FOVRange float64 `yaml:"fov_range"`
	FOVAngle float64 `yaml:"fov_angle"`
	Cells    int     `yaml:"cells"`
}

// GeneticsConfig holds generation length and mutation parameters.
type GeneticsConfig struct {
	GenerationLength int     `yaml:"generation_length"` // steps per generation
	MutationChance   float64 `yaml:"mutation_chance"`
	MutationCoeff    float64 `yaml:"mutation_coeff"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	PerfWindow     int `yaml:"perf_window"`       // steps per perf sample
	HallOfFameSize int `yaml:"hall_of_fame_size"` // 0 disables
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	EatRadius32    float32 // Physics.EatRadius as float32
	InitialSpeed32 float32 // Physics.InitialSpeed as float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns a fresh copy of the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in the file.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every numeric parameter against its allowed range and,
// on success, refreshes the derived values.
func (c *Config) Validate() error {
	checks := []struct {
		ok   bool
		name string
		val  any
	}{
		{c.World.Animals > 0, "world.animals", c.World.Animals},
		{c.World.Foods >= 0, "world.foods", c.World.Foods},
		{c.World.Workers >= 0, "world.workers", c.World.Workers},
		{c.Physics.SpeedMin >= 0, "physics.speed_min", c.Physics.SpeedMin},
		{c.Physics.SpeedMax >= c.Physics.SpeedMin, "physics.speed_max", c.Physics.SpeedMax},
		{c.Physics.InitialSpeed >= c.Physics.SpeedMin && c.Physics.InitialSpeed <= c.Physics.SpeedMax,
			"physics.initial_speed", c.Physics.InitialSpeed},
		{c.Physics.SpeedAccel >= 0, "physics.speed_accel", c.Physics.SpeedAccel},
		{c.Physics.RotationAccel >= 0, "physics.rotation_accel", c.Physics.RotationAccel},
		{c.Physics.EatRadius > 0, "physics.eat_radius", c.Physics.EatRadius},
		{c.Eye.FOVRange > 0, "eye.fov_range", c.Eye.FOVRange},
		{c.Eye.FOVAngle > 0 && c.Eye.FOVAngle <= 2*math.Pi, "eye.fov_angle", c.Eye.FOVAngle},
		{c.Eye.Cells > 0, "eye.cells", c.Eye.Cells},
		{c.Genetics.GenerationLength > 0, "genetics.generation_length", c.Genetics.GenerationLength},
		{c.Genetics.MutationChance >= 0 && c.Genetics.MutationChance <= 1,
			"genetics.mutation_chance", c.Genetics.MutationChance},
		{c.Genetics.MutationCoeff >= 0, "genetics.mutation_coeff", c.Genetics.MutationCoeff},
		{c.Telemetry.PerfWindow > 0, "telemetry.perf_window", c.Telemetry.PerfWindow},
		{c.Telemetry.HallOfFameSize >= 0, "telemetry.hall_of_fame_size", c.Telemetry.HallOfFameSize},
	}

	for _, check := range checks {
		if !check.ok {
			return fmt.Errorf("%s = %v: %w", check.name, check.val, ErrInvalidConfig)
		}
	}
	c.computeDerived()
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.EatRadius32 = float32(c.Physics.EatRadius)
	c.Derived.InitialSpeed32 = float32(c.Physics.InitialSpeed)
}

// WriteYAML saves the configuration next to experiment output.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
