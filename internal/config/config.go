// Package config provides YAML-based game configuration loading and
// difficulty management for Starfall.
package config

import (
	"errors"
	"fmt"
)

// StarfallConfig contains all tunable parameters of the gameplay loop.
type StarfallConfig struct {
	Movement   MovementConfig   `yaml:"movement"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Player     PlayerConfig     `yaml:"player"`
	World      WorldConfig      `yaml:"world"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// MovementConfig controls how long a move toward the target takes:
// duration = DurationFactor * distance / ReferenceSpeed.
type MovementConfig struct {
	DurationFactor float64 `yaml:"duration_factor"`
	ReferenceSpeed float64 `yaml:"reference_speed"` // world units per second
}

// Range is an inclusive [Min, Max] interval sampled uniformly.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// SpawnConfig defines how falling entities are created.
type SpawnConfig struct {
	StarInterval   float64 `yaml:"star_interval"`    // seconds between stars
	DebrisScale    Range   `yaml:"debris_scale"`     // size multiplier range for debris
	StarScale      Range   `yaml:"star_scale"`       // size multiplier range for stars
	FallDuration   Range   `yaml:"fall_duration"`    // seconds to cross the screen
	DebrisBaseSize float64 `yaml:"debris_base_size"` // world units at scale 1.0
	StarBaseSize   float64 `yaml:"star_base_size"`   // world units at scale 1.0
}

// ScoringConfig defines the fixed scoring cadence.
type ScoringConfig struct {
	Interval float64 `yaml:"interval"` // seconds between score increments
	Points   int     `yaml:"points"`   // points added per increment
}

// PlayerConfig defines the player's collision size and start position.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	StartX float64 `yaml:"start_x"` // fraction of world width
	StartY float64 `yaml:"start_y"` // fraction of world height
}

// WorldConfig maps terminal cells to world units.
type WorldConfig struct {
	UnitsPerCell float64 `yaml:"units_per_cell"`
}

// DifficultyConfig defines the debris spawn interval ramp.
type DifficultyConfig struct {
	Enabled         bool    `yaml:"enabled"`
	InitialInterval float64 `yaml:"initial_interval"` // seconds between debris at round start
	Decrement       float64 `yaml:"decrement"`        // seconds removed per scoring tick
	Floor           float64 `yaml:"floor"`            // interval never drops below this
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset.
// An empty string yields an empty preset, meaning "use the config as loaded".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate checks the constraints the gameplay loop relies on.
func (c StarfallConfig) Validate() error {
	var errs []error

	if c.Movement.ReferenceSpeed <= 0 {
		errs = append(errs, errors.New("movement.reference_speed must be positive"))
	}
	if c.Movement.DurationFactor < 0 {
		errs = append(errs, errors.New("movement.duration_factor must not be negative"))
	}
	if c.Spawn.StarInterval <= 0 {
		errs = append(errs, errors.New("spawn.star_interval must be positive"))
	}
	if err := c.Spawn.DebrisScale.validate("spawn.debris_scale"); err != nil {
		errs = append(errs, err)
	}
	if err := c.Spawn.StarScale.validate("spawn.star_scale"); err != nil {
		errs = append(errs, err)
	}
	if err := c.Spawn.FallDuration.validate("spawn.fall_duration"); err != nil {
		errs = append(errs, err)
	}
	if c.Spawn.FallDuration.Min <= 0 {
		errs = append(errs, errors.New("spawn.fall_duration.min must be positive"))
	}
	if c.Scoring.Interval <= 0 {
		errs = append(errs, errors.New("scoring.interval must be positive"))
	}
	if c.Scoring.Points < 0 {
		errs = append(errs, errors.New("scoring.points must not be negative"))
	}
	if c.World.UnitsPerCell <= 0 {
		errs = append(errs, errors.New("world.units_per_cell must be positive"))
	}
	if c.Difficulty.Floor <= 0 {
		errs = append(errs, errors.New("difficulty.floor must be positive"))
	}
	if c.Difficulty.InitialInterval < c.Difficulty.Floor {
		errs = append(errs, errors.New("difficulty.initial_interval must not be below difficulty.floor"))
	}
	if c.Difficulty.Decrement < 0 {
		errs = append(errs, errors.New("difficulty.decrement must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid starfall config: %w", errors.Join(errs...))
	}
	return nil
}

func (r Range) validate(name string) error {
	if r.Min < 0 || r.Max < r.Min {
		return fmt.Errorf("%s must satisfy 0 <= min <= max, got [%g, %g]", name, r.Min, r.Max)
	}
	return nil
}
