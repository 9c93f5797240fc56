package config

import (
	_ "embed"
)

//go:embed defaults/starfall.yaml
var defaultStarfallYAML []byte

// DefaultStarfallConfig returns the hardcoded Starfall configuration.
// It mirrors defaults/starfall.yaml and is used if the embedded file cannot be parsed.
func DefaultStarfallConfig() StarfallConfig {
	return StarfallConfig{
		Movement: MovementConfig{
			DurationFactor: 0.5,
			ReferenceSpeed: 100,
		},
		Spawn: SpawnConfig{
			StarInterval:   0.1,
			DebrisScale:    Range{Min: 1.0, Max: 5.0},
			StarScale:      Range{Min: 0.5, Max: 4.0},
			FallDuration:   Range{Min: 2.0, Max: 6.0},
			DebrisBaseSize: 10,
			StarBaseSize:   5,
		},
		Scoring: ScoringConfig{
			Interval: 1.0,
			Points:   1,
		},
		Player: PlayerConfig{
			Width:  20,
			Height: 20,
			StartX: 0.5,
			StartY: 0.8,
		},
		World: WorldConfig{
			UnitsPerCell: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:         true,
			InitialInterval: 2.0,
			Decrement:       0.02,
			Floor:           0.3,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "starfall":
		return defaultStarfallYAML
	default:
		return nil
	}
}
