package config

import (
	_ "embed"
)

//go:embed defaults/dodger.yaml
var defaultDodgerYAML []byte

// DefaultDodgerConfig returns the built-in Shape Dodger configuration.
func DefaultDodgerConfig() DodgerConfig {
	return DodgerConfig{
		Player: PlayerConfig{
			StartX: 0,
			StartY: -0.8,
			Size:   0.2,
			Speed:  0.02,
		},
		Obstacles: ObstacleConfig{
			SpawnInterval: 100,
			SpawnY:        1.2,
			DespawnY:      -1.2,
			Size:          0.15,
			FallSpeeds:    []float64{0.008, 0.010, 0.012, 0.014, 0.016},
		},
		Scoring: ScoringConfig{
			MatchPoints:    10,
			ColorTolerance: 0.1,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDodgerYAML
}
