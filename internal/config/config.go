// Package config provides YAML-based game configuration loading for
// Shape Dodger.
package config

import (
	"errors"
	"fmt"
)

// DodgerConfig contains all tunable parameters of the simulation.
type DodgerConfig struct {
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Scoring   ScoringConfig  `yaml:"scoring"`
}

// PlayerConfig defines the player's starting placement and movement.
type PlayerConfig struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Size   float64 `yaml:"size"`
	Speed  float64 `yaml:"speed"`
	Shape  int     `yaml:"shape"` // Default shape index used when none is chosen
	Color  int     `yaml:"color"` // Default palette index used when none is chosen
}

// ObstacleConfig defines spawning and lifetime of falling obstacles.
type ObstacleConfig struct {
	SpawnInterval int       `yaml:"spawn_interval"`
	SpawnY        float64   `yaml:"spawn_y"`
	DespawnY      float64   `yaml:"despawn_y"`
	Size          float64   `yaml:"size"`
	FallSpeeds    []float64 `yaml:"fall_speeds"`
}

// ScoringConfig defines how collisions are scored.
type ScoringConfig struct {
	MatchPoints    int     `yaml:"match_points"`
	ColorTolerance float64 `yaml:"color_tolerance"`
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration can drive a simulation.
func (c DodgerConfig) Validate() error {
	var errs []error

	if c.Player.Size <= 0 || c.Player.Size >= 2 {
		errs = append(errs, fmt.Errorf("player.size must be in (0, 2), got %g", c.Player.Size))
	}
	if c.Player.Speed < 0 {
		errs = append(errs, fmt.Errorf("player.speed must not be negative, got %g", c.Player.Speed))
	}
	if c.Obstacles.SpawnInterval <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.spawn_interval must be positive, got %d", c.Obstacles.SpawnInterval))
	}
	if c.Obstacles.Size <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.size must be positive, got %g", c.Obstacles.Size))
	}
	if c.Obstacles.DespawnY >= c.Obstacles.SpawnY {
		errs = append(errs, fmt.Errorf("obstacles.despawn_y (%g) must be below spawn_y (%g)", c.Obstacles.DespawnY, c.Obstacles.SpawnY))
	}
	if len(c.Obstacles.FallSpeeds) == 0 {
		errs = append(errs, errors.New("obstacles.fall_speeds must not be empty"))
	}
	for i, s := range c.Obstacles.FallSpeeds {
		if s <= 0 {
			errs = append(errs, fmt.Errorf("obstacles.fall_speeds[%d] must be positive, got %g", i, s))
		}
	}
	if c.Scoring.MatchPoints < 0 {
		errs = append(errs, fmt.Errorf("scoring.match_points must not be negative, got %d", c.Scoring.MatchPoints))
	}
	if c.Scoring.ColorTolerance <= 0 {
		errs = append(errs, fmt.Errorf("scoring.color_tolerance must be positive, got %g", c.Scoring.ColorTolerance))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
