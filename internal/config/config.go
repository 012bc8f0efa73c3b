// Package config provides YAML-based game configuration loading and
// difficulty presets for Bandit Run.
package config

import (
	"errors"
	"fmt"
)

// SubstageCount is the number of lengths each stage row must carry.
const SubstageCount = 5

// BanditConfig contains all configuration for the driving game.
type BanditConfig struct {
	Session    SessionConfig    `yaml:"session"`
	Vehicle    VehicleConfig    `yaml:"vehicle"`
	Hazards    HazardConfig     `yaml:"hazards"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Stages     []StageConfig    `yaml:"stages"`
}

// SessionConfig defines per-session player parameters.
type SessionConfig struct {
	Lives      int `yaml:"lives"`
	StartStage int `yaml:"start_stage"` // 1-based
}

// VehicleConfig defines vehicle parameters.
type VehicleConfig struct {
	MaxSpeed int `yaml:"max_speed"`
}

// HazardConfig defines the hazard spawn cooldown.
type HazardConfig struct {
	SpawnBase   int `yaml:"spawn_base"`
	SpawnJitter int `yaml:"spawn_jitter"`
}

// TimingConfig defines tick counts of the turn presentation.
type TimingConfig struct {
	PreRoll    int `yaml:"pre_roll"`
	ReadyTicks int `yaml:"ready_ticks"`
	CrashTicks int `yaml:"crash_ticks"`
}

// DifficultyConfig defines how the stage index progresses.
type DifficultyConfig struct {
	Progression string `yaml:"progression"` // "stages" or "none"
}

// Fixed reports whether the stage index is pinned.
func (d DifficultyConfig) Fixed() bool {
	return d.Progression == ProgressionNone
}

// Progression modes.
const (
	ProgressionStages = "stages"
	ProgressionNone   = "none"
)

// StageConfig is one row of the stage table.
type StageConfig struct {
	MinSpeed      int   `yaml:"min_speed"`
	SpawnVariance int   `yaml:"spawn_variance"`
	RoadVariance  int   `yaml:"road_variance"`
	Lengths       []int `yaml:"lengths"` // lead-in, hazard, lead-in, water, cooldown
}

// Validate reports every invalid field at once.
func (c BanditConfig) Validate() error {
	var errs []error
	if c.Session.Lives < 1 {
		errs = append(errs, fmt.Errorf("session.lives must be at least 1, got %d", c.Session.Lives))
	}
	if c.Session.StartStage < 1 || (len(c.Stages) > 0 && c.Session.StartStage > len(c.Stages)) {
		errs = append(errs, fmt.Errorf("session.start_stage must be in [1, %d], got %d", len(c.Stages), c.Session.StartStage))
	}
	if c.Vehicle.MaxSpeed < 1 {
		errs = append(errs, fmt.Errorf("vehicle.max_speed must be at least 1, got %d", c.Vehicle.MaxSpeed))
	}
	if c.Hazards.SpawnBase < 0 {
		errs = append(errs, fmt.Errorf("hazards.spawn_base must not be negative, got %d", c.Hazards.SpawnBase))
	}
	if c.Hazards.SpawnJitter < 1 {
		errs = append(errs, fmt.Errorf("hazards.spawn_jitter must be at least 1, got %d", c.Hazards.SpawnJitter))
	}
	if c.Timing.PreRoll < 0 || c.Timing.ReadyTicks < 0 || c.Timing.CrashTicks < 0 {
		errs = append(errs, errors.New("timing values must not be negative"))
	}
	switch c.Difficulty.Progression {
	case "", ProgressionStages, ProgressionNone:
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression must be %q or %q, got %q", ProgressionStages, ProgressionNone, c.Difficulty.Progression))
	}

	if len(c.Stages) == 0 {
		errs = append(errs, errors.New("stages must not be empty"))
	}
	for i, s := range c.Stages {
		if s.MinSpeed < 1 || s.MinSpeed > c.Vehicle.MaxSpeed {
			errs = append(errs, fmt.Errorf("stages[%d].min_speed must be in [1, %d], got %d", i, c.Vehicle.MaxSpeed, s.MinSpeed))
		}
		if s.SpawnVariance < 1 {
			errs = append(errs, fmt.Errorf("stages[%d].spawn_variance must be at least 1, got %d", i, s.SpawnVariance))
		}
		if s.RoadVariance < 1 {
			errs = append(errs, fmt.Errorf("stages[%d].road_variance must be at least 1, got %d", i, s.RoadVariance))
		}
		if len(s.Lengths) != SubstageCount {
			errs = append(errs, fmt.Errorf("stages[%d].lengths must have %d entries, got %d", i, SubstageCount, len(s.Lengths)))
			continue
		}
		for j, l := range s.Lengths {
			if l < 0 {
				errs = append(errs, fmt.Errorf("stages[%d].lengths[%d] must not be negative, got %d", i, j, l))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid bandit config: %w", errors.Join(errs...))
	}
	return nil
}
