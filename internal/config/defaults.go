package config

import (
	_ "embed"
)

//go:embed defaults/bandit.yaml
var defaultBanditYAML []byte

// DefaultBanditConfig returns the default configuration: the sixteen-stage
// arcade progression with three lives.
func DefaultBanditConfig() BanditConfig {
	minSpeed := []int{2, 3, 3, 3, 4, 4, 4, 4, 4, 4, 4, 5, 5, 5, 5, 5}
	spawnVariance := []int{100, 90, 80, 70, 65, 60, 55, 50, 45, 40, 35, 30, 25, 20, 15, 10}
	roadVariance := []int{5, 4, 4, 4, 3, 3, 3, 2, 2, 2, 2, 1, 1, 1, 1, 1}
	waterLength := []int{60, 70, 80, 90, 100, 100, 100, 110, 110, 110, 120, 130, 140, 150, 160, 170}

	stages := make([]StageConfig, len(minSpeed))
	for i := range stages {
		stages[i] = StageConfig{
			MinSpeed:      minSpeed[i],
			SpawnVariance: spawnVariance[i],
			RoadVariance:  roadVariance[i],
			Lengths:       []int{3, 20 + i, 3, waterLength[i], 5},
		}
	}

	return BanditConfig{
		Session: SessionConfig{
			Lives:      3,
			StartStage: 1,
		},
		Vehicle: VehicleConfig{
			MaxSpeed: 5,
		},
		Hazards: HazardConfig{
			SpawnBase:   6,
			SpawnJitter: 7,
		},
		Timing: TimingConfig{
			PreRoll:    240,
			ReadyTicks: 90,
			CrashTicks: 50,
		},
		Difficulty: DifficultyConfig{
			Progression: ProgressionStages,
		},
		Stages: stages,
	}
}
