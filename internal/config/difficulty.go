package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// hardStartStage is the 1-based stage hard sessions start on.
const hardStartStage = 5

// ParsePreset converts a flag value into a preset. The empty string means
// normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// LivesForPreset returns the lives each player gets under a preset, or 0 to
// keep the configured value.
func LivesForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 5
	case DifficultyNormal:
		return 3
	case DifficultyHard:
		return 2
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyBanditPreset modifies the config based on a difficulty preset.
func ApplyBanditPreset(cfg *BanditConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Progression = ProgressionNone
		return
	}

	cfg.Difficulty.Progression = ProgressionStages
	if lives := LivesForPreset(preset); lives > 0 {
		cfg.Session.Lives = lives
	}

	switch preset {
	case DifficultyEasy, DifficultyNormal:
		cfg.Session.StartStage = 1
	case DifficultyHard:
		cfg.Session.StartStage = min(hardStartStage, max(len(cfg.Stages), 1))
	}
}
