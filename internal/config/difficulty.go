package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPreset adjusts round timing for a difficulty preset.
// An empty preset leaves the config as loaded.
func ApplyPreset(cfg *KitchenConfig, preset DifficultyPreset) error {
	switch preset {
	case "", DifficultyNormal:
	case DifficultyEasy:
		cfg.Round.DurationSecs = cfg.Round.DurationSecs * 3 / 2
		cfg.Round.ChopSecs = cfg.Round.ChopSecs * 2 / 3
	case DifficultyHard:
		cfg.Round.DurationSecs = max(1, cfg.Round.DurationSecs*3/4)
		cfg.Round.ChopSecs = cfg.Round.ChopSecs * 4 / 3
	default:
		return fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", preset)
	}
	return nil
}
