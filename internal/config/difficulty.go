package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset converts a CLI value to a preset. "" means no preset.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// TwoProbabilityForPreset returns the spawn odds for a preset.
// Fewer 2s means fewer cheap merges.
func TwoProbabilityForPreset(preset DifficultyPreset, current float64) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.9
	case DifficultyNormal:
		return 0.7
	case DifficultyHard:
		return 0.5
	default:
		return current
	}
}

// ApplyT2048Preset modifies the config based on a difficulty preset.
func ApplyT2048Preset(cfg *T2048Config, preset DifficultyPreset) {
	cfg.Rules.TwoProbability = TwoProbabilityForPreset(preset, cfg.Rules.TwoProbability)
}
