package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// DefaultT2048Config returns the default 2048 configuration.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Board: T2048Board{
			Size:       4,
			StartTiles: 2,
		},
		Rules: T2048Rules{
			WinValue:       2048,
			TwoProbability: 0.7,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "t2048", "2048":
		return defaultT2048YAML
	default:
		return nil
	}
}
