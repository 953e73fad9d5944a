// Package config provides YAML-based game configuration loading and
// difficulty presets for t2048.
package config

import (
	"fmt"
	"math/bits"
)

// Board size bounds accepted by the config.
const (
	MinBoardSize = 1
	MaxBoardSize = 8
)

// T2048Config contains all configuration for 2048.
type T2048Config struct {
	Board T2048Board `yaml:"board"`
	Rules T2048Rules `yaml:"rules"`
}

// T2048Board defines the grid parameters.
type T2048Board struct {
	Size       int `yaml:"size"`
	StartTiles int `yaml:"start_tiles"`
}

// T2048Rules defines scoring targets and spawn odds.
type T2048Rules struct {
	WinValue       int     `yaml:"win_value"`       // 0 disables the win check
	TwoProbability float64 `yaml:"two_probability"` // Probability of spawning 2 instead of 4 (0.0-1.0)
}

// Validate reports the first out-of-range value.
func (c T2048Config) Validate() error {
	if c.Board.Size < MinBoardSize || c.Board.Size > MaxBoardSize {
		return fmt.Errorf("config: board.size %d outside [%d, %d]", c.Board.Size, MinBoardSize, MaxBoardSize)
	}
	if c.Board.StartTiles < 1 || c.Board.StartTiles > c.Board.Size*c.Board.Size {
		return fmt.Errorf("config: board.start_tiles %d does not fit a %dx%d board", c.Board.StartTiles, c.Board.Size, c.Board.Size)
	}
	if c.Rules.WinValue < 0 || (c.Rules.WinValue > 0 && (c.Rules.WinValue < 2 || bits.OnesCount(uint(c.Rules.WinValue)) != 1)) {
		return fmt.Errorf("config: rules.win_value %d is not a power of two", c.Rules.WinValue)
	}
	if c.Rules.TwoProbability < 0 || c.Rules.TwoProbability > 1 {
		return fmt.Errorf("config: rules.two_probability %v outside [0, 1]", c.Rules.TwoProbability)
	}
	return nil
}
