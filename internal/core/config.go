package core

import "time"

// DefaultTickRate is the frontend loop rate when none is configured.
const DefaultTickRate = 60

// RuntimeConfig is what a frontend hands a game on Reset: the terminal size
// it has to fit the board into, the tick rate, and the spawn seed.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int   // ticks per second
	Seed     int64 // 0 asks for a time-based seed
}

// DefaultConfig returns an 80x24 terminal at the default tick rate.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
	}
}

// WithDefaults fills a missing tick rate and replaces a zero seed with the clock.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}

// GameState is the score and status a game reports to its frontend.
type GameState struct {
	Score    int
	GameOver bool // won or stalemated; moves are no longer accepted
	Paused   bool
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
}
