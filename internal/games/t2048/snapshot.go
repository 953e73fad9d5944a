package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateWin         GameStateType = "win"
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// stateFor maps a session result to a snapshot state.
func stateFor(r Result) GameStateType {
	switch r {
	case ResultWon:
		return StateWin
	case ResultStalemate:
		return StateGameOver
	default:
		return StatePlaying
	}
}

// Snapshot captures a session for transport, determinism testing and replay.
type Snapshot struct {
	Tick     uint64        `json:"tick,omitempty"`
	Variant  string        `json:"variant,omitempty"`
	Size     int           `json:"size"`
	Board    Board         `json:"board"`
	Score    int           `json:"score"`
	MaxTile  int           `json:"max_tile"`
	Moves    int           `json:"moves"`
	WinValue int           `json:"win_value"`
	State    GameStateType `json:"state"`
}

// Snapshot returns the session state. The board is a copy.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Size:     s.opts.Size,
		Board:    s.board.Clone(),
		Score:    s.score,
		MaxTile:  MaxTile(s.board),
		Moves:    s.moves,
		WinValue: s.opts.WinValue,
		State:    stateFor(s.result),
	}
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	var snap Snapshot
	if g.session != nil {
		snap = g.session.Snapshot()
	}
	snap.Tick = g.tick
	snap.Variant = g.variant.ID

	switch {
	case g.tooSmall:
		snap.State = StatePausedSmall
	case g.paused && snap.State == StatePlaying:
		snap.State = StatePaused
	}
	return snap
}
