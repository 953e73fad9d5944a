package t2048

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrSessionOver is returned by Move once the session reached a terminal state.
var ErrSessionOver = errors.New("t2048: session is over")

// Options configures a Session.
type Options struct {
	Size           int
	WinValue       int     // 0 disables the win check
	TwoProbability float64 // chance a spawned tile is a 2
	StartTiles     int
	Seed           int64 // 0 means time-based
}

// DefaultOptions returns the classic 4x4 rules.
func DefaultOptions() Options {
	return Options{
		Size:           DefaultBoardSize,
		WinValue:       DefaultWinValue,
		TwoProbability: DefaultTwoProbability,
		StartTiles:     DefaultStartTiles,
	}
}

// Validate checks option ranges.
func (o Options) Validate() error {
	if o.Size < MinBoardSize || o.Size > MaxBoardSize {
		return fmt.Errorf("%w: %d", ErrInvalidSize, o.Size)
	}
	if o.WinValue < 0 || (o.WinValue > 0 && !validTile(o.WinValue)) {
		return fmt.Errorf("t2048: win value %d is not a power of two", o.WinValue)
	}
	if o.TwoProbability < 0 || o.TwoProbability > 1 {
		return fmt.Errorf("t2048: two probability %v outside [0, 1]", o.TwoProbability)
	}
	if o.StartTiles < 1 || o.StartTiles > o.Size*o.Size {
		return fmt.Errorf("t2048: %d start tiles do not fit a %dx%d board", o.StartTiles, o.Size, o.Size)
	}
	return nil
}

// MoveOutcome reports what a Session.Move did.
type MoveOutcome struct {
	Points  int
	Moved   bool
	Spawned *Spawned
	Result  Result
}

// Session owns one player's live game: board, score and terminal state.
// It is not safe for concurrent use.
type Session struct {
	opts   Options
	rng    *rand.Rand
	board  Board
	score  int
	moves  int
	result Result
}

// NewSession starts a game with two (or StartTiles) random tiles.
func NewSession(opts Options) (*Session, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		opts: opts,
		rng:  rand.New(rand.NewSource(seed)),
	}
	s.reset()
	return s, nil
}

// reset builds a fresh starting board at the current size.
func (s *Session) reset() {
	// Options were validated, so the size is in range.
	board, _ := StartingBoard(s.opts.Size, s.opts.StartTiles, s.opts.TwoProbability, s.rng)
	s.board = board
	s.score = 0
	s.moves = 0
	s.result = Outcome(s.board, s.opts.WinValue)
}

// Move applies dir. A move that changes nothing spawns no tile and scores nothing.
func (s *Session) Move(dir Direction) (MoveOutcome, error) {
	if s.Over() {
		return MoveOutcome{Result: s.result}, ErrSessionOver
	}

	res, err := Transform(s.board, dir)
	if err != nil {
		return MoveOutcome{Result: s.result}, err
	}
	if !res.Moved {
		return MoveOutcome{Result: s.result}, nil
	}

	board, spawned := SpawnTile(res.Board, s.opts.TwoProbability, s.rng)
	s.board = board
	s.score += res.Points
	s.moves++
	s.result = Outcome(s.board, s.opts.WinValue)

	return MoveOutcome{
		Points:  res.Points,
		Moved:   true,
		Spawned: spawned,
		Result:  s.result,
	}, nil
}

// Restart begins a new game with the same options.
func (s *Session) Restart() {
	s.reset()
}

// Resize restarts the game on a board of a different size.
// StartTiles is capped to fit the new board.
func (s *Session) Resize(size int) error {
	opts := s.opts
	opts.Size = size
	opts.StartTiles = min(opts.StartTiles, size*size)
	if err := opts.Validate(); err != nil {
		return err
	}
	s.opts = opts
	s.reset()
	return nil
}

// Board returns a copy of the current board.
func (s *Session) Board() Board {
	return s.board.Clone()
}

// Score returns the cumulative score.
func (s *Session) Score() int {
	return s.score
}

// Size returns the board dimension.
func (s *Session) Size() int {
	return s.opts.Size
}

// Moves returns the number of accepted moves.
func (s *Session) Moves() int {
	return s.moves
}

// WinValue returns the target tile, 0 when disabled.
func (s *Session) WinValue() int {
	return s.opts.WinValue
}

// Result returns the current classification of the board.
func (s *Session) Result() Result {
	return s.result
}

// Over reports whether the session stopped accepting moves.
func (s *Session) Over() bool {
	return s.result != ResultPlaying
}
