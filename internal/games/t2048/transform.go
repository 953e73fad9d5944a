package t2048

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDirection is returned for direction values outside the four cardinals.
var ErrInvalidDirection = errors.New("t2048: invalid direction")

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every valid direction.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

var directionNames = map[Direction]string{
	DirUp:    "up",
	DirDown:  "down",
	DirLeft:  "left",
	DirRight: "right",
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	_, ok := orientations[d]
	return ok
}

// ParseDirection converts "up", "down", "left" or "right" (any case) to a Direction.
func ParseDirection(s string) (Direction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d, n := range directionNames {
		if n == name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// orientation turns a board so the move becomes a left collapse, and back.
type orientation struct {
	forward func(Board) Board
	inverse func(Board) Board
}

var orientations = map[Direction]orientation{
	DirLeft:  {forward: identity, inverse: identity},
	DirRight: {forward: Rotate180, inverse: Rotate180},
	DirUp:    {forward: RotateCounterClockwise, inverse: RotateClockwise},
	DirDown:  {forward: RotateClockwise, inverse: RotateCounterClockwise},
}

// MoveResult is the outcome of sliding a board in one direction.
type MoveResult struct {
	Board  Board
	Points int
	Moved  bool
}

// Transform slides and merges every row of board in direction dir.
// No tile is spawned. The input board is never modified.
func Transform(board Board, dir Direction) (MoveResult, error) {
	o, ok := orientations[dir]
	if !ok {
		return MoveResult{}, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}

	working := o.forward(board)
	collapsed := make(Board, len(working))
	total := 0
	moved := false

	for r, row := range working {
		newRow, points := CollapseRow(row)
		collapsed[r] = newRow
		total += points

		for c := range row {
			if newRow[c] != row[c] {
				moved = true
			}
		}
	}

	return MoveResult{
		Board:  o.inverse(collapsed),
		Points: total,
		Moved:  moved,
	}, nil
}
