package t2048

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// Board size limits.
const (
	MinBoardSize     = 1
	MaxBoardSize     = 8
	DefaultBoardSize = 4
)

var (
	// ErrInvalidSize is returned for board sizes outside [MinBoardSize, MaxBoardSize].
	ErrInvalidSize = errors.New("t2048: invalid board size")

	// ErrInvalidBoard is returned when a board is not square or holds a value
	// that is neither 0 nor a power of two.
	ErrInvalidBoard = errors.New("t2048: invalid board")
)

// Board is an N×N grid of tile values. 0 means empty.
// Engine functions treat boards as immutable snapshots and always return new ones.
type Board [][]int

// Cell is a 0-indexed (row, column) coordinate.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NewBoard creates an empty size×size board.
func NewBoard(size int) (Board, error) {
	if size < MinBoardSize || size > MaxBoardSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return emptyBoard(size), nil
}

// emptyBoard allocates a zeroed board without validating size.
func emptyBoard(size int) Board {
	b := make(Board, size)
	for r := range b {
		b[r] = make([]int, size)
	}
	return b
}

// ParseBoard validates rows and returns them as a Board copy.
func ParseBoard(rows [][]int) (Board, error) {
	n := len(rows)
	if n < MinBoardSize || n > MaxBoardSize {
		return nil, fmt.Errorf("%w: %d rows", ErrInvalidSize, n)
	}

	b := emptyBoard(n)
	for r, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidBoard, r, len(row), n)
		}
		for c, v := range row {
			if !validTile(v) {
				return nil, fmt.Errorf("%w: value %d at (%d, %d)", ErrInvalidBoard, v, r, c)
			}
			b[r][c] = v
		}
	}
	return b, nil
}

// ParseBoardString parses the String() format: rows separated by '/',
// cells by ','. Whitespace is ignored.
func ParseBoardString(s string) (Board, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty board", ErrInvalidBoard)
	}

	var rows [][]int
	for _, line := range strings.Split(s, "/") {
		var row []int
		for _, field := range strings.Split(line, ",") {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidBoard, field)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	return ParseBoard(rows)
}

// validTile reports whether v is 0 or a power of two >= 2.
func validTile(v int) bool {
	if v == 0 {
		return true
	}
	return v >= 2 && bits.OnesCount(uint(v)) == 1
}

// Size returns N.
func (b Board) Size() int {
	return len(b)
}

// Clone returns a deep copy.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	for r, row := range b {
		out[r] = append([]int(nil), row...)
	}
	return out
}

// Equal compares two boards cell by cell.
func (b Board) Equal(other Board) bool {
	if len(b) != len(other) {
		return false
	}
	for r := range b {
		if len(b[r]) != len(other[r]) {
			return false
		}
		for c := range b[r] {
			if b[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// Get returns the value at cell, or 0 when out of range.
func (b Board) Get(cell Cell) int {
	if cell.Row < 0 || cell.Row >= len(b) || cell.Col < 0 || cell.Col >= len(b[cell.Row]) {
		return 0
	}
	return b[cell.Row][cell.Col]
}

// String formats the board as "2,0,0,0/0,4,0,0/...".
func (b Board) String() string {
	var sb strings.Builder
	for r, row := range b {
		if r > 0 {
			sb.WriteByte('/')
		}
		for c, v := range row {
			if c > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(v))
		}
	}
	return sb.String()
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func EmptyCells(board Board) []Cell {
	var cells []Cell
	for r, row := range board {
		for c, v := range row {
			if v == 0 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(board Board) bool {
	for _, row := range board {
		for _, v := range row {
			if v == 0 {
				return true
			}
		}
	}
	return false
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(board Board) int {
	maxVal := 0
	for _, row := range board {
		for _, v := range row {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	return maxVal
}

// TileSum returns the total tile mass on the board.
func TileSum(board Board) int {
	sum := 0
	for _, row := range board {
		for _, v := range row {
			sum += v
		}
	}
	return sum
}
