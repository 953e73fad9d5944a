package t2048

// DefaultWinValue is the classic target tile.
const DefaultWinValue = 2048

// Result classifies a board for the session.
type Result string

const (
	ResultPlaying   Result = "playing"
	ResultWon       Result = "won"
	ResultStalemate Result = "stalemate"
)

// HasWon reports whether any tile reached winValue.
// A winValue of 0 or less disables the check.
func HasWon(board Board, winValue int) bool {
	if winValue <= 0 {
		return false
	}
	return MaxTile(board) >= winValue
}

// IsStalemate reports whether no direction changes the board.
func IsStalemate(board Board) bool {
	for _, dir := range Directions {
		res, err := Transform(board, dir)
		if err == nil && res.Moved {
			return false
		}
	}
	return true
}

// IsTerminal reports whether the session should stop accepting moves.
func IsTerminal(board Board, winValue int) bool {
	return HasWon(board, winValue) || IsStalemate(board)
}

// Outcome classifies board. A win takes precedence over a stalemate.
func Outcome(board Board, winValue int) Result {
	switch {
	case HasWon(board, winValue):
		return ResultWon
	case IsStalemate(board):
		return ResultStalemate
	default:
		return ResultPlaying
	}
}

// HasPossibleMerge returns true if any orthogonally adjacent tiles are equal.
func HasPossibleMerge(board Board) bool {
	n := len(board)
	for y := range n {
		for x := range n {
			val := board[y][x]
			if val == 0 {
				continue
			}
			// Check right neighbor
			if x < n-1 && board[y][x+1] == val {
				return true
			}
			// Check bottom neighbor
			if y < n-1 && board[y+1][x] == val {
				return true
			}
		}
	}
	return false
}

// CanMove is the adjacency-scan equivalent of !IsStalemate.
// A board without tiles has nothing to slide.
func CanMove(board Board) bool {
	if HasPossibleMerge(board) {
		return true
	}
	return HasEmptyCell(board) && MaxTile(board) > 0
}
