package t2048

// RotateClockwise returns the board rotated 90° clockwise.
func RotateClockwise(board Board) Board {
	n := len(board)
	out := emptyBoard(n)
	for r := range n {
		for c := range n {
			out[c][n-1-r] = board[r][c]
		}
	}
	return out
}

// RotateCounterClockwise returns the board rotated 90° counter-clockwise.
func RotateCounterClockwise(board Board) Board {
	n := len(board)
	out := emptyBoard(n)
	for r := range n {
		for c := range n {
			out[n-1-c][r] = board[r][c]
		}
	}
	return out
}

// Rotate180 returns the board rotated by a half turn.
func Rotate180(board Board) Board {
	n := len(board)
	out := emptyBoard(n)
	for r := range n {
		for c := range n {
			out[n-1-r][n-1-c] = board[r][c]
		}
	}
	return out
}

// MirrorHorizontal returns the board with every row reversed.
func MirrorHorizontal(board Board) Board {
	n := len(board)
	out := emptyBoard(n)
	for r := range n {
		for c := range n {
			out[r][n-1-c] = board[r][c]
		}
	}
	return out
}

func identity(board Board) Board {
	return board.Clone()
}
