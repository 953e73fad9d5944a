package t2048

import "github.com/vovakirdan/tui-2048/internal/core"

// Spawn defaults.
const (
	DefaultTwoProbability = 0.7
	DefaultStartTiles     = 2
)

// Rand is the randomness SpawnTile consumes. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Spawned describes a tile placed by SpawnTile.
type Spawned struct {
	Cell
	Value int `json:"value"`
}

// SpawnTile places a 2 (probability pTwo) or a 4 on a uniformly chosen empty cell
// of a copy of board. On a full board it returns an unmodified copy and nil.
func SpawnTile(board Board, pTwo float64, rng Rand) (Board, *Spawned) {
	out := board.Clone()
	empty := EmptyCells(out)
	if len(empty) == 0 {
		return out, nil
	}

	cell := empty[rng.Intn(len(empty))]

	value := 4
	if rng.Float64() < core.ClampF(pTwo, 0, 1) {
		value = 2
	}

	out[cell.Row][cell.Col] = value
	return out, &Spawned{Cell: cell, Value: value}
}

// StartingBoard creates an empty board and spawns tiles onto it.
func StartingBoard(size, tiles int, pTwo float64, rng Rand) (Board, error) {
	board, err := NewBoard(size)
	if err != nil {
		return nil, err
	}
	for range tiles {
		board, _ = SpawnTile(board, pTwo, rng)
	}
	return board, nil
}
