package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var (
	flagMoveBoard string
	flagMoveDir   string
	flagMoveSpawn bool
)

var moveCmd = &cobra.Command{
	Use:   "move",
	Short: "Apply one move to a board",
	Long: `Slide the tiles of a board in one direction and print the result.

Boards are written row by row, rows separated by '/' and cells by ','.
Empty cells are 0.

Examples:
  t2048 move --board "2,0,2,2/0,0,0,0/0,0,0,0/0,0,0,0" --dir left
  t2048 move --board "2,2/4,0" --dir up --spawn --seed 7`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		opts := t2048.LoadOptions()
		opts.Seed = flagSeed
		if err := runMove(cmd.OutOrStdout(), flagMoveBoard, flagMoveDir, flagMoveSpawn, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	moveCmd.Flags().StringVar(&flagMoveBoard, "board", "", "Board to move, e.g. \"2,0/0,2\"")
	moveCmd.Flags().StringVar(&flagMoveDir, "dir", "", "Direction: up, down, left, right")
	moveCmd.Flags().BoolVar(&flagMoveSpawn, "spawn", false, "Spawn a random tile after an accepted move")
	moveCmd.MarkFlagRequired("board")
	moveCmd.MarkFlagRequired("dir")
}

// runMove parses the board and direction, applies the move and writes the result.
// opts supplies the spawn odds, the win value and the seed.
func runMove(w io.Writer, boardStr, dirStr string, spawn bool, opts t2048.Options) error {
	board, err := t2048.ParseBoardString(boardStr)
	if err != nil {
		return err
	}
	dir, err := t2048.ParseDirection(dirStr)
	if err != nil {
		return err
	}

	res, err := t2048.Transform(board, dir)
	if err != nil {
		return err
	}

	out := res.Board
	var spawned *t2048.Spawned
	if spawn && res.Moved {
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(seed))
		out, spawned = t2048.SpawnTile(out, opts.TwoProbability, rng)
	}

	fmt.Fprint(w, formatBoard(out))
	fmt.Fprintf(w, "board:  %s\n", out)
	fmt.Fprintf(w, "points: %d\n", res.Points)
	fmt.Fprintf(w, "moved:  %t\n", res.Moved)
	if spawned != nil {
		fmt.Fprintf(w, "spawn:  %d at (%d, %d)\n", spawned.Value, spawned.Row, spawned.Col)
	}
	if result := t2048.Outcome(out, opts.WinValue); result != t2048.ResultPlaying {
		fmt.Fprintf(w, "result: %s\n", result)
	}
	return nil
}

// formatBoard renders a board as right-aligned columns, '.' for empty cells.
func formatBoard(b t2048.Board) string {
	width := len(strconv.Itoa(t2048.MaxTile(b)))

	var sb strings.Builder
	for _, row := range b {
		for c, v := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			cell := "."
			if v != 0 {
				cell = strconv.Itoa(v)
			}
			sb.WriteString(strings.Repeat(" ", width-len(cell)))
			sb.WriteString(cell)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
