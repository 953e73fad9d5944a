package t2048

import (
	"errors"
	"math/rand"
	"testing"
)

func TestTransform(t *testing.T) {
	base := Board{
		{2, 0, 2, 2},
		{0, 4, 0, 4},
		{2, 0, 0, 0},
		{2, 4, 8, 16},
	}

	tests := []struct {
		name   string
		dir    Direction
		want   Board
		points int
	}{
		{
			name: "left",
			dir:  DirLeft,
			want: Board{
				{4, 2, 0, 0},
				{8, 0, 0, 0},
				{2, 0, 0, 0},
				{2, 4, 8, 16},
			},
			points: 12,
		},
		{
			name: "right",
			dir:  DirRight,
			want: Board{
				{0, 0, 2, 4},
				{0, 0, 0, 8},
				{0, 0, 0, 2},
				{2, 4, 8, 16},
			},
			points: 12,
		},
		{
			name: "up",
			dir:  DirUp,
			want: Board{
				{4, 8, 2, 2},
				{2, 0, 8, 4},
				{0, 0, 0, 16},
				{0, 0, 0, 0},
			},
			points: 12,
		},
		{
			name: "down",
			dir:  DirDown,
			want: Board{
				{0, 0, 0, 0},
				{0, 0, 0, 2},
				{2, 0, 2, 4},
				{4, 8, 8, 16},
			},
			points: 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := base.Clone()
			res, err := Transform(base, tt.dir)
			if err != nil {
				t.Fatalf("Transform(%s) error: %v", tt.dir, err)
			}
			if !res.Board.Equal(tt.want) {
				t.Errorf("Transform(%s) = %v, want %v", tt.dir, res.Board, tt.want)
			}
			if res.Points != tt.points {
				t.Errorf("Transform(%s) points = %d, want %d", tt.dir, res.Points, tt.points)
			}
			if !res.Moved {
				t.Errorf("Transform(%s) moved = false", tt.dir)
			}
			if !base.Equal(snapshot) {
				t.Errorf("Transform(%s) mutated its input", tt.dir)
			}
		})
	}
}

func TestTransformNoMove(t *testing.T) {
	b := Board{
		{2, 4, 0},
		{8, 0, 0},
		{0, 0, 0},
	}

	res, err := Transform(b, DirLeft)
	if err != nil {
		t.Fatal(err)
	}
	if res.Moved || res.Points != 0 {
		t.Errorf("Transform(left) = moved %v points %d, want unchanged", res.Moved, res.Points)
	}
	if !res.Board.Equal(b) {
		t.Errorf("unmoved board = %v, want %v", res.Board, b)
	}

	res, err = Transform(b, DirUp)
	if err != nil {
		t.Fatal(err)
	}
	if res.Moved {
		t.Error("Transform(up) moved, want unchanged")
	}
}

func TestTransformInvalidDirection(t *testing.T) {
	b := Board{{2, 2}, {0, 0}}
	for _, dir := range []Direction{-1, 4, 42} {
		if _, err := Transform(b, dir); !errors.Is(err, ErrInvalidDirection) {
			t.Errorf("Transform(%d) error = %v, want ErrInvalidDirection", int(dir), err)
		}
		if dir.Valid() {
			t.Errorf("Direction(%d).Valid() = true", int(dir))
		}
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input   string
		want    Direction
		wantErr bool
	}{
		{"up", DirUp, false},
		{"DOWN", DirDown, false},
		{" Left ", DirLeft, false},
		{"right", DirRight, false},
		{"north", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDirection(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDirection) {
					t.Errorf("ParseDirection(%q) error = %v, want ErrInvalidDirection", tt.input, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseDirection(%q) = %v, %v; want %v", tt.input, got, err, tt.want)
			}
			if got.String() != tt.want.String() {
				t.Errorf("String() = %q", got.String())
			}
		})
	}
}

func TestTransformProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(2048))

	for n := 1; n <= MaxBoardSize; n++ {
		for range 50 {
			b := randomBoard(rng, n)

			for _, dir := range Directions {
				res, err := Transform(b, dir)
				if err != nil {
					t.Fatalf("Transform(%v, %s) error: %v", b, dir, err)
				}

				if TileSum(res.Board) != TileSum(b) {
					t.Fatalf("mass changed for %v %s: %d -> %d", b, dir, TileSum(b), TileSum(res.Board))
				}

				if !res.Moved && !res.Board.Equal(b) {
					t.Fatalf("unmoved %s changed %v to %v", dir, b, res.Board)
				}
				if res.Moved && res.Board.Equal(b) {
					t.Fatalf("moved %s left %v unchanged", dir, b)
				}
				if res.Points%2 != 0 || res.Points < 0 {
					t.Fatalf("points %d for %v %s", res.Points, b, dir)
				}

				// A second move in the same direction never merges a fresh tile into a bigger one
				again, _ := Transform(res.Board, dir)
				if TileSum(again.Board) != TileSum(b) {
					t.Fatalf("mass changed on repeat %s", dir)
				}
			}

			right, _ := Transform(b, DirRight)
			mirroredLeft, _ := Transform(MirrorHorizontal(b), DirLeft)
			if !right.Board.Equal(MirrorHorizontal(mirroredLeft.Board)) {
				t.Fatalf("right and mirrored left disagree for %v", b)
			}
			if right.Points != mirroredLeft.Points || right.Moved != mirroredLeft.Moved {
				t.Fatalf("right and mirrored left report different points or moved for %v", b)
			}

			down, _ := Transform(b, DirDown)
			flippedUp, _ := Transform(Rotate180(b), DirUp)
			if !down.Board.Equal(Rotate180(flippedUp.Board)) {
				t.Fatalf("down and flipped up disagree for %v", b)
			}
		}
	}
}
