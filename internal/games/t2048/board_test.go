package t2048

import (
	"errors"
	"testing"
)

func TestNewBoard(t *testing.T) {
	for _, size := range []int{1, 3, 4, 5, 8} {
		b, err := NewBoard(size)
		if err != nil {
			t.Fatalf("NewBoard(%d) error: %v", size, err)
		}
		if b.Size() != size || len(EmptyCells(b)) != size*size {
			t.Errorf("NewBoard(%d) = %v, want empty %dx%d", size, b, size, size)
		}
	}

	for _, size := range []int{0, -1, 9} {
		if _, err := NewBoard(size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewBoard(%d) error = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestParseBoardString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Board
		wantErr error
	}{
		{
			name:  "2x2",
			input: "2,0/0,4",
			want:  Board{{2, 0}, {0, 4}},
		},
		{
			name:  "whitespace",
			input: " 2, 2 / 4 ,0 ",
			want:  Board{{2, 2}, {4, 0}},
		},
		{
			name:    "ragged",
			input:   "2,0/0",
			wantErr: ErrInvalidBoard,
		},
		{
			name:    "not a power of two",
			input:   "3,0/0,0",
			wantErr: ErrInvalidBoard,
		},
		{
			name:    "one is not a tile",
			input:   "1,0/0,0",
			wantErr: ErrInvalidBoard,
		},
		{
			name:    "not a number",
			input:   "a,0/0,0",
			wantErr: ErrInvalidBoard,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: ErrInvalidBoard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBoardString(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseBoardString(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBoardString(%q) error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseBoardString(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestBoardStringRoundTrip(t *testing.T) {
	b := Board{{2, 0, 4}, {0, 8, 0}, {16, 0, 2048}}
	s := b.String()
	if s != "2,0,4/0,8,0/16,0,2048" {
		t.Errorf("String() = %q", s)
	}
	parsed, err := ParseBoardString(s)
	if err != nil {
		t.Fatalf("ParseBoardString(%q) error: %v", s, err)
	}
	if !parsed.Equal(b) {
		t.Errorf("round trip = %v, want %v", parsed, b)
	}
}

func TestBoardClone(t *testing.T) {
	b := Board{{2, 0}, {0, 4}}
	c := b.Clone()
	c[0][0] = 8
	if b[0][0] != 2 {
		t.Error("Clone shares storage with the original")
	}
}

func TestBoardHelpers(t *testing.T) {
	b := Board{
		{2, 0, 4},
		{0, 8, 0},
		{16, 4, 2},
	}

	empty := EmptyCells(b)
	want := []Cell{{0, 1}, {1, 0}, {1, 2}}
	if len(empty) != len(want) {
		t.Fatalf("EmptyCells = %v, want %v", empty, want)
	}
	for i := range want {
		if empty[i] != want[i] {
			t.Errorf("EmptyCells[%d] = %v, want %v", i, empty[i], want[i])
		}
	}

	if !HasEmptyCell(b) {
		t.Error("HasEmptyCell = false, want true")
	}
	if got := MaxTile(b); got != 16 {
		t.Errorf("MaxTile = %d, want 16", got)
	}
	if got := TileSum(b); got != 36 {
		t.Errorf("TileSum = %d, want 36", got)
	}
	if got := b.Get(Cell{Row: 2, Col: 0}); got != 16 {
		t.Errorf("Get(2, 0) = %d, want 16", got)
	}
	if got := b.Get(Cell{Row: 5, Col: 0}); got != 0 {
		t.Errorf("Get out of range = %d, want 0", got)
	}

	full := Board{{2, 4}, {4, 2}}
	if HasEmptyCell(full) {
		t.Error("HasEmptyCell(full) = true, want false")
	}
	if cells := EmptyCells(full); len(cells) != 0 {
		t.Errorf("EmptyCells(full) = %v, want none", cells)
	}
}
