package t2048

import (
	"math/rand"
	"testing"
)

func TestRotateClockwise(t *testing.T) {
	b := Board{
		{1 << 1, 1 << 2},
		{1 << 3, 1 << 4},
	}
	want := Board{
		{8, 2},
		{16, 4},
	}
	if got := RotateClockwise(b); !got.Equal(want) {
		t.Errorf("RotateClockwise = %v, want %v", got, want)
	}

	wantCCW := Board{
		{4, 16},
		{2, 8},
	}
	if got := RotateCounterClockwise(b); !got.Equal(wantCCW) {
		t.Errorf("RotateCounterClockwise = %v, want %v", got, wantCCW)
	}
}

func TestRotationRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 1; n <= MaxBoardSize; n++ {
		for range 20 {
			b := randomBoard(rng, n)

			if got := RotateCounterClockwise(RotateClockwise(b)); !got.Equal(b) {
				t.Fatalf("CW then CCW changed %v to %v", b, got)
			}
			if got := RotateClockwise(RotateCounterClockwise(b)); !got.Equal(b) {
				t.Fatalf("CCW then CW changed %v to %v", b, got)
			}
			if got := Rotate180(Rotate180(b)); !got.Equal(b) {
				t.Fatalf("two half turns changed %v to %v", b, got)
			}
			if got := RotateClockwise(RotateClockwise(b)); !got.Equal(Rotate180(b)) {
				t.Fatalf("two clockwise turns differ from Rotate180 for %v", b)
			}
			if got := MirrorHorizontal(MirrorHorizontal(b)); !got.Equal(b) {
				t.Fatalf("double mirror changed %v to %v", b, got)
			}
		}
	}
}

func TestRotateDoesNotMutate(t *testing.T) {
	b := Board{{2, 0}, {0, 4}}
	snapshot := b.Clone()
	RotateClockwise(b)
	RotateCounterClockwise(b)
	Rotate180(b)
	MirrorHorizontal(b)
	if !b.Equal(snapshot) {
		t.Errorf("rotation mutated input: %v", b)
	}
}
