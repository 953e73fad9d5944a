package t2048

import "math/rand"

// randomBoard fills an n×n board with zeros and small powers of two.
// Low values dominate so merges are common.
func randomBoard(rng *rand.Rand, n int) Board {
	values := []int{0, 0, 0, 2, 2, 4, 4, 8, 16, 32}
	b := emptyBoard(n)
	for r := range b {
		for c := range b[r] {
			b[r][c] = values[rng.Intn(len(values))]
		}
	}
	return b
}

// fakeRand replays fixed choices.
type fakeRand struct {
	ints   []int
	floats []float64
}

func (f *fakeRand) Intn(n int) int {
	if len(f.ints) == 0 {
		return 0
	}
	v := f.ints[0]
	f.ints = f.ints[1:]
	return v % n
}

func (f *fakeRand) Float64() float64 {
	if len(f.floats) == 0 {
		return 0
	}
	v := f.floats[0]
	f.floats = f.floats[1:]
	return v
}
