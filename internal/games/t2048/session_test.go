package t2048

import (
	"errors"
	"math/rand"
	"testing"
)

func newTestSession(t *testing.T, opts Options) *Session {
	t.Helper()
	s, err := NewSession(opts)
	if err != nil {
		t.Fatalf("NewSession(%+v) error: %v", opts, err)
	}
	return s
}

func TestNewSession(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 42
	s := newTestSession(t, opts)

	if s.Size() != 4 {
		t.Errorf("Size = %d, want 4", s.Size())
	}
	if tiles := 16 - len(EmptyCells(s.Board())); tiles != 2 {
		t.Errorf("starting tiles = %d, want 2", tiles)
	}
	if s.Score() != 0 || s.Moves() != 0 {
		t.Errorf("score %d moves %d, want 0", s.Score(), s.Moves())
	}
	if s.Result() != ResultPlaying || s.Over() {
		t.Errorf("Result = %q, want playing", s.Result())
	}
	if s.WinValue() != DefaultWinValue {
		t.Errorf("WinValue = %d", s.WinValue())
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
	}{
		{"size zero", func(o *Options) { o.Size = 0 }},
		{"size too big", func(o *Options) { o.Size = MaxBoardSize + 1 }},
		{"win not power of two", func(o *Options) { o.WinValue = 1000 }},
		{"negative win", func(o *Options) { o.WinValue = -2 }},
		{"probability above one", func(o *Options) { o.TwoProbability = 1.5 }},
		{"no start tiles", func(o *Options) { o.StartTiles = 0 }},
		{"too many start tiles", func(o *Options) { o.Size = 2; o.StartTiles = 5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.modify(&opts)
			if err := opts.Validate(); err == nil {
				t.Errorf("Validate(%+v) = nil, want error", opts)
			}
			if _, err := NewSession(opts); err == nil {
				t.Error("NewSession accepted invalid options")
			}
		})
	}

	if err := DefaultOptions().Validate(); err != nil {
		t.Errorf("DefaultOptions invalid: %v", err)
	}
}

func TestSessionDeterministicSeed(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 12345

	a := newTestSession(t, opts)
	b := newTestSession(t, opts)

	rng := rand.New(rand.NewSource(3))
	for range 200 {
		dir := Directions[rng.Intn(len(Directions))]
		outA, errA := a.Move(dir)
		outB, errB := b.Move(dir)
		if (errA == nil) != (errB == nil) {
			t.Fatalf("errors differ: %v vs %v", errA, errB)
		}
		if outA.Moved != outB.Moved || outA.Points != outB.Points {
			t.Fatalf("outcomes differ: %+v vs %+v", outA, outB)
		}
		if !a.Board().Equal(b.Board()) {
			t.Fatalf("boards diverged: %v vs %v", a.Board(), b.Board())
		}
		if a.Over() {
			break
		}
	}
	if a.Score() != b.Score() {
		t.Errorf("scores differ: %d vs %d", a.Score(), b.Score())
	}
}

func TestSessionMoveInvariants(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 7
	s := newTestSession(t, opts)

	rng := rand.New(rand.NewSource(11))
	for range 500 {
		if s.Over() {
			break
		}

		before := s.Board()
		score := s.Score()
		moves := s.Moves()
		dir := Directions[rng.Intn(len(Directions))]
		want, _ := Transform(before, dir)

		out, err := s.Move(dir)
		if err != nil {
			t.Fatalf("Move(%s) error: %v", dir, err)
		}
		after := s.Board()

		if !out.Moved {
			if !after.Equal(before) || s.Score() != score || s.Moves() != moves || out.Spawned != nil {
				t.Fatalf("unmoved %s changed the session", dir)
			}
			continue
		}

		if out.Spawned == nil {
			t.Fatalf("accepted %s spawned nothing", dir)
		}
		if want.Board.Get(out.Spawned.Cell) != 0 {
			t.Fatalf("spawned onto occupied cell %v", out.Spawned.Cell)
		}
		if TileSum(after) != TileSum(before)+out.Spawned.Value {
			t.Fatalf("mass %d -> %d with spawn %d", TileSum(before), TileSum(after), out.Spawned.Value)
		}
		if out.Points != want.Points || s.Score() != score+want.Points {
			t.Fatalf("score %d + %d != %d", score, want.Points, s.Score())
		}
		if s.Moves() != moves+1 {
			t.Fatalf("moves = %d, want %d", s.Moves(), moves+1)
		}
		if out.Result != s.Result() {
			t.Fatalf("outcome result %q, session %q", out.Result, s.Result())
		}
	}
}

func TestSessionInvalidDirection(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 1
	s := newTestSession(t, opts)
	before := s.Board()

	if _, err := s.Move(Direction(9)); !errors.Is(err, ErrInvalidDirection) {
		t.Fatalf("Move(9) error = %v, want ErrInvalidDirection", err)
	}
	if !s.Board().Equal(before) || s.Moves() != 0 {
		t.Error("invalid direction changed the session")
	}
}

func TestSessionStopsWhenWon(t *testing.T) {
	opts := Options{Size: 2, WinValue: 4, TwoProbability: 1, StartTiles: 1, Seed: 5}
	s := newTestSession(t, opts)

	// Force a board one merge away from the target
	s.board = Board{{2, 2}, {0, 0}}
	s.result = Outcome(s.board, s.opts.WinValue)

	out, err := s.Move(DirLeft)
	if err != nil {
		t.Fatalf("Move error: %v", err)
	}
	if out.Result != ResultWon || !s.Over() {
		t.Fatalf("Result = %q, want won", out.Result)
	}
	if s.Score() != 4 {
		t.Errorf("Score = %d, want 4", s.Score())
	}

	if _, err := s.Move(DirRight); !errors.Is(err, ErrSessionOver) {
		t.Errorf("Move after win error = %v, want ErrSessionOver", err)
	}
}

func TestSessionStalemate(t *testing.T) {
	opts := Options{Size: 2, WinValue: DefaultWinValue, TwoProbability: 1, StartTiles: 1, Seed: 5}
	s := newTestSession(t, opts)

	// Sliding right leaves one hole for the spawned 2
	s.board = Board{{4, 0}, {8, 4}}
	s.result = ResultPlaying

	out, err := s.Move(DirRight)
	if err != nil {
		t.Fatalf("Move error: %v", err)
	}
	if !out.Moved || out.Spawned == nil {
		t.Fatalf("Move(right) = %+v, want a spawn", out)
	}
	want := Board{{2, 4}, {8, 4}}
	if !s.Board().Equal(want) {
		t.Fatalf("board = %v, want %v", s.Board(), want)
	}
	// 4 over 4 in the right column still merges
	if s.Over() {
		t.Fatal("session over with a vertical merge available")
	}

	// The spawned 2 locks this one
	s.board = Board{{4, 2}, {4, 0}}
	out, err = s.Move(DirRight)
	if err != nil {
		t.Fatalf("Move error: %v", err)
	}
	if out.Result != ResultStalemate {
		t.Fatalf("Result = %q on %v, want stalemate", out.Result, s.Board())
	}
}

func TestSessionRestartAndResize(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 9
	s := newTestSession(t, opts)

	for _, dir := range Directions {
		_, _ = s.Move(dir)
	}

	s.Restart()
	if s.Score() != 0 || s.Moves() != 0 || s.Over() {
		t.Error("Restart did not reset the session")
	}

	if err := s.Resize(5); err != nil {
		t.Fatalf("Resize(5) error: %v", err)
	}
	if s.Size() != 5 || s.Board().Size() != 5 {
		t.Errorf("Size = %d, want 5", s.Size())
	}
	if tiles := 25 - len(EmptyCells(s.Board())); tiles != 2 {
		t.Errorf("tiles after resize = %d, want 2", tiles)
	}

	if err := s.Resize(1); err != nil {
		t.Fatalf("Resize(1) error: %v", err)
	}
	// A lone tile cannot move
	if s.Result() != ResultStalemate {
		t.Errorf("1x1 result = %q, want stalemate", s.Result())
	}
	if err := s.Resize(5); err != nil {
		t.Fatalf("Resize(5) error: %v", err)
	}

	if err := s.Resize(0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Resize(0) error = %v, want ErrInvalidSize", err)
	}
	if s.Size() != 5 {
		t.Error("failed Resize changed the size")
	}
}

func TestSessionBoardIsCopy(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 3
	s := newTestSession(t, opts)

	b := s.Board()
	b[0][0] = 1024
	if s.Board()[0][0] == 1024 {
		t.Error("Board() exposes internal storage")
	}

	snap := s.Snapshot()
	snap.Board[0][0] = 1024
	if s.Board()[0][0] == 1024 {
		t.Error("Snapshot() exposes internal storage")
	}
}
