package websocket

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testOptions() t2048.Options {
	opts := t2048.DefaultOptions()
	opts.Seed = 7
	return opts
}

// newTestClient builds a client without a connection; handle never writes.
func newTestClient(t *testing.T, store *storage.Store, opts t2048.Options) *Client {
	t.Helper()
	session, err := t2048.NewSession(opts)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return &Client{
		hub:     NewHub(store, log.New(io.Discard), testOptions),
		send:    make(chan []byte, sendBuffer),
		id:      "session-1",
		variant: t2048.Variants[0],
		session: session,
	}
}

// playUntilOver cycles through the directions until the game ends.
func playUntilOver(t *testing.T, c *Client) ServerMessage {
	t.Helper()
	for i := 0; i < 1000; i++ {
		dir := t2048.Directions[i%len(t2048.Directions)]
		reply := c.handle(ClientMessage{Type: TypeMove, Direction: dir.String()})
		if reply.Type != TypeState {
			t.Fatalf("move %d: reply = %+v", i, reply)
		}
		if c.session.Over() {
			return reply
		}
	}
	t.Fatal("game did not finish")
	return ServerMessage{}
}

func TestHandleMove(t *testing.T) {
	c := newTestClient(t, nil, testOptions())
	before := c.session.Board()

	var reply ServerMessage
	for _, dir := range t2048.Directions {
		reply = c.handle(ClientMessage{Type: TypeMove, Direction: dir.String()})
		if reply.Moved {
			break
		}
	}

	if reply.Type != TypeState {
		t.Fatalf("Type = %q, want %q", reply.Type, TypeState)
	}
	if !reply.Moved {
		t.Fatal("no direction moved a fresh board")
	}
	if reply.Spawned == nil {
		t.Error("accepted move should spawn a tile")
	}
	if reply.SessionID != "session-1" {
		t.Errorf("SessionID = %q, want session-1", reply.SessionID)
	}
	if reply.State == nil || reply.State.Moves != 1 {
		t.Fatalf("State = %+v, want one move", reply.State)
	}
	if reply.State.Variant != "2048" {
		t.Errorf("Variant = %q, want 2048", reply.State.Variant)
	}
	if reply.State.Board.Equal(before) {
		t.Error("board unchanged after accepted move")
	}
}

func TestHandleInvalidDirectionKeepsSession(t *testing.T) {
	c := newTestClient(t, nil, testOptions())
	before := c.session.Snapshot()

	reply := c.handle(ClientMessage{Type: TypeMove, Direction: "north"})
	if reply.Type != TypeError {
		t.Fatalf("Type = %q, want %q", reply.Type, TypeError)
	}
	if reply.Error == "" {
		t.Error("error message is empty")
	}

	after := c.session.Snapshot()
	if !after.Board.Equal(before.Board) || after.Score != before.Score || after.Moves != before.Moves {
		t.Errorf("session changed: before %+v, after %+v", before, after)
	}
}

func TestHandleUnknownType(t *testing.T) {
	c := newTestClient(t, nil, testOptions())
	if reply := c.handle(ClientMessage{Type: "jump"}); reply.Type != TypeError {
		t.Errorf("Type = %q, want %q", reply.Type, TypeError)
	}
}

func TestHandleResize(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"smaller", 3, false},
		{"larger", 6, false},
		{"zero", 0, true},
		{"too large", t2048.MaxBoardSize + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, nil, testOptions())
			reply := c.handle(ClientMessage{Type: TypeResize, Size: tt.size})

			if tt.wantErr {
				if reply.Type != TypeError {
					t.Fatalf("Type = %q, want error", reply.Type)
				}
				if c.session.Size() != t2048.DefaultBoardSize {
					t.Errorf("Size = %d after rejected resize", c.session.Size())
				}
				return
			}
			if reply.Type != TypeState {
				t.Fatalf("reply = %+v", reply)
			}
			if reply.State.Size != tt.size || len(reply.State.Board) != tt.size {
				t.Errorf("Size = %d, want %d", reply.State.Size, tt.size)
			}
			if reply.State.Moves != 0 {
				t.Errorf("Moves = %d, want 0 after resize", reply.State.Moves)
			}
		})
	}
}

func TestFinishedGameSavedOnce(t *testing.T) {
	store := openStore(t)

	// Only 2s spawn, so the first merge makes a 4 and wins.
	opts := testOptions()
	opts.Size = 2
	opts.WinValue = 4
	opts.TwoProbability = 1

	c := newTestClient(t, store, opts)
	last := playUntilOver(t, c)

	if last.State.State != t2048.StateWin {
		t.Fatalf("State = %q, want %q", last.State.State, t2048.StateWin)
	}

	reply := c.handle(ClientMessage{Type: TypeMove, Direction: "left"})
	if reply.Type != TypeError {
		t.Errorf("move after game over: Type = %q, want error", reply.Type)
	}

	entries, err := store.SessionScores("session-1")
	if err != nil {
		t.Fatalf("SessionScores() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("saved %d results, want 1", len(entries))
	}
	if entries[0].Score != last.State.Score {
		t.Errorf("saved score = %d, want %d", entries[0].Score, last.State.Score)
	}
	if entries[0].MaxTile != 4 {
		t.Errorf("saved max tile = %d, want 4", entries[0].MaxTile)
	}
	if entries[0].GameID != "2048" {
		t.Errorf("saved game id = %q, want 2048", entries[0].GameID)
	}

	// A restarted game is saved again when it finishes.
	if reply := c.handle(ClientMessage{Type: TypeRestart}); reply.State.State != t2048.StatePlaying {
		t.Fatalf("State after restart = %q", reply.State.State)
	}
	playUntilOver(t, c)

	entries, err = store.SessionScores("session-1")
	if err != nil {
		t.Fatalf("SessionScores() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("saved %d results after second game, want 2", len(entries))
	}
}

func TestFinishedGameWithoutStore(t *testing.T) {
	opts := testOptions()
	opts.Size = 2
	opts.WinValue = 4
	opts.TwoProbability = 1

	c := newTestClient(t, nil, opts)
	playUntilOver(t, c)
	if c.saved {
		t.Error("saved flag set without a store")
	}
}
