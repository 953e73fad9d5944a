package websocket

import (
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// Client message types.
const (
	TypeMove    = "move"
	TypeRestart = "restart"
	TypeResize  = "resize"
	TypeState   = "state"
)

// TypeError marks a server message that reports a rejected request.
const TypeError = "error"

// ClientMessage is a request sent by the browser.
type ClientMessage struct {
	Type      string `json:"type"`
	Direction string `json:"direction,omitempty"`
	Size      int    `json:"size,omitempty"`
}

// ServerMessage is the reply to every client request.
type ServerMessage struct {
	Type      string          `json:"type"`
	SessionID string          `json:"session_id,omitempty"`
	State     *t2048.Snapshot `json:"state,omitempty"`
	Points    int             `json:"points"`
	Moved     bool            `json:"moved"`
	Spawned   *t2048.Spawned  `json:"spawned,omitempty"`
	Error     string          `json:"error,omitempty"`
}

func errorMessage(sessionID string, err error) ServerMessage {
	return ServerMessage{
		Type:      TypeError,
		SessionID: sessionID,
		Error:     err.Error(),
	}
}
