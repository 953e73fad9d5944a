package websocket

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512

	sendBuffer = 16
)

// Client is one browser connection playing its own game.
// The session is only touched from readPump.
type Client struct {
	hub     *Hub
	conn    *websocket.Conn
	send    chan []byte
	id      string
	variant t2048.Variant
	session *t2048.Session

	// Set once the finished game was written to storage.
	saved bool
}

// handle applies one request to the session and builds the reply.
func (c *Client) handle(msg ClientMessage) ServerMessage {
	switch msg.Type {
	case TypeMove:
		dir, err := t2048.ParseDirection(msg.Direction)
		if err != nil {
			return errorMessage(c.id, err)
		}
		out, err := c.session.Move(dir)
		if err != nil {
			if errors.Is(err, t2048.ErrSessionOver) {
				return errorMessage(c.id, errors.New("game is over, send restart"))
			}
			return errorMessage(c.id, err)
		}
		if c.session.Over() {
			c.saveResult()
		}
		reply := c.stateMessage()
		reply.Points = out.Points
		reply.Moved = out.Moved
		reply.Spawned = out.Spawned
		return reply

	case TypeRestart:
		c.session.Restart()
		c.saved = false
		return c.stateMessage()

	case TypeResize:
		if err := c.session.Resize(msg.Size); err != nil {
			return errorMessage(c.id, err)
		}
		c.saved = false
		return c.stateMessage()

	case TypeState:
		return c.stateMessage()

	default:
		return errorMessage(c.id, fmt.Errorf("unknown message type %q", msg.Type))
	}
}

func (c *Client) stateMessage() ServerMessage {
	snap := c.session.Snapshot()
	snap.Variant = c.variant.ID
	return ServerMessage{
		Type:      TypeState,
		SessionID: c.id,
		State:     &snap,
	}
}

// saveResult records a finished game at most once per game.
func (c *Client) saveResult() {
	if c.saved || c.hub.store == nil {
		return
	}
	c.saved = true
	if c.session.Score() <= 0 {
		return
	}

	_, err := c.hub.store.SaveResult(storage.Result{
		GameID:    c.variant.ID,
		Score:     c.session.Score(),
		MaxTile:   t2048.MaxTile(c.session.Board()),
		SessionID: c.id,
	})
	if err != nil {
		c.hub.logger.Warn("could not save score", "session", c.id, "error", err)
	}
}

// enqueue queues a reply. It reports false when the client cannot keep up.
func (c *Client) enqueue(msg ServerMessage) bool {
	data, err := json.Marshal(msg)
	if err != nil {
		c.hub.logger.Error("failed to marshal message", "session", c.id, "error", err)
		return true
	}
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

// readPump reads requests from the connection and answers each one.
// It is the only sender on c.send and closes it on exit.
func (c *Client) readPump() {
	defer func() {
		c.hub.leave(c)
		close(c.send)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.logger.Debug("connection error", "session", c.id, "error", err)
			}
			return
		}

		var msg ClientMessage
		var reply ServerMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			reply = errorMessage(c.id, fmt.Errorf("malformed message: %w", err))
		} else {
			reply = c.handle(msg)
		}

		if !c.enqueue(reply) {
			c.hub.logger.Warn("send buffer full, dropping client", "session", c.id)
			return
		}
	}
}

// writePump sends queued replies and keeps the connection alive with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// readPump finished
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
