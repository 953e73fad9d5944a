// Package websocket serves 2048 games to browsers over WebSocket.
// Every connection owns one session; there is no shared state between players.
package websocket

import (
	"context"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// OptionsFunc resolves base session options for a new connection.
type OptionsFunc func() t2048.Options

// Hub tracks live connections so they can be closed on shutdown.
type Hub struct {
	store   *storage.Store
	logger  *log.Logger
	options OptionsFunc

	clients map[*Client]bool
	count   atomic.Int64

	register   chan *Client
	unregister chan *Client
	done       chan struct{}
}

// NewHub creates a hub. A nil store disables score saving; a nil options
// func uses t2048.LoadOptions.
func NewHub(store *storage.Store, logger *log.Logger, options OptionsFunc) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	if options == nil {
		options = t2048.LoadOptions
	}
	return &Hub{
		store:      store,
		logger:     logger,
		options:    options,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run processes registrations until ctx is cancelled, then closes every connection.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.count.Store(int64(len(h.clients)))
			h.logger.Info("client connected", "session", client.id, "variant", client.variant.ID, "clients", len(h.clients))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				h.count.Store(int64(len(h.clients)))
				h.logger.Info("client disconnected", "session", client.id, "clients", len(h.clients))
			}

		case <-ctx.Done():
			msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
			for client := range h.clients {
				client.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
				client.conn.Close()
				delete(h.clients, client)
			}
			h.count.Store(0)
			return
		}
	}
}

// Count returns the number of connected clients.
func (h *Hub) Count() int {
	return int(h.count.Load())
}

// leave unregisters c unless the hub already stopped.
func (h *Hub) leave(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// ServeWS upgrades the request and starts a new game for it.
// Query parameters: variant (default "2048") and seed (default time-based).
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	variantID := r.URL.Query().Get("variant")
	if variantID == "" {
		variantID = t2048.Variants[0].ID
	}
	variant, err := t2048.LookupVariant(variantID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	opts := variant.Options(h.options())
	if s := r.URL.Query().Get("seed"); s != "" {
		seed, parseErr := strconv.ParseInt(s, 10, 64)
		if parseErr != nil {
			http.Error(w, "invalid seed", http.StatusBadRequest)
			return
		}
		opts.Seed = seed
	}

	session, err := t2048.NewSession(opts)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	client := &Client{
		hub:     h,
		conn:    conn,
		send:    make(chan []byte, sendBuffer),
		id:      uuid.NewString(),
		variant: variant,
		session: session,
	}

	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	client.enqueue(client.stateMessage())

	go client.writePump()
	go client.readPump()
}
