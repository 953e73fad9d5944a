package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// ServerConfig holds configuration for the WebSocket server.
type ServerConfig struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// Options resolves base session options. Nil uses t2048.LoadOptions.
	Options OptionsFunc

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration
}

// DefaultServerConfig returns a config with sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Address:         ":8080",
		ShutdownTimeout: 10 * time.Second,
	}
}

// Server exposes the hub and a small read-only score API over HTTP.
type Server struct {
	config ServerConfig
	store  *storage.Store
	hub    *Hub
	router *mux.Router
	logger *log.Logger
}

// NewServer creates a server. A nil store disables score saving and the
// scores endpoint answers 503.
func NewServer(cfg ServerConfig, store *storage.Store) *Server {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048-web",
	})

	s := &Server{
		config: cfg,
		store:  store,
		hub:    NewHub(store, logger, cfg.Options),
		router: mux.NewRouter(),
		logger: logger,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.HandleFunc("/ws", s.hub.ServeWS).Methods("GET")
	s.router.HandleFunc("/healthz", s.handleHealth).Methods("GET")

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/variants", s.handleVariants).Methods("GET")
	api.HandleFunc("/scores/{variant}", s.handleScores).Methods("GET")
}

// Handler returns the HTTP handler. The hub must be running (see ListenAndServe).
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe runs the hub and the HTTP server until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	hubCtx, stopHub := context.WithCancel(ctx)
	defer stopHub()
	go s.hub.Run(hubCtx)

	srv := &http.Server{
		Addr:              s.config.Address,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting web server", "address", s.config.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("web server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("stopping web server")
	timeout := s.config.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Hijacked websocket connections are closed by the hub, not Shutdown.
	stopHub()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("web server shutdown: %w", err)
	}
	return nil
}

type variantInfo struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Size     int    `json:"size"`
	WinValue int    `json:"win_value"`
}

type scoreInfo struct {
	Rank      int       `json:"rank"`
	Score     int       `json:"score"`
	MaxTile   int       `json:"max_tile"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"clients": s.hub.Count(),
	})
}

func (s *Server) handleVariants(w http.ResponseWriter, r *http.Request) {
	base := s.hub.options()
	out := make([]variantInfo, 0, len(t2048.Variants))
	for _, v := range t2048.Variants {
		opts := v.Options(base)
		out = append(out, variantInfo{
			ID:       v.ID,
			Title:    v.Title,
			Size:     opts.Size,
			WinValue: opts.WinValue,
		})
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["variant"]
	if !t2048.IsVariant(id) {
		respondError(w, http.StatusNotFound, fmt.Sprintf("unknown variant %q", id))
		return
	}
	if s.store == nil {
		respondError(w, http.StatusServiceUnavailable, "score storage is not available")
		return
	}

	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			respondError(w, http.StatusBadRequest, "limit must be a positive number")
			return
		}
		limit = n
	}

	entries, err := s.store.TopScores(id, limit)
	if err != nil {
		s.logger.Error("failed to load scores", "variant", id, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load scores")
		return
	}

	out := make([]scoreInfo, 0, len(entries))
	for i, e := range entries {
		out = append(out, scoreInfo{
			Rank:      i + 1,
			Score:     e.Score,
			MaxTile:   e.MaxTile,
			CreatedAt: e.CreatedAt,
		})
	}
	respondJSON(w, http.StatusOK, out)
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
