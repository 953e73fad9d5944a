package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/storage"
	"github.com/vovakirdan/tui-2048/internal/transport/websocket"
)

var flagWebAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Start the 2048 WebSocket server",
	Long: `Start an HTTP server that plays 2048 over WebSocket.

Endpoints:
  GET /ws?variant=2048&seed=N   - One game per connection
  GET /healthz                  - Liveness and connected client count
  GET /api/variants             - Board variants
  GET /api/scores/{variant}     - Top scores (?limit=N)

Messages sent by the client:
  {"type":"move","direction":"left"}
  {"type":"restart"}
  {"type":"resize","size":5}
  {"type":"state"}

Examples:
  t2048 web
  t2048 web --addr 127.0.0.1:9000 --db ./scores.db`,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", ":8080", "HTTP listen address (host:port)")
}

func runWeb(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := websocket.DefaultServerConfig()
	cfg.Address = flagWebAddr

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting 2048 web server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return websocket.NewServer(cfg, store).ListenAndServe(ctx)
}
