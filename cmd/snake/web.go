package main

import (
	"context"
	"net"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/web"
)

var flagHTTPAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve Snake to browsers",
	Long: `Start an HTTP server with a canvas page. The game runs on the server
and streams frames to the page over a WebSocket.

Environment:
  SNAKE_HTTP_ADDR overrides the flag default.

Examples:
  snake web                 # Listen on :8080
  snake web --http :3000`,
	Args: cobra.NoArgs,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagHTTPAddr, "http", config.GetEnv("SNAKE_HTTP_ADDR", ":8080"), "HTTP server address (host:port)")
}

func runWeb(_ *cobra.Command, _ []string) error {
	cfg := web.DefaultServerConfig()
	cfg.Address = flagHTTPAddr
	cfg.Seed = flagSeed
	cfg.Game = gameConfig

	server := web.NewServer(cfg, logger.WithPrefix("snake-web"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("press Ctrl+C to stop", "open", "http://localhost:"+portOf(server.Addr()))
	return server.ListenAndServe(ctx)
}

// portOf returns the port of a host:port address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
