// Package web hosts Snake sessions in a browser. The server owns the game
// loop; the embedded page only draws the frames it receives over a
// WebSocket and sends back key presses and start requests.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-snake/internal/config"
)

//go:embed static/index.html
var staticFS embed.FS

// ServerConfig holds configuration for the HTTP server.
type ServerConfig struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// WriteTimeout bounds each WebSocket write.
	WriteTimeout time.Duration

	// Seed is the food RNG seed for every session. 0 means time-based.
	Seed int64

	// Game is the configuration every session is created with.
	Game config.SnakeConfig
}

// DefaultServerConfig returns a config with sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Address:      ":8080",
		WriteTimeout: 5 * time.Second,
		Game:         config.DefaultSnakeConfig(),
	}
}

// Server serves the game page and one session per WebSocket connection.
type Server struct {
	config   ServerConfig
	r        *chi.Mux
	upgrader websocket.Upgrader
	logger   *log.Logger
	srv      *http.Server
}

// NewServer constructs a Server, installs middleware, and registers routes.
func NewServer(cfg ServerConfig, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "snake-web",
		})
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = DefaultServerConfig().WriteTimeout
	}

	s := &Server{
		config: cfg,
		r:      chi.NewRouter(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		logger: logger,
	}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(s.requestLogger)

	s.r.Get("/", s.handleIndex)
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]bool{"ok": true})
	})
	s.r.Get("/config", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, newConfigMessage(s.config.Game))
	})
	s.r.Get("/ws", s.handleWebSocket)

	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// requestLogger logs plain HTTP requests at debug level.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"remote", r.RemoteAddr,
			"id", chimw.GetReqID(r.Context()),
		)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, "page not found", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

// handleWebSocket upgrades the request and runs a session on it until the
// client leaves.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", "error", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(512)

	logger := s.logger.With("remote", r.RemoteAddr)
	logger.Info("session started")
	start := time.Now()

	sess := newSession(s.config.Game, s.config.Seed, logger)
	if err := sess.run(r.Context(), conn, s.config.WriteTimeout); err != nil {
		logger.Warn("session ended", "error", err, "duration", time.Since(start))
		return
	}
	logger.Info("session ended", "duration", time.Since(start))
}

// ListenAndServe starts the server and blocks until ctx is cancelled or the
// server fails. Open sessions are told to close on shutdown.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.srv = &http.Server{
		Addr:              s.config.Address,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	s.logger.Info("starting HTTP server", "address", s.Addr())

	errCh := make(chan error, 1)
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("web: server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("web: shutdown: %w", err)
		}
		return nil
	}
}

// Addr returns the server's configured address.
func (s *Server) Addr() string {
	return s.config.Address
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(v)
}
