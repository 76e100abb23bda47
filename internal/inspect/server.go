package inspect

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/appdir-dev/appdir/pkg/router"
)

// Config configures the inspector server.
type Config struct {
	// Root is the routes directory being inspected.
	Root string

	// Addr is the listen address (default: "127.0.0.1:7410").
	Addr string

	// Engine is the routing engine. Required.
	Engine *router.Engine

	// Logger is the server logger. If nil, slog.Default() is used.
	Logger *slog.Logger

	// Watch rebuilds the table when the routes directory changes and
	// notifies connected reload clients.
	Watch bool
}

// Server is the debug inspector.
type Server struct {
	cfg    Config
	logger *slog.Logger
	reload *ReloadServer
}

// NewServer creates an inspector server.
func NewServer(cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:7410"
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:    cfg,
		logger: logger,
		reload: NewReloadServer(),
	}
}

// Handler returns the inspector's HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/routes", s.handleRoutes)
	r.Get("/match", s.handleMatch)
	r.Get("/fingerprint", s.handleFingerprint)
	r.Get("/ws", s.reload.HandleWebSocket)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// Run serves the inspector until the context is canceled. When Watch is
// enabled, a filesystem watcher invalidates and rebuilds the table on
// change and broadcasts the new fingerprint to reload clients.
func (s *Server) Run(ctx context.Context) error {
	if s.cfg.Watch {
		watcher, err := NewWatcher(s.cfg.Root, s.onChange)
		if err != nil {
			return fmt.Errorf("starting watcher: %w", err)
		}
		go watcher.Run(ctx)
	}

	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info("inspector listening", "addr", s.cfg.Addr, "root", s.cfg.Root, "watch", s.cfg.Watch)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) onChange(path string) {
	s.cfg.Engine.Invalidate(s.cfg.Root)
	table, err := s.cfg.Engine.Build(context.Background(), s.cfg.Root)
	if err != nil {
		s.logger.Error("rebuild after change failed", "path", path, "error", err)
		s.reload.BroadcastError(err.Error())
		return
	}
	s.logger.Info("route table rebuilt", "path", path, "routes", len(table.Routes))
	s.reload.BroadcastReload(table.Fingerprint())
}

type routesResponse struct {
	Root        string          `json:"root"`
	Fingerprint string          `json:"fingerprint"`
	Routes      []*router.Route `json:"routes"`
}

func (s *Server) handleRoutes(w http.ResponseWriter, r *http.Request) {
	table, err := s.cfg.Engine.Build(r.Context(), s.cfg.Root)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, routesResponse{
		Root:        table.Root,
		Fingerprint: fmt.Sprintf("%016x", table.Fingerprint()),
		Routes:      table.Routes,
	})
}

type matchResponse struct {
	Path    string        `json:"path"`
	Matched bool          `json:"matched"`
	Pattern string        `json:"pattern,omitempty"`
	Params  router.Params `json:"params,omitempty"`
	Route   *router.Route `json:"route,omitempty"`
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("missing path query parameter"))
		return
	}

	route, params, err := s.cfg.Engine.Match(r.Context(), s.cfg.Root, path)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	resp := matchResponse{Path: path, Matched: route != nil}
	if route != nil {
		resp.Pattern = route.Pattern.String()
		resp.Params = params
		resp.Route = route
	}
	writeJSON(w, resp)
}

func (s *Server) handleFingerprint(w http.ResponseWriter, r *http.Request) {
	table, err := s.cfg.Engine.Build(r.Context(), s.cfg.Root)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, map[string]string{
		"fingerprint": fmt.Sprintf("%016x", table.Fingerprint()),
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
