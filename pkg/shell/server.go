package shell

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server serves the thin client and hosts one App per WebSocket connection.
type Server struct {
	cfg      *Config
	factory  AppFactory
	metrics  *metrics
	upgrader websocket.Upgrader

	httpServer *http.Server
}

// NewServer creates a shell server. factory is invoked once per connection.
func NewServer(cfg *Config, factory AppFactory) *Server {
	cfg = cfg.withDefaults()

	checkOrigin := cfg.CheckOrigin
	if checkOrigin == nil {
		checkOrigin = sameHostOrigin
	}

	s := &Server{
		cfg:     cfg,
		factory: factory,
		metrics: newMetrics(cfg.Registry),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin:     checkOrigin,
		},
	}
	s.httpServer = &http.Server{
		Addr:              cfg.Address,
		Handler:           s.routes(),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
	return s
}

// Handler exposes the HTTP mux, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/ws", s.handleWS)
	r.Get("/healthz", s.handleHealth)
	r.Get("/static/wardview.css", s.handleStylesheet)

	if reg, ok := s.cfg.Registry.(prometheus.Gatherer); ok {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}
	return r
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(shellPage))
}

func (s *Server) handleStylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=0, must-revalidate")
	w.Write([]byte(shellStylesheet))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.cfg.Logger.Error("websocket upgrade failed", "error", err)
		return
	}

	app, err := s.factory()
	if err != nil {
		s.cfg.Logger.Error("app construction failed", "error", err)
		conn.Close()
		return
	}

	session := newSession(conn, app, s.cfg, s.metrics)
	go session.run()
}

// ListenAndServe blocks until the server stops.
func (s *Server) ListenAndServe() error {
	s.cfg.Logger.Info("shell listening", "address", s.cfg.Address)
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown drains connections within the configured timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

// sameHostOrigin accepts requests with no Origin header or an Origin whose
// host matches the request host.
func sameHostOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	origin = strings.TrimPrefix(origin, "http://")
	origin = strings.TrimPrefix(origin, "https://")
	return strings.EqualFold(origin, r.Host)
}
