package server

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/weft-ui/weft/pkg/render"
)

// Server serves a weft application over HTTP and WebSocket.
//
// GET /         first-paint HTML render of a fresh app instance
// GET /ws       WebSocket upgrade; op frames out, event frames in
// GET /healthz  liveness probe
// GET /metrics  Prometheus metrics
type Server struct {
	config   Config
	router   chi.Router
	upgrader websocket.Upgrader
	metrics  *serverMetrics
	logger   *slog.Logger

	httpServer *http.Server
}

// New creates a Server from the given configuration. The App factory
// is required.
func New(config Config) (*Server, error) {
	if config.App == nil {
		return nil, fmt.Errorf("server: Config.App is required")
	}
	config.fillDefaults()

	s := &Server{
		config: config,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     config.CheckOrigin,
		},
		metrics: getMetrics(),
		logger:  config.Logger,
	}

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Get("/", s.handleIndex)
	r.Get("/ws", s.handleWebSocket)
	r.Get("/healthz", s.handleHealthz)
	r.Handle("/metrics", promhttp.Handler())
	s.router = r

	return s, nil
}

// Handler returns the server's HTTP handler, for mounting in tests or
// under a larger router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe starts the HTTP server and blocks until it stops.
func (s *Server) ListenAndServe() error {
	s.httpServer = &http.Server{
		Addr:              s.config.Address,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("listening", "addr", s.config.Address)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// handleIndex renders a fresh app instance to HTML for the first
// paint. Session state starts when the client connects to /ws.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	html, err := render.RenderToString(s.config.App()())
	if err != nil {
		s.logger.Error("index render failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, indexShell, html)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.metrics.wsErrors.WithLabelValues("upgrade").Inc()
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	sess := newSession(s, conn, newSessionID())
	s.metrics.activeSessions.Inc()
	defer s.metrics.activeSessions.Dec()

	sess.Run(r.Context())
}

func newSessionID() string {
	var b [16]byte
	rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

const indexShell = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>weft</title></head>
<body>
<div id="app">%s</div>
<script src="/static/weft-client.js" defer></script>
</body>
</html>
`
