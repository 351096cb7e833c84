package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/weft-ui/weft/pkg/snapshot"
	"github.com/weft-ui/weft/pkg/vdom"
)

// RenderFunc produces the current UI tree for a session. It is called
// once per render pass; handlers on the returned tree close over
// whatever state the function body keeps.
type RenderFunc func() *vdom.VNode

// AppFactory creates a fresh per-session render function. Each
// WebSocket session gets its own state by calling the factory once.
type AppFactory func() RenderFunc

// Config configures a Server.
type Config struct {
	// Address to listen on (default ":8080").
	Address string

	// App creates the per-session view. Required.
	App AppFactory

	// Snapshots, when set, receives the first-paint HTML per session.
	Snapshots snapshot.Store

	// ReadTimeout is the WebSocket read deadline (default 60s).
	ReadTimeout time.Duration

	// WriteTimeout is the WebSocket write deadline (default 10s).
	WriteTimeout time.Duration

	// PingInterval is how often the server pings idle clients
	// (default 30s; must be below ReadTimeout).
	PingInterval time.Duration

	// CheckOrigin overrides the WebSocket origin check. Default
	// accepts all origins; production deployments should restrict it.
	CheckOrigin func(r *http.Request) bool

	// Logger for server and session events (default slog.Default()).
	Logger *slog.Logger
}

func (c *Config) fillDefaults() {
	if c.Address == "" {
		c.Address = ":8080"
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = 60 * time.Second
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = 10 * time.Second
	}
	if c.PingInterval == 0 {
		c.PingInterval = 30 * time.Second
	}
	if c.CheckOrigin == nil {
		c.CheckOrigin = func(*http.Request) bool { return true }
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}
