package server

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/weft-ui/weft/pkg/protocol"
	"github.com/weft-ui/weft/pkg/reconcile"
	"github.com/weft-ui/weft/pkg/remote"
	"github.com/weft-ui/weft/pkg/render"
	"github.com/weft-ui/weft/pkg/vdom"
)

var tracer = otel.Tracer("weft")

// Session is one connected client: a WebSocket connection, a remote
// document mirroring the client's tree, and the per-session view.
//
// All reconcile passes and event dispatch run on the read loop
// goroutine; only writes are guarded, for the ping ticker.
type Session struct {
	id     string
	server *Server
	conn   *websocket.Conn
	logger *slog.Logger

	doc  *remote.Doc
	rec  *reconcile.Reconciler
	view RenderFunc
	prev *vdom.VNode
	seq  uint64

	writeMu sync.Mutex
	closed  chan struct{}
	once    sync.Once
}

func newSession(server *Server, conn *websocket.Conn, id string) *Session {
	doc := remote.NewDoc()
	return &Session{
		id:     id,
		server: server,
		conn:   conn,
		logger: server.logger.With("session", id),
		doc:    doc,
		rec:    reconcile.New(doc),
		view:   server.config.App(),
		closed: make(chan struct{}),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Run performs the initial render and then processes inbound events
// until the connection closes. It blocks.
func (s *Session) Run(ctx context.Context) {
	defer s.Close()

	s.logger.Info("session started")

	if err := s.renderPass(ctx, "init"); err != nil {
		s.logger.Error("initial render failed", "error", err)
		return
	}
	s.saveSnapshot(ctx)

	go s.pingLoop()
	s.readLoop(ctx)
}

// Close shuts the connection down. Safe to call more than once.
func (s *Session) Close() {
	s.once.Do(func() {
		close(s.closed)
		s.conn.Close()
		s.logger.Info("session closed")
	})
}

// readLoop reads event frames until the connection closes or errors.
func (s *Session) readLoop(ctx context.Context) {
	for {
		s.conn.SetReadDeadline(time.Now().Add(s.server.config.ReadTimeout))

		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.server.metrics.wsErrors.WithLabelValues("read").Inc()
				s.logger.Error("read error", "error", err)
			}
			return
		}

		ev, err := protocol.DecodeEvent(msg)
		if err != nil {
			s.server.metrics.wsErrors.WithLabelValues("decode").Inc()
			s.logger.Error("event decode error", "error", err)
			continue
		}

		s.handleEvent(ctx, ev)
	}
}

// handleEvent dispatches one client event and re-renders.
func (s *Session) handleEvent(ctx context.Context, ev *protocol.Event) {
	if !s.doc.HandleEvent(ev) {
		// Stale target: the client raced a patch that removed the
		// node. Not an error.
		s.server.metrics.eventsTotal.WithLabelValues(ev.Type, "stale").Inc()
		s.logger.Debug("event for unknown node", "node", ev.Node, "type", ev.Type)
		return
	}
	s.server.metrics.eventsTotal.WithLabelValues(ev.Type, "ok").Inc()

	if err := s.renderPass(ctx, ev.Type); err != nil {
		s.logger.Error("render pass failed", "error", err)
		s.Close()
	}
}

// renderPass renders the view, reconciles it against the previous
// tree, and flushes the resulting ops to the client as one frame.
func (s *Session) renderPass(ctx context.Context, trigger string) error {
	ctx, span := tracer.Start(ctx, "weft.reconcile", trace.WithAttributes(
		attribute.String("weft.session_id", s.id),
		attribute.String("weft.trigger", trigger),
	))
	defer span.End()

	start := time.Now()
	next := s.view()
	s.rec.Reconcile(s.doc.Root(), next, s.prev)
	s.prev = next

	ops := s.doc.Flush()
	s.server.metrics.reconcileTotal.Inc()
	s.server.metrics.reconcileDuration.Observe(time.Since(start).Seconds())
	s.server.metrics.patchOpsTotal.Add(float64(len(ops)))
	span.SetAttributes(attribute.Int("weft.patch_ops", len(ops)))

	if len(ops) == 0 {
		return nil
	}

	s.seq++
	if err := s.writeMessage(protocol.EncodeOps(s.seq, ops)); err != nil {
		s.server.metrics.wsErrors.WithLabelValues("write").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "write failed")
		return err
	}

	s.logger.Debug("patch sent", "seq", s.seq, "ops", len(ops),
		"duration", time.Since(start))
	return nil
}

// saveSnapshot stores the first-paint HTML when a store is configured.
func (s *Session) saveSnapshot(ctx context.Context) {
	store := s.server.config.Snapshots
	if store == nil || s.prev == nil {
		return
	}
	html, err := render.RenderToString(s.prev)
	if err != nil {
		s.logger.Error("snapshot render failed", "error", err)
		return
	}
	if err := store.Save(ctx, s.id, html); err != nil {
		s.logger.Error("snapshot save failed", "error", err)
	}
}

// pingLoop keeps the connection alive while the client is idle.
func (s *Session) pingLoop() {
	ticker := time.NewTicker(s.server.config.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.closed:
			return
		case <-ticker.C:
			s.writeMu.Lock()
			s.conn.SetWriteDeadline(time.Now().Add(s.server.config.WriteTimeout))
			err := s.conn.WriteMessage(websocket.PingMessage, nil)
			s.writeMu.Unlock()
			if err != nil {
				s.Close()
				return
			}
		}
	}
}

func (s *Session) writeMessage(data []byte) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.conn.SetWriteDeadline(time.Now().Add(s.server.config.WriteTimeout))
	return s.conn.WriteMessage(websocket.BinaryMessage, data)
}
