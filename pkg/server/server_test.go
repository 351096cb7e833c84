package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/weft-ui/weft/pkg/protocol"
	"github.com/weft-ui/weft/pkg/snapshot"
)

func newTestServer(t *testing.T, config Config) (*Server, *httptest.Server) {
	t.Helper()
	if config.App == nil {
		config.App = CounterApp
	}
	s, err := New(config)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func dialWS(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readOpsFrame(t *testing.T, conn *websocket.Conn) (uint64, []protocol.Op) {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage: %v", err)
	}
	seq, ops, err := protocol.DecodeOps(msg)
	if err != nil {
		t.Fatalf("DecodeOps: %v", err)
	}
	return seq, ops
}

func TestNewRequiresApp(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Error("New without App should fail")
	}
}

func TestIndexServesFirstPaint(t *testing.T) {
	_, ts := newTestServer(t, Config{})

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}

	buf := make([]byte, 4096)
	n, _ := resp.Body.Read(buf)
	body := string(buf[:n])
	if !strings.Contains(body, `<div class="counter">`) {
		t.Errorf("body missing rendered app:\n%s", body)
	}
}

func TestHealthz(t *testing.T) {
	_, ts := newTestServer(t, Config{})

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	_, ts := newTestServer(t, Config{})

	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestSessionInitialFrame(t *testing.T) {
	_, ts := newTestServer(t, Config{})
	conn := dialWS(t, ts)

	seq, ops := readOpsFrame(t, conn)
	if seq != 1 {
		t.Errorf("seq = %d, want 1", seq)
	}
	if len(ops) == 0 {
		t.Fatal("initial frame has no ops")
	}

	listens := 0
	for _, op := range ops {
		if op.Code == protocol.OpListen && op.Key == "click" {
			listens++
		}
	}
	if listens != 2 {
		t.Errorf("click listens = %d, want 2", listens)
	}
}

func TestSessionEventRoundTrip(t *testing.T) {
	_, ts := newTestServer(t, Config{})
	conn := dialWS(t, ts)

	_, ops := readOpsFrame(t, conn)

	// First click listener in document order is the "+" button.
	var target uint64
	for _, op := range ops {
		if op.Code == protocol.OpListen && op.Key == "click" {
			target = op.Node
			break
		}
	}
	if target == 0 {
		t.Fatal("no click listener in initial frame")
	}

	ev := protocol.EncodeEvent(&protocol.Event{Node: target, Type: "click"})
	if err := conn.WriteMessage(websocket.BinaryMessage, ev); err != nil {
		t.Fatalf("WriteMessage: %v", err)
	}

	seq, patch := readOpsFrame(t, conn)
	if seq != 2 {
		t.Errorf("patch seq = %d, want 2", seq)
	}

	found := false
	for _, op := range patch {
		if op.Code == protocol.OpCreateText && op.Value == "1" {
			found = true
		}
	}
	if !found {
		t.Errorf("patch does not update count to 1: %+v", patch)
	}
}

func TestSessionSavesSnapshot(t *testing.T) {
	store := snapshot.NewMemStore()
	_, ts := newTestServer(t, Config{Snapshots: store})
	conn := dialWS(t, ts)

	readOpsFrame(t, conn)

	deadline := time.Now().Add(2 * time.Second)
	for store.Len() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if store.Len() != 1 {
		t.Fatalf("snapshots = %d, want 1", store.Len())
	}
}

func TestConfigDefaults(t *testing.T) {
	c := Config{}
	c.fillDefaults()
	if c.Address != ":8080" {
		t.Errorf("Address = %q", c.Address)
	}
	if c.ReadTimeout == 0 || c.WriteTimeout == 0 || c.PingInterval == 0 {
		t.Error("timeouts not defaulted")
	}
	if c.CheckOrigin == nil || c.Logger == nil {
		t.Error("CheckOrigin/Logger not defaulted")
	}
}
