package gateway

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/flemzord/milkybridge/internal/bridge"
	"github.com/flemzord/milkybridge/internal/channel"
	"github.com/flemzord/milkybridge/internal/core"
	"github.com/flemzord/milkybridge/pkg/message"
)

// stubAdapter implements channel.Channel and channel.StatusReporter.
type stubAdapter struct {
	id    string
	state string
}

func (s *stubAdapter) ModuleInfo() core.ModuleInfo {
	return core.ModuleInfo{ID: core.ModuleID(s.id)}
}

func (s *stubAdapter) Send(_ context.Context, _ message.Outbound) ([]message.Message, error) {
	return nil, nil
}

func (s *stubAdapter) SetInbox(func(message.Session) error) {}

func (s *stubAdapter) State() string { return s.state }

func testHub(t *testing.T) *bridge.Hub {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := &bridge.Hub{}
	if err := h.Provision(core.NewAppContext(logger)); err != nil {
		t.Fatalf("provision hub: %v", err)
	}
	return h
}

func testGateway(t *testing.T, cfg Config, d *channel.Dispatcher, hub *bridge.Hub) *Gateway {
	t.Helper()
	cfg.defaults()
	g := &Gateway{
		config:     cfg,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		startedAt:  time.Now(),
		dispatcher: d,
		hub:        hub,
	}
	if hub != nil {
		g.registry = hub.Registry()
	}
	return g
}

func TestHealth_AllOnline(t *testing.T) {
	t.Parallel()
	d := channel.NewDispatcher()
	_ = d.Register("channel.milky", &stubAdapter{id: "channel.milky", state: "online"})
	g := testGateway(t, Config{}, d, nil)

	rec := httptest.NewRecorder()
	g.buildRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("Status = %q, want ok", resp.Status)
	}
	if resp.Adapters["channel.milky"] != "online" {
		t.Errorf("adapter state = %q", resp.Adapters["channel.milky"])
	}
}

func TestHealth_DegradedAdapter(t *testing.T) {
	t.Parallel()
	d := channel.NewDispatcher()
	_ = d.Register("channel.milky", &stubAdapter{id: "channel.milky", state: "disconnected"})
	g := testGateway(t, Config{}, d, nil)

	rec := httptest.NewRecorder()
	g.buildRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "degraded" {
		t.Errorf("Status = %q, want degraded", resp.Status)
	}
}

func TestHealth_NoDispatcher(t *testing.T) {
	t.Parallel()
	g := testGateway(t, Config{}, nil, nil)

	rec := httptest.NewRecorder()
	g.buildRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestStatus_ReportsSessions(t *testing.T) {
	t.Parallel()
	hub := testHub(t)
	if err := hub.Receive(message.Session{
		Type:      message.SessionMessage,
		Adapter:   "channel.milky",
		UserID:    "42",
		ChannelID: "private:42",
		Timestamp: time.Now(),
	}); err != nil {
		t.Fatalf("receive: %v", err)
	}

	d := channel.NewDispatcher()
	_ = d.Register("channel.milky", &stubAdapter{id: "channel.milky", state: "online"})
	g := testGateway(t, Config{}, d, hub)

	rec := httptest.NewRecorder()
	g.buildRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp StatusResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Sessions != 1 {
		t.Errorf("Sessions = %d, want 1", resp.Sessions)
	}
	if len(resp.Recent) != 1 {
		t.Fatalf("Recent has %d entries, want 1", len(resp.Recent))
	}
	if resp.Recent[0].UserID != "42" {
		t.Errorf("Recent[0].UserID = %q", resp.Recent[0].UserID)
	}
	if resp.Adapters["channel.milky"] != "online" {
		t.Errorf("adapter state = %q", resp.Adapters["channel.milky"])
	}
}

func TestMetrics_ExposesSessionCounter(t *testing.T) {
	t.Parallel()
	hub := testHub(t)
	_ = hub.Receive(message.Session{
		Type:      message.SessionMessage,
		Adapter:   "channel.milky",
		Timestamp: time.Now(),
	})
	g := testGateway(t, Config{}, nil, hub)

	rec := httptest.NewRecorder()
	g.buildRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "milkybridge_sessions_total") {
		t.Errorf("metrics output missing session counter:\n%s", body)
	}
}

func TestRouter_AuthProtectsOperationalEndpoints(t *testing.T) {
	t.Parallel()
	cfg := Config{Auth: AuthConfig{BearerToken: "tok"}}
	g := testGateway(t, cfg, nil, testHub(t))
	router := g.buildRouter()

	// /health stays public.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("/health without auth = %d, want 200", rec.Code)
	}

	// /status requires the token.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("/status without auth = %d, want 401", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("/status with auth = %d, want 200", rec.Code)
	}

	// /metrics requires the token too.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("/metrics without auth = %d, want 401", rec.Code)
	}
}

func TestConfig_Defaults(t *testing.T) {
	t.Parallel()
	var cfg Config
	cfg.defaults()
	if cfg.Bind != "127.0.0.1:8080" {
		t.Errorf("Bind = %q", cfg.Bind)
	}
	if cfg.ReadTimeout <= 0 || cfg.WriteTimeout <= 0 || cfg.ShutdownTimeout <= 0 {
		t.Error("expected positive timeout defaults")
	}
}
