// Package bridge hosts the session sink that adapters deliver into. The Hub
// logs every session, counts them for the metrics surface, and keeps a
// bounded ring of recent sessions for the gateway status endpoint.
package bridge

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"gopkg.in/yaml.v3"

	"github.com/flemzord/milkybridge/internal/core"
)

func init() {
	core.RegisterModule(&Hub{})
}

// Compile-time interface guards.
var (
	_ core.Configurable = (*Hub)(nil)
	_ core.Provisioner  = (*Hub)(nil)
	_ core.Validator    = (*Hub)(nil)
)

// Config holds the hub configuration.
type Config struct {
	// RecentBuffer is how many recent sessions to retain for /status.
	RecentBuffer int `yaml:"recent_buffer"`
}

func (c *Config) defaults() {
	if c.RecentBuffer == 0 {
		c.RecentBuffer = 100
	}
}

// Hub receives universal sessions from channel adapters.
type Hub struct {
	config   Config
	logger   *slog.Logger
	registry *prometheus.Registry

	sessionsTotal *prometheus.CounterVec

	mu     sync.Mutex
	recent []entry
	next   int
	total  uint64
}

type entry struct {
	used    bool
	session SessionSummary
}

// SessionSummary is the trimmed per-session view kept in the ring and
// exposed on /status. Full message bodies are not retained.
type SessionSummary struct {
	Type      string `json:"type"`
	Adapter   string `json:"adapter"`
	UserID    string `json:"user_id,omitempty"`
	ChannelID string `json:"channel_id,omitempty"`
	GuildID   string `json:"guild_id,omitempty"`
	MessageID string `json:"message_id,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// ModuleInfo implements core.Module.
func (h *Hub) ModuleInfo() core.ModuleInfo {
	return core.ModuleInfo{
		ID:  "bridge.hub",
		New: func() core.Module { return &Hub{} },
	}
}

// Configure implements core.Configurable.
func (h *Hub) Configure(node *yaml.Node) error {
	if err := node.Decode(&h.config); err != nil {
		return fmt.Errorf("bridge: decode config: %w", err)
	}
	h.config.defaults()
	return nil
}

// Provision implements core.Provisioner. The hub owns its own prometheus
// registry so repeated instantiation never double-registers collectors; the
// gateway serves it via the "bridge.metrics" service.
func (h *Hub) Provision(ctx *core.AppContext) error {
	h.logger = ctx.Logger
	h.config.defaults()
	// Provision runs before Validate; clamp so a negative buffer fails
	// validation instead of panicking here.
	h.recent = make([]entry, max(h.config.RecentBuffer, 0))

	h.registry = prometheus.NewRegistry()
	h.sessionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "milkybridge",
		Name:      "sessions_total",
		Help:      "Sessions received from channel adapters.",
	}, []string{"adapter", "type"})
	h.registry.MustRegister(h.sessionsTotal)

	ctx.RegisterService("bridge.hub", h)
	ctx.RegisterService("bridge.metrics", h.registry)
	return nil
}

// Validate implements core.Validator.
func (h *Hub) Validate() error {
	if h.config.RecentBuffer < 0 {
		return fmt.Errorf("bridge: recent_buffer must be non-negative, got %d", h.config.RecentBuffer)
	}
	return nil
}

// Registry returns the hub's prometheus registry.
func (h *Hub) Registry() *prometheus.Registry {
	return h.registry
}
