// Package heartbeat runs a scheduled liveness probe against the protocol
// endpoint and reports the result into the status surface.
package heartbeat

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"github.com/flemzord/milkybridge/internal/core"
	"github.com/flemzord/milkybridge/modules/channel/milky"
)

func init() {
	core.RegisterModule(&Heartbeat{})
}

// Compile-time interface guards.
var (
	_ core.Configurable = (*Heartbeat)(nil)
	_ core.Provisioner  = (*Heartbeat)(nil)
	_ core.Validator    = (*Heartbeat)(nil)
	_ core.Starter      = (*Heartbeat)(nil)
	_ core.Stopper      = (*Heartbeat)(nil)
)

// Config holds heartbeat configuration.
type Config struct {
	// Schedule is a five-field cron expression. Default: every minute.
	Schedule string `yaml:"schedule"`

	// Endpoint and Token mirror the channel's settings; the probe calls the
	// endpoint directly so it keeps working while the channel reconnects.
	Endpoint string `yaml:"endpoint"`
	Token    string `yaml:"token"`

	// ProbeTimeout bounds each probe call.
	ProbeTimeout time.Duration `yaml:"probe_timeout"`
}

func (c *Config) defaults() {
	if c.Schedule == "" {
		c.Schedule = "* * * * *"
	}
	if c.Endpoint == "" {
		c.Endpoint = "http://127.0.0.1:3000"
	}
	if c.ProbeTimeout <= 0 {
		c.ProbeTimeout = 15 * time.Second
	}
}

// Status is the probe result exposed on /status.
type Status struct {
	Healthy   bool      `json:"healthy"`
	LastProbe time.Time `json:"last_probe,omitzero"`
	SelfID    int64     `json:"self_id,omitempty"`
	LastError string    `json:"last_error,omitempty"`
}

// Heartbeat probes get_login_info on a cron schedule.
type Heartbeat struct {
	config Config
	logger *slog.Logger
	client *milky.Client
	cron   *cron.Cron

	mu     sync.Mutex
	status Status
}

// ModuleInfo implements core.Module.
func (h *Heartbeat) ModuleInfo() core.ModuleInfo {
	return core.ModuleInfo{
		ID:  "heartbeat.probe",
		New: func() core.Module { return &Heartbeat{} },
	}
}

// Configure implements core.Configurable.
func (h *Heartbeat) Configure(node *yaml.Node) error {
	if err := node.Decode(&h.config); err != nil {
		return fmt.Errorf("heartbeat: decode config: %w", err)
	}
	h.config.defaults()
	return nil
}

// Provision implements core.Provisioner.
func (h *Heartbeat) Provision(ctx *core.AppContext) error {
	h.logger = ctx.Logger
	h.client = milky.NewClient(h.config.Endpoint, h.config.Token)
	ctx.RegisterService("heartbeat.monitor", h)
	return nil
}

// Validate implements core.Validator.
func (h *Heartbeat) Validate() error {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	if _, err := parser.Parse(h.config.Schedule); err != nil {
		return fmt.Errorf("heartbeat: invalid schedule %q: %w", h.config.Schedule, err)
	}
	return nil
}

// Start implements core.Starter.
func (h *Heartbeat) Start() error {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	h.cron = cron.New(cron.WithParser(parser))

	if _, err := h.cron.AddFunc(h.config.Schedule, h.probe); err != nil {
		return fmt.Errorf("heartbeat: schedule probe: %w", err)
	}

	h.cron.Start()
	h.logger.Info("heartbeat started", "schedule", h.config.Schedule)
	return nil
}

// Stop implements core.Stopper. It waits for an in-flight probe to finish.
func (h *Heartbeat) Stop(ctx context.Context) error {
	if h.cron == nil {
		return nil
	}
	select {
	case <-h.cron.Stop().Done():
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}

// Status returns the latest probe result.
func (h *Heartbeat) Status() Status {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.status
}

func (h *Heartbeat) probe() {
	ctx, cancel := context.WithTimeout(context.Background(), h.config.ProbeTimeout)
	defer cancel()

	info, err := h.client.GetLoginInfo(ctx)

	h.mu.Lock()
	h.status.LastProbe = time.Now()
	if err != nil {
		h.status.Healthy = false
		h.status.LastError = err.Error()
	} else {
		h.status.Healthy = true
		h.status.SelfID = info.UIN
		h.status.LastError = ""
	}
	h.mu.Unlock()

	if err != nil {
		h.logger.Warn("heartbeat probe failed", "error", err)
	} else {
		h.logger.Debug("heartbeat probe ok", "self_id", info.UIN)
	}
}
