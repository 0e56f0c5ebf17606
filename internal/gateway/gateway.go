// Package gateway exposes the bridge's operational HTTP surface: health,
// status, and prometheus metrics. It is a leaf module — nothing imports it.
package gateway

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gopkg.in/yaml.v3"

	"github.com/flemzord/milkybridge/internal/bridge"
	"github.com/flemzord/milkybridge/internal/channel"
	"github.com/flemzord/milkybridge/internal/core"
	"github.com/flemzord/milkybridge/internal/heartbeat"
	"github.com/flemzord/milkybridge/internal/security"
)

func init() {
	core.RegisterModule(&Gateway{})
}

// Compile-time interface guards.
var (
	_ core.Configurable = (*Gateway)(nil)
	_ core.Provisioner  = (*Gateway)(nil)
	_ core.Validator    = (*Gateway)(nil)
	_ core.Starter      = (*Gateway)(nil)
	_ core.Stopper      = (*Gateway)(nil)
)

// Gateway is the HTTP gateway module.
type Gateway struct {
	config    Config
	appCtx    *core.AppContext
	logger    *slog.Logger
	server    *http.Server
	startedAt time.Time

	// Resolved lazily at Start() via service registry.
	hub        *bridge.Hub
	registry   *prometheus.Registry
	dispatcher *channel.Dispatcher
	monitor    *heartbeat.Heartbeat
}

// ModuleInfo implements core.Module.
func (g *Gateway) ModuleInfo() core.ModuleInfo {
	return core.ModuleInfo{
		ID:  "gateway.http",
		New: func() core.Module { return &Gateway{} },
	}
}

// Configure implements core.Configurable.
func (g *Gateway) Configure(node *yaml.Node) error {
	if err := node.Decode(&g.config); err != nil {
		return err
	}
	g.config.defaults()
	return nil
}

// Provision implements core.Provisioner.
func (g *Gateway) Provision(ctx *core.AppContext) error {
	g.appCtx = ctx
	g.logger = ctx.Logger

	if svc, ok := ctx.Service("security.credentials"); ok {
		if store, ok := svc.(*security.CredentialStore); ok {
			if g.config.Auth.BearerToken != "" {
				store.Set("gateway.bearer_token", g.config.Auth.BearerToken)
			}
			if g.config.Auth.BasicPass != "" {
				store.Set("gateway.basic_pass", g.config.Auth.BasicPass)
			}
		}
	}
	return nil
}

// Validate implements core.Validator.
func (g *Gateway) Validate() error {
	if _, err := net.ResolveTCPAddr("tcp", g.config.Bind); err != nil {
		return errors.New("gateway: invalid bind address: " + g.config.Bind)
	}
	return nil
}

// Start implements core.Starter. It resolves dependencies from the service
// registry (lazy binding) and starts the HTTP server.
func (g *Gateway) Start() error {
	// Resolve optional services — graceful degradation if missing.
	if svc, ok := g.appCtx.Service("bridge.hub"); ok {
		if hub, ok := svc.(*bridge.Hub); ok {
			g.hub = hub
		}
	}
	if svc, ok := g.appCtx.Service("bridge.metrics"); ok {
		if reg, ok := svc.(*prometheus.Registry); ok {
			g.registry = reg
		}
	}
	if svc, ok := g.appCtx.Service("channel.dispatcher"); ok {
		if d, ok := svc.(*channel.Dispatcher); ok {
			g.dispatcher = d
		}
	}
	if svc, ok := g.appCtx.Service("heartbeat.monitor"); ok {
		if m, ok := svc.(*heartbeat.Heartbeat); ok {
			g.monitor = m
		}
	}

	g.startedAt = time.Now()

	g.server = &http.Server{
		Addr:         g.config.Bind,
		Handler:      g.buildRouter(),
		ReadTimeout:  g.config.ReadTimeout,
		WriteTimeout: g.config.WriteTimeout,
	}

	var lc net.ListenConfig
	ln, err := lc.Listen(context.Background(), "tcp", g.config.Bind)
	if err != nil {
		return errors.New("gateway: listen failed: " + err.Error())
	}

	go func() {
		g.logger.Info("gateway listening", "addr", g.config.Bind)
		if err := g.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			g.logger.Error("gateway serve error", "error", err)
		}
	}()

	return nil
}

// Stop implements core.Stopper. Graceful shutdown with configured timeout.
func (g *Gateway) Stop(ctx context.Context) error {
	if g.server == nil {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, g.config.ShutdownTimeout)
	defer cancel()

	g.logger.Info("gateway shutting down")
	return g.server.Shutdown(shutdownCtx)
}

// adapterStates collects the connection state of every registered adapter.
func (g *Gateway) adapterStates() map[string]string {
	states := make(map[string]string)
	if g.dispatcher == nil {
		return states
	}
	for _, name := range g.dispatcher.Adapters() {
		ch, ok := g.dispatcher.Get(name)
		if !ok {
			continue
		}
		if reporter, ok := ch.(channel.StatusReporter); ok {
			states[name] = reporter.State()
		} else {
			states[name] = "unknown"
		}
	}
	return states
}
