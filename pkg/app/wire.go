package app

import (
	"fmt"
	"log/slog"

	"github.com/flemzord/milkybridge/internal/bridge"
	"github.com/flemzord/milkybridge/internal/channel"
	"github.com/flemzord/milkybridge/internal/core"
)

// wireChannels discovers channel adapters among the loaded modules, registers
// them with a Dispatcher, and points each adapter's inbox at the bridge hub.
// Must be called after LoadModules and before Start.
func wireChannels(app *core.App, appCtx *core.AppContext, ids []string, logger *slog.Logger) error {
	dispatcher := channel.NewDispatcher()
	var channels []channel.Channel

	for _, id := range ids {
		mod, ok := app.Module(id)
		if !ok {
			continue
		}
		ch, ok := mod.(channel.Channel)
		if !ok {
			continue
		}
		// Register under the full module ID (e.g. "channel.milky") because
		// that is what the adapter sets as the session's Adapter field.
		if err := dispatcher.Register(id, ch); err != nil {
			return fmt.Errorf("registering channel %s: %w", id, err)
		}
		channels = append(channels, ch)
		logger.Info("registered channel", "channel", id)
	}

	if len(channels) == 0 {
		logger.Info("no channel adapters configured, skipping dispatcher wiring")
		return nil
	}

	svc, ok := appCtx.Service("bridge.hub")
	if !ok {
		return fmt.Errorf("channel adapters require the bridge.hub module")
	}
	hub, ok := svc.(*bridge.Hub)
	if !ok {
		return fmt.Errorf("bridge.hub service has unexpected type %T", svc)
	}

	for _, ch := range channels {
		ch.SetInbox(hub.Receive)
	}

	appCtx.RegisterService("channel.dispatcher", dispatcher)
	logger.Info("dispatcher wired", "channels", len(channels))
	return nil
}
