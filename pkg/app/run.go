// Package app provides the shared entry point for the milkybridge binary.
package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/flemzord/milkybridge/internal/config"
	"github.com/flemzord/milkybridge/internal/core"
	"github.com/flemzord/milkybridge/internal/security"
)

// RunParams configures the main application loop.
type RunParams struct {
	// ConfigPath is an explicit path to the YAML configuration file.
	// If empty, ResolveConfigPath is called automatically.
	ConfigPath string

	// Version, Commit, and Date are injected at build time via ldflags.
	Version string
	Commit  string
	Date    string

	// LogLevel sets the minimum log level. Defaults to slog.LevelInfo.
	LogLevel slog.Level
}

// Run loads configuration, starts all modules, and blocks until a shutdown
// signal is received.
func Run(params RunParams) error {
	cfgPath := params.ConfigPath
	if cfgPath == "" {
		resolved, err := ResolveConfigPath()
		if err != nil {
			return err
		}
		cfgPath = resolved
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	// Initialize credential store and redactor before the logger so no log
	// line is ever emitted through an unredacted handler.
	credStore := security.NewCredentialStore()
	redactor := security.NewRedactor()

	innerHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: params.LogLevel,
	})
	logger := slog.New(security.NewRedactingHandler(innerHandler, redactor))
	logger.Info("starting", "version", params.Version, "config", cfgPath)

	appCtx := core.NewAppContext(logger)
	appCtx = appCtx.WithModuleConfigs(cfg.Modules)

	// Register security services for cross-module discovery. Modules drop
	// their access tokens into the store during Provision.
	appCtx.RegisterService("security.credentials", credStore)
	appCtx.RegisterService("security.redactor", redactor)
	appCtx.RegisterService("config.path", cfgPath)

	application := core.NewApp(appCtx)
	ids := cfg.ModuleIDs()
	if err := application.LoadModules(ids); err != nil {
		return err
	}

	// All Provision hooks have run; pick up every registered token before
	// the first network dial gets logged.
	redactor.SyncCredentials(credStore)

	// Wire the dispatcher between LoadModules and Start: discover channel
	// adapters, point their inboxes at the hub, and publish the dispatcher
	// for the gateway's health and status surfaces.
	if err := wireChannels(application, appCtx, ids, logger); err != nil {
		return err
	}

	return application.Run()
}

// ResolveConfigPath searches for a config file in standard locations.
// Search order: $XDG_CONFIG_HOME/milkybridge/milkybridge.yaml →
// ~/.config/milkybridge/milkybridge.yaml → ./milkybridge.yaml
func ResolveConfigPath() (string, error) {
	var candidates []string

	if xdg, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok {
		candidates = append(candidates, filepath.Join(xdg, "milkybridge", "milkybridge.yaml"))
	} else if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "milkybridge", "milkybridge.yaml"))
	}

	candidates = append(candidates, "milkybridge.yaml")

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("no configuration file found (searched: %v)", candidates)
}
