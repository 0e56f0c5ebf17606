// Package config handles YAML configuration loading, environment variable
// expansion, and structural validation for milkybridge.
package config

import (
	"slices"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration structure.
type Config struct {
	// Version is the config format version. Currently only "1" is supported.
	Version string `yaml:"version"`

	// Modules maps module IDs to their raw YAML configuration.
	// Keys must match registered module IDs (e.g. "channel.milky").
	Modules map[string]yaml.Node `yaml:"modules"`
}

// ModuleIDs returns the configured module IDs in sorted order, so modules
// load deterministically regardless of map iteration order.
func (c *Config) ModuleIDs() []string {
	ids := make([]string, 0, len(c.Modules))
	for id := range c.Modules {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
