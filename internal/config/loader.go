package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// placeholderPattern matches ${VAR} and ${VAR:-default} expressions in the
// raw file.
var placeholderPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::-((?:[^}\\]|\\.)*))?\}`)

// Load reads the bridge configuration from path. Environment placeholders
// are interpolated before the YAML is parsed, so secrets like the protocol
// access token can stay out of the file itself.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	interpolated, err := interpolate(raw)
	if err != nil {
		return nil, fmt.Errorf("config: expanding variables in %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(interpolated, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &cfg, nil
}

// interpolate substitutes every environment placeholder in the raw bytes.
// Placeholders with no value and no :-default are collected and reported
// together, so a misconfigured deployment fails with the full list at once.
func interpolate(raw []byte) ([]byte, error) {
	var missing []error

	out := placeholderPattern.ReplaceAllFunc(raw, func(match []byte) []byte {
		value, err := resolvePlaceholder(match)
		if err != nil {
			missing = append(missing, err)
			return match
		}
		return value
	})

	return out, errors.Join(missing...)
}

// resolvePlaceholder resolves a single ${VAR} or ${VAR:-default} expression
// against the process environment.
func resolvePlaceholder(match []byte) ([]byte, error) {
	subs := placeholderPattern.FindSubmatch(match)
	name := string(subs[1])

	if value, ok := os.LookupEnv(name); ok {
		return []byte(value), nil
	}
	if subs[2] != nil {
		return subs[2], nil
	}
	return nil, fmt.Errorf("unresolved variable: %s", name)
}
