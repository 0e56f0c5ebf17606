package milky

import (
	"fmt"
	"net/url"
	"time"
)

// Config holds the Milky channel configuration.
type Config struct {
	// Endpoint is the base HTTP URL of the protocol implementation. The
	// event stream URL is derived from it.
	Endpoint string `yaml:"endpoint"`

	// Token is the optional bearer token. When set it decorates every
	// action call's Authorization header and the event stream's query
	// string identically.
	Token string `yaml:"token"`

	AllowUsers  []string `yaml:"allow_users"`
	AllowGuilds []string `yaml:"allow_guilds"`

	// ReconnectErrorLimit is how many consecutive failed connection attempts
	// are tolerated before the reconnect loop pauses.
	ReconnectErrorLimit int `yaml:"reconnect_error_limit"`

	// ReconnectPause is how long the loop sleeps once the limit is reached.
	ReconnectPause time.Duration `yaml:"reconnect_pause"`
}

// defaults applies default values to unset fields.
func (c *Config) defaults() {
	if c.Endpoint == "" {
		c.Endpoint = "http://127.0.0.1:3000"
	}
	if c.ReconnectErrorLimit <= 0 {
		c.ReconnectErrorLimit = defaultReconnectErrorLimit
	}
	if c.ReconnectPause <= 0 {
		c.ReconnectPause = defaultReconnectPause
	}
}

// validate checks configuration field constraints. It is called from
// Milky.Validate after defaults have been applied.
func (c *Config) validate() error {
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("milky: endpoint %q: %w", c.Endpoint, err)
	}
	switch u.Scheme {
	case "http", "https":
	default:
		return fmt.Errorf("milky: endpoint %q: scheme must be http or https", c.Endpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("milky: endpoint %q: host is required", c.Endpoint)
	}
	return nil
}
