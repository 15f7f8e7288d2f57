// Package config handles configuration for the stub file service,
// including defaults, JSON overlay, and command-line flags.
package config

import (
	"fmt"
	"net/url"
)

// Config holds runtime settings for the stub server.
//
// Fields:
//   - Address: listen address.
//   - BaseURL: public prefix of returned file links; empty means the
//     request host.
//   - LogLevel: minimum diagnostic level.
type Config struct {
	Address  string
	BaseURL  string
	LogLevel string
}

// LoadDefaults populates Config with local development defaults.
func (c *Config) LoadDefaults() {
	c.Address = "127.0.0.1:3000"
	c.BaseURL = ""
	c.LogLevel = "info"
}

// Validate rejects an unusable listen address or base URL.
func (c *Config) Validate() error {
	if c.Address == "" {
		return fmt.Errorf("listen address is empty")
	}
	if c.BaseURL == "" {
		return nil
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base url %q: scheme must be http or https", c.BaseURL)
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags. args
// excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
