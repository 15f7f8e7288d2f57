package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/sharedrop/internal/common"
)

// Config holds runtime settings for the sharedrop CLI.
type Config struct {
	// ServerBaseURL is the scheme://host[:port] prefix of both endpoints.
	ServerBaseURL string
	// LogLevel is the minimum diagnostic level written to stderr.
	LogLevel string
	// SystemClipboard selects the OS clipboard over an in-memory one.
	SystemClipboard bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:3000"
	c.LogLevel = "info"
	c.SystemClipboard = true
}

// UploadURL is the multipart upload endpoint.
func (c *Config) UploadURL() string {
	return strings.TrimRight(c.ServerBaseURL, "/") + common.UploadPath
}

// SendEmailURL is the share-by-email endpoint.
func (c *Config) SendEmailURL() string {
	return strings.TrimRight(c.ServerBaseURL, "/") + common.SendEmailPath
}

// Validate reports a base URL that cannot be used for requests.
func (c *Config) Validate() error {
	u, err := url.Parse(c.ServerBaseURL)
	if err != nil {
		return fmt.Errorf("server base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("server base url %q: scheme must be http or https", c.ServerBaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("server base url %q: missing host", c.ServerBaseURL)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones. args excludes the program name.
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
