package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/sharedrop/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from zero values.
type jsonConfig struct {
	ServerBaseURL   *string `json:"server_base_url"`
	LogLevel        *string `json:"log_level"`
	SystemClipboard *bool   `json:"system_clipboard"`
}

// parseJSON overlays cfg with values from the file named by -c/-config.
// No flag means no change.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.ServerBaseURL != nil {
		cfg.ServerBaseURL = *jc.ServerBaseURL
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.SystemClipboard != nil {
		cfg.SystemClipboard = *jc.SystemClipboard
	}
	return nil
}
