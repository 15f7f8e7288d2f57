package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/sharedrop/internal/flagx"
)

type jsonConfig struct {
	Address  *string `json:"address"`
	BaseURL  *string `json:"base_url"`
	LogLevel *string `json:"log_level"`
}

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

	if jc.Address != nil {
		cfg.Address = *jc.Address
	}
	if jc.BaseURL != nil {
		cfg.BaseURL = *jc.BaseURL
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	return nil
}
