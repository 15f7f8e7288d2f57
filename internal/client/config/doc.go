// Package config loads runtime configuration for the sharedrop client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config (see parseJSON).
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-u string   base URL of the file service (upload and email endpoints)
//	-l string   log level: debug, info, warn, error
//	-clip       use the system clipboard (set -clip=false for headless runs)
//
// # JSON schema
//
//	{
//	  "server_base_url": "http://localhost:3000",
//	  "log_level": "info",
//	  "system_clipboard": true
//	}
//
// Keys missing from the JSON file leave the default untouched.
package config
