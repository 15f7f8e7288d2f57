package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/sharedrop/internal/flagx"
)

// parseFlags populates cfg from -u, -l and -clip. Other arguments are left
// to their owners (see flagx.FilterArgs).
func parseFlags(cfg *Config, args []string) error {
	filtered := flagx.FilterArgs(args, []string{"-u", "-l"}, "-clip")

	fs := flag.NewFlagSet("sharedrop", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerBaseURL, "u", cfg.ServerBaseURL, "base URL of the file service")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.SystemClipboard, "clip", cfg.SystemClipboard, "use the system clipboard")

	return fs.Parse(filtered)
}
