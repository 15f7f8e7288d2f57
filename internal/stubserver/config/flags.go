package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/sharedrop/internal/flagx"
)

func parseFlags(cfg *Config, args []string) error {
	filtered := flagx.FilterArgs(args, []string{"-a", "-b", "-l"})

	fs := flag.NewFlagSet("stubserver", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Address, "a", cfg.Address, "listen address")
	fs.StringVar(&cfg.BaseURL, "b", cfg.BaseURL, "public base URL for returned links")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	return fs.Parse(filtered)
}
