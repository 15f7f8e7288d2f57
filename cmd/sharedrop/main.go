package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/sharedrop/internal/buildinfo"
	"github.com/dmitrijs2005/sharedrop/internal/client/cli"
	"github.com/dmitrijs2005/sharedrop/internal/client/config"
	"github.com/dmitrijs2005/sharedrop/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.NewApp(cfg, logger, os.Stdin, os.Stdout)
	app.Run(ctx)

}
