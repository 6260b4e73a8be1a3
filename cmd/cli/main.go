package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/taskdeck/internal/buildinfo"
	"github.com/dmitrijs2005/taskdeck/internal/client/cli"
	"github.com/dmitrijs2005/taskdeck/internal/client/config"
	"github.com/dmitrijs2005/taskdeck/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.New(os.Stderr, cfg.LogLevel)
	logger.Debug(ctx, "config loaded", "api", cfg.APIBaseURL, "db", cfg.DBPath)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error(ctx, "cli stopped", "error", err)
		os.Exit(1)
	}
}
