package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/avelkovs/fleetdesk/internal/buildinfo"
	"github.com/avelkovs/fleetdesk/internal/cli"
	"github.com/avelkovs/fleetdesk/internal/config"
	"github.com/avelkovs/fleetdesk/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	logger := logging.NewSlogLogger(slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
