package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/andrissp/invoicedesk/internal/buildinfo"
	"github.com/andrissp/invoicedesk/internal/client/cli"
	"github.com/andrissp/invoicedesk/internal/client/config"
	"github.com/andrissp/invoicedesk/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
