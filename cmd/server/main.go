package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nexcard/nexcard/internal/app"
	"github.com/nexcard/nexcard/internal/config"
	"github.com/nexcard/nexcard/internal/server"
	"github.com/samber/do/v2"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	injector := app.New(cfg)
	do.MustInvoke[*slog.Logger](injector)

	s, err := do.Invoke[*server.Server](injector)
	if err != nil {
		slog.Error("Failed to build server", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := s.Start(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if report := injector.ShutdownWithContext(shutdownCtx); report != nil && !report.Succeed {
		slog.Error("Shutdown finished with errors", "report", report.Error())
	}

	if runErr != nil {
		slog.Error("Server stopped", "error", runErr)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}
