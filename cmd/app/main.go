package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"farmerassist.app/internal/app"
	"github.com/joho/godotenv"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using process environment")
	}

	if err := run(); err != nil {
		slog.Error("Farmer assistant backend exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	application, err := app.NewApplication()
	if err != nil {
		return err
	}

	cfg := application.Config()
	slog.Info("Configuration loaded",
		"port", cfg.Server.Port,
		"cache", cfg.Cache.Type.String(),
		"sweep_interval", cfg.Cache.SweepInterval.String(),
		"provider_call_logging", cfg.Logging.ProviderCalls)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- application.Start(ctx)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			_ = shutdown(application)
		}
		return err
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	}

	if err := shutdown(application); err != nil {
		return err
	}
	return <-serveErr
}

func shutdown(application *app.Application) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return application.Shutdown(ctx)
}
