package app

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/stacklok/readmode-server/internal/app"
	"github.com/stacklok/readmode-server/internal/telemetry"
)

const defaultGracefulTimeout = 30 * time.Second

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the catalog API server",
		Long: `Start the catalog API server.

The configuration file (--config) names the catalog source (file, PostgREST
API or PostgreSQL), the sync interval, the tag taxonomy and where recently
watched videos are kept. See examples/ for a sample configuration.`,
		RunE: runServe,
	}

	cmd.Flags().String("address", ":8080", "Address to listen on")
	cmd.Flags().String("config", "", "Path to configuration file (YAML format, required)")
	cmd.Flags().String("data-dir", "./data", "Directory for sync status, catalog snapshots and recent videos")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	v, err := commandViper(cmd)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(v)
	if err != nil {
		return err
	}
	slog.Info("Loaded configuration",
		"path", v.GetString("config"),
		"catalog", cfg.GetCatalogName(),
		"source", cfg.Source.GetType())

	tel, err := telemetry.New(ctx, telemetry.WithTelemetryConfig(cfg.Telemetry))
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tel.Shutdown(shutdownCtx); err != nil {
			slog.Error("Failed to shutdown telemetry", "error", err)
		}
	}()

	catalogApp, err := app.NewCatalogApp(ctx,
		app.WithConfig(cfg),
		app.WithAddress(v.GetString("address")),
		app.WithDataDirectory(v.GetString("data-dir")),
		app.WithMeterProvider(tel.MeterProvider()),
		app.WithTracerProvider(tel.TracerProvider()),
		app.WithMetricsHandler(tel.MetricsHandler()),
	)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- catalogApp.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			_ = catalogApp.Stop(defaultGracefulTimeout)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	if err := catalogApp.Stop(defaultGracefulTimeout); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		return err
	}
	return nil
}
