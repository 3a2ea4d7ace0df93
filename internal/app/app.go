// Package app wires the catalog server together and manages its lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/stacklok/readmode-server/internal/config"
)

// CatalogApp encapsulates all components needed to run the catalog API server
type CatalogApp struct {
	config     *config.Config
	components *AppComponents
	httpServer *http.Server

	ctx        context.Context
	cancelFunc context.CancelFunc
}

// Start starts the background sync and the HTTP server. It blocks until the
// HTTP server stops or fails.
func (app *CatalogApp) Start() error {
	go func() {
		if err := app.components.SyncCoordinator.Start(app.ctx); err != nil {
			slog.Error("Sync coordinator failed", "error", err)
		}
	}()

	slog.Info("Server listening", "address", app.httpServer.Addr)
	if err := app.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server failed: %w", err)
	}

	return nil
}

// Stop stops the sync coordinator, then shuts the HTTP server down within timeout
func (app *CatalogApp) Stop(timeout time.Duration) error {
	slog.Info("Shutting down server")

	if err := app.components.SyncCoordinator.Stop(); err != nil {
		slog.Error("Failed to stop sync coordinator", "error", err)
	}

	if app.cancelFunc != nil {
		app.cancelFunc()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := app.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("Server shutdown complete")
	return nil
}

// GetConfig returns the application configuration
func (app *CatalogApp) GetConfig() *config.Config {
	return app.config
}

// GetHTTPServer returns the HTTP server
func (app *CatalogApp) GetHTTPServer() *http.Server {
	return app.httpServer
}
