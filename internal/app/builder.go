package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/netip"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/stacklok/readmode-server/internal/api"
	"github.com/stacklok/readmode-server/internal/app/storage"
	"github.com/stacklok/readmode-server/internal/config"
	"github.com/stacklok/readmode-server/internal/service"
	"github.com/stacklok/readmode-server/internal/service/inmemory"
	"github.com/stacklok/readmode-server/internal/sources"
	pkgsync "github.com/stacklok/readmode-server/internal/sync"
	"github.com/stacklok/readmode-server/internal/sync/coordinator"
	"github.com/stacklok/readmode-server/internal/sync/writer"
	"github.com/stacklok/readmode-server/internal/telemetry"
)

const (
	defaultDataDir        = "./data"
	defaultHTTPAddress    = ":8080"
	defaultRequestTimeout = 10 * time.Second
	defaultReadTimeout    = 10 * time.Second
	defaultWriteTimeout   = 15 * time.Second
	defaultIdleTimeout    = 60 * time.Second
)

// CatalogAppOptions configures the catalog app builder
type CatalogAppOptions func(*catalogAppConfig) error

type catalogAppConfig struct {
	config *config.Config

	// Component overrides, mainly for tests
	sourceHandlerFactory sources.SourceHandlerFactory
	syncManager          pkgsync.Manager
	storageFactory       storage.Factory

	address        string
	middlewares    []func(http.Handler) http.Handler
	requestTimeout time.Duration
	readTimeout    time.Duration
	writeTimeout   time.Duration
	idleTimeout    time.Duration

	dataDir string

	meterProvider  metric.MeterProvider
	tracerProvider trace.TracerProvider
	metricsHandler http.Handler
}

func baseConfig(opts ...CatalogAppOptions) (*catalogAppConfig, error) {
	cfg := &catalogAppConfig{
		address:        defaultHTTPAddress,
		requestTimeout: defaultRequestTimeout,
		readTimeout:    defaultReadTimeout,
		writeTimeout:   defaultWriteTimeout,
		idleTimeout:    defaultIdleTimeout,
		dataDir:        defaultDataDir,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	return cfg, nil
}

// NewCatalogApp builds the catalog server from its options
func NewCatalogApp(
	ctx context.Context,
	opts ...CatalogAppOptions,
) (*CatalogApp, error) {
	cfg, err := baseConfig(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build base configuration: %w", err)
	}

	if cfg.storageFactory == nil {
		cfg.storageFactory, err = storage.NewStorageFactory(ctx, cfg.config, cfg.dataDir)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage factory: %w", err)
		}
	}

	cleanupNeeded := true
	defer func() {
		if cleanupNeeded {
			cfg.storageFactory.Cleanup()
		}
	}()

	catalogStore, err := cfg.storageFactory.CreateCatalogStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog store: %w", err)
	}
	if catalogStore.LoadSnapshot(ctx, cfg.config.GetCatalogName()) {
		slog.Info("Serving catalog snapshot until the first sync completes",
			"catalog", cfg.config.GetCatalogName())
	}

	syncCoordinator, err := buildSyncComponents(ctx, cfg, catalogStore)
	if err != nil {
		return nil, fmt.Errorf("failed to build sync components: %w", err)
	}

	catalogService, err := buildServiceComponents(ctx, cfg, catalogStore)
	if err != nil {
		return nil, fmt.Errorf("failed to build service components: %w", err)
	}

	httpServer, err := buildHTTPServer(ctx, cfg, catalogService)
	if err != nil {
		return nil, fmt.Errorf("failed to build HTTP server: %w", err)
	}

	appCtx, cancel := context.WithCancel(ctx)

	cleanupNeeded = false
	factory := cfg.storageFactory
	cancelFunc := func() {
		factory.Cleanup()
		cancel()
	}

	return &CatalogApp{
		config: cfg.config,
		components: &AppComponents{
			SyncCoordinator: syncCoordinator,
			CatalogService:  catalogService,
			CatalogStore:    catalogStore,
		},
		httpServer: httpServer,
		ctx:        appCtx,
		cancelFunc: cancelFunc,
	}, nil
}

// WithConfig sets the configuration
func WithConfig(c *config.Config) CatalogAppOptions {
	return func(cfg *catalogAppConfig) error {
		cfg.config = c
		return nil
	}
}

// WithAddress sets the HTTP server address
func WithAddress(addr string) CatalogAppOptions {
	return func(cfg *catalogAppConfig) error {
		if addr == "" {
			return fmt.Errorf("address cannot be empty")
		}

		host, port, found := strings.Cut(addr, ":")
		if !found || port == "" {
			return fmt.Errorf("address is not a valid port: %s", addr)
		}
		if host == "localhost" {
			host = "127.0.0.1"
		}
		if host == "" {
			host = "0.0.0.0"
		}

		if _, err := netip.ParseAddrPort(host + ":" + port); err != nil {
			return fmt.Errorf("address is not a valid port: %w", err)
		}

		cfg.address = addr
		return nil
	}
}

// WithMiddlewares replaces the default HTTP middlewares
func WithMiddlewares(mw ...func(http.Handler) http.Handler) CatalogAppOptions {
	return func(cfg *catalogAppConfig) error {
		cfg.middlewares = mw
		return nil
	}
}

// WithDataDirectory sets the directory holding sync status, catalog
// snapshots and file based recent stores
func WithDataDirectory(dir string) CatalogAppOptions {
	return func(cfg *catalogAppConfig) error {
		if dir == "" {
			return fmt.Errorf("data directory cannot be empty")
		}
		cfg.dataDir = dir
		return nil
	}
}

// WithSourceHandlerFactory injects a source handler factory
func WithSourceHandlerFactory(f sources.SourceHandlerFactory) CatalogAppOptions {
	return func(cfg *catalogAppConfig) error {
		cfg.sourceHandlerFactory = f
		return nil
	}
}

// WithStorageFactory injects a storage factory
func WithStorageFactory(f storage.Factory) CatalogAppOptions {
	return func(cfg *catalogAppConfig) error {
		cfg.storageFactory = f
		return nil
	}
}

// WithSyncManager injects a sync manager
func WithSyncManager(sm pkgsync.Manager) CatalogAppOptions {
	return func(cfg *catalogAppConfig) error {
		cfg.syncManager = sm
		return nil
	}
}

// WithMeterProvider enables sync, catalog and HTTP metrics
func WithMeterProvider(mp metric.MeterProvider) CatalogAppOptions {
	return func(cfg *catalogAppConfig) error {
		cfg.meterProvider = mp
		return nil
	}
}

// WithTracerProvider enables request and service tracing
func WithTracerProvider(tp trace.TracerProvider) CatalogAppOptions {
	return func(cfg *catalogAppConfig) error {
		cfg.tracerProvider = tp
		return nil
	}
}

// WithMetricsHandler serves h on /metrics
func WithMetricsHandler(h http.Handler) CatalogAppOptions {
	return func(cfg *catalogAppConfig) error {
		cfg.metricsHandler = h
		return nil
	}
}

// buildSyncComponents builds the sync manager and coordinator
func buildSyncComponents(
	ctx context.Context,
	b *catalogAppConfig,
	syncWriter writer.SyncWriter,
) (coordinator.Coordinator, error) {
	slog.Info("Initializing sync components")

	if b.sourceHandlerFactory == nil {
		b.sourceHandlerFactory = sources.NewSourceHandlerFactory()
	}

	stateService, err := b.storageFactory.CreateStateService(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create state service: %w", err)
	}

	if b.syncManager == nil {
		b.syncManager = pkgsync.NewDefaultSyncManager(b.sourceHandlerFactory, syncWriter)
	}

	var coordOpts []coordinator.Option
	if b.meterProvider != nil {
		syncMetrics, err := telemetry.NewSyncMetrics(b.meterProvider)
		if err != nil {
			return nil, fmt.Errorf("failed to create sync metrics: %w", err)
		}
		if syncMetrics != nil {
			coordOpts = append(coordOpts, coordinator.WithSyncMetrics(syncMetrics))
			slog.Info("Sync metrics enabled")
		}

		catalogMetrics, err := telemetry.NewCatalogMetrics(b.meterProvider)
		if err != nil {
			return nil, fmt.Errorf("failed to create catalog metrics: %w", err)
		}
		if catalogMetrics != nil {
			coordOpts = append(coordOpts, coordinator.WithCatalogMetrics(catalogMetrics))
			slog.Info("Catalog metrics enabled")
		}
	}

	syncCoordinator := coordinator.New(b.syncManager, stateService, b.config, coordOpts...)
	slog.Info("Sync components initialized successfully")

	return syncCoordinator, nil
}

// buildServiceComponents builds the catalog service over the synced store
func buildServiceComponents(
	ctx context.Context,
	b *catalogAppConfig,
	reader writer.CatalogReader,
) (service.CatalogService, error) {
	slog.Info("Initializing service components")

	recentStore, err := b.storageFactory.CreateRecentStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create recent store: %w", err)
	}

	svcOpts := []inmemory.Option{
		inmemory.WithSourceType(b.config.Source.GetType()),
		inmemory.WithTagDefinitions(b.config.TagDefinitions()),
		inmemory.WithExclusionPolicy(b.config.ExclusionPolicy()),
		inmemory.WithRecentStore(recentStore),
		inmemory.WithRecentLimit(b.config.GetRecentLimit()),
	}
	if b.tracerProvider != nil {
		svcOpts = append(svcOpts, inmemory.WithTracer(b.tracerProvider.Tracer(inmemory.ServiceTracerName)))
	}

	svc, err := inmemory.New(reader, b.config.GetCatalogName(), svcOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog service: %w", err)
	}

	slog.Info("Service components initialized successfully")
	return svc, nil
}

// buildHTTPServer builds the HTTP server with router and middleware
//
//nolint:unparam // we prefer having a similar interface
func buildHTTPServer(
	_ context.Context,
	b *catalogAppConfig,
	svc service.CatalogService,
) (*http.Server, error) {
	slog.Info("Initializing HTTP server")

	if b.middlewares == nil {
		b.middlewares = []func(http.Handler) http.Handler{
			middleware.RequestID,
			middleware.RealIP,
			middleware.Recoverer,
			middleware.Timeout(b.requestTimeout),
			api.LoggingMiddleware,
		}
	}

	// Tracing and metrics go first so rejected and timed out requests are seen too
	var outer []func(http.Handler) http.Handler
	if b.tracerProvider != nil {
		outer = append(outer, telemetry.TracingMiddleware(b.tracerProvider))
		slog.Info("HTTP tracing middleware enabled")
	}
	if b.meterProvider != nil {
		metricsMiddleware, err := telemetry.MetricsMiddleware(b.meterProvider)
		if err != nil {
			return nil, fmt.Errorf("failed to create metrics middleware: %w", err)
		}
		if metricsMiddleware != nil {
			outer = append(outer, metricsMiddleware)
			slog.Info("HTTP metrics middleware enabled")
		}
	}
	b.middlewares = append(outer, b.middlewares...)

	router := api.NewServer(svc,
		api.WithMiddlewares(b.middlewares...),
		api.WithMetricsHandler(b.metricsHandler),
	)

	server := &http.Server{
		Addr:         b.address,
		Handler:      router,
		ReadTimeout:  b.readTimeout,
		WriteTimeout: b.writeTimeout,
		IdleTimeout:  b.idleTimeout,
	}

	slog.Info("HTTP server configured", "address", b.address)
	return server, nil
}
