package telemetry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// Telemetry owns the tracer and meter providers of the process
type Telemetry struct {
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
	metricsHandler http.Handler
}

// Option is a function that configures the telemetry setup
type Option func(*telemetryConfig)

type telemetryConfig struct {
	config *Config
}

// WithTelemetryConfig sets the telemetry configuration
func WithTelemetryConfig(cfg *Config) Option {
	return func(tc *telemetryConfig) {
		tc.config = cfg
	}
}

// New initializes telemetry. With a nil or disabled configuration every
// provider is a no-op. The caller must call Shutdown on exit.
func New(ctx context.Context, opts ...Option) (*Telemetry, error) {
	tc := &telemetryConfig{}
	for _, opt := range opts {
		opt(tc)
	}

	cfg := tc.config
	if cfg == nil || !cfg.Enabled {
		slog.Debug("Telemetry disabled")
		return newNoOpTelemetry(ctx)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid telemetry configuration: %w", err)
	}

	slog.Info("Initializing telemetry",
		"service_name", cfg.GetServiceName(),
		"service_version", cfg.GetServiceVersion(),
	)

	tracerProvider, err := NewTracerProvider(ctx,
		WithTracerServiceName(cfg.GetServiceName()),
		WithTracerServiceVersion(cfg.GetServiceVersion()),
		WithTracingConfig(cfg.Tracing),
		WithTracerEndpoint(cfg.GetEndpoint()),
		WithTracerInsecure(cfg.Insecure),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer provider: %w", err)
	}

	meterOpts := []MeterProviderOption{
		WithMeterServiceName(cfg.GetServiceName()),
		WithMeterServiceVersion(cfg.GetServiceVersion()),
		WithMetricsConfig(cfg.Metrics),
		WithMeterEndpoint(cfg.GetEndpoint()),
		WithMeterInsecure(cfg.Insecure),
	}

	var metricsHandler http.Handler
	if cfg.PrometheusEnabled() {
		registry := prometheus.NewRegistry()
		meterOpts = append(meterOpts, WithPrometheusRegisterer(registry))
		metricsHandler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
	}

	meterProvider, err := NewMeterProvider(ctx, meterOpts...)
	if err != nil {
		if tp, ok := tracerProvider.(*sdktrace.TracerProvider); ok {
			_ = tp.Shutdown(ctx)
		}
		return nil, fmt.Errorf("failed to create meter provider: %w", err)
	}

	slog.Info("Telemetry initialized successfully")

	return &Telemetry{
		tracerProvider: tracerProvider,
		meterProvider:  meterProvider,
		metricsHandler: metricsHandler,
	}, nil
}

func newNoOpTelemetry(ctx context.Context) (*Telemetry, error) {
	tracerProvider, err := NewTracerProvider(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create no-op tracer provider: %w", err)
	}

	meterProvider, err := NewMeterProvider(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create no-op meter provider: %w", err)
	}

	return &Telemetry{
		tracerProvider: tracerProvider,
		meterProvider:  meterProvider,
	}, nil
}

// TracerProvider returns the configured tracer provider
func (t *Telemetry) TracerProvider() trace.TracerProvider {
	return t.tracerProvider
}

// MeterProvider returns the configured meter provider
func (t *Telemetry) MeterProvider() metric.MeterProvider {
	return t.meterProvider
}

// MetricsHandler serves the Prometheus exposition format. It is nil unless
// the prometheus exporter is enabled.
func (t *Telemetry) MetricsHandler() http.Handler {
	return t.metricsHandler
}

// Shutdown flushes and stops the SDK providers. Calling it more than once is safe.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down telemetry")

	var errs []error
	if tp, ok := t.tracerProvider.(*sdktrace.TracerProvider); ok {
		if err := tp.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to shutdown tracer provider: %w", err))
		}
	}
	if mp, ok := t.meterProvider.(*sdkmetric.MeterProvider); ok {
		if err := mp.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to shutdown meter provider: %w", err))
		}
	}
	return errors.Join(errs...)
}
