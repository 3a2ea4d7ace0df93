package telemetry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultMetricsInterval is how often metrics are pushed to the OTLP collector
const DefaultMetricsInterval = 60 * time.Second

// MeterProviderOption is a function that configures the meter provider setup
type MeterProviderOption func(*meterProviderConfig)

type meterProviderConfig struct {
	serviceName    string
	serviceVersion string
	metricsConfig  *MetricsConfig
	endpoint       string
	insecure       bool
	registerer     prometheus.Registerer
}

// WithMeterServiceName sets the service name for the meter provider
func WithMeterServiceName(name string) MeterProviderOption {
	return func(cfg *meterProviderConfig) {
		cfg.serviceName = name
	}
}

// WithMeterServiceVersion sets the service version for the meter provider
func WithMeterServiceVersion(version string) MeterProviderOption {
	return func(cfg *meterProviderConfig) {
		cfg.serviceVersion = version
	}
}

// WithMetricsConfig sets the metrics configuration
func WithMetricsConfig(mc *MetricsConfig) MeterProviderOption {
	return func(cfg *meterProviderConfig) {
		cfg.metricsConfig = mc
	}
}

// WithMeterEndpoint sets the OTLP endpoint for the meter provider
func WithMeterEndpoint(endpoint string) MeterProviderOption {
	return func(cfg *meterProviderConfig) {
		cfg.endpoint = endpoint
	}
}

// WithMeterInsecure sets the insecure flag for the meter provider
func WithMeterInsecure(insecure bool) MeterProviderOption {
	return func(cfg *meterProviderConfig) {
		cfg.insecure = insecure
	}
}

// WithPrometheusRegisterer sets the registry the Prometheus exporter
// registers its collector with. Defaults to prometheus.DefaultRegisterer.
func WithPrometheusRegisterer(reg prometheus.Registerer) MeterProviderOption {
	return func(cfg *meterProviderConfig) {
		cfg.registerer = reg
	}
}

// NewMeterProvider creates a MeterProvider for the configured exporter.
// It returns a no-op provider when metrics are disabled. The caller owns
// shutdown of the returned provider.
func NewMeterProvider(ctx context.Context, opts ...MeterProviderOption) (metric.MeterProvider, error) {
	cfg := &meterProviderConfig{
		serviceName:    DefaultServiceName,
		serviceVersion: "unknown",
		endpoint:       DefaultEndpoint,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.metricsConfig == nil || !cfg.metricsConfig.Enabled {
		slog.Info("Metrics disabled, using no-op meter provider")
		return noop.NewMeterProvider(), nil
	}

	res, err := newResource(ctx, cfg.serviceName, cfg.serviceVersion)
	if err != nil {
		return nil, err
	}

	reader, err := newMetricReader(ctx, cfg)
	if err != nil {
		return nil, err
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(reader),
	)
	otel.SetMeterProvider(mp)

	slog.Info("Metrics initialized",
		"exporter", cfg.metricsConfig.GetExporter(),
		"endpoint", cfg.endpoint,
		"insecure", cfg.insecure,
	)
	return mp, nil
}

func newMetricReader(ctx context.Context, cfg *meterProviderConfig) (sdkmetric.Reader, error) {
	switch cfg.metricsConfig.GetExporter() {
	case ExporterPrometheus:
		var promOpts []otelprom.Option
		if cfg.registerer != nil {
			promOpts = append(promOpts, otelprom.WithRegisterer(cfg.registerer))
		}
		exporter, err := otelprom.New(promOpts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create Prometheus exporter: %w", err)
		}
		return exporter, nil
	case ExporterOTLP:
		exporter, err := createOTLPMetricsExporter(ctx, cfg.endpoint, cfg.insecure)
		if err != nil {
			return nil, fmt.Errorf("failed to create OTLP metrics exporter: %w", err)
		}
		return sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(DefaultMetricsInterval)), nil
	default:
		return nil, fmt.Errorf("unsupported metrics exporter: %s", cfg.metricsConfig.Exporter)
	}
}

func createOTLPMetricsExporter(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Exporter, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(endpoint),
	}
	if insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	return otlpmetrichttp.New(ctx, opts...)
}
