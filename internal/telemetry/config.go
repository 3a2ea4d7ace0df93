// Package telemetry provides OpenTelemetry instrumentation for the catalog server.
// Traces are exported over OTLP; metrics are exported over OTLP or scraped
// from a Prometheus endpoint.
package telemetry

import (
	"errors"
	"fmt"
)

const (
	// DefaultServiceName is the default service name for telemetry
	DefaultServiceName = "readmode-api"

	// DefaultEndpoint is the default OTLP endpoint for telemetry
	DefaultEndpoint = "localhost:4318"

	// DefaultSampling is the default trace sampling rate (5%)
	DefaultSampling = 0.05
)

const (
	// ExporterOTLP pushes metrics to an OTLP collector
	ExporterOTLP = "otlp"

	// ExporterPrometheus exposes metrics for scraping on /metrics
	ExporterPrometheus = "prometheus"
)

// Config represents the root telemetry configuration
type Config struct {
	// Enabled controls whether telemetry is enabled globally.
	// When false no providers are initialized.
	Enabled bool `yaml:"enabled"`

	// ServiceName defaults to "readmode-api"
	ServiceName string `yaml:"serviceName,omitempty"`

	// ServiceVersion defaults to "unknown"
	ServiceVersion string `yaml:"serviceVersion,omitempty"`

	// Endpoint is the OTLP collector as "host:port"; /v1/traces and
	// /v1/metrics are appended by the exporters.
	Endpoint string `yaml:"endpoint,omitempty"`

	// Insecure allows plain HTTP to the collector
	Insecure bool `yaml:"insecure,omitempty"`

	Tracing *TracingConfig `yaml:"tracing,omitempty"`
	Metrics *MetricsConfig `yaml:"metrics,omitempty"`
}

// TracingConfig defines tracing-specific configuration
type TracingConfig struct {
	Enabled bool `yaml:"enabled"`

	// Sampling is the trace ratio between 0.0 and 1.0.
	// Zero means DefaultSampling.
	Sampling float64 `yaml:"sampling,omitempty"`
}

// MetricsConfig defines metrics-specific configuration
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`

	// Exporter is otlp or prometheus; empty means otlp
	Exporter string `yaml:"exporter,omitempty"`
}

// GetServiceName returns the service name, using default if not specified
func (c *Config) GetServiceName() string {
	if c.ServiceName == "" {
		return DefaultServiceName
	}
	return c.ServiceName
}

// GetServiceVersion returns the service version, using "unknown" if not specified
func (c *Config) GetServiceVersion() string {
	if c.ServiceVersion == "" {
		return "unknown"
	}
	return c.ServiceVersion
}

// GetEndpoint returns the endpoint, using default if not specified
func (c *Config) GetEndpoint() string {
	if c.Endpoint == "" {
		return DefaultEndpoint
	}
	return c.Endpoint
}

// GetSampling returns the sampling ratio. An unset (zero) ratio cannot be
// told apart from an explicit zero in YAML, so both mean DefaultSampling.
func (c *TracingConfig) GetSampling() float64 {
	if c.Sampling == 0.0 {
		return DefaultSampling
	}
	return c.Sampling
}

// GetExporter returns the metrics exporter, defaulting to otlp
func (c *MetricsConfig) GetExporter() string {
	if c == nil || c.Exporter == "" {
		return ExporterOTLP
	}
	return c.Exporter
}

// PrometheusEnabled reports whether metrics are served for scraping
func (c *Config) PrometheusEnabled() bool {
	return c != nil && c.Enabled && c.Metrics != nil && c.Metrics.Enabled &&
		c.Metrics.GetExporter() == ExporterPrometheus
}

// Validate validates the telemetry configuration. A nil or disabled
// configuration is valid.
func (c *Config) Validate() error {
	if c == nil || !c.Enabled {
		return nil
	}

	var errs []error
	if err := c.Tracing.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("tracing: %w", err))
	}
	if err := c.Metrics.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("metrics: %w", err))
	}
	return errors.Join(errs...)
}

// Validate validates the tracing configuration
func (c *TracingConfig) Validate() error {
	if c == nil || !c.Enabled {
		return nil
	}
	if c.Sampling < 0 || c.Sampling > 1.0 {
		return fmt.Errorf("sampling must be between 0.0 and 1.0, got %f", c.Sampling)
	}
	return nil
}

// Validate validates the metrics configuration
func (c *MetricsConfig) Validate() error {
	if c == nil || !c.Enabled {
		return nil
	}
	switch c.Exporter {
	case "", ExporterOTLP, ExporterPrometheus:
		return nil
	default:
		return fmt.Errorf("exporter must be %s or %s, got %s", ExporterOTLP, ExporterPrometheus, c.Exporter)
	}
}
