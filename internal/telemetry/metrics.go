package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	// CatalogMetricsMeterName is the name used for the catalog metrics meter
	CatalogMetricsMeterName = "github.com/stacklok/readmode-server/catalog"

	// SyncMetricsMeterName is the name used for the sync metrics meter
	SyncMetricsMeterName = "github.com/stacklok/readmode-server/sync"
)

// CatalogMetrics records the size of the served catalog
type CatalogMetrics struct {
	playlistsTotal metric.Int64Gauge
	videosTotal    metric.Int64Gauge
}

// NewCatalogMetrics creates catalog instruments. A nil provider yields nil,
// and a nil *CatalogMetrics records nothing.
func NewCatalogMetrics(provider metric.MeterProvider) (*CatalogMetrics, error) {
	if provider == nil {
		return nil, nil
	}

	meter := provider.Meter(CatalogMetricsMeterName)

	playlistsTotal, err := meter.Int64Gauge(
		"readmode_catalog_playlists_total",
		metric.WithDescription("Number of playlists in the served catalog"),
		metric.WithUnit("{playlist}"),
	)
	if err != nil {
		return nil, err
	}

	videosTotal, err := meter.Int64Gauge(
		"readmode_catalog_videos_total",
		metric.WithDescription("Number of videos in the served catalog"),
		metric.WithUnit("{video}"),
	)
	if err != nil {
		return nil, err
	}

	return &CatalogMetrics{
		playlistsTotal: playlistsTotal,
		videosTotal:    videosTotal,
	}, nil
}

// RecordCatalogSize records the playlist and video counts of a catalog
func (m *CatalogMetrics) RecordCatalogSize(ctx context.Context, catalogName string, playlists, videos int64) {
	if m == nil {
		return
	}

	attrs := metric.WithAttributes(attribute.String("catalog", catalogName))
	m.playlistsTotal.Record(ctx, playlists, attrs)
	m.videosTotal.Record(ctx, videos, attrs)
}

// SyncMetrics holds the instruments for catalog sync operations
type SyncMetrics struct {
	syncDuration metric.Float64Histogram
	syncTotal    metric.Int64Counter
}

// NewSyncMetrics creates sync instruments. A nil provider yields nil.
func NewSyncMetrics(provider metric.MeterProvider) (*SyncMetrics, error) {
	if provider == nil {
		return nil, nil
	}

	meter := provider.Meter(SyncMetricsMeterName)

	syncDuration, err := meter.Float64Histogram(
		"readmode_sync_duration_seconds",
		metric.WithDescription("Duration of catalog sync operations in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60),
	)
	if err != nil {
		return nil, err
	}

	syncTotal, err := meter.Int64Counter(
		"readmode_sync_total",
		metric.WithDescription("Number of catalog sync operations"),
		metric.WithUnit("{sync}"),
	)
	if err != nil {
		return nil, err
	}

	return &SyncMetrics{
		syncDuration: syncDuration,
		syncTotal:    syncTotal,
	}, nil
}

// RecordSyncDuration records one sync operation and its outcome
func (m *SyncMetrics) RecordSyncDuration(ctx context.Context, catalogName string, duration time.Duration, success bool) {
	if m == nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("catalog", catalogName),
		attribute.Bool("success", success),
	)
	m.syncDuration.Record(ctx, duration.Seconds(), attrs)
	m.syncTotal.Add(ctx, 1, attrs)
}
