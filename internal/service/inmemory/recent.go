package inmemory

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/stacklok/readmode-server/internal/otel"
	"github.com/stacklok/readmode-server/internal/recent"
	"github.com/stacklok/readmode-server/internal/service"
)

// ListRecent implements CatalogService.ListRecent. Entries whose video is no
// longer in the catalog are skipped but kept in the store.
func (s *catalogSvc) ListRecent(ctx context.Context) ([]service.RecentVideo, error) {
	ctx, span := s.startSpan(ctx, "catalog.ListRecent")
	defer span.End()

	cat, err := s.getCatalog(ctx)
	if err != nil {
		otel.RecordError(span, err, service.ErrCatalogNotReady)
		return nil, err
	}

	entries, err := s.recentStore.Load(ctx)
	if err != nil {
		otel.RecordError(span, err)
		return nil, fmt.Errorf("failed to load recent videos: %w", err)
	}

	out := make([]service.RecentVideo, 0, len(entries))
	for _, entry := range recent.Normalize(entries, s.recentLimit) {
		v, ok := cat.FindVideo(entry.YouTubeID)
		if !ok {
			slog.DebugContext(ctx, "Skipping recent video missing from catalog", "youtube_id", entry.YouTubeID)
			continue
		}
		out = append(out, service.NewRecentVideo(v, entry))
	}

	span.SetAttributes(otel.AttrResultCount.Int(len(out)))
	return out, nil
}

// RecordRecent implements CatalogService.RecordRecent
func (s *catalogSvc) RecordRecent(ctx context.Context, youtubeID string, progress *float64) error {
	ctx, span := s.startSpan(ctx, "catalog.RecordRecent",
		trace.WithAttributes(otel.AttrVideoID.String(youtubeID)))
	defer span.End()

	cat, err := s.getCatalog(ctx)
	if err != nil {
		otel.RecordError(span, err, service.ErrCatalogNotReady)
		return err
	}
	if _, ok := cat.FindVideo(youtubeID); !ok {
		err := fmt.Errorf("%w: %s", service.ErrVideoNotFound, youtubeID)
		otel.RecordError(span, err, service.ErrVideoNotFound)
		return err
	}

	s.recentMu.Lock()
	defer s.recentMu.Unlock()

	entries, err := s.recentStore.Load(ctx)
	if err != nil {
		otel.RecordError(span, err)
		return fmt.Errorf("failed to load recent videos: %w", err)
	}

	updated := recent.Record(entries, youtubeID, progress, s.now(), s.recentLimit)
	if err := s.recentStore.Save(ctx, updated); err != nil {
		otel.RecordError(span, err)
		return fmt.Errorf("failed to save recent videos: %w", err)
	}
	return nil
}

// RemoveRecent implements CatalogService.RemoveRecent. Removing an id that
// is not in the list succeeds.
func (s *catalogSvc) RemoveRecent(ctx context.Context, youtubeID string) error {
	ctx, span := s.startSpan(ctx, "catalog.RemoveRecent",
		trace.WithAttributes(otel.AttrVideoID.String(youtubeID)))
	defer span.End()

	s.recentMu.Lock()
	defer s.recentMu.Unlock()

	if err := s.recentStore.Remove(ctx, youtubeID); err != nil {
		otel.RecordError(span, err)
		return fmt.Errorf("failed to remove recent video: %w", err)
	}
	return nil
}
