// Package otel provides span helpers shared by the catalog service and sync code.
package otel

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Attribute keys for catalog context. Shared keys keep span attributes
// consistent across packages.
const (
	AttrCatalogName   = attribute.Key("catalog.name")
	AttrSourceType    = attribute.Key("catalog.source_type")
	AttrPlaylistID    = attribute.Key("playlist.id")
	AttrVideoID       = attribute.Key("video.youtube_id")
	AttrTagCategory   = attribute.Key("tag.category")
	AttrSelectionSize = attribute.Key("selection.size")
	AttrResultCount   = attribute.Key("result.count")
)

// StartSpan starts a new span if the tracer is non-nil, otherwise returns a no-op span.
func StartSpan(
	ctx context.Context,
	tracer trace.Tracer,
	name string,
	opts ...trace.SpanStartOption,
) (context.Context, trace.Span) {
	if tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return tracer.Start(ctx, name, opts...)
}

// RecordError records err on span and marks the span failed. Errors matched
// by any of expected are recorded as events only and leave the status unset,
// so client errors such as a missing playlist do not show up as failures.
func RecordError(span trace.Span, err error, expected ...error) {
	if err == nil || span == nil {
		return
	}
	span.RecordError(err)
	for _, e := range expected {
		if errors.Is(err, e) {
			return
		}
	}
	span.SetStatus(codes.Error, "operation failed")
}
