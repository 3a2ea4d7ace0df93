// Package main is the entry point for the readmode catalog API server.
package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/trace"

	"github.com/stacklok/readmode-server/cmd/readmode-api/app"
	"github.com/stacklok/readmode-server/internal/config"
)

// getLogLevel parses READMODE_LOG_LEVEL, falling back to LOG_LEVEL.
// Invalid or missing values default to info.
func getLogLevel() slog.Level {
	v := viper.New()
	v.SetEnvPrefix(config.EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	levelStr := v.GetString("LOG_LEVEL")
	if levelStr == "" {
		levelStr = os.Getenv("LOG_LEVEL")
	}

	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		slog.Warn("Invalid LOG_LEVEL, using INFO", "value", levelStr)
		return slog.LevelInfo
	}
}

// traceHandler injects the trace_id and span_id of the active span into
// every log record
type traceHandler struct {
	slog.Handler
}

func (h *traceHandler) Handle(ctx context.Context, r slog.Record) error {
	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		r.AddAttrs(
			slog.String("trace_id", span.SpanContext().TraceID().String()),
			slog.String("span_id", span.SpanContext().SpanID().String()),
		)
	}
	return h.Handler.Handle(ctx, r)
}

func (h *traceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &traceHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *traceHandler) WithGroup(name string) slog.Handler {
	return &traceHandler{Handler: h.Handler.WithGroup(name)}
}

func main() {
	// Logs go to stderr so stdout stays clean for `version --format json`.
	level := new(slog.LevelVar)
	level.Set(getLogLevel())
	baseHandler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(&traceHandler{Handler: baseHandler}))

	if err := app.NewRootCmd(level).Execute(); err != nil {
		os.Exit(1)
	}
}
