package telemetry

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	// TracerName is the name used for the HTTP tracer
	TracerName = "github.com/stacklok/readmode-server/http"

	// MaxUserAgentLength bounds the user agent recorded on a span
	MaxUserAgentLength = 256
)

// untracedPaths are probed constantly and carry no useful trace data
var untracedPaths = map[string]struct{}{
	"/health":    {},
	"/readiness": {},
	"/metrics":   {},
}

// TracingMiddleware starts a server span per request, continuing any W3C
// trace context sent by the client. A nil provider passes through.
func TracingMiddleware(provider trace.TracerProvider) func(http.Handler) http.Handler {
	if provider == nil {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	tracer := provider.Tracer(TracerName)
	propagator := otel.GetTextMapPropagator()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, skip := untracedPaths[r.URL.Path]; skip {
				next.ServeHTTP(w, r)
				return
			}

			ctx := propagator.Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			// The route pattern is only known after chi has routed the
			// request, so the span is renamed once the handler returns.
			ctx, span := tracer.Start(ctx, r.Method+" "+r.URL.Path,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					semconv.HTTPRequestMethodKey.String(r.Method),
					semconv.URLPath(r.URL.Path),
					semconv.UserAgentOriginal(truncateUserAgent(r.UserAgent())),
				),
			)
			defer span.End()

			next.ServeHTTP(ww, r.WithContext(ctx))

			route := routePattern(r)
			span.SetName(r.Method + " " + route)
			span.SetAttributes(
				semconv.HTTPRouteKey.String(route),
				semconv.HTTPResponseStatusCode(ww.Status()),
			)
			if ww.Status() >= http.StatusBadRequest {
				span.SetStatus(codes.Error, http.StatusText(ww.Status()))
			} else {
				span.SetStatus(codes.Ok, "")
			}
		})
	}
}

func truncateUserAgent(ua string) string {
	if len(ua) > MaxUserAgentLength {
		return ua[:MaxUserAgentLength]
	}
	return ua
}
