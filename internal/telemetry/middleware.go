package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// HTTPMetricsMeterName is the name used for the HTTP metrics meter
const HTTPMetricsMeterName = "github.com/stacklok/readmode-server/http"

// unknownRoute replaces unmatched paths so raw URLs never become label values
const unknownRoute = "unknown_route"

// HTTPMetrics holds the instruments recorded for every API request
type HTTPMetrics struct {
	requestDuration metric.Float64Histogram
	requestsTotal   metric.Int64Counter
	activeRequests  metric.Int64UpDownCounter
}

// NewHTTPMetrics creates HTTP instruments. A nil provider yields nil.
func NewHTTPMetrics(provider metric.MeterProvider) (*HTTPMetrics, error) {
	if provider == nil {
		return nil, nil
	}

	meter := provider.Meter(HTTPMetricsMeterName)

	requestDuration, err := meter.Float64Histogram(
		"readmode_http_request_duration_seconds",
		metric.WithDescription("Duration of HTTP requests in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5),
	)
	if err != nil {
		return nil, err
	}

	requestsTotal, err := meter.Int64Counter(
		"readmode_http_requests_total",
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	activeRequests, err := meter.Int64UpDownCounter(
		"readmode_http_active_requests",
		metric.WithDescription("Number of in-flight HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	return &HTTPMetrics{
		requestDuration: requestDuration,
		requestsTotal:   requestsTotal,
		activeRequests:  activeRequests,
	}, nil
}

// Middleware records duration, count and in-flight requests labelled by
// method, chi route pattern and status code. A nil receiver passes through.
func (m *HTTPMetrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The request context may be cancelled once ServeHTTP returns.
		ctx := r.Context()
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		m.activeRequests.Add(ctx, 1)
		next.ServeHTTP(ww, r)
		m.activeRequests.Add(ctx, -1)

		attrs := metric.WithAttributes(
			attribute.String("method", r.Method),
			attribute.String("route", routePattern(r)),
			attribute.String("status_code", strconv.Itoa(ww.Status())),
		)
		m.requestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
		m.requestsTotal.Add(ctx, 1, attrs)
	})
}

// routePattern returns the matched chi pattern, e.g. /v0/playlists/{id}
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx != nil && rctx.RoutePattern() != "" {
		return rctx.RoutePattern()
	}
	return unknownRoute
}

// MetricsMiddleware builds HTTP metrics from a provider and returns the middleware
func MetricsMiddleware(provider metric.MeterProvider) (func(http.Handler) http.Handler, error) {
	metrics, err := NewHTTPMetrics(provider)
	if err != nil {
		return nil, err
	}
	return metrics.Middleware, nil
}
