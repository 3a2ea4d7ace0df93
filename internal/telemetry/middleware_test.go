package telemetry

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestHTTPMetrics_NilPassesThrough(t *testing.T) {
	t.Parallel()

	metrics, err := NewHTTPMetrics(nil)
	require.NoError(t, err)
	require.Nil(t, metrics)

	handler := metrics.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rr.Code)
}

func TestHTTPMetrics_RecordsRoutePattern(t *testing.T) {
	t.Parallel()

	reader, mp := newManualMeterProvider(t)
	mw, err := MetricsMiddleware(mp)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(mw)
	r.Get("/v0/playlists/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, path := range []string{"/v0/playlists/p1", "/v0/playlists/p2", "/nowhere"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	}

	collected := collectMetrics(t, reader)

	requests, ok := collected["readmode_http_requests_total"]
	require.True(t, ok)
	sum, ok := requests.Data.(metricdata.Sum[int64])
	require.True(t, ok)

	byRoute := make(map[string]int64)
	for _, dp := range sum.DataPoints {
		route, _ := dp.Attributes.Value(attribute.Key("route"))
		byRoute[route.AsString()] += dp.Value
	}
	assert.Equal(t, int64(2), byRoute["/v0/playlists/{id}"])
	assert.Equal(t, int64(1), byRoute[unknownRoute])

	active, ok := collected["readmode_http_active_requests"]
	require.True(t, ok)
	activeSum, ok := active.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	for _, dp := range activeSum.DataPoints {
		assert.Zero(t, dp.Value)
	}

	_, ok = collected["readmode_http_request_duration_seconds"]
	assert.True(t, ok)
}

func TestRoutePattern_WithoutChi(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/v0/tags", nil)
	assert.Equal(t, unknownRoute, routePattern(req))
}
