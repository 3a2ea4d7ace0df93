package v0

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stacklok/readmode-server/internal/api/common"
	"github.com/stacklok/readmode-server/internal/service"
	"github.com/stacklok/readmode-server/internal/versions"
)

// HealthRouter creates a router for health check endpoints
func HealthRouter(svc service.CatalogService) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", healthHandler)
	r.Get("/readiness", readinessHandler(svc))
	r.Get("/version", versionHandler)

	return r
}

// healthHandler handles GET /health
func healthHandler(w http.ResponseWriter, _ *http.Request) {
	common.WriteJSONResponse(w, HealthResponse{Status: "healthy"}, http.StatusOK)
}

// readinessHandler handles GET /readiness. The service is ready once the
// first catalog has been synced or loaded from a snapshot.
func readinessHandler(svc service.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.CheckReadiness(r.Context()); err != nil {
			common.WriteErrorResponse(w, "CatalogService not ready: "+err.Error(), http.StatusServiceUnavailable)
			return
		}
		common.WriteJSONResponse(w, ReadinessResponse{Status: "ready"}, http.StatusOK)
	}
}

// versionHandler handles GET /version
func versionHandler(w http.ResponseWriter, _ *http.Request) {
	common.WriteJSONResponse(w, versions.GetVersionInfo(), http.StatusOK)
}
