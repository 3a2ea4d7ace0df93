// Package v0 provides the REST API handlers for catalog browsing, tag
// selection and recently watched videos.
package v0

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/stacklok/readmode-server/internal/api/common"
	"github.com/stacklok/readmode-server/internal/service"
	"github.com/stacklok/readmode-server/internal/tags"
)

// Routes handles HTTP requests for the v0 endpoints
type Routes struct {
	service service.CatalogService
}

// NewRoutes creates a new Routes instance with the provided service
func NewRoutes(svc service.CatalogService) *Routes {
	return &Routes{
		service: svc,
	}
}

// Router creates the v0 router
func Router(svc service.CatalogService) http.Handler {
	routes := NewRoutes(svc)

	r := chi.NewRouter()

	r.Get("/catalog", routes.getCatalogInfo)

	r.Get("/playlists", routes.listPlaylists)
	r.Route("/playlists/{id}", func(r chi.Router) {
		r.Get("/", routes.getPlaylist)
		r.Get("/videos", routes.listPlaylistVideos)
	})
	r.Get("/videos/{youtubeID}", routes.getVideo)

	r.Get("/tags", routes.listCategories)
	r.Get("/tags/state", routes.describeTags)
	r.Post("/selection/toggle", routes.toggleTag)
	r.Post("/selection/clear", routes.clearSelection)

	r.Get("/recent", routes.listRecent)
	r.Post("/recent", routes.recordRecent)
	r.Delete("/recent/{youtubeID}", routes.removeRecent)

	return r
}

// getCatalogInfo handles GET /v0/catalog
func (routes *Routes) getCatalogInfo(w http.ResponseWriter, r *http.Request) {
	info, err := routes.service.GetCatalogInfo(r.Context())
	if err != nil {
		common.WriteServiceError(r, w, err)
		return
	}
	common.WriteJSONResponse(w, info, http.StatusOK)
}

// listPlaylists handles GET /v0/playlists?tag=...&hide_empty=...&limit=...&cursor=...
func (routes *Routes) listPlaylists(w http.ResponseWriter, r *http.Request) {
	opts := []service.Option{service.WithSelection(common.QueryTags(r, "tag")...)}

	if raw := r.URL.Query().Get("hide_empty"); raw != "" {
		hideEmpty, err := strconv.ParseBool(raw)
		if err != nil {
			common.WriteErrorResponse(w, "Invalid hide_empty parameter: must be a boolean", http.StatusBadRequest)
			return
		}
		opts = append(opts, service.WithHideEmpty(hideEmpty))
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			common.WriteErrorResponse(w, "Invalid limit parameter: must be a positive integer", http.StatusBadRequest)
			return
		}
		opts = append(opts, service.WithLimit(limit))
	}
	if cursor := r.URL.Query().Get("cursor"); cursor != "" {
		opts = append(opts, service.WithCursor(cursor))
	}

	list, err := routes.service.ListPlaylists(r.Context(), opts...)
	if err != nil {
		common.WriteServiceError(r, w, err)
		return
	}
	common.WriteJSONResponse(w, list, http.StatusOK)
}

// getPlaylist handles GET /v0/playlists/{id}
func (routes *Routes) getPlaylist(w http.ResponseWriter, r *http.Request) {
	id, err := common.GetAndValidateURLParam(r, "id")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	playlist, err := routes.service.GetPlaylist(r.Context(), id)
	if err != nil {
		common.WriteServiceError(r, w, err)
		return
	}
	common.WriteJSONResponse(w, playlist, http.StatusOK)
}

// listPlaylistVideos handles GET /v0/playlists/{id}/videos
func (routes *Routes) listPlaylistVideos(w http.ResponseWriter, r *http.Request) {
	id, err := common.GetAndValidateURLParam(r, "id")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	videos, err := routes.service.ListPlaylistVideos(r.Context(), id)
	if err != nil {
		common.WriteServiceError(r, w, err)
		return
	}
	if videos == nil {
		videos = []service.VideoView{}
	}
	common.WriteJSONResponse(w, VideoListResponse{Videos: videos, Count: len(videos)}, http.StatusOK)
}

// getVideo handles GET /v0/videos/{youtubeID}
func (routes *Routes) getVideo(w http.ResponseWriter, r *http.Request) {
	youtubeID, err := common.GetAndValidateURLParam(r, "youtubeID")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	video, err := routes.service.GetVideo(r.Context(), youtubeID)
	if err != nil {
		common.WriteServiceError(r, w, err)
		return
	}
	common.WriteJSONResponse(w, video, http.StatusOK)
}

// listCategories handles GET /v0/tags
func (routes *Routes) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := routes.service.ListCategories(r.Context())
	if err != nil {
		common.WriteServiceError(r, w, err)
		return
	}
	common.WriteJSONResponse(w, CategoriesResponse{Categories: categories}, http.StatusOK)
}

// describeTags handles GET /v0/tags/state?tag=...
func (routes *Routes) describeTags(w http.ResponseWriter, r *http.Request) {
	selection := tags.NewSelection(common.QueryTags(r, "tag")...)

	states, err := routes.service.DescribeTags(r.Context(), service.WithSelection(selection...))
	if err != nil {
		common.WriteServiceError(r, w, err)
		return
	}
	common.WriteJSONResponse(w, TagStateResponse{Selected: selection, Categories: states}, http.StatusOK)
}

// toggleTag handles POST /v0/selection/toggle
func (routes *Routes) toggleTag(w http.ResponseWriter, r *http.Request) {
	var req ToggleRequest
	if err := common.DecodeJSONBody(r, &req); err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	selection, err := routes.service.ToggleTag(
		r.Context(),
		tags.NewSelection(req.Selected...),
		req.Tag,
		tags.CategoryKey(req.Category),
	)
	if err != nil {
		common.WriteServiceError(r, w, err)
		return
	}
	common.WriteJSONResponse(w, SelectionResponse{Selected: selection}, http.StatusOK)
}

// clearSelection handles POST /v0/selection/clear
func (routes *Routes) clearSelection(w http.ResponseWriter, r *http.Request) {
	var req ClearRequest
	if err := common.DecodeJSONBody(r, &req); err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	var key *tags.CategoryKey
	if req.Category != "" {
		k := tags.CategoryKey(req.Category)
		key = &k
	}

	selection, err := routes.service.ClearSelection(r.Context(), tags.NewSelection(req.Selected...), key)
	if err != nil {
		common.WriteServiceError(r, w, err)
		return
	}
	common.WriteJSONResponse(w, SelectionResponse{Selected: selection}, http.StatusOK)
}

// listRecent handles GET /v0/recent
func (routes *Routes) listRecent(w http.ResponseWriter, r *http.Request) {
	videos, err := routes.service.ListRecent(r.Context())
	if err != nil {
		common.WriteServiceError(r, w, err)
		return
	}
	if videos == nil {
		videos = []service.RecentVideo{}
	}
	common.WriteJSONResponse(w, RecentListResponse{Videos: videos, Count: len(videos)}, http.StatusOK)
}

// recordRecent handles POST /v0/recent
func (routes *Routes) recordRecent(w http.ResponseWriter, r *http.Request) {
	var req RecordRecentRequest
	if err := common.DecodeJSONBody(r, &req); err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := routes.service.RecordRecent(r.Context(), req.YouTubeID, req.Progress); err != nil {
		common.WriteServiceError(r, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// removeRecent handles DELETE /v0/recent/{youtubeID}
func (routes *Routes) removeRecent(w http.ResponseWriter, r *http.Request) {
	youtubeID, err := common.GetAndValidateURLParam(r, "youtubeID")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := routes.service.RemoveRecent(r.Context(), youtubeID); err != nil {
		common.WriteServiceError(r, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
