package v0

import (
	"github.com/stacklok/readmode-server/internal/service"
	"github.com/stacklok/readmode-server/internal/tags"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status string `json:"status" example:"healthy"`
}

// ReadinessResponse represents the readiness check response
type ReadinessResponse struct {
	Status string `json:"status" example:"ready"`
}

// ToggleRequest is the body of POST /v0/selection/toggle
type ToggleRequest struct {
	Selected []string `json:"selected"`
	Tag      string   `json:"tag" validate:"required"`
	Category string   `json:"category" validate:"required"`
}

// ClearRequest is the body of POST /v0/selection/clear. Without a category
// the whole selection is cleared.
type ClearRequest struct {
	Selected []string `json:"selected"`
	Category string   `json:"category,omitempty"`
}

// SelectionResponse carries the updated selection
type SelectionResponse struct {
	Selected tags.Selection `json:"selected"`
}

// RecordRecentRequest is the body of POST /v0/recent
type RecordRecentRequest struct {
	YouTubeID string   `json:"youtube_id" validate:"required"`
	Progress  *float64 `json:"progress,omitempty"`
}

// CategoriesResponse lists the tag categories of the catalog
type CategoriesResponse struct {
	Categories tags.Categories `json:"categories"`
}

// TagStateResponse lists the categories with per-tag state for a selection
type TagStateResponse struct {
	Selected   tags.Selection       `json:"selected"`
	Categories []tags.CategoryState `json:"categories"`
}

// VideoListResponse lists videos
type VideoListResponse struct {
	Videos []service.VideoView `json:"videos"`
	Count  int                 `json:"count"`
}

// RecentListResponse lists recently watched videos, newest first
type RecentListResponse struct {
	Videos []service.RecentVideo `json:"videos"`
	Count  int                   `json:"count"`
}
