// Package service provides the business logic behind the catalog API
package service

import (
	"context"
	"errors"

	"github.com/stacklok/readmode-server/internal/tags"
)

var (
	// ErrCatalogNotReady is returned before the first successful sync
	ErrCatalogNotReady = errors.New("catalog not ready")
	// ErrPlaylistNotFound is returned when a playlist id is not in the catalog
	ErrPlaylistNotFound = errors.New("playlist not found")
	// ErrVideoNotFound is returned when a YouTube id is not in the catalog
	ErrVideoNotFound = errors.New("video not found")
	// ErrUnknownCategory is returned for a category key outside mood, era, genre and condition
	ErrUnknownCategory = errors.New("unknown tag category")
	// ErrTagDisabled is returned when selecting a tag the exclusion policy disables
	ErrTagDisabled = errors.New("tag is disabled by the current selection")
	// ErrInvalidCursor is returned for a pagination cursor that cannot be resumed
	ErrInvalidCursor = errors.New("invalid cursor")
)

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks -source=service.go CatalogService

// CatalogService defines the read and selection operations of the catalog
type CatalogService interface {
	// CheckReadiness reports ErrCatalogNotReady until a catalog is stored
	CheckReadiness(ctx context.Context) error

	// GetCatalogInfo returns the catalog metadata
	GetCatalogInfo(ctx context.Context) (*CatalogInfo, error)

	// ListPlaylists returns the playlists matching every selected tag,
	// optionally one page at a time
	ListPlaylists(ctx context.Context, opts ...Option) (*PlaylistList, error)

	// GetPlaylist returns a single playlist
	GetPlaylist(ctx context.Context, id string) (*PlaylistView, error)

	// ListPlaylistVideos returns the videos of a playlist in catalog order
	ListPlaylistVideos(ctx context.Context, id string) ([]VideoView, error)

	// GetVideo returns a single video
	GetVideo(ctx context.Context, youtubeID string) (*VideoView, error)

	// ListCategories returns the four tag categories, empty ones included
	ListCategories(ctx context.Context) (tags.Categories, error)

	// DescribeTags returns each category with the selected, available and
	// disabled state of its tags under the given selection
	DescribeTags(ctx context.Context, opts ...Option) ([]tags.CategoryState, error)

	// ToggleTag selects or deselects tag in the category named by key
	ToggleTag(ctx context.Context, selection tags.Selection, tag string, key tags.CategoryKey) (tags.Selection, error)

	// ClearSelection drops the selected tags of one category, or all of them
	// when key is nil
	ClearSelection(ctx context.Context, selection tags.Selection, key *tags.CategoryKey) (tags.Selection, error)

	// ListRecent returns recently watched videos that still exist in the catalog, newest first
	ListRecent(ctx context.Context) ([]RecentVideo, error)

	// RecordRecent moves a video to the front of the recently watched list
	RecordRecent(ctx context.Context, youtubeID string, progress *float64) error

	// RemoveRecent drops a video from the recently watched list
	RemoveRecent(ctx context.Context, youtubeID string) error
}
