package service

import (
	"time"

	"github.com/stacklok/readmode-server/internal/catalog"
	"github.com/stacklok/readmode-server/internal/recent"
	"github.com/stacklok/readmode-server/internal/tags"
)

// CatalogInfo describes the served catalog
type CatalogInfo struct {
	CatalogName   string `json:"catalog_name"`
	Source        string `json:"source"`
	Version       string `json:"version"`
	LastUpdated   string `json:"last_updated"`
	PlaylistCount int    `json:"playlist_count"`
	VideoCount    int    `json:"video_count"`
}

// PlaylistView is a playlist with its display tags and video count
type PlaylistView struct {
	catalog.Playlist
	Tags       []string `json:"tags"`
	VideoCount int      `json:"video_count"`
}

// NewPlaylistView builds the view of p
func NewPlaylistView(p catalog.Playlist, videoCount int) PlaylistView {
	return PlaylistView{
		Playlist:   p,
		Tags:       p.DisplayTags(),
		VideoCount: videoCount,
	}
}

// PlaylistList is the result of ListPlaylists. FiltersActive tells an empty
// result caused by the selection apart from an empty catalog. Total counts
// every match, Count only the returned page.
type PlaylistList struct {
	Playlists     []PlaylistView `json:"playlists"`
	Count         int            `json:"count"`
	Total         int            `json:"total"`
	FiltersActive bool           `json:"filters_active"`
	Selected      tags.Selection `json:"selected"`
	// NextCursor is set when more playlists follow this page
	NextCursor string `json:"next_cursor,omitempty"`
}

// VideoView is a video with its thumbnail URL
type VideoView struct {
	catalog.Video
	ThumbnailURL string `json:"thumbnail_url"`
}

// NewVideoView builds the view of v
func NewVideoView(v catalog.Video) VideoView {
	return VideoView{Video: v, ThumbnailURL: v.ThumbnailURL()}
}

// RecentVideo is a recently watched video
type RecentVideo struct {
	VideoView
	Progress  float64   `json:"progress"`
	WatchedAt time.Time `json:"watched_at"`
}

// NewRecentVideo joins a recent entry with its catalog video
func NewRecentVideo(v catalog.Video, entry recent.Entry) RecentVideo {
	return RecentVideo{
		VideoView: NewVideoView(v),
		Progress:  entry.ProgressOrZero(),
		WatchedAt: time.UnixMilli(entry.Timestamp).UTC(),
	}
}
