package filtering

import (
	"context"
	"log/slog"

	"github.com/stacklok/readmode-server/internal/catalog"
	"github.com/stacklok/readmode-server/internal/tags"
)

// PlaylistFilter narrows playlists to those matching a tag selection
type PlaylistFilter interface {
	// ApplySelection returns the playlists carrying every selected tag. An
	// empty selection returns playlists itself; no match returns an empty,
	// non-nil slice.
	ApplySelection(ctx context.Context, playlists []catalog.Playlist, selection tags.Selection) []catalog.Playlist
}

type selectionFilter struct {
	// nil logs to slog.Default()
	logger *slog.Logger
}

var _ PlaylistFilter = selectionFilter{}

// NewPlaylistFilter creates the AND semantics PlaylistFilter
func NewPlaylistFilter() PlaylistFilter {
	return selectionFilter{}
}

func (f selectionFilter) log() *slog.Logger {
	if f.logger != nil {
		return f.logger
	}
	return slog.Default()
}

func (f selectionFilter) ApplySelection(
	ctx context.Context,
	playlists []catalog.Playlist,
	selection tags.Selection,
) []catalog.Playlist {
	logger := f.log()
	if selection.IsEmpty() {
		logger.DebugContext(ctx, "No tags selected, returning every playlist", "playlist_count", len(playlists))
		return playlists
	}

	out := make([]catalog.Playlist, 0, len(playlists))
	for _, playlist := range playlists {
		playlistTags := playlist.DisplayTags()
		if !MatchesAll(playlistTags, selection) {
			logger.DebugContext(ctx, "Playlist does not carry every selected tag",
				"id", playlist.ID, "tags", playlistTags)
			continue
		}
		out = append(out, playlist)
	}

	logger.DebugContext(ctx, "Tag selection applied",
		"selected", []string(selection),
		"playlist_count", len(playlists),
		"matched_count", len(out))
	return out
}

// AvailableTags returns every tag carried by at least one of playlists
func AvailableTags(playlists []catalog.Playlist) map[string]struct{} {
	out := make(map[string]struct{})
	for _, playlist := range playlists {
		for _, tag := range playlist.DisplayTags() {
			out[tag] = struct{}{}
		}
	}
	return out
}
