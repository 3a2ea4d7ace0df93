package filtering

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/stacklok/readmode-server/internal/catalog"
	"github.com/stacklok/readmode-server/internal/config"
)

// FilterService coordinates name and tag filtering of a fetched catalog
type FilterService interface {
	// ApplyFilters returns the catalog restricted to the playlists passing filter
	ApplyFilters(ctx context.Context, cat *catalog.Catalog, filter *config.FilterConfig) (*catalog.Catalog, error)
}

type defaultFilterService struct {
	nameFilter NameFilter
	tagFilter  TagFilter
}

// NewDefaultFilterService creates a FilterService with the default name and tag filters
func NewDefaultFilterService() FilterService {
	return &defaultFilterService{
		nameFilter: NewDefaultNameFilter(),
		tagFilter:  NewDefaultTagFilter(),
	}
}

// NewFilterService creates a FilterService with custom filter implementations
func NewFilterService(nameFilter NameFilter, tagFilter TagFilter) FilterService {
	return &defaultFilterService{
		nameFilter: nameFilter,
		tagFilter:  tagFilter,
	}
}

// ApplyFilters keeps the playlists that pass both the name filter (on the
// playlist id) and the tag filter (on its display tags). Videos are kept only
// when their playlist is kept. A nil filter returns cat unchanged.
func (s *defaultFilterService) ApplyFilters(
	ctx context.Context,
	cat *catalog.Catalog,
	filter *config.FilterConfig,
) (*catalog.Catalog, error) {
	if cat == nil {
		return nil, fmt.Errorf("catalog cannot be nil")
	}
	if filter == nil {
		slog.DebugContext(ctx, "No filter specified, returning original catalog")
		return cat, nil
	}

	slog.DebugContext(ctx, "Applying catalog filters", "original_playlist_count", len(cat.Playlists))

	var nameInclude, nameExclude, tagInclude, tagExclude []string
	if filter.Names != nil {
		nameInclude = filter.Names.Include
		nameExclude = filter.Names.Exclude
	}
	if filter.Tags != nil {
		tagInclude = filter.Tags.Include
		tagExclude = filter.Tags.Exclude
	}

	filtered := &catalog.Catalog{
		Version:     cat.Version,
		LastUpdated: cat.LastUpdated,
		Playlists:   make([]catalog.Playlist, 0, len(cat.Playlists)),
		Videos:      make([]catalog.Video, 0, len(cat.Videos)),
	}

	kept := make(map[string]struct{}, len(cat.Playlists))
	for _, playlist := range cat.Playlists {
		playlistTags := playlist.DisplayTags()
		included, reason := s.shouldIncludeWithReason(
			playlist.ID, playlistTags, nameInclude, nameExclude, tagInclude, tagExclude,
		)
		if !included {
			slog.DebugContext(ctx, "Excluding playlist", "id", playlist.ID, "tags", playlistTags, "reason", reason)
			continue
		}
		slog.DebugContext(ctx, "Including playlist", "id", playlist.ID, "tags", playlistTags, "reason", reason)
		filtered.Playlists = append(filtered.Playlists, playlist)
		kept[playlist.ID] = struct{}{}
	}

	for _, video := range cat.Videos {
		if _, ok := kept[video.PlaylistID]; ok {
			filtered.Videos = append(filtered.Videos, video)
		}
	}

	slog.InfoContext(ctx, "Catalog filtering completed",
		"included_playlists", len(filtered.Playlists),
		"excluded_playlists", len(cat.Playlists)-len(filtered.Playlists),
		"video_count", len(filtered.Videos))

	return filtered, nil
}

// shouldIncludeWithReason requires both the name and the tag filter to pass
func (s *defaultFilterService) shouldIncludeWithReason(
	id string,
	playlistTags []string,
	nameInclude, nameExclude, tagInclude, tagExclude []string,
) (bool, string) {
	nameIncluded, nameReason := s.nameFilter.ShouldInclude(id, nameInclude, nameExclude)
	if !nameIncluded {
		return false, fmt.Sprintf("name filter: %s", nameReason)
	}

	tagIncluded, tagReason := s.tagFilter.ShouldInclude(playlistTags, tagInclude, tagExclude)
	if !tagIncluded {
		return false, fmt.Sprintf("tag filter: %s", tagReason)
	}

	var reasons []string
	if len(nameInclude) > 0 || len(nameExclude) > 0 {
		reasons = append(reasons, fmt.Sprintf("name filter: %s", nameReason))
	}
	if len(tagInclude) > 0 || len(tagExclude) > 0 {
		reasons = append(reasons, fmt.Sprintf("tag filter: %s", tagReason))
	}
	if len(reasons) == 0 {
		return true, "no filters specified, default include"
	}
	return true, "passed all filters: " + strings.Join(reasons, " AND ")
}
