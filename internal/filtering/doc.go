// Package filtering narrows catalog playlists.
//
// Two kinds of filters live here:
//
//   - FilterService applies the operator's source filter during sync. It
//     keeps or drops playlists by glob patterns over their id (NameFilter)
//     and by include/exclude tag lists (TagFilter). Exclude rules take
//     precedence over include rules, and a playlist must pass both the name
//     and the tag filter to be kept. Videos of dropped playlists are dropped
//     with them.
//   - PlaylistFilter applies a user's tag selection at request time. A
//     playlist matches when it carries every selected tag, whatever the
//     category of the tag. An empty selection returns the input unchanged.
//
// # Name patterns
//
// Patterns use github.com/gobwas/glob, so '*' also matches across '/':
//
//   - "jazz-*" matches "jazz-cafe" and "jazz-night"
//   - "p?" matches "p1" but not "p10"
//
// # Usage Example
//
//	service := NewDefaultFilterService()
//	filter := &config.FilterConfig{
//		Names: &config.NameFilterConfig{Exclude: []string{"draft-*"}},
//		Tags:  &config.TagFilterConfig{Exclude: []string{"#공포"}},
//	}
//	filtered, err := service.ApplyFilters(ctx, cat, filter)
//
//	visible := NewPlaylistFilter().ApplySelection(ctx, filtered.Playlists, selection)
//
// Every keep or drop decision made during sync is logged at debug level with
// the reason behind it.
package filtering
