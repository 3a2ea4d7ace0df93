// Package tags implements the tag model used to browse playlists.
//
// Playlists carry four comma-delimited tag fields (mood, era, genre and
// condition). This package parses those fields, aggregates the distinct
// marker-prefixed tags of a collection into the four fixed categories,
// enforces the mood mutual-exclusion table and applies toggle semantics to a
// user selection.
//
// # Categories
//
// Every category is described by a Definition carrying its display title and
// its SelectionMode. Mood and condition are MultiSelect: selecting a tag adds
// it to the selection. Era and genre are SingleSelect: selecting a tag first
// removes every other tag of the same category.
//
// Era tags are ordered by a fixed priority list (ancient, medieval, modern,
// contemporary, future). Tags outside the list come after every listed tag and
// are ordered among themselves with a Korean collator, falling back to a plain
// byte comparison so the order stays total. Other categories sort ascending.
//
// # Exclusions
//
// The mood exclusion table is configuration data and is applied exactly as
// declared. It is not symmetric: "#밝은" disables three tags while "#어두운"
// only disables "#밝은".
//
// Nothing in this package returns errors. Malformed tag strings are
// normalized and empty input yields empty output.
package tags
