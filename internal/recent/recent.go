// Package recent keeps the list of recently watched videos.
//
// The list is stored as one JSON encoded value under StorageKey, newest entry
// first. Backends only load and save that value; ordering, capping and
// progress clamping live in the helpers of this file so every backend
// behaves the same.
package recent

import (
	"context"
	"slices"
	"time"
)

// StorageKey is the key the encoded list is stored under
const StorageKey = "recent_videos"

// DefaultLimit is how many entries are kept when no limit is configured
const DefaultLimit = 10

// Entry is one recently watched video
type Entry struct {
	YouTubeID string `json:"youtube_id"`
	// Timestamp is when the video was last opened, in Unix milliseconds
	Timestamp int64 `json:"timestamp"`
	// Progress is the watched percentage, 0 to 100, when reported
	Progress *float64 `json:"progress,omitempty"`
}

// ProgressOrZero returns the reported progress, or 0 when none was reported
func (e Entry) ProgressOrZero() float64 {
	if e.Progress == nil {
		return 0
	}
	return *e.Progress
}

// Store persists the recent list
//
//go:generate mockgen -destination=mocks/mock_store.go -package=mocks github.com/stacklok/readmode-server/internal/recent Store
type Store interface {
	// Load returns the stored list. Missing or corrupt data yields an
	// empty list, never an error.
	Load(ctx context.Context) ([]Entry, error)
	// Save replaces the stored list
	Save(ctx context.Context, entries []Entry) error
	// Remove deletes every entry for youtubeID
	Remove(ctx context.Context, youtubeID string) error
	// Close releases the backend
	Close() error
}

// Normalize orders entries newest first, drops blank ids and keeps the
// first limit entries. A limit of zero or less uses DefaultLimit.
func Normalize(entries []Entry, limit int) []Entry {
	if limit <= 0 {
		limit = DefaultLimit
	}

	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.YouTubeID == "" {
			continue
		}
		out = append(out, e)
	}
	slices.SortStableFunc(out, func(a, b Entry) int {
		switch {
		case a.Timestamp > b.Timestamp:
			return -1
		case a.Timestamp < b.Timestamp:
			return 1
		}
		return 0
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Record puts youtubeID at the front of entries with timestamp now, replacing
// any older entry for the same video. A nil progress keeps the progress of
// the replaced entry.
func Record(entries []Entry, youtubeID string, progress *float64, now time.Time, limit int) []Entry {
	entry := Entry{YouTubeID: youtubeID, Timestamp: now.UnixMilli()}

	rest := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.YouTubeID == youtubeID {
			if progress == nil {
				entry.Progress = e.Progress
			}
			continue
		}
		rest = append(rest, e)
	}
	if progress != nil {
		clamped := ClampProgress(*progress)
		entry.Progress = &clamped
	}

	return Normalize(append([]Entry{entry}, rest...), limit)
}

// Without returns entries minus every entry for youtubeID
func Without(entries []Entry, youtubeID string) []Entry {
	return slices.DeleteFunc(slices.Clone(entries), func(e Entry) bool {
		return e.YouTubeID == youtubeID
	})
}

// ClampProgress bounds a watched percentage to 0..100
func ClampProgress(p float64) float64 {
	return max(0, min(100, p))
}
