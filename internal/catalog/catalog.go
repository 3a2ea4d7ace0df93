// Package catalog defines the playlist and video records served by the API.
package catalog

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/stacklok/readmode-server/internal/tags"
)

const (
	// ThumbnailURLFormat builds the thumbnail URL of a YouTube video
	ThumbnailURLFormat = "https://img.youtube.com/vi/%s/hqdefault.jpg"

	// CatalogVersion is the version written into catalogs produced by this server
	CatalogVersion = "1.0.0"
)

// Playlist is a curated list of videos described by four tag fields.
// Each tag field holds zero or more comma-separated tags.
type Playlist struct {
	ID          string `json:"id" yaml:"id" db:"id" validate:"required"`
	Title       string `json:"title" yaml:"title" db:"title" validate:"required"`
	Genre       string `json:"genre" yaml:"genre" db:"genre"`
	Era         string `json:"era" yaml:"era" db:"era"`
	Mood        string `json:"mood" yaml:"mood" db:"mood"`
	Conditions  string `json:"conditions" yaml:"conditions" db:"conditions"`
	TargetBooks string `json:"target_books,omitempty" yaml:"target_books,omitempty" db:"target_books"`
	// DisplayOrder is nil when the source has no order for the playlist
	DisplayOrder *int `json:"display_order" yaml:"display_order,omitempty" db:"display_order"`
}

// Order returns a display order for a Playlist literal
func Order(n int) *int {
	return &n
}

var _ tags.Tagged = Playlist{}

// TagField returns the raw tag field backing the given category
func (p Playlist) TagField(key tags.CategoryKey) string {
	switch key {
	case tags.CategoryMood:
		return p.Mood
	case tags.CategoryEra:
		return p.Era
	case tags.CategoryGenre:
		return p.Genre
	case tags.CategoryCondition:
		return p.Conditions
	default:
		return ""
	}
}

// DisplayTags returns every tag of the playlist in genre, era, mood,
// conditions order. Duplicates and unmarked tokens are kept.
func (p Playlist) DisplayTags() []string {
	out := make([]string, 0)
	for _, field := range []string{p.Genre, p.Era, p.Mood, p.Conditions} {
		out = append(out, tags.Parse(field)...)
	}
	return out
}

// Video is a single YouTube video belonging to a playlist
type Video struct {
	YouTubeID  string `json:"youtube_id" yaml:"youtube_id" db:"youtube_id" validate:"required"`
	Title      string `json:"title" yaml:"title" db:"title"`
	Author     string `json:"author" yaml:"author" db:"author"`
	Duration   string `json:"duration" yaml:"duration" db:"duration"`
	PlaylistID string `json:"playlist_id" yaml:"playlist_id" db:"playlist_id" validate:"required"`
}

// ThumbnailURL returns the high quality thumbnail URL of the video
func (v Video) ThumbnailURL() string {
	return fmt.Sprintf(ThumbnailURLFormat, v.YouTubeID)
}

// Catalog is a snapshot of every playlist and video
type Catalog struct {
	Version     string     `json:"version" yaml:"version"`
	LastUpdated string     `json:"last_updated" yaml:"last_updated"`
	Playlists   []Playlist `json:"playlists" yaml:"playlists" validate:"dive"`
	Videos      []Video    `json:"videos" yaml:"videos" validate:"dive"`
}

// NewEmptyCatalog returns a catalog without playlists or videos
func NewEmptyCatalog() *Catalog {
	return &Catalog{
		Version:     CatalogVersion,
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
		Playlists:   []Playlist{},
		Videos:      []Video{},
	}
}

// FindPlaylist returns the playlist with the given id
func (c *Catalog) FindPlaylist(id string) (Playlist, bool) {
	for _, p := range c.Playlists {
		if p.ID == id {
			return p, true
		}
	}
	return Playlist{}, false
}

// FindVideo returns the video with the given YouTube id
func (c *Catalog) FindVideo(youtubeID string) (Video, bool) {
	for _, v := range c.Videos {
		if v.YouTubeID == youtubeID {
			return v, true
		}
	}
	return Video{}, false
}

// VideosFor returns the videos of a playlist in catalog order
func (c *Catalog) VideosFor(playlistID string) []Video {
	out := make([]Video, 0)
	for _, v := range c.Videos {
		if v.PlaylistID == playlistID {
			out = append(out, v)
		}
	}
	return out
}

// VideoCounts returns the number of videos per playlist id
func (c *Catalog) VideoCounts() map[string]int {
	counts := make(map[string]int, len(c.Playlists))
	for _, v := range c.Videos {
		counts[v.PlaylistID]++
	}
	return counts
}

// SortPlaylists orders playlists by display order, then title. Playlists
// without a display order come last, as in an ascending Postgres sort.
func SortPlaylists(playlists []Playlist) {
	slices.SortStableFunc(playlists, func(a, b Playlist) int {
		return cmp.Or(
			compareOrder(a.DisplayOrder, b.DisplayOrder),
			cmp.Compare(a.Title, b.Title),
		)
	})
}

func compareOrder(a, b *int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return cmp.Compare(*a, *b)
	}
}

// Categories aggregates the tag categories of the catalog playlists
func (c *Catalog) Categories(defs ...tags.Definition) tags.Categories {
	return tags.Aggregate(c.Playlists, defs...)
}
