package service

import (
	"fmt"

	"github.com/stacklok/readmode-server/internal/tags"
)

// Option is a function that sets an option for service operations
type Option func(o any) error

type selectionOption interface {
	setSelection(selection tags.Selection) error
}

type hideEmptyOption interface {
	setHideEmpty(hideEmpty bool) error
}

type pageOption interface {
	setLimit(limit int) error
	setCursor(cursor *Cursor) error
}

// ListPlaylistsOptions is the options for the ListPlaylists operation
type ListPlaylistsOptions struct {
	Selection tags.Selection
	// HideEmpty drops playlists without videos
	HideEmpty bool
	// Limit is the page size; zero returns every playlist
	Limit  int
	Cursor *Cursor
}

func (o *ListPlaylistsOptions) setLimit(limit int) error {
	if limit < 0 {
		return fmt.Errorf("limit must not be negative, got %d", limit)
	}
	o.Limit = min(limit, MaxPageSize)
	return nil
}

func (o *ListPlaylistsOptions) setCursor(cursor *Cursor) error {
	o.Cursor = cursor
	return nil
}

func (o *ListPlaylistsOptions) setSelection(selection tags.Selection) error {
	o.Selection = selection
	return nil
}

func (o *ListPlaylistsOptions) setHideEmpty(hideEmpty bool) error {
	o.HideEmpty = hideEmpty
	return nil
}

// DescribeTagsOptions is the options for the DescribeTags operation
type DescribeTagsOptions struct {
	Selection tags.Selection
}

func (o *DescribeTagsOptions) setSelection(selection tags.Selection) error {
	o.Selection = selection
	return nil
}

// WithSelection sets the active tags. Blank and duplicate tags are dropped.
func WithSelection(tagList ...string) Option {
	return func(o any) error {
		switch o := o.(type) {
		case selectionOption:
			return o.setSelection(tags.NewSelection(tagList...))
		default:
			return fmt.Errorf("invalid option type: %T", o)
		}
	}
}

// WithHideEmpty drops playlists without videos from ListPlaylists
func WithHideEmpty(hideEmpty bool) Option {
	return func(o any) error {
		switch o := o.(type) {
		case hideEmptyOption:
			return o.setHideEmpty(hideEmpty)
		default:
			return fmt.Errorf("invalid option type: %T", o)
		}
	}
}

// WithLimit sets the page size of ListPlaylists, capped at MaxPageSize
func WithLimit(limit int) Option {
	return func(o any) error {
		switch o := o.(type) {
		case pageOption:
			return o.setLimit(limit)
		default:
			return fmt.Errorf("invalid option type: %T", o)
		}
	}
}

// WithCursor resumes ListPlaylists after the page that returned cursor.
// An empty cursor starts at the first playlist.
func WithCursor(cursor string) Option {
	return func(o any) error {
		switch o := o.(type) {
		case pageOption:
			c, err := DecodeCursor(cursor)
			if err != nil {
				return err
			}
			return o.setCursor(c)
		default:
			return fmt.Errorf("invalid option type: %T", o)
		}
	}
}

// ApplyOptions applies opts to target
func ApplyOptions[T any](target *T, opts ...Option) error {
	for _, opt := range opts {
		if err := opt(target); err != nil {
			return err
		}
	}
	return nil
}
