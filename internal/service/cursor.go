package service

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// CursorSeparator separates the offset from the playlist id in a cursor
const CursorSeparator = ":"

// MaxPageSize caps the limit of a paginated playlist listing
const MaxPageSize = 100

// Cursor points just past the last playlist of a page. Offset is a hint;
// the playlist id wins when the catalog changed between pages.
type Cursor struct {
	Offset     int
	PlaylistID string
}

// DecodeCursor decodes a cursor produced by EncodeCursor.
// An empty string decodes to nil.
func DecodeCursor(cursor string) (*Cursor, error) {
	if cursor == "" {
		return nil, nil
	}

	decoded, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}

	offset, id, ok := strings.Cut(string(decoded), CursorSeparator)
	if !ok || id == "" {
		return nil, fmt.Errorf("%w: expected offset:id", ErrInvalidCursor)
	}
	n, err := strconv.Atoi(offset)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: bad offset %q", ErrInvalidCursor, offset)
	}

	return &Cursor{Offset: n, PlaylistID: id}, nil
}

// EncodeCursor encodes the position after the playlist with the given id,
// found at index offset-1 of the filtered listing
func EncodeCursor(offset int, playlistID string) string {
	value := strconv.Itoa(offset) + CursorSeparator + playlistID
	return base64.RawURLEncoding.EncodeToString([]byte(value))
}

// Resume returns the index of the first item of the next page in a listing
// whose ids are given by idAt
func (c *Cursor) Resume(n int, idAt func(int) string) (int, error) {
	if c == nil {
		return 0, nil
	}
	if c.Offset > 0 && c.Offset <= n && idAt(c.Offset-1) == c.PlaylistID {
		return c.Offset, nil
	}
	for i := 0; i < n; i++ {
		if idAt(i) == c.PlaylistID {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("%w: playlist %s is not in the listing", ErrInvalidCursor, c.PlaylistID)
}
