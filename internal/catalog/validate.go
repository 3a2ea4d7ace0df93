package catalog

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/stacklok/readmode-server/internal/versions"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the format version and required fields and rejects duplicate playlist ids and
// videos listed twice in the same playlist. Videos referencing unknown
// playlists are allowed; they are simply never listed.
func (c *Catalog) Validate() error {
	if c == nil {
		return errors.New("catalog cannot be nil")
	}

	if c.Version != "" {
		if err := versions.CheckCompatible(c.Version, CatalogVersion); err != nil {
			return err
		}
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}

	playlistIDs := make(map[string]struct{}, len(c.Playlists))
	for i, p := range c.Playlists {
		if _, dup := playlistIDs[p.ID]; dup {
			return fmt.Errorf("playlists[%d]: duplicate playlist id %q", i, p.ID)
		}
		playlistIDs[p.ID] = struct{}{}
	}

	type membership struct{ video, playlist string }
	members := make(map[membership]struct{}, len(c.Videos))
	for i, v := range c.Videos {
		key := membership{video: v.YouTubeID, playlist: v.PlaylistID}
		if _, dup := members[key]; dup {
			return fmt.Errorf("videos[%d]: video %q listed twice in playlist %q", i, v.YouTubeID, v.PlaylistID)
		}
		members[key] = struct{}{}
	}

	return nil
}
