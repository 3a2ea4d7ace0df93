package recent

import (
	"fmt"
	"path/filepath"

	"github.com/stacklok/readmode-server/internal/config"
)

// badgerDirName is the Badger directory created under the configured path
const badgerDirName = "recent.badger"

// NewStore creates the backend named by storageType. File and Badger
// backends keep their data under dir.
func NewStore(storageType, dir string) (Store, error) {
	switch storageType {
	case "", config.RecentStorageMemory:
		return NewMemoryStore(), nil
	case config.RecentStorageFile:
		return NewFileStore(dir)
	case config.RecentStorageBadger:
		if dir == "" {
			return nil, fmt.Errorf("recent store directory is required for %s storage", storageType)
		}
		return OpenBadgerStore(filepath.Join(dir, badgerDirName))
	default:
		return nil, fmt.Errorf("unsupported recent storage: %s", storageType)
	}
}
