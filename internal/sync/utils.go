package sync

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/stacklok/readmode-server/internal/config"
)

// FilterHash returns a stable hash of the source filter configuration.
// A nil filter has a hash too, so removing a filter is detected as a change.
func FilterHash(filter *config.FilterConfig) (string, error) {
	data, err := json.Marshal(filter)
	if err != nil {
		return "", fmt.Errorf("failed to marshal filter: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// shortHash trims a hash for log output
func shortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}
