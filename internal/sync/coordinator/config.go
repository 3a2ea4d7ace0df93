package coordinator

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/stacklok/readmode-server/internal/config"
)

const (
	// maxPollingJitter caps the random delay added to each polling interval
	maxPollingJitter = 30 * time.Second
	// minPollingInterval keeps a misconfigured interval from spinning the loop
	minPollingInterval = time.Second
)

// getSyncInterval returns the configured sync interval, falling back to the
// config default when the policy value does not parse
func getSyncInterval(cfg *config.Config) time.Duration {
	if cfg.SyncPolicy != nil && cfg.SyncPolicy.Interval != "" {
		if _, err := time.ParseDuration(cfg.SyncPolicy.Interval); err != nil {
			slog.Warn("Invalid sync interval, using default",
				"interval", cfg.SyncPolicy.Interval,
				"default", cfg.GetSyncInterval())
		}
	}
	interval := cfg.GetSyncInterval()
	if interval < minPollingInterval {
		return minPollingInterval
	}
	return interval
}

// calculatePollingInterval adds a random delay of up to a tenth of the base
// interval, capped at maxPollingJitter. The delay is never negative so a
// poll never lands before the sync interval has elapsed.
func calculatePollingInterval(base time.Duration) time.Duration {
	jitter := min(base/10, maxPollingJitter)
	if jitter <= 0 {
		return base
	}
	//nolint:gosec // G404: Non-cryptographic randomness is sufficient for polling jitter
	return base + time.Duration(rand.Int64N(int64(jitter)))
}
