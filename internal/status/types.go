package status

import "time"

// SyncPhase represents the current phase of a synchronization operation
type SyncPhase string

const (
	// SyncPhaseSyncing means sync is currently in progress
	SyncPhaseSyncing SyncPhase = "Syncing"

	// SyncPhaseComplete means sync completed successfully
	SyncPhaseComplete SyncPhase = "Complete"

	// SyncPhaseFailed means sync failed
	SyncPhaseFailed SyncPhase = "Failed"
)

// SyncStatus represents the current state of catalog synchronization
type SyncStatus struct {
	Phase   SyncPhase `json:"phase"`
	Message string    `json:"message,omitempty"`

	// LastAttempt is the timestamp of the last sync attempt
	LastAttempt *time.Time `json:"lastAttempt,omitempty"`

	// AttemptCount is the number of sync attempts since last success
	AttemptCount int `json:"attemptCount,omitempty"`

	// LastSyncTime is the timestamp of the last successful sync
	LastSyncTime *time.Time `json:"lastSyncTime,omitempty"`

	// LastSyncHash is the source hash of the last successfully synced data
	LastSyncHash string `json:"lastSyncHash,omitempty"`

	// LastAppliedFilterHash is the hash of the filter used by the last successful sync
	LastAppliedFilterHash string `json:"lastAppliedFilterHash,omitempty"`

	PlaylistCount int `json:"playlistCount,omitempty"`
	VideoCount    int `json:"videoCount,omitempty"`

	// SyncSchedule is the configured sync interval, e.g. "30m"
	SyncSchedule string `json:"syncSchedule,omitempty"`
}

// IsReady reports whether at least one sync has completed
func (s *SyncStatus) IsReady() bool {
	return s != nil && s.LastSyncTime != nil
}
