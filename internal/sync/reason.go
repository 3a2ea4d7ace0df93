package sync

// Reason explains a sync decision. It encodes both whether a sync is needed
// and why, so callers log a single value.
type Reason int

// Reasons that do not require a sync
const (
	ReasonAlreadyInProgress Reason = iota
	ReasonManualNoChanges
	ReasonErrorCheckingSyncNeed
	ReasonUpToDateWithPolicy
	ReasonUpToDateNoPolicy
)

// Reasons that require a sync
const (
	ReasonCatalogNotReady Reason = iota + 100
	ReasonFilterChanged
	ReasonSourceDataChanged
	ReasonErrorCheckingChanges
	ReasonManualWithChanges
)

var reasonNames = map[Reason]string{
	ReasonAlreadyInProgress:     "sync-already-in-progress",
	ReasonManualNoChanges:       "manual-sync-no-data-changes",
	ReasonErrorCheckingSyncNeed: "error-checking-sync-need",
	ReasonUpToDateWithPolicy:    "up-to-date-with-policy",
	ReasonUpToDateNoPolicy:      "up-to-date-no-policy",
	ReasonCatalogNotReady:       "catalog-not-ready",
	ReasonFilterChanged:         "filter-changed",
	ReasonSourceDataChanged:     "source-data-changed",
	ReasonErrorCheckingChanges:  "error-checking-data-changes",
	ReasonManualWithChanges:     "manual-sync-with-data-changes",
}

// ShouldSync reports whether the reason calls for a sync
func (r Reason) ShouldSync() bool {
	switch r {
	case ReasonCatalogNotReady, ReasonFilterChanged, ReasonSourceDataChanged,
		ReasonErrorCheckingChanges, ReasonManualWithChanges:
		return true
	default:
		return false
	}
}

// IsManual reports whether the reason comes from a manual sync request
func (r Reason) IsManual() bool {
	return r == ReasonManualWithChanges || r == ReasonManualNoChanges
}

func (r Reason) String() string {
	if name, ok := reasonNames[r]; ok {
		return name
	}
	return "unknown"
}
