// Package sync keeps the served catalog in step with its source.
//
// The Manager makes two decisions. ShouldSync returns a Reason that encodes
// both whether a sync is needed and why; use Reason.ShouldSync to act on it
// and Reason.String to log it. PerformSync fetches the catalog through a
// sources.SourceHandler, applies the configured source filter, orders the
// playlists by display order and title, validates the result and stores it
// through a writer.SyncWriter.
//
// A sync always runs when the catalog was never synced, when the last sync
// failed, when the store holds no catalog, or when the filter configuration
// changed since the last successful sync. Otherwise an elapsed sync interval
// or a manual request triggers a sync only when the source hash differs from
// the last synced hash.
//
// Failures are returned as *Error values carrying the condition they affect
// (SourceAvailable, DataValid or SyncSuccessful) and a reason code, which the
// coordinator writes into the persisted sync status.
//
// The coordinator subpackage runs the periodic loop, the state subpackage
// caches and persists sync status, and the writer subpackage holds the
// in-memory catalog store read by the API.
package sync
