package models

// SyncState is the durable per-category record of the last (version,
// checksum) pair this installation confirmed with the server. It is written
// only after a network round trip confirms that state, never speculatively.
type SyncState struct {
	Version  int64  `json:"version"`
	Checksum string `json:"checksum"`
}

// SyncMetadata maps every category with a confirmed server state to its
// SyncState. An entry is created on the first successful round trip for a
// category and deleted when the category disappears from a server status
// response.
type SyncMetadata map[Category]SyncState

// Clone returns a deep copy of the metadata map. The engine mutates a copy
// during a run and persists it phase by phase.
func (m SyncMetadata) Clone() SyncMetadata {
	out := make(SyncMetadata, len(m))
	for cat, st := range m {
		out[cat] = st
	}
	return out
}

// CategoryState is one entry of a status response: the server's current
// checksum and version for a category it knows about.
type CategoryState struct {
	Category    Category `json:"category"`
	Checksum    string   `json:"checksum"`
	SyncVersion int64    `json:"sync_version"`
}

// SyncPlan is the output of the pure classification step: which categories
// to push (with which base version), which to pull, and which are already
// in sync. Exactly one of the three sets contains any given category.
type SyncPlan struct {
	// Push holds the categories queued for the single batched push call,
	// with the base version each one declares.
	Push []PlannedPush

	// Pull holds categories where only the server moved since the last
	// confirmed sync, plus categories present on the server but entirely
	// unknown locally.
	Pull []Category

	// Unchanged holds categories whose local checksum equals the server's;
	// their metadata is set to the server state without any network write.
	Unchanged []CategoryState
}

// PlannedPush pairs a category queued for push with the syncVersion the
// client last observed for it (optimistic concurrency base).
type PlannedPush struct {
	Category    Category
	BaseVersion int64
}

// SyncSummary reports the outcome of one reconciliation run.
// Conflict is a data outcome, not an error: conflicting categories are
// listed here after the server's value has been applied locally.
type SyncSummary struct {
	Pushed    []Category `json:"pushed"`
	Pulled    []Category `json:"pulled"`
	Conflicts []Category `json:"conflicts"`
	Unchanged []Category `json:"unchanged"`
}

// SyncSession carries the per-run identity threaded through every
// collector, adapter, and engine operation. It is constructed at the start
// of each run from the auth token and the device identifier store; no
// package-level mutable auth state exists.
type SyncSession struct {
	// AccountKey partitions all server-side records; derived from the
	// bearer token's subject claim.
	AccountKey string

	// DeviceID is the stable per-installation identifier.
	DeviceID string

	// Token is the bearer token presented on every network call.
	Token string
}
