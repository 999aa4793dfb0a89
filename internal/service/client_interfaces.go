package service

import (
	"context"
	"time"

	"github.com/ananta-labs/tabsync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// TokenProvider supplies the bearer token produced by the external
// authentication subsystem. The engine calls it once per run; an empty
// token or an error aborts the run with [ErrAuthenticationRequired] before
// any network access.
type TokenProvider func(ctx context.Context) (string, error)

// StaticToken wraps a fixed token string as a [TokenProvider].
func StaticToken(token string) TokenProvider {
	return func(context.Context) (string, error) {
		return token, nil
	}
}

// SnapshotCollector produces the full local snapshot at the start of a run.
// Implemented by [collector.Collector].
type SnapshotCollector interface {
	Collect(ctx context.Context) models.Snapshot
}

// SyncPlanner is the pure classification step of a reconciliation run: it
// maps the local snapshot, the server's status response, and the last
// confirmed metadata onto a [models.SyncPlan] without side effects.
type SyncPlanner interface {
	// BuildSyncPlan classifies every category into exactly one of push,
	// pull, or unchanged. ctx cancellation is checked per iteration.
	BuildSyncPlan(ctx context.Context, snapshot models.Snapshot, serverStates []models.CategoryState, metadata models.SyncMetadata) (models.SyncPlan, error)
}

// SyncEngine runs the reconciliation algorithm: one status probe, at most
// one batched push, at most one batched pull, a tombstone sweep, and a
// metadata persist — per invocation.
type SyncEngine interface {
	// SmartSync executes one full reconciliation pass and reports what was
	// pushed, pulled, conflicted, and unchanged. Concurrent invocations
	// are the caller's responsibility to serialize.
	SmartSync(ctx context.Context) (models.SyncSummary, error)
}

// SyncJob is a background worker that periodically triggers SmartSync,
// serializing runs so that at most one is in flight.
type SyncJob interface {
	// Start launches the background sync goroutine. It syncs every
	// interval, defaulting to 5 minutes if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated.
	Stop()
}
