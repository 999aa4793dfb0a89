package adapter

import (
	"context"

	"github.com/ananta-labs/tabsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// SyncTransport is the authenticated wrapper over the remote sync server's
// three operations. Every call requires a session with a non-empty bearer
// token; session identity is threaded explicitly rather than stored in the
// adapter, so isolated runs can share one transport.
type SyncTransport interface {
	// Status returns the server's current (checksum, version) state for
	// every requested category it has a record for. Categories absent from
	// the response are not yet known to the server.
	Status(ctx context.Context, session models.SyncSession, categories []models.Category) (models.StatusResponse, error)

	// Push submits the batched candidate values for this run and returns
	// one result per item. Conflicts are data, not errors: they come back
	// as results with [models.PushStatusConflict].
	Push(ctx context.Context, session models.SyncSession, items []models.PushItem) (models.PushResponse, error)

	// Pull returns the full authoritative value of every requested category
	// the server knows about.
	Pull(ctx context.Context, session models.SyncSession, categories []models.Category) (models.PullResponse, error)
}
