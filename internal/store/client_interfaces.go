package store

import (
	"context"
	"encoding/json"

	"github.com/ananta-labs/tabsync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalStateRepository is the agent's durable key-value state: one key per
// mirrored category payload, one key for the per-installation device
// identifier, and one key for the sync metadata record.
type LocalStateRepository interface {
	// GetMirroredPayload returns the stored raw payload for a mirrored
	// category, or [ErrStateNotFound] if the key has never been written.
	GetMirroredPayload(ctx context.Context, category models.Category) (json.RawMessage, error)

	// SetMirroredPayload overwrites the stored payload for a mirrored
	// category wholesale. Partial merges never happen at this layer.
	SetMirroredPayload(ctx context.Context, category models.Category, payload json.RawMessage) error

	// DeleteMirroredPayload clears the stored payload for a mirrored
	// category. Deleting an absent key is a no-op.
	DeleteMirroredPayload(ctx context.Context, category models.Category) error

	// EnsureDeviceID returns the stable per-installation device identifier,
	// generating and persisting a new one on first use.
	EnsureDeviceID(ctx context.Context) (string, error)

	// GetSyncMetadata loads the per-category (version, checksum) record of
	// the last state confirmed with the server. A missing record yields an
	// empty map, not an error.
	GetSyncMetadata(ctx context.Context) (models.SyncMetadata, error)

	// SetSyncMetadata durably replaces the sync metadata record.
	SetSyncMetadata(ctx context.Context, metadata models.SyncMetadata) error
}
