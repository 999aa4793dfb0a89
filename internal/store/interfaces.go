package store

import (
	"context"

	"github.com/ananta-labs/tabsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository persists sync accounts for the server.
type AccountRepository interface {
	// CreateAccount inserts a new account. Returns [ErrAccountAlreadyExists]
	// if the account key is taken.
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)

	// FindAccount returns the account with the given key, or
	// [ErrNoAccountWasFound].
	FindAccount(ctx context.Context, accountKey string) (models.Account, error)
}

// RecordRepository persists the authoritative per-category sync records.
type RecordRepository interface {
	// GetStates returns the (checksum, version) state of every requested
	// category the account has a record for. Categories without a record
	// are simply absent from the result.
	GetStates(ctx context.Context, accountKey string, categories []models.Category) ([]models.CategoryState, error)

	// GetRecord returns the full record for one category, or
	// [ErrRecordNotFound].
	GetRecord(ctx context.Context, accountKey string, category models.Category) (models.ServerRecord, error)

	// GetRecords returns the full records for the requested categories;
	// categories without a record are absent from the result.
	GetRecords(ctx context.Context, accountKey string, categories []models.Category) ([]models.ServerRecord, error)

	// InsertRecord creates the first version of a record (SyncVersion 1).
	InsertRecord(ctx context.Context, record models.ServerRecord) error

	// UpdateRecord replaces the record's value guarded by expectedVersion:
	// the update applies only if the stored sync_version still equals
	// expectedVersion, otherwise [ErrVersionConflict] is returned. On
	// success the stored version is record.SyncVersion.
	UpdateRecord(ctx context.Context, record models.ServerRecord, expectedVersion int64) error

	// DeleteRecord removes a category's record entirely. Used by account
	// data cleanup; deletion then propagates to installations via the
	// status probe (tombstone sweep).
	DeleteRecord(ctx context.Context, accountKey string, category models.Category) error
}
