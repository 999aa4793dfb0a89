package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ananta-labs/tabsync/internal/logger"
	"github.com/ananta-labs/tabsync/internal/utils"
	"github.com/ananta-labs/tabsync/models"
)

// localStateRepository is the SQLite-backed implementation of
// [LocalStateRepository].
type localStateRepository struct {
	*LocalDB
	logger *logger.Logger
}

// NewLocalStateRepository constructs a [LocalStateRepository] backed by the
// provided local database connection and logger.
func NewLocalStateRepository(db *LocalDB, logger *logger.Logger) LocalStateRepository {
	return &localStateRepository{
		LocalDB: db,
		logger:  logger,
	}
}

func (l *localStateRepository) GetMirroredPayload(ctx context.Context, category models.Category) (json.RawMessage, error) {
	return l.getValue(ctx, mirrorKey(category))
}

func (l *localStateRepository) SetMirroredPayload(ctx context.Context, category models.Category, payload json.RawMessage) error {
	return l.setValue(ctx, mirrorKey(category), []byte(payload))
}

func (l *localStateRepository) DeleteMirroredPayload(ctx context.Context, category models.Category) error {
	log := logger.FromContext(ctx)

	if _, err := l.LocalDB.ExecContext(ctx, deleteLocalState, mirrorKey(category)); err != nil {
		log.Err(err).
			Str("func", "localStateRepository.DeleteMirroredPayload").
			Str("category", string(category)).
			Msg("failed to delete mirrored payload")
		return fmt.Errorf("failed to delete mirrored payload %s: %w", category, err)
	}

	return nil
}

func (l *localStateRepository) EnsureDeviceID(ctx context.Context) (string, error) {
	value, err := l.getValue(ctx, localStateDeviceIDKey)
	if err == nil {
		return string(value), nil
	}
	if !errors.Is(err, ErrStateNotFound) {
		return "", err
	}

	deviceID := utils.NewUUID()
	if err = l.setValue(ctx, localStateDeviceIDKey, []byte(deviceID)); err != nil {
		return "", fmt.Errorf("failed to persist device id: %w", err)
	}

	l.logger.Info().Str("device_id", deviceID).Msg("generated new device identifier")
	return deviceID, nil
}

func (l *localStateRepository) GetSyncMetadata(ctx context.Context) (models.SyncMetadata, error) {
	value, err := l.getValue(ctx, localStateSyncMetadataKey)
	if errors.Is(err, ErrStateNotFound) {
		return models.SyncMetadata{}, nil
	}
	if err != nil {
		return nil, err
	}

	var metadata models.SyncMetadata
	if err = json.Unmarshal(value, &metadata); err != nil {
		// A corrupt metadata record is recoverable: the engine re-confirms
		// every category against the server on the next run.
		logger.FromContext(ctx).Err(err).
			Str("func", "localStateRepository.GetSyncMetadata").
			Msg("malformed sync metadata record, starting empty")
		return models.SyncMetadata{}, nil
	}

	return metadata, nil
}

func (l *localStateRepository) SetSyncMetadata(ctx context.Context, metadata models.SyncMetadata) error {
	value, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("failed to encode sync metadata: %w", err)
	}

	return l.setValue(ctx, localStateSyncMetadataKey, value)
}

func (l *localStateRepository) getValue(ctx context.Context, key string) ([]byte, error) {
	log := logger.FromContext(ctx)

	var value []byte
	row := l.LocalDB.QueryRowContext(ctx, getLocalState, key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStateNotFound
		}
		log.Err(err).
			Str("func", "localStateRepository.getValue").
			Str("key", key).
			Msg("failed to scan local state row")
		return nil, fmt.Errorf("failed to read local state %s: %w", key, err)
	}

	return value, nil
}

func (l *localStateRepository) setValue(ctx context.Context, key string, value []byte) error {
	log := logger.FromContext(ctx)

	if _, err := l.LocalDB.ExecContext(ctx, upsertLocalState, key, value); err != nil {
		log.Err(err).
			Str("func", "localStateRepository.setValue").
			Str("key", key).
			Msg("failed to upsert local state")
		return fmt.Errorf("failed to write local state %s: %w", key, err)
	}

	return nil
}

func mirrorKey(category models.Category) string {
	return "mirror:" + string(category)
}
