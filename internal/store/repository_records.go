package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/ananta-labs/tabsync/internal/logger"
	"github.com/ananta-labs/tabsync/models"
)

// recordRepository is the PostgreSQL-backed implementation of
// [RecordRepository]. It executes all sync-record operations against the
// "sync_records" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (account_key, category, etc.).
type recordRepository struct {
	*DB
	logger *logger.Logger
}

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// NewRecordRepository constructs a [RecordRepository] backed by the provided
// database connection and logger.
func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	return &recordRepository{
		DB:     db,
		logger: logger,
	}
}

func (p *recordRepository) GetStates(ctx context.Context, accountKey string, categories []models.Category) ([]models.CategoryState, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Select("category", "checksum", "sync_version").
		From("sync_records").
		Where(sq.Eq{"account_key": accountKey, "category": categoryStrings(categories)}).
		OrderBy("category").
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.GetStates").
			Str("account_key", accountKey).
			Msg("failed to build states query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.GetStates").
			Str("account_key", accountKey).
			Msg("failed to execute states query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	states := make([]models.CategoryState, 0, len(categories))

	for rows.Next() {
		var st models.CategoryState
		if scanErr := rows.Scan(&st.Category, &st.Checksum, &st.SyncVersion); scanErr != nil {
			log.Err(scanErr).
				Str("func", "recordRepository.GetStates").
				Str("account_key", accountKey).
				Msg("failed to scan state row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		states = append(states, st)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "recordRepository.GetStates").
			Str("account_key", accountKey).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, rowsErr)
	}

	return states, nil
}

func (p *recordRepository) GetRecord(ctx context.Context, accountKey string, category models.Category) (models.ServerRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Select("account_key", "category", "checksum", "sync_version", "payload", "updated_by", "updated_at").
		From("sync_records").
		Where(sq.Eq{"account_key": accountKey, "category": string(category)}).
		ToSql()
	if err != nil {
		return models.ServerRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rec models.ServerRecord
	row := p.DB.QueryRowContext(ctx, query, args...)
	scanErr := row.Scan(
		&rec.AccountKey,
		&rec.Category,
		&rec.Checksum,
		&rec.SyncVersion,
		&rec.Payload,
		&rec.UpdatedBy,
		&rec.UpdatedAt,
	)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.ServerRecord{}, ErrRecordNotFound
		}
		log.Err(scanErr).
			Str("func", "recordRepository.GetRecord").
			Str("account_key", accountKey).
			Str("category", string(category)).
			Msg("failed to scan record row")
		return models.ServerRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return rec, nil
}

func (p *recordRepository) GetRecords(ctx context.Context, accountKey string, categories []models.Category) ([]models.ServerRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Select("account_key", "category", "checksum", "sync_version", "payload", "updated_by", "updated_at").
		From("sync_records").
		Where(sq.Eq{"account_key": accountKey, "category": categoryStrings(categories)}).
		OrderBy("category").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.GetRecords").
			Str("account_key", accountKey).
			Int("categories", len(categories)).
			Msg("failed to execute records query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.ServerRecord, 0, len(categories))

	for rows.Next() {
		var rec models.ServerRecord
		scanErr := rows.Scan(
			&rec.AccountKey,
			&rec.Category,
			&rec.Checksum,
			&rec.SyncVersion,
			&rec.Payload,
			&rec.UpdatedBy,
			&rec.UpdatedAt,
		)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		records = append(records, rec)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, rowsErr)
	}

	return records, nil
}

func (p *recordRepository) InsertRecord(ctx context.Context, record models.ServerRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Insert("sync_records").
		Columns("account_key", "category", "checksum", "sync_version", "payload", "updated_by", "updated_at").
		Values(record.AccountKey, string(record.Category), record.Checksum, record.SyncVersion, []byte(record.Payload), record.UpdatedBy, time.Now()).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = p.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "recordRepository.InsertRecord").
			Str("account_key", record.AccountKey).
			Str("category", string(record.Category)).
			Str("pg_code", postgresError(err)).
			Msg("failed to insert sync record")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (p *recordRepository) UpdateRecord(ctx context.Context, record models.ServerRecord, expectedVersion int64) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Update("sync_records").
		Set("checksum", record.Checksum).
		Set("sync_version", record.SyncVersion).
		Set("payload", []byte(record.Payload)).
		Set("updated_by", record.UpdatedBy).
		Set("updated_at", time.Now()).
		Where(sq.Eq{
			"account_key":  record.AccountKey,
			"category":     string(record.Category),
			"sync_version": expectedVersion,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := p.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.UpdateRecord").
			Str("account_key", record.AccountKey).
			Str("category", string(record.Category)).
			Msg("failed to update sync record")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		// Either the record vanished or another installation bumped the
		// version between the handler's read and this guarded write.
		return ErrVersionConflict
	}

	return nil
}

func (p *recordRepository) DeleteRecord(ctx context.Context, accountKey string, category models.Category) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Delete("sync_records").
		Where(sq.Eq{"account_key": accountKey, "category": string(category)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := p.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.DeleteRecord").
			Str("account_key", accountKey).
			Str("category", string(category)).
			Msg("failed to delete sync record")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected, raErr := result.RowsAffected(); raErr == nil && affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func categoryStrings(categories []models.Category) []string {
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		out = append(out, string(c))
	}
	return out
}
