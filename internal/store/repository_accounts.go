package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"

	"github.com/ananta-labs/tabsync/internal/logger"
	"github.com/ananta-labs/tabsync/models"
)

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository] over the "accounts" table.
type accountRepository struct {
	*DB
	logger *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	return &accountRepository{
		DB:     db,
		logger: logger,
	}
}

func (a *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Insert("accounts").
		Columns("account_key", "secret").
		Values(account.AccountKey, account.Secret).
		Suffix("RETURNING account_key, secret, created_at").
		ToSql()
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Account
	row := a.DB.QueryRowContext(ctx, query, args...)
	if scanErr := row.Scan(&created.AccountKey, &created.Secret, &created.CreatedAt); scanErr != nil {
		if postgresError(scanErr) == pgerrcode.UniqueViolation {
			return models.Account{}, ErrAccountAlreadyExists
		}
		log.Err(scanErr).
			Str("func", "accountRepository.CreateAccount").
			Str("account_key", account.AccountKey).
			Msg("failed to insert account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	return created, nil
}

func (a *accountRepository) FindAccount(ctx context.Context, accountKey string) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Select("account_key", "secret", "created_at").
		From("accounts").
		Where(sq.Eq{"account_key": accountKey}).
		ToSql()
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var account models.Account
	row := a.DB.QueryRowContext(ctx, query, args...)
	if scanErr := row.Scan(&account.AccountKey, &account.Secret, &account.CreatedAt); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Account{}, ErrNoAccountWasFound
		}
		log.Err(scanErr).
			Str("func", "accountRepository.FindAccount").
			Str("account_key", accountKey).
			Msg("failed to scan account row")
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return account, nil
}
