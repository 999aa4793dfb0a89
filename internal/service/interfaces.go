package service

import (
	"context"

	"github.com/ananta-labs/tabsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService manages sync accounts and issues the tokens that partition all
// record access.
type AuthService interface {
	// Register creates an account and returns a fresh token for it.
	// Returns [store.ErrAccountAlreadyExists] if the key is taken.
	Register(ctx context.Context, accountKey, secret string) (models.Token, error)

	// Login verifies the secret and returns a fresh token.
	// Returns [ErrInvalidCredentials] on mismatch.
	Login(ctx context.Context, accountKey, secret string) (models.Token, error)

	// ParseToken validates a bearer token string and returns the parsed
	// token with its account key. Returns [ErrTokenIsExpired] for expired
	// tokens.
	ParseToken(tokenString string) (models.Token, error)
}

// RecordService implements the server side of the three sync operations.
// All access is partitioned by the authenticated account key.
type RecordService interface {
	// Status reports the (checksum, version) state of every requested
	// category the account has a record for.
	Status(ctx context.Context, accountKey string, categories []models.Category) (models.StatusResponse, error)

	// Push applies a batch of candidate values under optimistic concurrency
	// and returns one result per item. Conflicts come back as results, not
	// errors.
	Push(ctx context.Context, accountKey, deviceID string, items []models.PushItem) (models.PushResponse, error)

	// Pull returns the full authoritative value of every requested category
	// the account has a record for.
	Pull(ctx context.Context, accountKey string, categories []models.Category) (models.PullResponse, error)
}
