package service

import "errors"

var (
	// ErrAuthenticationRequired is returned when a reconciliation run is
	// attempted without a valid bearer token. The engine fails before any
	// network access.
	ErrAuthenticationRequired = errors.New("authentication required")

	// ErrInvalidCredentials is returned by the server's auth service when
	// an account's secret does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenIsExpired is returned when a presented token's expiry claim
	// is in the past.
	ErrTokenIsExpired = errors.New("token is expired")

	// ErrAccountMismatch is returned by the server when a request body's
	// account key does not match the authenticated token's subject.
	ErrAccountMismatch = errors.New("account key does not match token")

	// ErrUnknownCategory is returned by the server when a request names a
	// category outside the fixed set.
	ErrUnknownCategory = errors.New("unknown category")
)
