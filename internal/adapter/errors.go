package adapter

import "errors"

var (
	// ErrUnauthorized is returned when the server rejects the bearer token.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrServer is returned for any other non-success response or a
	// malformed response body. The engine aborts the remainder of the run
	// on this error; phases already completed keep their persisted
	// metadata.
	ErrServer = errors.New("sync server error")
)
