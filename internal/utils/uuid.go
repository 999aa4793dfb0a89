package utils

import "github.com/google/uuid"

// NewUUID returns a freshly generated random (version 4) UUID string.
// Used for the stable per-installation device identifier, generated once
// and persisted by the local store.
func NewUUID() string {
	return uuid.NewString()
}
