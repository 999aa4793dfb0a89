package models

import (
	"encoding/json"
	"time"
)

// ServerRecord is the server-side authoritative state of one category for
// one account. SyncVersion is monotonically non-decreasing: a push is
// accepted as a plain update only when the client's declared base version
// equals the current SyncVersion at push time.
type ServerRecord struct {
	// AccountKey partitions records per account.
	AccountKey string `json:"account_key"`

	Category    Category        `json:"category"`
	Checksum    string          `json:"checksum"`
	SyncVersion int64           `json:"sync_version"`
	Payload     json.RawMessage `json:"payload"`

	// UpdatedBy is the device identifier of the installation whose push
	// produced the current value.
	UpdatedBy string `json:"updated_by"`

	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the ServerRecord model.
func (r ServerRecord) TableName() string {
	return "sync_records"
}
