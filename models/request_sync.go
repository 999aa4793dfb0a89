package models

import "encoding/json"

// PushStatus is the server's verdict for one pushed item.
type PushStatus string

const (
	// PushStatusCreated — the server had no record; version starts at 1.
	PushStatusCreated PushStatus = "created"
	// PushStatusUpdated — base version matched; version was incremented.
	PushStatusUpdated PushStatus = "updated"
	// PushStatusUnchanged — the pushed checksum equals the server's current
	// checksum; no version bump, nothing stored.
	PushStatusUnchanged PushStatus = "unchanged"
	// PushStatusConflict — the record moved since the declared base version;
	// ServerPayload carries the authoritative value.
	PushStatusConflict PushStatus = "conflict"
)

// StatusResponse lists the server's current state for every category it
// knows about. Categories absent from States are not yet known to the
// server for this account.
type StatusResponse struct {
	States []CategoryState `json:"states"`
	Length int             `json:"length"`
}

// PushRequest is the single batched write of a reconciliation run.
type PushRequest struct {
	// AccountKey partitions the records server-side. The server rejects a
	// request whose AccountKey does not match the bearer token's subject.
	AccountKey string `json:"account_key"`

	// DeviceID identifies the pushing installation, recorded with every
	// accepted write.
	DeviceID string `json:"device_id"`

	Items  []PushItem `json:"items"`
	Length int        `json:"length"`
}

// PushItem is one category's candidate value with its optimistic-concurrency
// base version.
type PushItem struct {
	Category Category `json:"category"`
	Payload  Payload  `json:"payload"`
	Checksum string   `json:"checksum"`

	// BaseVersion is the syncVersion the client last observed for this
	// category; 0 when the category is not yet known to the server.
	BaseVersion int64 `json:"base_version"`
}

// UnmarshalJSON decodes the payload into its category's concrete type.
// This is the single point where wire JSON becomes a typed [Payload] on the
// server side.
func (p *PushItem) UnmarshalJSON(data []byte) error {
	var raw struct {
		Category    Category        `json:"category"`
		Payload     json.RawMessage `json:"payload"`
		Checksum    string          `json:"checksum"`
		BaseVersion int64           `json:"base_version"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	payload, err := DecodePayload(raw.Category, raw.Payload)
	if err != nil {
		return err
	}

	*p = PushItem{
		Category:    raw.Category,
		Payload:     payload,
		Checksum:    raw.Checksum,
		BaseVersion: raw.BaseVersion,
	}
	return nil
}

// PushResponse carries one result per pushed item.
type PushResponse struct {
	Results []PushResult `json:"results"`
}

// PushResult is the server's decision for one pushed category.
type PushResult struct {
	Category    Category   `json:"category"`
	Status      PushStatus `json:"status"`
	SyncVersion int64      `json:"sync_version"`
	Checksum    string     `json:"checksum"`

	// ServerPayload is populated only when Status is conflict, carrying the
	// server's current authoritative value for the category.
	ServerPayload json.RawMessage `json:"server_payload,omitempty"`
}

// PullResponse carries the full current server value for every requested
// category the server knows about.
type PullResponse struct {
	Items  []PullItem `json:"items"`
	Length int        `json:"length"`
}

// PullItem is one category's authoritative server value.
type PullItem struct {
	Category    Category        `json:"category"`
	Payload     json.RawMessage `json:"payload"`
	SyncVersion int64           `json:"sync_version"`
}
