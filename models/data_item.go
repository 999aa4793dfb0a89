package models

// DataItem is one category's current value together with its content
// checksum. Items are computed fresh on every reconciliation pass; nothing
// is cached between runs.
type DataItem struct {
	Category Category `json:"category"`
	Payload  Payload  `json:"payload"`
	Checksum string   `json:"checksum"`
}

// Snapshot is the full local picture gathered at the start of a run:
// every category the collector could produce, keyed by category.
// A category absent from the map means the capability was unavailable or
// the stored value was malformed this run; a failed local read never
// aborts the run.
type Snapshot map[Category]DataItem
