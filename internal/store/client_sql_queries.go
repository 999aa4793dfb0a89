package store

// The agent's entire durable state lives in a single key-value table. Keys
// are namespaced: "mirror:<category>" for mirrored payloads, plus the two
// fixed keys below.
const (
	localStateDeviceIDKey     = "device_id"
	localStateSyncMetadataKey = "sync_metadata"

	getLocalState = `SELECT value
		FROM local_state
		WHERE key = ?;`

	upsertLocalState = `INSERT INTO local_state (key, value)
		VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value;`

	deleteLocalState = `DELETE FROM local_state
		WHERE key = ?;`
)
