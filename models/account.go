package models

import "time"

// Account represents a sync account used for authentication.
// Sensitive fields must never be exposed outside trusted boundaries.
type Account struct {
	// AccountKey is the unique partition key for all records owned by this
	// account. It becomes the subject claim of issued tokens.
	AccountKey string `json:"account_key"`

	// Secret is the account's shared secret representation. This value MUST
	// be a derived value (HMAC over the cleartext), never plaintext.
	Secret string `json:"secret"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}
