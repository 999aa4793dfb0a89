// Package utils provides general-purpose helper utilities used across
// different parts of the application: context keys, HTTP response writing,
// JWT token generation and validation, and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AccountKeyCtxKey is the key used to store the authenticated account's
// partition key in the context. Used together with GetAccountKeyFromContext
// for type-safe retrieval.
var AccountKeyCtxKey = contextKey("accountKey")

// GetAccountKeyFromContext retrieves the account partition key from the
// context.
//
// Returns the account key and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
func GetAccountKeyFromContext(ctx context.Context) (string, bool) {
	accountKey, ok := ctx.Value(AccountKeyCtxKey).(string)
	return accountKey, ok
}
