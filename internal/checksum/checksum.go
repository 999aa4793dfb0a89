// Package checksum computes the deterministic content hash used to detect
// category changes without transferring full payloads.
//
// The digest is SHA-256 over a canonical JSON serialization: map keys are
// emitted in sorted order regardless of construction order, so two
// structurally equal payloads always hash identically.
package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Compute returns the hex-encoded SHA-256 digest of the canonical JSON
// serialization of payload. Returns an error only if the payload cannot be
// serialized at all (e.g. contains a channel or a cycle).
func Compute(payload any) (string, error) {
	canonical, err := Canonicalize(payload)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// Canonicalize serializes payload to JSON with a stable key order.
//
// The value is marshalled once, decoded back into generic form, and
// marshalled again: encoding/json sorts map keys deterministically, so the
// second pass normalizes struct field order and any map iteration order
// away. Struct tags from the first pass are preserved because the generic
// form is built from the tagged output.
func Canonicalize(payload any) ([]byte, error) {
	first, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("checksum serialize payload: %w", err)
	}

	var generic any
	if err = json.Unmarshal(first, &generic); err != nil {
		return nil, fmt.Errorf("checksum normalize payload: %w", err)
	}

	canonical, err := json.Marshal(generic)
	if err != nil {
		return nil, fmt.Errorf("checksum canonical encode: %w", err)
	}

	return canonical, nil
}
