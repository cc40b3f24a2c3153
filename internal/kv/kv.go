// Package kv defines the key-value persistence contract the store writes
// through, along with a file-backed implementation and an in-memory one
// for tests.
//
// Values are opaque serialized blobs. Writes overwrite the previous value
// for a key; readers of an unwritten key get absence, not an error.
package kv

import (
	"context"
	"fmt"
	"regexp"
)

// Store is durable key-value storage keyed by string.
type Store interface {
	// Get returns the value for key. The boolean reports whether a value
	// was present; absence is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set durably stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
}

var keyPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// ValidateKey rejects keys that cannot be used safely as file names.
func ValidateKey(key string) error {
	if !keyPattern.MatchString(key) {
		return fmt.Errorf("invalid storage key %q", key)
	}
	return nil
}
