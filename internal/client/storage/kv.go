package storage

import "context"

//go:generate go tool moq -out kv_mock.go . KVStore

// KVStore defines the opaque on-device key-value store the client persists
// session state into. Values are raw bytes, keys are plain strings.
// Implementations must be safe for concurrent use.
type KVStore interface {
	// Get returns the stored value for key.
	// Returns ErrKeyNotFound if the key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying store.
	Close() error
}
