// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// KeyValueStore is a local persistent key/value storage holding serialized state.
type KeyValueStore interface {
	// Get returns the value stored under key, or domainerror.ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Begin opens a write session. Callers must Release it on every exit path.
	Begin(ctx context.Context) (KeyValueSession, error)

	// Ping reports whether the storage is reachable.
	Ping(ctx context.Context) error

	// Close releases the underlying resources.
	Close() error
}

// KeyValueSession groups writes that are applied together on Commit.
type KeyValueSession interface {
	// Put queues value to be stored under key.
	Put(key string, value []byte) error

	// Commit applies every queued write.
	Commit() error

	// Release discards uncommitted writes. It is a no-op after Commit.
	Release() error
}
