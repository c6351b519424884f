package error

import "errors"

// Storage errors.
var (
	// ErrKeyNotFound is returned when a key has never been written to the storage.
	ErrKeyNotFound = errors.New("key not found")

	// ErrSessionClosed is returned when a storage session is used after Commit or Release.
	ErrSessionClosed = errors.New("storage session already closed")

	// ErrUnknownStorageDriver is returned when the configured storage driver is not supported.
	ErrUnknownStorageDriver = errors.New("unknown storage driver")

	// ErrStorageUnavailable is returned when the storage backend cannot be reached.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
