package persistence

import (
	"context"
	"sync"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
	domainerror "github.com/finance-tracker/dashboard/internal/domain/error"
)

// MemoryStore is a key/value store living for the lifetime of the process.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemoryStore creates an empty in-memory key/value store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string][]byte),
	}
}

// Get returns a copy of the value stored under key.
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[key]
	if !ok {
		return nil, domainerror.ErrKeyNotFound
	}
	return append([]byte(nil), value...), nil
}

// Begin opens a write session.
func (s *MemoryStore) Begin(_ context.Context) (adapter.KeyValueSession, error) {
	return &memorySession{store: s, pending: make(map[string][]byte)}, nil
}

// Ping always succeeds.
func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}

// Close is a no-op; the entries stay readable.
func (s *MemoryStore) Close() error {
	return nil
}

type memorySession struct {
	store   *MemoryStore
	pending map[string][]byte
	closed  bool
}

func (ms *memorySession) Put(key string, value []byte) error {
	if ms.closed {
		return domainerror.ErrSessionClosed
	}
	ms.pending[key] = append([]byte(nil), value...)
	return nil
}

func (ms *memorySession) Commit() error {
	if ms.closed {
		return domainerror.ErrSessionClosed
	}
	ms.closed = true

	ms.store.mu.Lock()
	defer ms.store.mu.Unlock()
	for key, value := range ms.pending {
		ms.store.entries[key] = value
	}
	return nil
}

func (ms *memorySession) Release() error {
	ms.closed = true
	ms.pending = nil
	return nil
}
