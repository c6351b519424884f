package persistence

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
	domainerror "github.com/finance-tracker/dashboard/internal/domain/error"
)

const fileExtension = ".json"

// FileStore is a key/value store keeping one <key>.json file per key in a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a key/value store rooted at dir, creating the directory when missing.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Get reads the file of key.
func (s *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domainerror.ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

// Begin opens a write session. Writes go to temporary files renamed into place on Commit.
func (s *FileStore) Begin(_ context.Context) (adapter.KeyValueSession, error) {
	return &fileSession{store: s, pending: make(map[string]string)}, nil
}

// Ping checks that the storage directory is still accessible.
func (s *FileStore) Ping(_ context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("%w: %v", domainerror.ErrStorageUnavailable, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", domainerror.ErrStorageUnavailable, s.dir)
	}
	return nil
}

// Close is a no-op.
func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(s.dir, key+fileExtension), nil
}

type fileSession struct {
	store   *FileStore
	pending map[string]string // target path -> temporary file
	closed  bool
}

func (f *fileSession) Put(key string, value []byte) error {
	if f.closed {
		return domainerror.ErrSessionClosed
	}

	target, err := f.store.path(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(f.store.dir, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if previous, ok := f.pending[target]; ok {
		os.Remove(previous)
	}
	f.pending[target] = tmp.Name()
	return nil
}

func (f *fileSession) Commit() error {
	if f.closed {
		return domainerror.ErrSessionClosed
	}
	f.closed = true

	for target, tmp := range f.pending {
		if err := os.Rename(tmp, target); err != nil {
			return fmt.Errorf("failed to replace %s: %w", filepath.Base(target), err)
		}
		delete(f.pending, target)
	}
	return nil
}

// Release removes the temporary files that were not renamed into place.
func (f *fileSession) Release() error {
	f.closed = true

	var errs []error
	for target, tmp := range f.pending {
		if err := os.Remove(tmp); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
		delete(f.pending, target)
	}
	return errors.Join(errs...)
}
