package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
	domainerror "github.com/finance-tracker/dashboard/internal/domain/error"
	"github.com/finance-tracker/dashboard/internal/integration/persistence/model"
)

// SQLStore is a key/value store backed by the storage_entries table.
type SQLStore struct {
	db *gorm.DB
}

// NewSQLStore creates a key/value store on an open database. The table must already be migrated.
func NewSQLStore(db *gorm.DB) *SQLStore {
	return &SQLStore{
		db: db,
	}
}

// Get retrieves the value stored under key.
func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entry model.StorageEntryModel
	result := s.db.WithContext(ctx).Where(&model.StorageEntryModel{Key: key}).First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", key, result.Error)
	}
	return []byte(entry.Value), nil
}

// Begin opens a database transaction used as the write session.
func (s *SQLStore) Begin(ctx context.Context) (adapter.KeyValueSession, error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	return &sqlSession{tx: tx}, nil
}

// Ping checks the database connection.
func (s *SQLStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("%w: %v", domainerror.ErrStorageUnavailable, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", domainerror.ErrStorageUnavailable, err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB for closing: %w", err)
	}
	return sqlDB.Close()
}

type sqlSession struct {
	tx     *gorm.DB
	closed bool
}

// Put upserts the entry inside the transaction.
func (ss *sqlSession) Put(key string, value []byte) error {
	if ss.closed {
		return domainerror.ErrSessionClosed
	}

	entry := model.StorageEntryModel{Key: key, Value: string(value)}
	result := ss.tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry)
	return result.Error
}

func (ss *sqlSession) Commit() error {
	if ss.closed {
		return domainerror.ErrSessionClosed
	}
	ss.closed = true
	return ss.tx.Commit().Error
}

// Release rolls the transaction back unless it was committed.
func (ss *sqlSession) Release() error {
	if ss.closed {
		return nil
	}
	ss.closed = true
	return ss.tx.Rollback().Error
}
