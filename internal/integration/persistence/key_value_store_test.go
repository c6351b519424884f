package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
	domainerror "github.com/finance-tracker/dashboard/internal/domain/error"
	"github.com/finance-tracker/dashboard/internal/integration/persistence/model"
)

func newSQLiteStore(t *testing.T) *SQLStore {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	gormDB, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(&model.StorageEntryModel{}))

	store := NewSQLStore(gormDB)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func newMiniredisStore(t *testing.T) *RedisStore {
	t.Helper()

	server := miniredis.RunT(t)
	store := NewRedisStore(redis.NewClient(&redis.Options{Addr: server.Addr()}))
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func newFileStore(t *testing.T) *FileStore {
	t.Helper()

	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func keyValueStores(t *testing.T) map[string]func(t *testing.T) adapter.KeyValueStore {
	return map[string]func(t *testing.T) adapter.KeyValueStore{
		"memory": func(t *testing.T) adapter.KeyValueStore { return NewMemoryStore() },
		"file":   func(t *testing.T) adapter.KeyValueStore { return newFileStore(t) },
		"sqlite": func(t *testing.T) adapter.KeyValueStore { return newSQLiteStore(t) },
		"redis":  func(t *testing.T) adapter.KeyValueStore { return newMiniredisStore(t) },
	}
}

func putOne(t *testing.T, kv adapter.KeyValueStore, key, value string) {
	t.Helper()

	session, err := kv.Begin(context.Background())
	require.NoError(t, err)
	defer session.Release()

	require.NoError(t, session.Put(key, []byte(value)))
	require.NoError(t, session.Commit())
}

func TestKeyValueStore_GetMissingKey(t *testing.T) {
	for name, build := range keyValueStores(t) {
		t.Run(name, func(t *testing.T) {
			kv := build(t)

			_, err := kv.Get(context.Background(), "finance_tracker_accounts")
			assert.ErrorIs(t, err, domainerror.ErrKeyNotFound)
		})
	}
}

func TestKeyValueStore_CommitThenGet(t *testing.T) {
	for name, build := range keyValueStores(t) {
		t.Run(name, func(t *testing.T) {
			kv := build(t)

			putOne(t, kv, "finance_tracker_dark_mode", "true")
			putOne(t, kv, "finance_tracker_dark_mode", "false")

			value, err := kv.Get(context.Background(), "finance_tracker_dark_mode")
			require.NoError(t, err)
			assert.Equal(t, "false", string(value))
		})
	}
}

func TestKeyValueStore_ReleaseDiscardsUncommittedWrites(t *testing.T) {
	for name, build := range keyValueStores(t) {
		t.Run(name, func(t *testing.T) {
			kv := build(t)
			ctx := context.Background()

			session, err := kv.Begin(ctx)
			require.NoError(t, err)
			require.NoError(t, session.Put("finance_tracker_categories", []byte("[]")))
			require.NoError(t, session.Release())

			_, err = kv.Get(ctx, "finance_tracker_categories")
			assert.ErrorIs(t, err, domainerror.ErrKeyNotFound)
		})
	}
}

func TestKeyValueStore_SessionClosedAfterCommit(t *testing.T) {
	for name, build := range keyValueStores(t) {
		t.Run(name, func(t *testing.T) {
			kv := build(t)

			session, err := kv.Begin(context.Background())
			require.NoError(t, err)
			require.NoError(t, session.Put("finance_tracker_accounts", []byte("[]")))
			require.NoError(t, session.Commit())

			assert.ErrorIs(t, session.Put("finance_tracker_accounts", []byte("[]")), domainerror.ErrSessionClosed)
			assert.ErrorIs(t, session.Commit(), domainerror.ErrSessionClosed)
			assert.NoError(t, session.Release())
		})
	}
}

func TestKeyValueStore_Ping(t *testing.T) {
	for name, build := range keyValueStores(t) {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, build(t).Ping(context.Background()))
		})
	}
}

func TestRedisStore_PingUnavailable(t *testing.T) {
	server := miniredis.RunT(t)
	store := NewRedisStore(redis.NewClient(&redis.Options{Addr: server.Addr()}))
	defer store.Close()

	server.Close()

	assert.ErrorIs(t, store.Ping(context.Background()), domainerror.ErrStorageUnavailable)
}

func TestFileStore_RejectsPathKeys(t *testing.T) {
	store := newFileStore(t)

	_, err := store.Get(context.Background(), "../accounts")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domainerror.ErrKeyNotFound)
}
