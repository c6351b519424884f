package dependency

import (
	"fmt"
	"log/slog"

	"github.com/finance-tracker/dashboard/config"
	"github.com/finance-tracker/dashboard/internal/application/adapter"
	domainerror "github.com/finance-tracker/dashboard/internal/domain/error"
	"github.com/finance-tracker/dashboard/internal/infra/cache"
	"github.com/finance-tracker/dashboard/internal/infra/db"
	"github.com/finance-tracker/dashboard/internal/integration/persistence"
	"github.com/finance-tracker/dashboard/internal/integration/persistence/model"
)

// NewStorage opens the key/value storage selected by the configured driver.
// The caller owns the returned store and must close it.
func NewStorage(cfg *config.StorageConfig) (adapter.KeyValueStore, error) {
	switch cfg.Driver {
	case config.StorageDriverSQLite:
		database, err := db.NewSQLiteConnection(&cfg.SQLite)
		if err != nil {
			return nil, err
		}
		return migratedSQLStore(database)

	case config.StorageDriverPostgres:
		database, err := db.NewPostgresConnection(&cfg.Database)
		if err != nil {
			return nil, err
		}
		return migratedSQLStore(database)

	case config.StorageDriverRedis:
		client, err := cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return persistence.NewRedisStore(client), nil

	case config.StorageDriverFile:
		return persistence.NewFileStore(cfg.FileDir)

	case config.StorageDriverMemory:
		slog.Warn("Using in-memory storage, changes are lost on exit")
		return persistence.NewMemoryStore(), nil

	default:
		return nil, fmt.Errorf("%w: %q", domainerror.ErrUnknownStorageDriver, cfg.Driver)
	}
}

func migratedSQLStore(database *db.Database) (adapter.KeyValueStore, error) {
	if err := database.AutoMigrate(&model.StorageEntryModel{}); err != nil {
		_ = database.Close()
		return nil, err
	}
	slog.Info("Database migrations completed successfully")
	return persistence.NewSQLStore(database.DB()), nil
}
