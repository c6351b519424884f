package db

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-tracker/dashboard/config"
)

// NewSQLiteConnection opens the local SQLite database file, creating it when missing.
// Writes are serialized over a single connection.
func NewSQLiteConnection(cfg *config.SQLiteConfig) (*Database, error) {
	sqlDB, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to sqlite database: %w", err)
	}

	slog.Info("Database connection established",
		"driver", "sqlite",
		"path", cfg.Path,
	)

	return &Database{db: db}, nil
}
