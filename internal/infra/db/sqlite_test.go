package db

import (
	"path/filepath"
	"testing"

	"github.com/finance-tracker/dashboard/config"
)

type migrationProbe struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

func TestNewSQLiteConnection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finance.db")

	database, err := NewSQLiteConnection(&config.SQLiteConfig{Path: path})
	if err != nil {
		t.Fatalf("NewSQLiteConnection() error = %v", err)
	}
	defer database.Close()

	if !database.HealthCheck() {
		t.Error("expected healthy connection")
	}
	if err := database.AutoMigrate(&migrationProbe{}); err != nil {
		t.Fatalf("AutoMigrate() error = %v", err)
	}
	if !database.DB().Migrator().HasTable(&migrationProbe{}) {
		t.Error("expected migrated table")
	}
}
