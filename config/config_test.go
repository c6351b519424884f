package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Storage.Driver != StorageDriverSQLite {
		t.Errorf("expected default driver %q, got %q", StorageDriverSQLite, cfg.Storage.Driver)
	}
	if cfg.Storage.KeyPrefix != "finance_tracker_" {
		t.Errorf("expected default prefix finance_tracker_, got %q", cfg.Storage.KeyPrefix)
	}
	if cfg.Display.Locale != "pt-BR" || cfg.Display.DefaultCurrency != "BRL" {
		t.Errorf("unexpected display defaults %+v", cfg.Display)
	}
	if cfg.Display.RecentTransactionsLimit != 5 {
		t.Errorf("expected recent limit 5, got %d", cfg.Display.RecentTransactionsLimit)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("expected read timeout 15s, got %s", cfg.Server.ReadTimeout)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "Redis")
	t.Setenv("DEFAULT_CURRENCY", "usd")
	t.Setenv("SERVER_PORT", "not-a-number")
	t.Setenv("RECENT_TRANSACTIONS_LIMIT", "10")
	t.Setenv("SERVER_WRITE_TIMEOUT", "30s")

	cfg := Load()

	if cfg.Storage.Driver != StorageDriverRedis {
		t.Errorf("expected driver redis, got %q", cfg.Storage.Driver)
	}
	if cfg.Display.DefaultCurrency != "USD" {
		t.Errorf("expected currency USD, got %q", cfg.Display.DefaultCurrency)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected invalid port to fall back to 8080, got %d", cfg.Server.Port)
	}
	if cfg.Display.RecentTransactionsLimit != 10 {
		t.Errorf("expected recent limit 10, got %d", cfg.Display.RecentTransactionsLimit)
	}
	if cfg.Server.WriteTimeout != 30*time.Second {
		t.Errorf("expected write timeout 30s, got %s", cfg.Server.WriteTimeout)
	}
}

func TestLogConfig_SlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}

	for name, want := range tests {
		if got := (LogConfig{Level: name}).SlogLevel(); got != want {
			t.Errorf("SlogLevel(%q) = %v, want %v", name, got, want)
		}
	}
}
