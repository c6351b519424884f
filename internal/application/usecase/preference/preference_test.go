package preference

import (
	"context"
	"testing"

	"github.com/finance-tracker/dashboard/internal/application/store"
	"github.com/finance-tracker/dashboard/internal/integration/persistence"
)

func TestDarkModeUseCases(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewStateRepository(persistence.NewMemoryStore(), persistence.DefaultKeyPrefix)
	s := store.New(ctx, repo)

	out, err := NewToggleDarkModeUseCase(s).Execute(ctx)
	if err != nil {
		t.Fatalf("toggle error = %v", err)
	}
	if !out.DarkMode {
		t.Error("expected dark mode on after toggle")
	}

	out, err = NewSetDarkModeUseCase(s).Execute(ctx, SetDarkModeInput{Enabled: true})
	if err != nil {
		t.Fatalf("set error = %v", err)
	}
	if !out.DarkMode {
		t.Error("expected dark mode to stay on")
	}

	got, err := NewGetPreferencesUseCase(store.New(ctx, repo)).Execute(ctx)
	if err != nil {
		t.Fatalf("get error = %v", err)
	}
	if !got.DarkMode {
		t.Error("expected persisted dark mode")
	}
}
