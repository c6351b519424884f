// Package preference contains display preference use cases.
package preference

import (
	"context"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
)

// PreferencesOutput represents the display preferences.
type PreferencesOutput struct {
	DarkMode bool
}

// GetPreferencesUseCase handles reading the display preferences.
type GetPreferencesUseCase struct {
	preferenceStore adapter.PreferenceStore
}

// NewGetPreferencesUseCase creates a new GetPreferencesUseCase instance.
func NewGetPreferencesUseCase(preferenceStore adapter.PreferenceStore) *GetPreferencesUseCase {
	return &GetPreferencesUseCase{
		preferenceStore: preferenceStore,
	}
}

// Execute returns the current preferences.
func (uc *GetPreferencesUseCase) Execute(_ context.Context) (*PreferencesOutput, error) {
	return &PreferencesOutput{
		DarkMode: uc.preferenceStore.DarkMode(),
	}, nil
}
