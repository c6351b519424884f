package preference

import (
	"context"
	"fmt"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
)

// SetDarkModeInput represents the input for setting dark mode.
type SetDarkModeInput struct {
	Enabled bool
}

// SetDarkModeUseCase handles setting the dark-mode preference.
type SetDarkModeUseCase struct {
	preferenceStore adapter.PreferenceStore
}

// NewSetDarkModeUseCase creates a new SetDarkModeUseCase instance.
func NewSetDarkModeUseCase(preferenceStore adapter.PreferenceStore) *SetDarkModeUseCase {
	return &SetDarkModeUseCase{
		preferenceStore: preferenceStore,
	}
}

// Execute stores the preference.
func (uc *SetDarkModeUseCase) Execute(ctx context.Context, input SetDarkModeInput) (*PreferencesOutput, error) {
	if err := uc.preferenceStore.SetDarkMode(ctx, input.Enabled); err != nil {
		return nil, fmt.Errorf("failed to set dark mode: %w", err)
	}

	return &PreferencesOutput{
		DarkMode: input.Enabled,
	}, nil
}

// ToggleDarkModeUseCase handles flipping the dark-mode preference.
type ToggleDarkModeUseCase struct {
	preferenceStore adapter.PreferenceStore
}

// NewToggleDarkModeUseCase creates a new ToggleDarkModeUseCase instance.
func NewToggleDarkModeUseCase(preferenceStore adapter.PreferenceStore) *ToggleDarkModeUseCase {
	return &ToggleDarkModeUseCase{
		preferenceStore: preferenceStore,
	}
}

// Execute flips the preference and returns the new value.
func (uc *ToggleDarkModeUseCase) Execute(ctx context.Context) (*PreferencesOutput, error) {
	enabled, err := uc.preferenceStore.ToggleDarkMode(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle dark mode: %w", err)
	}

	return &PreferencesOutput{
		DarkMode: enabled,
	}, nil
}
