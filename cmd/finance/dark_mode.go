package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finance-tracker/dashboard/internal/application/usecase/preference"
)

func darkModeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "dark-mode [toggle|on|off]",
		Short:     "Show or change the dark mode preference",
		Long:      `Without an argument the current dark mode preference is shown. The new value is persisted.`,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"toggle", "on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := a.injector.UseCases
			ctx := cmd.Context()

			var (
				output *preference.PreferencesOutput
				err    error
			)
			switch {
			case len(args) == 0:
				output, err = uc.GetPreferences.Execute(ctx)
			case args[0] == "toggle":
				output, err = uc.ToggleDarkMode.Execute(ctx)
			default:
				output, err = uc.SetDarkMode.Execute(ctx, preference.SetDarkModeInput{Enabled: args[0] == "on"})
			}
			if err != nil {
				return fmt.Errorf("failed to update dark mode: %w", err)
			}

			return a.renderer.DarkMode(output.DarkMode)
		},
	}
}
