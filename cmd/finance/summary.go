package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/finance-tracker/dashboard/internal/application/usecase/dashboard"
	domainerror "github.com/finance-tracker/dashboard/internal/domain/error"
)

func summaryCmd(a *app) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the dashboard summary",
		Long:  `Display net worth, balances, the monthly cash flow and the most recent transactions.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := dashboard.GetSummaryInput{}
			if date != "" {
				d, err := time.Parse("2006-01-02", date)
				if err != nil {
					return domainerror.NewDashboardError(domainerror.ErrCodeInvalidDateFormat, domainerror.ErrInvalidDateFormat.Error(), err)
				}
				input.Date = &d
			}

			output, err := a.injector.UseCases.GetSummary.Execute(cmd.Context(), input)
			if err != nil {
				return fmt.Errorf("failed to build summary: %w", err)
			}
			return a.renderer.Summary(output)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "reference day in YYYY-MM-DD format (default: today)")

	return cmd
}

func accountsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List accounts",
		Long:  `Display every account with its balance and the total balance.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output, err := a.injector.UseCases.ListAccounts.Execute(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list accounts: %w", err)
			}
			return a.renderer.Accounts(output)
		},
	}
}
