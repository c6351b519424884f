package account

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
	"github.com/finance-tracker/dashboard/internal/domain/calculation"
	"github.com/finance-tracker/dashboard/internal/domain/entity"
)

// ListAccountsOutput represents the output of listing accounts.
type ListAccountsOutput struct {
	Accounts     []entity.Account
	TotalBalance decimal.Decimal
}

// ListAccountsUseCase handles listing accounts logic.
type ListAccountsUseCase struct {
	accountStore adapter.AccountStore
}

// NewListAccountsUseCase creates a new ListAccountsUseCase instance.
func NewListAccountsUseCase(accountStore adapter.AccountStore) *ListAccountsUseCase {
	return &ListAccountsUseCase{
		accountStore: accountStore,
	}
}

// Execute lists the accounts in stored order.
func (uc *ListAccountsUseCase) Execute(_ context.Context) (*ListAccountsOutput, error) {
	accounts := uc.accountStore.Accounts()

	return &ListAccountsOutput{
		Accounts:     accounts,
		TotalBalance: calculation.TotalBalance(accounts),
	}, nil
}
