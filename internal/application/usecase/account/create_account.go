// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
	"github.com/finance-tracker/dashboard/internal/application/formatter"
	"github.com/finance-tracker/dashboard/internal/domain/entity"
)

// CreateAccountInput represents the input for account creation.
type CreateAccountInput struct {
	Name        string
	Institution string
	Type        entity.AccountType
	Balance     decimal.Decimal
	Currency    string
	Color       string // Optional, defaults to a random palette color
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account entity.Account
}

// CreateAccountUseCase handles account creation logic.
type CreateAccountUseCase struct {
	accountStore adapter.AccountStore
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(accountStore adapter.AccountStore) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		accountStore: accountStore,
	}
}

// Execute performs the account creation.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	account := entity.Account{
		Name:        input.Name,
		Institution: input.Institution,
		Type:        input.Type,
		Balance:     input.Balance,
		Currency:    input.Currency,
		Color:       input.Color,
	}

	if err := validateAccount(account); err != nil {
		return nil, err
	}

	// Apply decorative default
	if account.Color == "" {
		account.Color = formatter.RandomColor()
	}

	created, err := uc.accountStore.AddAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &CreateAccountOutput{
		Account: created,
	}, nil
}
