package account

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
	"github.com/finance-tracker/dashboard/internal/domain/entity"
	domainerror "github.com/finance-tracker/dashboard/internal/domain/error"
)

// UpdateAccountInput represents the input for account update. Every field is replaced.
type UpdateAccountInput struct {
	ID          string
	Name        string
	Institution string
	Type        entity.AccountType
	Balance     decimal.Decimal
	Currency    string
	Color       string
}

// UpdateAccountOutput represents the output of account update.
type UpdateAccountOutput struct {
	Account entity.Account
}

// UpdateAccountUseCase handles account update logic.
type UpdateAccountUseCase struct {
	accountStore adapter.AccountStore
}

// NewUpdateAccountUseCase creates a new UpdateAccountUseCase instance.
func NewUpdateAccountUseCase(accountStore adapter.AccountStore) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{
		accountStore: accountStore,
	}
}

// Execute performs the account update.
func (uc *UpdateAccountUseCase) Execute(ctx context.Context, input UpdateAccountInput) (*UpdateAccountOutput, error) {
	account := entity.Account{
		ID:          input.ID,
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

	matched, err := uc.accountStore.UpdateAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	if !matched {
		return nil, domainerror.NewNotFoundError(domainerror.ErrAccountNotFound)
	}

	return &UpdateAccountOutput{
		Account: account,
	}, nil
}
