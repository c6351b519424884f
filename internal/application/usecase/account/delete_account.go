package account

import (
	"context"
	"fmt"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
)

// DeleteAccountInput represents the input for account deletion.
type DeleteAccountInput struct {
	AccountID string
}

// DeleteAccountOutput represents the output of account deletion.
// Removed is false when no account had the ID, which is not an error.
type DeleteAccountOutput struct {
	Removed bool
}

// DeleteAccountUseCase handles account deletion logic.
// Transactions referencing the account are kept and display as an unknown account.
type DeleteAccountUseCase struct {
	accountStore adapter.AccountStore
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(accountStore adapter.AccountStore) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		accountStore: accountStore,
	}
}

// Execute performs the account deletion.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) (*DeleteAccountOutput, error) {
	removed, err := uc.accountStore.DeleteAccount(ctx, input.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete account: %w", err)
	}

	return &DeleteAccountOutput{
		Removed: removed,
	}, nil
}
