package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
	"github.com/finance-tracker/dashboard/internal/domain/entity"
	domainerror "github.com/finance-tracker/dashboard/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update. Every field is replaced.
type UpdateTransactionInput struct {
	ID          string
	AccountID   string
	Type        entity.TransactionType
	Amount      decimal.Decimal
	Description string
	Category    string
	Date        time.Time
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionStore adapter.TransactionStore
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionStore adapter.TransactionStore) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionStore: transactionStore,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction := entity.Transaction{
		ID:          input.ID,
		AccountID:   input.AccountID,
		Type:        input.Type,
		Amount:      input.Amount,
		Description: input.Description,
		Category:    input.Category,
		Date:        input.Date,
	}

	if err := validateTransaction(transaction); err != nil {
		return nil, err
	}

	matched, err := uc.transactionStore.UpdateTransaction(ctx, transaction)
	if err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	if !matched {
		return nil, domainerror.NewNotFoundError(domainerror.ErrTransactionNotFound)
	}

	return &UpdateTransactionOutput{
		Transaction: transaction,
	}, nil
}
