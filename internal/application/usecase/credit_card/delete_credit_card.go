package creditcard

import (
	"context"
	"fmt"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
)

// DeleteCreditCardInput represents the input for credit card deletion.
type DeleteCreditCardInput struct {
	CreditCardID string
}

// DeleteCreditCardOutput represents the output of credit card deletion.
type DeleteCreditCardOutput struct {
	Removed bool
}

// DeleteCreditCardUseCase handles credit card deletion logic.
type DeleteCreditCardUseCase struct {
	cardStore adapter.CreditCardStore
}

// NewDeleteCreditCardUseCase creates a new DeleteCreditCardUseCase instance.
func NewDeleteCreditCardUseCase(cardStore adapter.CreditCardStore) *DeleteCreditCardUseCase {
	return &DeleteCreditCardUseCase{
		cardStore: cardStore,
	}
}

// Execute performs the credit card deletion.
func (uc *DeleteCreditCardUseCase) Execute(ctx context.Context, input DeleteCreditCardInput) (*DeleteCreditCardOutput, error) {
	removed, err := uc.cardStore.DeleteCreditCard(ctx, input.CreditCardID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete credit card: %w", err)
	}

	return &DeleteCreditCardOutput{
		Removed: removed,
	}, nil
}
