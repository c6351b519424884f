package creditcard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
	"github.com/finance-tracker/dashboard/internal/domain/entity"
	domainerror "github.com/finance-tracker/dashboard/internal/domain/error"
)

// UpdateCreditCardInput represents the input for credit card update. Every field is replaced.
type UpdateCreditCardInput struct {
	ID             string
	Name           string
	Institution    string
	LastFourDigits string
	Limit          decimal.Decimal
	DueDate        int
	ClosingDate    int
	CurrentBalance decimal.Decimal
	Color          string
}

// UpdateCreditCardOutput represents the output of credit card update.
type UpdateCreditCardOutput struct {
	CreditCard entity.CreditCard
}

// UpdateCreditCardUseCase handles credit card update logic.
type UpdateCreditCardUseCase struct {
	cardStore adapter.CreditCardStore
}

// NewUpdateCreditCardUseCase creates a new UpdateCreditCardUseCase instance.
func NewUpdateCreditCardUseCase(cardStore adapter.CreditCardStore) *UpdateCreditCardUseCase {
	return &UpdateCreditCardUseCase{
		cardStore: cardStore,
	}
}

// Execute performs the credit card update and recomputes the available credit.
func (uc *UpdateCreditCardUseCase) Execute(ctx context.Context, input UpdateCreditCardInput) (*UpdateCreditCardOutput, error) {
	card := entity.CreditCard{
		ID:             input.ID,
		Name:           input.Name,
		Institution:    input.Institution,
		LastFourDigits: input.LastFourDigits,
		Limit:          input.Limit,
		DueDate:        input.DueDate,
		ClosingDate:    input.ClosingDate,
		CurrentBalance: input.CurrentBalance,
		Color:          input.Color,
	}

	if err := validateCreditCard(card); err != nil {
		return nil, err
	}
	card.RecomputeAvailableCredit()

	matched, err := uc.cardStore.UpdateCreditCard(ctx, card)
	if err != nil {
		return nil, fmt.Errorf("failed to update credit card: %w", err)
	}
	if !matched {
		return nil, domainerror.NewNotFoundError(domainerror.ErrCreditCardNotFound)
	}

	return &UpdateCreditCardOutput{
		CreditCard: card,
	}, nil
}
