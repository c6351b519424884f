// Package creditcard contains credit card related use cases.
package creditcard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
	"github.com/finance-tracker/dashboard/internal/application/formatter"
	"github.com/finance-tracker/dashboard/internal/domain/entity"
)

// CreateCreditCardInput represents the input for credit card creation.
// Available credit is derived from Limit and CurrentBalance.
type CreateCreditCardInput struct {
	Name           string
	Institution    string
	LastFourDigits string
	Limit          decimal.Decimal
	DueDate        int
	ClosingDate    int
	CurrentBalance decimal.Decimal
	Color          string // Optional, defaults to a random palette color
}

// CreateCreditCardOutput represents the output of credit card creation.
type CreateCreditCardOutput struct {
	CreditCard entity.CreditCard
}

// CreateCreditCardUseCase handles credit card creation logic.
type CreateCreditCardUseCase struct {
	cardStore adapter.CreditCardStore
}

// NewCreateCreditCardUseCase creates a new CreateCreditCardUseCase instance.
func NewCreateCreditCardUseCase(cardStore adapter.CreditCardStore) *CreateCreditCardUseCase {
	return &CreateCreditCardUseCase{
		cardStore: cardStore,
	}
}

// Execute performs the credit card creation.
func (uc *CreateCreditCardUseCase) Execute(ctx context.Context, input CreateCreditCardInput) (*CreateCreditCardOutput, error) {
	card := entity.CreditCard{
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
	if card.Color == "" {
		card.Color = formatter.RandomColor()
	}

	created, err := uc.cardStore.AddCreditCard(ctx, card)
	if err != nil {
		return nil, fmt.Errorf("failed to create credit card: %w", err)
	}

	return &CreateCreditCardOutput{
		CreditCard: created,
	}, nil
}
