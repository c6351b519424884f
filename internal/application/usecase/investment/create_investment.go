// Package investment contains investment-related use cases.
package investment

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
	"github.com/finance-tracker/dashboard/internal/application/formatter"
	"github.com/finance-tracker/dashboard/internal/domain/entity"
)

// CreateInvestmentInput represents the input for investment creation.
type CreateInvestmentInput struct {
	Name          string
	Type          entity.InvestmentType
	InitialAmount decimal.Decimal
	CurrentAmount decimal.Decimal
	Currency      string
	PurchaseDate  time.Time
	ReturnRate    decimal.Decimal // Used only when it cannot be derived from the amounts
	Notes         string
	Color         string // Optional, defaults to a random palette color
}

// CreateInvestmentOutput represents the output of investment creation.
type CreateInvestmentOutput struct {
	Investment entity.Investment
}

// CreateInvestmentUseCase handles investment creation logic.
type CreateInvestmentUseCase struct {
	investmentStore adapter.InvestmentStore
}

// NewCreateInvestmentUseCase creates a new CreateInvestmentUseCase instance.
func NewCreateInvestmentUseCase(investmentStore adapter.InvestmentStore) *CreateInvestmentUseCase {
	return &CreateInvestmentUseCase{
		investmentStore: investmentStore,
	}
}

// Execute performs the investment creation.
func (uc *CreateInvestmentUseCase) Execute(ctx context.Context, input CreateInvestmentInput) (*CreateInvestmentOutput, error) {
	investment := entity.Investment{
		Name:          input.Name,
		Type:          input.Type,
		InitialAmount: input.InitialAmount,
		CurrentAmount: input.CurrentAmount,
		Currency:      input.Currency,
		PurchaseDate:  input.PurchaseDate,
		ReturnRate:    input.ReturnRate,
		Notes:         input.Notes,
		Color:         input.Color,
	}

	if err := validateInvestment(investment); err != nil {
		return nil, err
	}

	investment.ReturnRate = returnRate(investment)
	if investment.Color == "" {
		investment.Color = formatter.RandomColor()
	}

	created, err := uc.investmentStore.AddInvestment(ctx, investment)
	if err != nil {
		return nil, fmt.Errorf("failed to create investment: %w", err)
	}

	return &CreateInvestmentOutput{
		Investment: created,
	}, nil
}
