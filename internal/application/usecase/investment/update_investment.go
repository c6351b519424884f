package investment

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
	"github.com/finance-tracker/dashboard/internal/domain/entity"
	domainerror "github.com/finance-tracker/dashboard/internal/domain/error"
)

// UpdateInvestmentInput represents the input for investment update. Every field is replaced.
type UpdateInvestmentInput struct {
	ID            string
	Name          string
	Type          entity.InvestmentType
	InitialAmount decimal.Decimal
	CurrentAmount decimal.Decimal
	Currency      string
	PurchaseDate  time.Time
	ReturnRate    decimal.Decimal
	Notes         string
	Color         string
}

// UpdateInvestmentOutput represents the output of investment update.
type UpdateInvestmentOutput struct {
	Investment entity.Investment
}

// UpdateInvestmentUseCase handles investment update logic.
type UpdateInvestmentUseCase struct {
	investmentStore adapter.InvestmentStore
}

// NewUpdateInvestmentUseCase creates a new UpdateInvestmentUseCase instance.
func NewUpdateInvestmentUseCase(investmentStore adapter.InvestmentStore) *UpdateInvestmentUseCase {
	return &UpdateInvestmentUseCase{
		investmentStore: investmentStore,
	}
}

// Execute performs the investment update.
func (uc *UpdateInvestmentUseCase) Execute(ctx context.Context, input UpdateInvestmentInput) (*UpdateInvestmentOutput, error) {
	investment := entity.Investment{
		ID:            input.ID,
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

	matched, err := uc.investmentStore.UpdateInvestment(ctx, investment)
	if err != nil {
		return nil, fmt.Errorf("failed to update investment: %w", err)
	}
	if !matched {
		return nil, domainerror.NewNotFoundError(domainerror.ErrInvestmentNotFound)
	}

	return &UpdateInvestmentOutput{
		Investment: investment,
	}, nil
}
