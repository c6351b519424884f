package investment

import (
	"context"
	"fmt"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
)

// DeleteInvestmentInput represents the input for investment deletion.
type DeleteInvestmentInput struct {
	InvestmentID string
}

// DeleteInvestmentOutput represents the output of investment deletion.
type DeleteInvestmentOutput struct {
	Removed bool
}

// DeleteInvestmentUseCase handles investment deletion logic.
type DeleteInvestmentUseCase struct {
	investmentStore adapter.InvestmentStore
}

// NewDeleteInvestmentUseCase creates a new DeleteInvestmentUseCase instance.
func NewDeleteInvestmentUseCase(investmentStore adapter.InvestmentStore) *DeleteInvestmentUseCase {
	return &DeleteInvestmentUseCase{
		investmentStore: investmentStore,
	}
}

// Execute performs the investment deletion.
func (uc *DeleteInvestmentUseCase) Execute(ctx context.Context, input DeleteInvestmentInput) (*DeleteInvestmentOutput, error) {
	removed, err := uc.investmentStore.DeleteInvestment(ctx, input.InvestmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete investment: %w", err)
	}

	return &DeleteInvestmentOutput{
		Removed: removed,
	}, nil
}
