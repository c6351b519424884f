package investment

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
	"github.com/finance-tracker/dashboard/internal/domain/calculation"
	"github.com/finance-tracker/dashboard/internal/domain/entity"
)

// InvestmentOutput is an investment together with its return computed from the amounts.
type InvestmentOutput struct {
	entity.Investment
	Return decimal.Decimal
}

// ListInvestmentsOutput represents the output of listing investments.
type ListInvestmentsOutput struct {
	Investments []InvestmentOutput
	Total       decimal.Decimal
}

// ListInvestmentsUseCase handles listing investments logic.
type ListInvestmentsUseCase struct {
	investmentStore adapter.InvestmentStore
}

// NewListInvestmentsUseCase creates a new ListInvestmentsUseCase instance.
func NewListInvestmentsUseCase(investmentStore adapter.InvestmentStore) *ListInvestmentsUseCase {
	return &ListInvestmentsUseCase{
		investmentStore: investmentStore,
	}
}

// Execute lists the investments in stored order.
func (uc *ListInvestmentsUseCase) Execute(_ context.Context) (*ListInvestmentsOutput, error) {
	investments := uc.investmentStore.Investments()

	outputs := make([]InvestmentOutput, len(investments))
	for i, investment := range investments {
		outputs[i] = InvestmentOutput{
			Investment: investment,
			Return:     calculation.InvestmentReturn(investment),
		}
	}

	return &ListInvestmentsOutput{
		Investments: outputs,
		Total:       calculation.TotalInvestments(investments),
	}, nil
}
