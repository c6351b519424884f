package investment

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/dashboard/internal/domain/calculation"
	"github.com/finance-tracker/dashboard/internal/domain/entity"
	domainerror "github.com/finance-tracker/dashboard/internal/domain/error"
	"github.com/finance-tracker/dashboard/internal/domain/valueobject"
)

func validateInvestment(investment entity.Investment) error {
	if !investment.Type.IsValid() {
		return domainerror.NewRecordError(
			domainerror.ErrCodeInvalidInvestmentType,
			"investment type must be 'stock', 'crypto', 'fixedIncome', 'realEstate' or 'other'",
			domainerror.ErrInvalidInvestmentType,
		)
	}
	if investment.PurchaseDate.IsZero() {
		return domainerror.NewRecordError(domainerror.ErrCodeMissingDate, "purchase date is required", domainerror.ErrMissingDate)
	}

	return valueobject.FirstError(
		valueobject.ValidateName(investment.Name),
		valueobject.ValidateCurrency(investment.Currency),
		valueobject.ValidateNonNegative("initial amount", investment.InitialAmount),
		valueobject.ValidateNonNegative("current amount", investment.CurrentAmount),
		valueobject.ValidateColor(investment.Color),
	)
}

// returnRate derives the stored rate from the amounts when both are positive and keeps the given one otherwise.
func returnRate(investment entity.Investment) decimal.Decimal {
	if investment.InitialAmount.IsPositive() && investment.CurrentAmount.IsPositive() {
		return calculation.ReturnPercentage(investment.InitialAmount, investment.CurrentAmount)
	}
	return investment.ReturnRate
}
