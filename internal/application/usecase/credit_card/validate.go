package creditcard

import (
	"github.com/finance-tracker/dashboard/internal/domain/entity"
	"github.com/finance-tracker/dashboard/internal/domain/valueobject"
)

func validateCreditCard(card entity.CreditCard) error {
	return valueobject.FirstError(
		valueobject.ValidateName(card.Name),
		valueobject.ValidateLastFourDigits(card.LastFourDigits),
		valueobject.ValidateNonNegative("limit", card.Limit),
		valueobject.ValidateNonNegative("current balance", card.CurrentBalance),
		valueobject.ValidateDayOfMonth("due date", card.DueDate),
		valueobject.ValidateDayOfMonth("closing date", card.ClosingDate),
		valueobject.ValidateColor(card.Color),
	)
}
