package account

import (
	"github.com/finance-tracker/dashboard/internal/domain/entity"
	domainerror "github.com/finance-tracker/dashboard/internal/domain/error"
	"github.com/finance-tracker/dashboard/internal/domain/valueobject"
)

// validateAccount checks the editable fields. Balance may be negative.
func validateAccount(account entity.Account) error {
	if !account.Type.IsValid() {
		return domainerror.NewRecordError(
			domainerror.ErrCodeInvalidAccountType,
			"account type must be 'checking', 'savings', 'investment' or 'other'",
			domainerror.ErrInvalidAccountType,
		)
	}

	return valueobject.FirstError(
		valueobject.ValidateName(account.Name),
		valueobject.ValidateCurrency(account.Currency),
		valueobject.ValidateColor(account.Color),
	)
}
