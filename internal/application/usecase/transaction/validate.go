package transaction

import (
	"strings"

	"github.com/finance-tracker/dashboard/internal/domain/entity"
	domainerror "github.com/finance-tracker/dashboard/internal/domain/error"
	"github.com/finance-tracker/dashboard/internal/domain/valueobject"
)

func validateTransaction(transaction entity.Transaction) error {
	if !transaction.Type.IsValid() {
		return domainerror.NewRecordError(
			domainerror.ErrCodeInvalidTxnType,
			"transaction type must be 'income', 'expense' or 'transfer'",
			domainerror.ErrInvalidTransactionType,
		)
	}
	if strings.TrimSpace(transaction.Description) == "" {
		return domainerror.NewRecordError(domainerror.ErrCodeDescriptionRequired, "description is required", domainerror.ErrDescriptionRequired)
	}
	if transaction.AccountID == "" {
		return domainerror.NewRecordError(domainerror.ErrCodeAccountIDRequired, "account id is required", domainerror.ErrAccountIDRequired)
	}
	if transaction.Date.IsZero() {
		return domainerror.NewRecordError(domainerror.ErrCodeMissingDate, "date is required", domainerror.ErrMissingDate)
	}

	return valueobject.ValidateNonNegative("amount", transaction.Amount)
}
