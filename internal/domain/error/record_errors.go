// Package error defines domain-specific errors for the Finance Tracker application.
package error

import "errors"

// Record not found errors.
var (
	// ErrAccountNotFound is returned when no account matches the given ID.
	ErrAccountNotFound = errors.New("account not found")

	// ErrCreditCardNotFound is returned when no credit card matches the given ID.
	ErrCreditCardNotFound = errors.New("credit card not found")

	// ErrInvestmentNotFound is returned when no investment matches the given ID.
	ErrInvestmentNotFound = errors.New("investment not found")

	// ErrTransactionNotFound is returned when no transaction matches the given ID.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrCategoryNotFound is returned when no category matches the given ID.
	ErrCategoryNotFound = errors.New("category not found")
)

// Record validation errors.
var (
	// ErrNameRequired is returned when a record is submitted without a name.
	ErrNameRequired = errors.New("name is required")

	// ErrDescriptionRequired is returned when a transaction has no description.
	ErrDescriptionRequired = errors.New("description is required")

	// ErrCurrencyRequired is returned when a monetary record has no currency code.
	ErrCurrencyRequired = errors.New("currency is required")

	// ErrAccountIDRequired is returned when a transaction does not reference an account.
	ErrAccountIDRequired = errors.New("account id is required")

	// ErrInvalidAccountType is returned when the account type is unknown.
	ErrInvalidAccountType = errors.New("invalid account type")

	// ErrInvalidInvestmentType is returned when the investment type is unknown.
	ErrInvalidInvestmentType = errors.New("invalid investment type")

	// ErrInvalidTransactionType is returned when the transaction type is unknown.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidCategoryType is returned when the category type is unknown.
	ErrInvalidCategoryType = errors.New("invalid category type")

	// ErrNegativeAmount is returned when an amount that must be a magnitude is negative.
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrInvalidDayOfMonth is returned when a due or closing day is outside 1-31.
	ErrInvalidDayOfMonth = errors.New("day of month must be between 1 and 31")

	// ErrInvalidLastFourDigits is returned when the card suffix is not four digits.
	ErrInvalidLastFourDigits = errors.New("last four digits must be exactly 4 digits")

	// ErrInvalidColorFormat is returned when a color is not a hex color.
	ErrInvalidColorFormat = errors.New("invalid color format")

	// ErrMissingDate is returned when a dated record has no date.
	ErrMissingDate = errors.New("date is required")
)

// RecordErrorCode defines error codes for record errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type RecordErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNameRequired          RecordErrorCode = "REC-010001"
	ErrCodeDescriptionRequired   RecordErrorCode = "REC-010002"
	ErrCodeCurrencyRequired      RecordErrorCode = "REC-010003"
	ErrCodeAccountIDRequired     RecordErrorCode = "REC-010004"
	ErrCodeInvalidAccountType    RecordErrorCode = "REC-010005"
	ErrCodeInvalidInvestmentType RecordErrorCode = "REC-010006"
	ErrCodeInvalidTxnType        RecordErrorCode = "REC-010007"
	ErrCodeInvalidCategoryType   RecordErrorCode = "REC-010008"
	ErrCodeNegativeAmount        RecordErrorCode = "REC-010009"
	ErrCodeInvalidDayOfMonth     RecordErrorCode = "REC-010010"
	ErrCodeInvalidLastFourDigits RecordErrorCode = "REC-010011"
	ErrCodeInvalidColorFormat    RecordErrorCode = "REC-010012"
	ErrCodeMissingDate           RecordErrorCode = "REC-010013"
	ErrCodeMissingFields         RecordErrorCode = "REC-010014"

	// Lookup errors (02XXXX)
	ErrCodeRecordNotFound RecordErrorCode = "REC-020001"
)

// RecordError represents a record error with code and message.
type RecordError struct {
	Code    RecordErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// NewRecordError creates a new RecordError with the given code and message.
func NewRecordError(code RecordErrorCode, message string, err error) *RecordError {
	return &RecordError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewNotFoundError creates a RecordError for a lookup that matched nothing.
func NewNotFoundError(err error) *RecordError {
	return NewRecordError(ErrCodeRecordNotFound, err.Error(), err)
}
