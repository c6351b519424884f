// Package valueobject contains the field rules shared by the record editing workflows.
package valueobject

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	domainerror "github.com/finance-tracker/dashboard/internal/domain/error"
)

var (
	hexColorRegex       = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)
	lastFourDigitsRegex = regexp.MustCompile(`^[0-9]{4}$`)
)

// IsHexColor reports whether color has the #XXXXXX or #XXX format.
func IsHexColor(color string) bool {
	return hexColorRegex.MatchString(color)
}

// IsDayOfMonth reports whether day can be a day of a month.
func IsDayOfMonth(day int) bool {
	return day >= 1 && day <= 31
}

// IsLastFourDigits reports whether digits are exactly four decimal digits.
func IsLastFourDigits(digits string) bool {
	return lastFourDigitsRegex.MatchString(digits)
}

// ValidateName rejects blank names.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return domainerror.NewRecordError(domainerror.ErrCodeNameRequired, "name is required", domainerror.ErrNameRequired)
	}
	return nil
}

// ValidateCurrency rejects blank currency codes.
func ValidateCurrency(currency string) error {
	if strings.TrimSpace(currency) == "" {
		return domainerror.NewRecordError(domainerror.ErrCodeCurrencyRequired, "currency is required", domainerror.ErrCurrencyRequired)
	}
	return nil
}

// ValidateColor accepts an empty color or a hex color.
func ValidateColor(color string) error {
	if color != "" && !IsHexColor(color) {
		return domainerror.NewRecordError(
			domainerror.ErrCodeInvalidColorFormat,
			"color must be a valid hex format (#XXXXXX)",
			domainerror.ErrInvalidColorFormat,
		)
	}
	return nil
}

// ValidateNonNegative rejects a negative amount for field.
func ValidateNonNegative(field string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return domainerror.NewRecordError(
			domainerror.ErrCodeNegativeAmount,
			fmt.Sprintf("%s must not be negative", field),
			domainerror.ErrNegativeAmount,
		)
	}
	return nil
}

// ValidateDayOfMonth rejects a day outside 1 to 31 for field.
func ValidateDayOfMonth(field string, day int) error {
	if !IsDayOfMonth(day) {
		return domainerror.NewRecordError(
			domainerror.ErrCodeInvalidDayOfMonth,
			fmt.Sprintf("%s must be between 1 and 31", field),
			domainerror.ErrInvalidDayOfMonth,
		)
	}
	return nil
}

// ValidateLastFourDigits rejects anything but four digits.
func ValidateLastFourDigits(digits string) error {
	if !IsLastFourDigits(digits) {
		return domainerror.NewRecordError(
			domainerror.ErrCodeInvalidLastFourDigits,
			"last four digits must be exactly 4 digits",
			domainerror.ErrInvalidLastFourDigits,
		)
	}
	return nil
}

// FirstError returns the first non-nil error.
func FirstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
