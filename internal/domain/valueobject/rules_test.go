package valueobject

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainerror "github.com/finance-tracker/dashboard/internal/domain/error"
)

func TestIsHexColor(t *testing.T) {
	tests := []struct {
		color string
		want  bool
	}{
		{"#0DB4B9", true},
		{"#fff", true},
		{"#9c44dc", true},
		{"0DB4B9", false},
		{"#12345", false},
		{"#GGGGGG", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			if got := IsHexColor(tt.color); got != tt.want {
				t.Errorf("IsHexColor(%q) = %v, want %v", tt.color, got, tt.want)
			}
		})
	}
}

func TestIsDayOfMonth(t *testing.T) {
	for day, want := range map[int]bool{0: false, 1: true, 15: true, 31: true, 32: false, -3: false} {
		if got := IsDayOfMonth(day); got != want {
			t.Errorf("IsDayOfMonth(%d) = %v, want %v", day, got, want)
		}
	}
}

func TestIsLastFourDigits(t *testing.T) {
	for digits, want := range map[string]bool{"4567": true, "0000": true, "456": false, "45678": false, "45a7": false} {
		if got := IsLastFourDigits(digits); got != want {
			t.Errorf("IsLastFourDigits(%q) = %v, want %v", digits, got, want)
		}
	}
}

func TestValidators_ReturnCodedErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode domainerror.RecordErrorCode
		wantErr  error
	}{
		{"blank name", ValidateName("   "), domainerror.ErrCodeNameRequired, domainerror.ErrNameRequired},
		{"blank currency", ValidateCurrency(""), domainerror.ErrCodeCurrencyRequired, domainerror.ErrCurrencyRequired},
		{"bad color", ValidateColor("red"), domainerror.ErrCodeInvalidColorFormat, domainerror.ErrInvalidColorFormat},
		{"negative limit", ValidateNonNegative("limit", decimal.NewFromInt(-1)), domainerror.ErrCodeNegativeAmount, domainerror.ErrNegativeAmount},
		{"day 0", ValidateDayOfMonth("dueDate", 0), domainerror.ErrCodeInvalidDayOfMonth, domainerror.ErrInvalidDayOfMonth},
		{"three digits", ValidateLastFourDigits("123"), domainerror.ErrCodeInvalidLastFourDigits, domainerror.ErrInvalidLastFourDigits},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var recErr *domainerror.RecordError
			if !errors.As(tt.err, &recErr) {
				t.Fatalf("expected RecordError, got %v", tt.err)
			}
			if recErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, recErr.Code)
			}
			if !errors.Is(tt.err, tt.wantErr) {
				t.Errorf("expected %v to wrap %v", tt.err, tt.wantErr)
			}
		})
	}
}

func TestValidators_AcceptValidInput(t *testing.T) {
	err := FirstError(
		ValidateName("Conta Corrente"),
		ValidateCurrency("BRL"),
		ValidateColor(""),
		ValidateColor("#9c44dc"),
		ValidateNonNegative("limit", decimal.Zero),
		ValidateDayOfMonth("dueDate", 10),
		ValidateLastFourDigits("4567"),
	)
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}
