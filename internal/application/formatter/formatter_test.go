package formatter

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		locale   string
		amount   string
		currency string
		expected string
	}{
		{name: "brazilian real", locale: "pt-BR", amount: "1234.5", currency: "BRL", expected: "R$\u00a01.234,50"},
		{name: "negative real", locale: "pt-BR", amount: "-500", currency: "BRL", expected: "-R$\u00a0500,00"},
		{name: "lower case code", locale: "pt-BR", amount: "2500", currency: "brl", expected: "R$\u00a02.500,00"},
		{name: "dollar in brazil", locale: "pt-BR", amount: "1234.5", currency: "USD", expected: "$\u00a01.234,50"},
		{name: "us dollar", locale: "en-US", amount: "1234.567", currency: "USD", expected: "$1,234.57"},
		{name: "real in the us", locale: "en-US", amount: "1234.5", currency: "BRL", expected: "R$1,234.50"},
		{name: "negative dollar", locale: "en-US", amount: "-42", currency: "USD", expected: "-$42.00"},
		{name: "zero", locale: "en-US", amount: "0", currency: "USD", expected: "$0.00"},
		{name: "yen has no fraction", locale: "en-US", amount: "1234.5", currency: "JPY", expected: "¥1,235"},
		{name: "euro in germany", locale: "de", amount: "1234.5", currency: "EUR", expected: "1.234,50\u00a0€"},
		{name: "negative euro in germany", locale: "de", amount: "-0.5", currency: "EUR", expected: "-0,50\u00a0€"},
		{name: "unknown code", locale: "en-US", amount: "10", currency: "XYZ", expected: "XYZ 10.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.locale).Currency(decimal.RequireFromString(tt.amount), tt.currency)
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestFormatCurrencyUsesDefaultLocale(t *testing.T) {
	if got := FormatCurrency(decimal.NewFromInt(17500), "BRL"); got != "R$\u00a017.500,00" {
		t.Errorf("expected R$ 17.500,00, got %q", got)
	}
}

func TestDate(t *testing.T) {
	date := time.Date(2023, time.April, 5, 0, 0, 0, 0, time.UTC)

	if got := FormatDate(date); got != "05/04/2023" {
		t.Errorf("expected 05/04/2023, got %s", got)
	}
	if got := New("en-US").Date(date); got != "4/5/2023" {
		t.Errorf("expected 4/5/2023, got %s", got)
	}
}

func TestNewFallsBackToDefaultLocale(t *testing.T) {
	if got := New("not a locale!").Locale(); got != DefaultLocale {
		t.Errorf("expected %s, got %s", DefaultLocale, got)
	}
	if got := New("").Locale(); got != DefaultLocale {
		t.Errorf("expected %s for an empty locale, got %s", DefaultLocale, got)
	}
}

func TestPercentage(t *testing.T) {
	if got := FormatPercentage(decimal.RequireFromString("5.5")); got != "5,50%" {
		t.Errorf("expected 5,50%%, got %s", got)
	}
}

func TestRandomColor(t *testing.T) {
	for i := 0; i < 50; i++ {
		color := RandomColor()
		found := false
		for _, candidate := range Palette {
			if candidate == color {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("color %s is not part of the palette", color)
		}
	}
}

func TestTruncateText(t *testing.T) {
	if got := TruncateText("Supermercado", DefaultTruncateLength); got != "Supermercado" {
		t.Errorf("short text must be unchanged, got %s", got)
	}
	if got := TruncateText("Alimentação e supermercado do mês", 11); got != "Alimentação..." {
		t.Errorf("expected Alimentação..., got %s", got)
	}
	if got := TruncateText("abc", -1); got != "..." {
		t.Errorf("negative length must truncate everything, got %s", got)
	}
	if got := TruncateText("", -1); got != "" {
		t.Errorf("empty text must stay empty, got %s", got)
	}
}
