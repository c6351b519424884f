package calculation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/dashboard/internal/domain/entity"
)

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestTotalBalance(t *testing.T) {
	tests := []struct {
		name     string
		accounts []entity.Account
		expected string
	}{
		{
			name:     "no accounts",
			accounts: nil,
			expected: "0",
		},
		{
			name: "seed accounts",
			accounts: []entity.Account{
				{ID: "1", Balance: dec("2500")},
				{ID: "2", Balance: dec("15000")},
			},
			expected: "17500",
		},
		{
			name: "overdraft reduces the total",
			accounts: []entity.Account{
				{ID: "1", Balance: dec("2500")},
				{ID: "2", Balance: dec("15000")},
				{ID: "3", Balance: dec("-500")},
			},
			expected: "17000",
		},
		{
			name: "fractional balances",
			accounts: []entity.Account{
				{ID: "1", Balance: dec("0.10")},
				{ID: "2", Balance: dec("0.20")},
			},
			expected: "0.3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TotalBalance(tt.accounts)
			if !got.Equal(dec(tt.expected)) {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestCreditCardTotals(t *testing.T) {
	cards := []entity.CreditCard{
		{ID: "1", Limit: dec("5000"), CurrentBalance: dec("1250"), AvailableCredit: dec("3750")},
		// Stored available credit is trusted even when inconsistent.
		{ID: "2", Limit: dec("1000"), CurrentBalance: dec("200"), AvailableCredit: dec("100")},
	}

	if got := TotalCreditCardDebt(cards); !got.Equal(dec("1450")) {
		t.Errorf("expected debt 1450, got %s", got)
	}
	if got := TotalAvailableCredit(cards); !got.Equal(dec("3850")) {
		t.Errorf("expected available credit 3850, got %s", got)
	}
}

func TestInvestmentReturn(t *testing.T) {
	tests := []struct {
		name     string
		initial  string
		current  string
		stored   string
		expected string
	}{
		{name: "fixed income gain", initial: "10000", current: "10550", stored: "0", expected: "5.5"},
		{name: "crypto gain", initial: "5000", current: "7500", stored: "50", expected: "50"},
		{name: "loss", initial: "200", current: "150", stored: "0", expected: "-25"},
		{name: "rounded to two places", initial: "3", current: "4", stored: "0", expected: "33.33"},
		{name: "zero initial amount", initial: "0", current: "1000", stored: "12", expected: "0"},
		{name: "zero everything", initial: "0", current: "0", stored: "0", expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			investment := entity.Investment{
				InitialAmount: dec(tt.initial),
				CurrentAmount: dec(tt.current),
				ReturnRate:    dec(tt.stored),
			}
			got := InvestmentReturn(investment)
			if !got.Equal(dec(tt.expected)) {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestPercentageChange(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		previous string
		expected string
	}{
		{name: "increase", current: "150", previous: "100", expected: "50"},
		{name: "decrease", current: "50", previous: "200", expected: "-75"},
		{name: "no previous value", current: "1234", previous: "0", expected: "0"},
		{name: "both zero", current: "0", previous: "0", expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PercentageChange(dec(tt.current), dec(tt.previous))
			if !got.Equal(dec(tt.expected)) {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestCardUtilization(t *testing.T) {
	card := entity.CreditCard{Limit: dec("5000"), CurrentBalance: dec("1250")}
	if got := CardUtilization(card); !got.Equal(dec("25")) {
		t.Errorf("expected 25, got %s", got)
	}

	noLimit := entity.CreditCard{Limit: decimal.Zero, CurrentBalance: dec("100")}
	if got := CardUtilization(noLimit); !got.IsZero() {
		t.Errorf("expected 0 for a card without limit, got %s", got)
	}
}

func TestNetWorth(t *testing.T) {
	accounts := []entity.Account{{Balance: dec("2500")}, {Balance: dec("15000")}}
	cards := []entity.CreditCard{{CurrentBalance: dec("1250")}}
	investments := []entity.Investment{{CurrentAmount: dec("10550")}, {CurrentAmount: dec("7500")}}

	got := NetWorth(accounts, cards, investments)
	if !got.Equal(dec("34300")) {
		t.Errorf("expected 34300, got %s", got)
	}
}

func TestIncomeAndExpensesInPeriod(t *testing.T) {
	start := time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, time.April, 30, 23, 59, 59, 0, time.UTC)

	transactions := []entity.Transaction{
		{ID: "at-start", Type: entity.TransactionTypeIncome, Amount: dec("100"), Date: start},
		{ID: "at-end", Type: entity.TransactionTypeIncome, Amount: dec("10"), Date: end},
		{ID: "before-start", Type: entity.TransactionTypeIncome, Amount: dec("1000"), Date: start.Add(-time.Nanosecond)},
		{ID: "after-end", Type: entity.TransactionTypeIncome, Amount: dec("1000"), Date: end.Add(time.Nanosecond)},
		{ID: "expense", Type: entity.TransactionTypeExpense, Amount: dec("40"), Date: start.AddDate(0, 0, 9)},
		{ID: "expense-outside", Type: entity.TransactionTypeExpense, Amount: dec("500"), Date: end.AddDate(0, 0, 1)},
		{ID: "transfer", Type: entity.TransactionTypeTransfer, Amount: dec("999"), Date: start.AddDate(0, 0, 2)},
	}

	if got := Income(transactions, start, end); !got.Equal(dec("110")) {
		t.Errorf("expected income 110, got %s", got)
	}
	if got := Expenses(transactions, start, end); !got.Equal(dec("40")) {
		t.Errorf("expected expenses 40, got %s", got)
	}
	if got := NetSavings(transactions, start, end); !got.Equal(dec("70")) {
		t.Errorf("expected net savings 70, got %s", got)
	}
}

func TestMonthBounds(t *testing.T) {
	date := time.Date(2024, time.February, 15, 13, 45, 0, 0, time.UTC)

	start, end := MonthBounds(date)
	if !start.Equal(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected start %s", start)
	}
	if !end.Equal(time.Date(2024, time.February, 29, 23, 59, 59, 999999999, time.UTC)) {
		t.Errorf("unexpected end %s", end)
	}

	prevStart, prevEnd := PreviousMonthBounds(time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC))
	if !prevStart.Equal(start) || !prevEnd.Equal(end) {
		t.Errorf("expected previous month of March to be February, got %s - %s", prevStart, prevEnd)
	}

	janStart, _ := PreviousMonthBounds(time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC))
	if !janStart.Equal(time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected December of the previous year, got %s", janStart)
	}
}

func TestAccountName(t *testing.T) {
	accounts := []entity.Account{{ID: "1", Name: "Conta Corrente"}}

	if got := AccountName(accounts, "1"); got != "Conta Corrente" {
		t.Errorf("expected Conta Corrente, got %s", got)
	}
	if got := AccountName(accounts, "missing"); got != entity.UnknownAccountName {
		t.Errorf("expected %s for a dangling reference, got %s", entity.UnknownAccountName, got)
	}
	if _, ok := FindAccount(nil, "1"); ok {
		t.Error("expected no account in an empty collection")
	}
}

func TestRecentTransactions(t *testing.T) {
	base := time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC)
	transactions := []entity.Transaction{
		{ID: "a", Date: base},
		{ID: "b", Date: base.AddDate(0, 0, 3)},
		{ID: "c", Date: base.AddDate(0, 0, 1)},
	}

	recent := RecentTransactions(transactions, 2)
	if len(recent) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(recent))
	}
	if recent[0].ID != "b" || recent[1].ID != "c" {
		t.Errorf("expected [b c], got [%s %s]", recent[0].ID, recent[1].ID)
	}
	if transactions[0].ID != "a" {
		t.Error("input slice must not be reordered")
	}
}
