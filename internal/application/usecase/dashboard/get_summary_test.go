package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/dashboard/internal/application/store"
	"github.com/finance-tracker/dashboard/internal/domain/entity"
	"github.com/finance-tracker/dashboard/internal/integration/persistence"
)

type fixedClock time.Time

func (c fixedClock) Now() time.Time {
	return time.Time(c)
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	repo := persistence.NewStateRepository(persistence.NewMemoryStore(), persistence.DefaultKeyPrefix)
	return store.New(context.Background(), repo)
}

func TestGetSummary_SeedApril2023(t *testing.T) {
	s := newTestStore(t)
	clock := fixedClock(time.Date(2023, time.April, 20, 12, 0, 0, 0, time.UTC))
	uc := NewGetSummaryUseCase(s, clock, 0)

	out, err := uc.Execute(context.Background(), GetSummaryInput{})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	checks := []struct {
		name string
		got  decimal.Decimal
		want int64
	}{
		{"net worth", out.NetWorth, 34300},
		{"total balance", out.TotalBalance, 17500},
		{"card debt", out.TotalCreditCardDebt, 1250},
		{"available credit", out.TotalAvailableCredit, 3750},
		{"investments", out.TotalInvestments, 18050},
		{"income", out.CurrentMonth.Income, 5000},
		{"expenses", out.CurrentMonth.Expenses, 1550},
		{"net savings", out.CurrentMonth.NetSavings, 3450},
		{"previous income", out.PreviousMonth.Income, 0},
		{"income change", out.IncomeChange, 0},
		{"expense change", out.ExpenseChange, 0},
	}
	for _, c := range checks {
		if !c.got.Equal(decimal.NewFromInt(c.want)) {
			t.Errorf("%s: expected %d, got %s", c.name, c.want, c.got)
		}
	}

	if len(out.RecentTransactions) != 3 {
		t.Fatalf("expected 3 recent transactions, got %d", len(out.RecentTransactions))
	}
	wantOrder := []string{"Supermercado", "Aluguel", "Salário"}
	for i, want := range wantOrder {
		if out.RecentTransactions[i].Description != want {
			t.Errorf("recent[%d]: expected %s, got %s", i, want, out.RecentTransactions[i].Description)
		}
	}
	if !out.CreditCards[0].Utilization.Equal(decimal.NewFromInt(25)) {
		t.Errorf("expected utilization 25, got %s", out.CreditCards[0].Utilization)
	}
	if !out.Investments[0].Return.Equal(decimal.RequireFromString("5.5")) {
		t.Errorf("expected return 5.5, got %s", out.Investments[0].Return)
	}
}

func TestGetSummary_MonthOverMonth(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if _, err := s.AddTransaction(ctx, entity.Transaction{
		AccountID:   "1",
		Type:        entity.TransactionTypeIncome,
		Amount:      decimal.NewFromInt(4000),
		Description: "Salário",
		Date:        time.Date(2023, time.May, 5, 0, 0, 0, 0, time.UTC),
	}); err != nil {
		t.Fatalf("AddTransaction() error = %v", err)
	}
	// Last instant of May belongs to May
	if _, err := s.AddTransaction(ctx, entity.Transaction{
		AccountID:   "3",
		Type:        entity.TransactionTypeExpense,
		Amount:      decimal.NewFromInt(100),
		Description: "Farmácia",
		Date:        time.Date(2023, time.May, 31, 23, 59, 59, 999999999, time.UTC),
	}); err != nil {
		t.Fatalf("AddTransaction() error = %v", err)
	}

	date := time.Date(2023, time.May, 15, 0, 0, 0, 0, time.UTC)
	out, err := NewGetSummaryUseCase(s, SystemClock{}, 2).Execute(ctx, GetSummaryInput{Date: &date})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !out.CurrentMonth.Income.Equal(decimal.NewFromInt(4000)) {
		t.Errorf("expected May income 4000, got %s", out.CurrentMonth.Income)
	}
	if !out.CurrentMonth.Expenses.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected May expenses 100, got %s", out.CurrentMonth.Expenses)
	}
	if !out.IncomeChange.Equal(decimal.NewFromInt(-20)) {
		t.Errorf("expected income change -20, got %s", out.IncomeChange)
	}
	if len(out.RecentTransactions) != 2 {
		t.Fatalf("expected 2 recent transactions, got %d", len(out.RecentTransactions))
	}
	if out.RecentTransactions[0].AccountName != entity.UnknownAccountName {
		t.Errorf("expected dangling account name, got %q", out.RecentTransactions[0].AccountName)
	}
}
