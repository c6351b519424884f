// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
	"github.com/finance-tracker/dashboard/internal/domain/calculation"
	"github.com/finance-tracker/dashboard/internal/domain/entity"
)

// DefaultRecentTransactionsLimit is the number of recent transactions shown on the dashboard.
const DefaultRecentTransactionsLimit = 5

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// GetSummaryInput represents the input for the dashboard summary.
type GetSummaryInput struct {
	Date *time.Time // Optional reference day, defaults to now
}

// PeriodSummary holds the income and expense totals of one month.
type PeriodSummary struct {
	Start      time.Time
	End        time.Time
	Income     decimal.Decimal
	Expenses   decimal.Decimal
	NetSavings decimal.Decimal
}

// RecentTransaction is a transaction with its resolved account name.
type RecentTransaction struct {
	entity.Transaction
	AccountName string
}

// CreditCardSummary is a card with its limit utilization percentage.
type CreditCardSummary struct {
	entity.CreditCard
	Utilization decimal.Decimal
}

// InvestmentSummary is an investment with its return percentage.
type InvestmentSummary struct {
	entity.Investment
	Return decimal.Decimal
}

// GetSummaryOutput represents the dashboard summary.
type GetSummaryOutput struct {
	ReferenceDate        time.Time
	NetWorth             decimal.Decimal
	TotalBalance         decimal.Decimal
	TotalCreditCardDebt  decimal.Decimal
	TotalAvailableCredit decimal.Decimal
	TotalInvestments     decimal.Decimal
	CurrentMonth         PeriodSummary
	PreviousMonth        PeriodSummary
	IncomeChange         decimal.Decimal
	ExpenseChange        decimal.Decimal
	RecentTransactions   []RecentTransaction
	CreditCards          []CreditCardSummary
	Investments          []InvestmentSummary
	DarkMode             bool
}

// GetSummaryUseCase handles building the dashboard summary.
type GetSummaryUseCase struct {
	state       adapter.StateReader
	clock       Clock
	recentLimit int
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(state adapter.StateReader, clock Clock, recentLimit int) *GetSummaryUseCase {
	if recentLimit <= 0 {
		recentLimit = DefaultRecentTransactionsLimit
	}
	return &GetSummaryUseCase{
		state:       state,
		clock:       clock,
		recentLimit: recentLimit,
	}
}

// Execute computes the summary from one consistent snapshot.
func (uc *GetSummaryUseCase) Execute(_ context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	reference := uc.clock.Now()
	if input.Date != nil {
		reference = *input.Date
	}

	state := uc.state.Snapshot()

	current := periodSummary(state.Transactions, reference, calculation.MonthBounds)
	previous := periodSummary(state.Transactions, reference, calculation.PreviousMonthBounds)

	// Resolve account names
	recent := calculation.RecentTransactions(state.Transactions, uc.recentLimit)
	recentOutputs := make([]RecentTransaction, len(recent))
	for i, tx := range recent {
		recentOutputs[i] = RecentTransaction{
			Transaction: tx,
			AccountName: calculation.AccountName(state.Accounts, tx.AccountID),
		}
	}

	cards := make([]CreditCardSummary, len(state.CreditCards))
	for i, card := range state.CreditCards {
		cards[i] = CreditCardSummary{
			CreditCard:  card,
			Utilization: calculation.CardUtilization(card),
		}
	}

	investments := make([]InvestmentSummary, len(state.Investments))
	for i, investment := range state.Investments {
		investments[i] = InvestmentSummary{
			Investment: investment,
			Return:     calculation.InvestmentReturn(investment),
		}
	}

	return &GetSummaryOutput{
		ReferenceDate:        reference,
		NetWorth:             calculation.NetWorth(state.Accounts, state.CreditCards, state.Investments),
		TotalBalance:         calculation.TotalBalance(state.Accounts),
		TotalCreditCardDebt:  calculation.TotalCreditCardDebt(state.CreditCards),
		TotalAvailableCredit: calculation.TotalAvailableCredit(state.CreditCards),
		TotalInvestments:     calculation.TotalInvestments(state.Investments),
		CurrentMonth:         current,
		PreviousMonth:        previous,
		IncomeChange:         calculation.PercentageChange(current.Income, previous.Income),
		ExpenseChange:        calculation.PercentageChange(current.Expenses, previous.Expenses),
		RecentTransactions:   recentOutputs,
		CreditCards:          cards,
		Investments:          investments,
		DarkMode:             state.DarkMode,
	}, nil
}

func periodSummary(transactions []entity.Transaction, reference time.Time, bounds func(time.Time) (time.Time, time.Time)) PeriodSummary {
	start, end := bounds(reference)
	return PeriodSummary{
		Start:      start,
		End:        end,
		Income:     calculation.Income(transactions, start, end),
		Expenses:   calculation.Expenses(transactions, start, end),
		NetSavings: calculation.NetSavings(transactions, start, end),
	}
}
