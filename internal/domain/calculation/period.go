package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/dashboard/internal/domain/entity"
)

// InPeriod reports whether t falls in the closed interval [start, end].
// Bounds are compared as instants, not calendar days.
func InPeriod(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// SumInPeriod sums the amount of the transactions of the given type dated within [start, end].
func SumInPeriod(transactions []entity.Transaction, txType entity.TransactionType, start, end time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		if tx.Type != txType || !InPeriod(tx.Date, start, end) {
			continue
		}
		total = total.Add(tx.Amount)
	}
	return total
}

// Income sums income transactions dated within [start, end].
func Income(transactions []entity.Transaction, start, end time.Time) decimal.Decimal {
	return SumInPeriod(transactions, entity.TransactionTypeIncome, start, end)
}

// Expenses sums expense transactions dated within [start, end].
func Expenses(transactions []entity.Transaction, start, end time.Time) decimal.Decimal {
	return SumInPeriod(transactions, entity.TransactionTypeExpense, start, end)
}

// NetSavings is income minus expenses over [start, end].
func NetSavings(transactions []entity.Transaction, start, end time.Time) decimal.Decimal {
	return Income(transactions, start, end).Sub(Expenses(transactions, start, end))
}

// MonthBounds returns the first and the last instant of the month containing date, in date's location.
func MonthBounds(date time.Time) (start, end time.Time) {
	start = time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// PreviousMonthBounds returns the bounds of the month before the one containing date.
func PreviousMonthBounds(date time.Time) (start, end time.Time) {
	first := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	return MonthBounds(first.AddDate(0, -1, 0))
}
