// Package calculation provides the pure aggregation functions behind the dashboard views.
// Every percentage helper resolves a zero denominator to exactly zero.
package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/dashboard/internal/domain/entity"
)

// percentPlaces is the number of decimal places kept by rounded percentages.
const percentPlaces = 2

var hundred = decimal.NewFromInt(100)

// TotalBalance sums the balance of every account. Negative balances reduce the total.
func TotalBalance(accounts []entity.Account) decimal.Decimal {
	total := decimal.Zero
	for _, account := range accounts {
		total = total.Add(account.Balance)
	}
	return total
}

// TotalCreditCardDebt sums the current balance of every card.
func TotalCreditCardDebt(cards []entity.CreditCard) decimal.Decimal {
	total := decimal.Zero
	for _, card := range cards {
		total = total.Add(card.CurrentBalance)
	}
	return total
}

// TotalAvailableCredit sums the stored available credit of every card, without recomputing it.
func TotalAvailableCredit(cards []entity.CreditCard) decimal.Decimal {
	total := decimal.Zero
	for _, card := range cards {
		total = total.Add(card.AvailableCredit)
	}
	return total
}

// TotalInvestments sums the current amount of every investment.
func TotalInvestments(investments []entity.Investment) decimal.Decimal {
	total := decimal.Zero
	for _, investment := range investments {
		total = total.Add(investment.CurrentAmount)
	}
	return total
}

// NetWorth is account balances plus investments minus credit card debt.
func NetWorth(accounts []entity.Account, cards []entity.CreditCard, investments []entity.Investment) decimal.Decimal {
	return TotalBalance(accounts).
		Add(TotalInvestments(investments)).
		Sub(TotalCreditCardDebt(cards))
}

// InvestmentReturn computes the return percentage from the initial and current amounts.
// The stored ReturnRate is ignored.
func InvestmentReturn(investment entity.Investment) decimal.Decimal {
	return ReturnPercentage(investment.InitialAmount, investment.CurrentAmount)
}

// ReturnPercentage returns (current - initial) / initial * 100 rounded to 2 places, or 0 when initial is 0.
func ReturnPercentage(initial, current decimal.Decimal) decimal.Decimal {
	if initial.IsZero() {
		return decimal.Zero
	}
	return current.Sub(initial).Div(initial).Mul(hundred).Round(percentPlaces)
}

// PercentageChange returns (current - previous) / previous * 100, or 0 when previous is 0.
func PercentageChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(hundred)
}

// CardUtilization returns the share of the limit already spent, in percent rounded to 2 places.
// A card without limit has 0 utilization.
func CardUtilization(card entity.CreditCard) decimal.Decimal {
	if card.Limit.IsZero() {
		return decimal.Zero
	}
	return card.CurrentBalance.Div(card.Limit).Mul(hundred).Round(percentPlaces)
}
