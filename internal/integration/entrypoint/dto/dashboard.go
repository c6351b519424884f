package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/dashboard/internal/application/usecase/dashboard"
	"github.com/finance-tracker/dashboard/internal/integration/persistence/model"
)

// PeriodSummaryResponse represents the cash flow of one calendar month.
type PeriodSummaryResponse struct {
	Start      model.Date      `json:"start"`
	End        model.Date      `json:"end"`
	Income     decimal.Decimal `json:"income"`
	Expenses   decimal.Decimal `json:"expenses"`
	NetSavings decimal.Decimal `json:"netSavings"`
}

// DashboardSummaryResponse represents the response for the dashboard summary.
type DashboardSummaryResponse struct {
	ReferenceDate        model.Date            `json:"referenceDate"`
	NetWorth             decimal.Decimal       `json:"netWorth"`
	TotalBalance         decimal.Decimal       `json:"totalBalance"`
	TotalCreditCardDebt  decimal.Decimal       `json:"totalCreditCardDebt"`
	TotalAvailableCredit decimal.Decimal       `json:"totalAvailableCredit"`
	TotalInvestments     decimal.Decimal       `json:"totalInvestments"`
	CurrentMonth         PeriodSummaryResponse `json:"currentMonth"`
	PreviousMonth        PeriodSummaryResponse `json:"previousMonth"`
	IncomeChange         decimal.Decimal       `json:"incomeChange"`
	ExpenseChange        decimal.Decimal       `json:"expenseChange"`
	RecentTransactions   []TransactionResponse `json:"recentTransactions"`
	CreditCards          []CreditCardResponse  `json:"creditCards"`
	Investments          []InvestmentResponse  `json:"investments"`
	DarkMode             bool                  `json:"darkMode"`
}

// ToDashboardSummaryResponse converts the summary output to a DashboardSummaryResponse.
func ToDashboardSummaryResponse(output *dashboard.GetSummaryOutput) DashboardSummaryResponse {
	recent := make([]TransactionResponse, len(output.RecentTransactions))
	for i, tx := range output.RecentTransactions {
		recent[i] = ToTransactionResponse(tx.Transaction, tx.AccountName)
	}

	cards := make([]CreditCardResponse, len(output.CreditCards))
	for i, card := range output.CreditCards {
		cards[i] = ToCreditCardResponse(card.CreditCard)
	}

	investments := make([]InvestmentResponse, len(output.Investments))
	for i, inv := range output.Investments {
		investments[i] = ToInvestmentResponse(inv.Investment)
	}

	return DashboardSummaryResponse{
		ReferenceDate:        model.Date{Time: output.ReferenceDate},
		NetWorth:             output.NetWorth,
		TotalBalance:         output.TotalBalance,
		TotalCreditCardDebt:  output.TotalCreditCardDebt,
		TotalAvailableCredit: output.TotalAvailableCredit,
		TotalInvestments:     output.TotalInvestments,
		CurrentMonth:         toPeriodSummaryResponse(output.CurrentMonth),
		PreviousMonth:        toPeriodSummaryResponse(output.PreviousMonth),
		IncomeChange:         output.IncomeChange,
		ExpenseChange:        output.ExpenseChange,
		RecentTransactions:   recent,
		CreditCards:          cards,
		Investments:          investments,
		DarkMode:             output.DarkMode,
	}
}

func toPeriodSummaryResponse(p dashboard.PeriodSummary) PeriodSummaryResponse {
	return PeriodSummaryResponse{
		Start:      model.Date{Time: p.Start},
		End:        model.Date{Time: p.End},
		Income:     p.Income,
		Expenses:   p.Expenses,
		NetSavings: p.NetSavings,
	}
}
