package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/dashboard/internal/domain/entity"
)

// Seed returns the dataset used for every collection that has nothing persisted or cannot be read.
// Each call returns fresh slices.
func Seed() entity.State {
	return entity.State{
		Accounts: []entity.Account{
			{
				ID:          "1",
				Name:        "Conta Corrente",
				Institution: "Nubank",
				Type:        entity.AccountTypeChecking,
				Balance:     decimal.NewFromInt(2500),
				Currency:    "BRL",
				Color:       "#9c44dc",
			},
			{
				ID:          "2",
				Name:        "Poupança",
				Institution: "Banco do Brasil",
				Type:        entity.AccountTypeSavings,
				Balance:     decimal.NewFromInt(15000),
				Currency:    "BRL",
				Color:       "#ffef36",
			},
		},
		CreditCards: []entity.CreditCard{
			{
				ID:              "1",
				Name:            "Nubank Platinum",
				Institution:     "Nubank",
				LastFourDigits:  "4567",
				Limit:           decimal.NewFromInt(5000),
				DueDate:         10,
				ClosingDate:     3,
				CurrentBalance:  decimal.NewFromInt(1250),
				AvailableCredit: decimal.NewFromInt(3750),
				Color:           "#9c44dc",
			},
		},
		Investments: []entity.Investment{
			{
				ID:            "1",
				Name:          "Tesouro Direto",
				Type:          entity.InvestmentTypeFixedIncome,
				InitialAmount: decimal.NewFromInt(10000),
				CurrentAmount: decimal.NewFromInt(10550),
				Currency:      "BRL",
				PurchaseDate:  seedDate(2023, time.January, 15),
				ReturnRate:    decimal.RequireFromString("5.5"),
				Color:         "#0DB4B9",
			},
			{
				ID:            "2",
				Name:          "Bitcoin",
				Type:          entity.InvestmentTypeCrypto,
				InitialAmount: decimal.NewFromInt(5000),
				CurrentAmount: decimal.NewFromInt(7500),
				Currency:      "BRL",
				PurchaseDate:  seedDate(2022, time.December, 1),
				ReturnRate:    decimal.NewFromInt(50),
				Color:         "#F7931A",
			},
		},
		Transactions: []entity.Transaction{
			{
				ID:          "1",
				AccountID:   "1",
				Type:        entity.TransactionTypeIncome,
				Amount:      decimal.NewFromInt(5000),
				Description: "Salário",
				Category:    "Renda",
				Date:        seedDate(2023, time.April, 5),
			},
			{
				ID:          "2",
				AccountID:   "1",
				Type:        entity.TransactionTypeExpense,
				Amount:      decimal.NewFromInt(1200),
				Description: "Aluguel",
				Category:    "Moradia",
				Date:        seedDate(2023, time.April, 10),
			},
			{
				ID:          "3",
				AccountID:   "2",
				Type:        entity.TransactionTypeExpense,
				Amount:      decimal.NewFromInt(350),
				Description: "Supermercado",
				Category:    "Alimentação",
				Date:        seedDate(2023, time.April, 15),
			},
		},
		Categories: []entity.Category{
			{ID: "1", Name: "Alimentação", Type: entity.CategoryTypeExpense, Color: "#FF9800"},
			{ID: "2", Name: "Moradia", Type: entity.CategoryTypeExpense, Color: "#4CAF50"},
			{ID: "3", Name: "Transporte", Type: entity.CategoryTypeExpense, Color: "#2196F3"},
			{ID: "4", Name: "Renda", Type: entity.CategoryTypeIncome, Color: "#9C27B0"},
			{ID: "5", Name: "Investimentos", Type: entity.CategoryTypeBoth, Color: "#F44336"},
		},
		DarkMode: false,
	}
}

func seedDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
