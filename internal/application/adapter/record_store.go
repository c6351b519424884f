package adapter

import (
	"context"

	"github.com/finance-tracker/dashboard/internal/domain/entity"
)

// AccountStore holds the account collection.
type AccountStore interface {
	Accounts() []entity.Account
	FindAccount(id string) (entity.Account, bool)
	AddAccount(ctx context.Context, account entity.Account) (entity.Account, error)
	UpdateAccount(ctx context.Context, account entity.Account) (bool, error)
	DeleteAccount(ctx context.Context, id string) (bool, error)
}

// CreditCardStore holds the credit card collection.
type CreditCardStore interface {
	CreditCards() []entity.CreditCard
	FindCreditCard(id string) (entity.CreditCard, bool)
	AddCreditCard(ctx context.Context, card entity.CreditCard) (entity.CreditCard, error)
	UpdateCreditCard(ctx context.Context, card entity.CreditCard) (bool, error)
	DeleteCreditCard(ctx context.Context, id string) (bool, error)
}

// InvestmentStore holds the investment collection.
type InvestmentStore interface {
	Investments() []entity.Investment
	FindInvestment(id string) (entity.Investment, bool)
	AddInvestment(ctx context.Context, investment entity.Investment) (entity.Investment, error)
	UpdateInvestment(ctx context.Context, investment entity.Investment) (bool, error)
	DeleteInvestment(ctx context.Context, id string) (bool, error)
}

// TransactionStore holds the transaction collection.
type TransactionStore interface {
	Transactions() []entity.Transaction
	FindTransaction(id string) (entity.Transaction, bool)
	AddTransaction(ctx context.Context, transaction entity.Transaction) (entity.Transaction, error)
	UpdateTransaction(ctx context.Context, transaction entity.Transaction) (bool, error)
	DeleteTransaction(ctx context.Context, id string) (bool, error)
}

// CategoryStore holds the category collection.
type CategoryStore interface {
	Categories() []entity.Category
	FindCategory(id string) (entity.Category, bool)
	AddCategory(ctx context.Context, category entity.Category) (entity.Category, error)
	UpdateCategory(ctx context.Context, category entity.Category) (bool, error)
	DeleteCategory(ctx context.Context, id string) (bool, error)
}

// PreferenceStore holds the display preferences.
type PreferenceStore interface {
	DarkMode() bool
	SetDarkMode(ctx context.Context, enabled bool) error
	ToggleDarkMode(ctx context.Context) (bool, error)
}

// StateReader exposes a consistent snapshot of the whole state.
type StateReader interface {
	Snapshot() entity.State
}
