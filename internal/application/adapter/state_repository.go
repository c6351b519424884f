package adapter

import (
	"context"

	"github.com/finance-tracker/dashboard/internal/domain/entity"
)

// StateRepository loads and saves each persisted collection of the application state.
// Load methods return domainerror.ErrKeyNotFound when nothing was persisted yet
// and a decoding error when the persisted content is malformed.
type StateRepository interface {
	LoadAccounts(ctx context.Context) ([]entity.Account, error)
	SaveAccounts(ctx context.Context, accounts []entity.Account) error

	LoadCreditCards(ctx context.Context) ([]entity.CreditCard, error)
	SaveCreditCards(ctx context.Context, cards []entity.CreditCard) error

	LoadInvestments(ctx context.Context) ([]entity.Investment, error)
	SaveInvestments(ctx context.Context, investments []entity.Investment) error

	LoadTransactions(ctx context.Context) ([]entity.Transaction, error)
	SaveTransactions(ctx context.Context, transactions []entity.Transaction) error

	LoadCategories(ctx context.Context) ([]entity.Category, error)
	SaveCategories(ctx context.Context, categories []entity.Category) error

	LoadDarkMode(ctx context.Context) (bool, error)
	SaveDarkMode(ctx context.Context, enabled bool) error

	// Close releases the underlying storage.
	Close() error
}
