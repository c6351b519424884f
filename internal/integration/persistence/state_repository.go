// Package persistence implements the storage backends and the state repository on top of them.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
	"github.com/finance-tracker/dashboard/internal/domain/entity"
	"github.com/finance-tracker/dashboard/internal/integration/persistence/model"
)

// Key suffixes of the persisted collections.
const (
	AccountsKey     = "accounts"
	CreditCardsKey  = "credit_cards"
	InvestmentsKey  = "investments"
	TransactionsKey = "transactions"
	CategoriesKey   = "categories"
	DarkModeKey     = "dark_mode"
)

// DefaultKeyPrefix namespaces every persisted key.
const DefaultKeyPrefix = "finance_tracker_"

// stateRepository implements the adapter.StateRepository interface over a key/value store.
type stateRepository struct {
	kv     adapter.KeyValueStore
	prefix string
}

// NewStateRepository creates a new state repository storing JSON documents under prefix+suffix keys.
func NewStateRepository(kv adapter.KeyValueStore, prefix string) adapter.StateRepository {
	return &stateRepository{
		kv:     kv,
		prefix: prefix,
	}
}

// LoadAccounts retrieves the persisted accounts.
func (r *stateRepository) LoadAccounts(ctx context.Context) ([]entity.Account, error) {
	return loadRecords(ctx, r, AccountsKey, func(rec model.AccountRecord) entity.Account { return rec.ToEntity() })
}

// SaveAccounts persists the accounts.
func (r *stateRepository) SaveAccounts(ctx context.Context, accounts []entity.Account) error {
	return saveRecords(ctx, r, AccountsKey, accounts, model.AccountFromEntity)
}

// LoadCreditCards retrieves the persisted credit cards.
func (r *stateRepository) LoadCreditCards(ctx context.Context) ([]entity.CreditCard, error) {
	return loadRecords(ctx, r, CreditCardsKey, func(rec model.CreditCardRecord) entity.CreditCard { return rec.ToEntity() })
}

// SaveCreditCards persists the credit cards.
func (r *stateRepository) SaveCreditCards(ctx context.Context, cards []entity.CreditCard) error {
	return saveRecords(ctx, r, CreditCardsKey, cards, model.CreditCardFromEntity)
}

// LoadInvestments retrieves the persisted investments.
func (r *stateRepository) LoadInvestments(ctx context.Context) ([]entity.Investment, error) {
	return loadRecords(ctx, r, InvestmentsKey, func(rec model.InvestmentRecord) entity.Investment { return rec.ToEntity() })
}

// SaveInvestments persists the investments.
func (r *stateRepository) SaveInvestments(ctx context.Context, investments []entity.Investment) error {
	return saveRecords(ctx, r, InvestmentsKey, investments, model.InvestmentFromEntity)
}

// LoadTransactions retrieves the persisted transactions.
func (r *stateRepository) LoadTransactions(ctx context.Context) ([]entity.Transaction, error) {
	return loadRecords(ctx, r, TransactionsKey, func(rec model.TransactionRecord) entity.Transaction { return rec.ToEntity() })
}

// SaveTransactions persists the transactions.
func (r *stateRepository) SaveTransactions(ctx context.Context, transactions []entity.Transaction) error {
	return saveRecords(ctx, r, TransactionsKey, transactions, model.TransactionFromEntity)
}

// LoadCategories retrieves the persisted categories.
func (r *stateRepository) LoadCategories(ctx context.Context) ([]entity.Category, error) {
	return loadRecords(ctx, r, CategoriesKey, func(rec model.CategoryRecord) entity.Category { return rec.ToEntity() })
}

// SaveCategories persists the categories.
func (r *stateRepository) SaveCategories(ctx context.Context, categories []entity.Category) error {
	return saveRecords(ctx, r, CategoriesKey, categories, model.CategoryFromEntity)
}

// LoadDarkMode retrieves the persisted dark-mode flag.
func (r *stateRepository) LoadDarkMode(ctx context.Context) (bool, error) {
	data, err := r.kv.Get(ctx, r.key(DarkModeKey))
	if err != nil {
		return false, err
	}

	var enabled bool
	if err := json.Unmarshal(data, &enabled); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", r.key(DarkModeKey), err)
	}
	return enabled, nil
}

// SaveDarkMode persists the dark-mode flag.
func (r *stateRepository) SaveDarkMode(ctx context.Context, enabled bool) error {
	data, err := json.Marshal(enabled)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", r.key(DarkModeKey), err)
	}
	return r.put(ctx, DarkModeKey, data)
}

// Close closes the underlying key/value store.
func (r *stateRepository) Close() error {
	return r.kv.Close()
}

func (r *stateRepository) key(suffix string) string {
	return r.prefix + suffix
}

// put writes one key inside its own session.
func (r *stateRepository) put(ctx context.Context, suffix string, data []byte) error {
	session, err := r.kv.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin storage session: %w", err)
	}
	defer func() {
		if err := session.Release(); err != nil {
			slog.Error("Failed to release storage session", "key", r.key(suffix), "error", err)
		}
	}()

	if err := session.Put(r.key(suffix), data); err != nil {
		return fmt.Errorf("failed to write %s: %w", r.key(suffix), err)
	}
	if err := session.Commit(); err != nil {
		return fmt.Errorf("failed to commit %s: %w", r.key(suffix), err)
	}
	return nil
}

func loadRecords[R, E any](ctx context.Context, r *stateRepository, suffix string, toEntity func(R) E) ([]E, error) {
	data, err := r.kv.Get(ctx, r.key(suffix))
	if err != nil {
		return nil, err
	}

	var records []R
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", r.key(suffix), err)
	}

	entities := make([]E, len(records))
	for i, rec := range records {
		entities[i] = toEntity(rec)
	}
	return entities, nil
}

func saveRecords[E, R any](ctx context.Context, r *stateRepository, suffix string, entities []E, fromEntity func(E) R) error {
	records := make([]R, len(entities))
	for i, e := range entities {
		records[i] = fromEntity(e)
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", r.key(suffix), err)
	}
	return r.put(ctx, suffix, data)
}
