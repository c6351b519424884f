// Package store implements the domain store: the single source of truth for every record collection
// and the dark-mode preference. Each mutation is persisted before it becomes visible in memory.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
	"github.com/finance-tracker/dashboard/internal/domain/entity"
	domainerror "github.com/finance-tracker/dashboard/internal/domain/error"
)

// Store owns the application state. It is safe for concurrent use.
type Store struct {
	repo  adapter.StateRepository
	theme adapter.ThemeApplier
	newID func() string

	mu           sync.RWMutex
	accounts     *collection[entity.Account]
	creditCards  *collection[entity.CreditCard]
	investments  *collection[entity.Investment]
	transactions *collection[entity.Transaction]
	categories   *collection[entity.Category]
	darkMode     bool
}

// Option customizes a Store.
type Option func(*Store)

// WithThemeApplier registers the receiver of the light/dark presentation attribute.
func WithThemeApplier(theme adapter.ThemeApplier) Option {
	return func(s *Store) {
		s.theme = theme
	}
}

// WithIDGenerator overrides the generator of fresh record IDs.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		s.newID = newID
	}
}

// New loads every collection from repo and returns the ready store.
// A collection that was never persisted or cannot be decoded is replaced by its seed data.
func New(ctx context.Context, repo adapter.StateRepository, opts ...Option) *Store {
	s := &Store{
		repo:  repo,
		theme: adapter.ThemeApplierFunc(func(bool) {}),
		newID: entity.NewID,
	}
	for _, opt := range opts {
		opt(s)
	}

	seed := Seed()

	s.accounts = &collection[entity.Account]{
		name:   "accounts",
		items:  loadOrSeed(ctx, "accounts", repo.LoadAccounts, seed.Accounts),
		idOf:   func(a entity.Account) string { return a.ID },
		withID: func(a entity.Account, id string) entity.Account { a.ID = id; return a },
		save:   repo.SaveAccounts,
	}
	s.creditCards = &collection[entity.CreditCard]{
		name:   "credit cards",
		items:  loadOrSeed(ctx, "credit_cards", repo.LoadCreditCards, seed.CreditCards),
		idOf:   func(c entity.CreditCard) string { return c.ID },
		withID: func(c entity.CreditCard, id string) entity.CreditCard { c.ID = id; return c },
		save:   repo.SaveCreditCards,
	}
	s.investments = &collection[entity.Investment]{
		name:   "investments",
		items:  loadOrSeed(ctx, "investments", repo.LoadInvestments, seed.Investments),
		idOf:   func(i entity.Investment) string { return i.ID },
		withID: func(i entity.Investment, id string) entity.Investment { i.ID = id; return i },
		save:   repo.SaveInvestments,
	}
	s.transactions = &collection[entity.Transaction]{
		name:   "transactions",
		items:  loadOrSeed(ctx, "transactions", repo.LoadTransactions, seed.Transactions),
		idOf:   func(t entity.Transaction) string { return t.ID },
		withID: func(t entity.Transaction, id string) entity.Transaction { t.ID = id; return t },
		save:   repo.SaveTransactions,
	}
	s.categories = &collection[entity.Category]{
		name:   "categories",
		items:  loadOrSeed(ctx, "categories", repo.LoadCategories, seed.Categories),
		idOf:   func(c entity.Category) string { return c.ID },
		withID: func(c entity.Category, id string) entity.Category { c.ID = id; return c },
		save:   repo.SaveCategories,
	}

	darkMode, err := repo.LoadDarkMode(ctx)
	if err != nil {
		logLoadFailure("dark_mode", err)
		darkMode = seed.DarkMode
	}
	s.darkMode = darkMode
	s.theme.ApplyTheme(darkMode)

	return s
}

func loadOrSeed[T any](ctx context.Context, name string, load func(context.Context) ([]T, error), seed []T) []T {
	items, err := load(ctx)
	if err != nil {
		logLoadFailure(name, err)
		return seed
	}
	return items
}

func logLoadFailure(name string, err error) {
	if errors.Is(err, domainerror.ErrKeyNotFound) {
		slog.Debug("Nothing persisted yet, using seed data", "collection", name)
		return
	}
	slog.Warn("Failed to load persisted state, using seed data",
		"collection", name,
		"error", err,
	)
}

// Close releases the underlying storage. The store must not be used afterwards.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Close(); err != nil {
		return fmt.Errorf("failed to close state repository: %w", err)
	}
	return nil
}

// Snapshot returns a copy of the whole state.
func (s *Store) Snapshot() entity.State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return entity.State{
		Accounts:     s.accounts.snapshot(),
		CreditCards:  s.creditCards.snapshot(),
		Investments:  s.investments.snapshot(),
		Transactions: s.transactions.snapshot(),
		Categories:   s.categories.snapshot(),
		DarkMode:     s.darkMode,
	}
}

// DarkMode returns the current display preference.
func (s *Store) DarkMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.darkMode
}

// ToggleDarkMode flips the display preference, persists it and applies the theme. It returns the new value.
func (s *Store) ToggleDarkMode(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	enabled := !s.darkMode
	if err := s.setDarkModeLocked(ctx, enabled); err != nil {
		return s.darkMode, err
	}
	return enabled, nil
}

// SetDarkMode stores the display preference and applies the theme.
func (s *Store) SetDarkMode(ctx context.Context, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setDarkModeLocked(ctx, enabled)
}

func (s *Store) setDarkModeLocked(ctx context.Context, enabled bool) error {
	if err := s.repo.SaveDarkMode(ctx, enabled); err != nil {
		return fmt.Errorf("failed to persist dark mode: %w", err)
	}
	s.darkMode = enabled
	s.theme.ApplyTheme(enabled)
	return nil
}
