package store

import (
	"context"

	"github.com/finance-tracker/dashboard/internal/domain/entity"
)

// Every Add method ignores the ID of its argument and returns the record with its fresh ID.
// Update methods replace the whole record with the same ID and report whether one matched;
// an unmatched update is a silent no-op. Delete methods report whether a record was removed;
// deleting an absent ID is a silent no-op. All of them persist the collection before returning.

// Accounts returns a copy of the accounts.
func (s *Store) Accounts() []entity.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accounts.snapshot()
}

// FindAccount resolves an account by ID.
func (s *Store) FindAccount(id string) (entity.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accounts.find(id)
}

// AddAccount appends account with a fresh ID.
func (s *Store) AddAccount(ctx context.Context, account entity.Account) (entity.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accounts.add(ctx, account, s.newID())
}

// UpdateAccount replaces the account with the same ID.
func (s *Store) UpdateAccount(ctx context.Context, account entity.Account) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accounts.update(ctx, account)
}

// DeleteAccount removes the account with the given ID. Transactions referencing it are kept.
func (s *Store) DeleteAccount(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accounts.remove(ctx, id)
}

// CreditCards returns a copy of the credit cards.
func (s *Store) CreditCards() []entity.CreditCard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creditCards.snapshot()
}

// FindCreditCard resolves a credit card by ID.
func (s *Store) FindCreditCard(id string) (entity.CreditCard, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creditCards.find(id)
}

// AddCreditCard appends card with a fresh ID. AvailableCredit is stored as given.
func (s *Store) AddCreditCard(ctx context.Context, card entity.CreditCard) (entity.CreditCard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creditCards.add(ctx, card, s.newID())
}

// UpdateCreditCard replaces the card with the same ID. AvailableCredit is stored as given.
func (s *Store) UpdateCreditCard(ctx context.Context, card entity.CreditCard) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creditCards.update(ctx, card)
}

// DeleteCreditCard removes the card with the given ID.
func (s *Store) DeleteCreditCard(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creditCards.remove(ctx, id)
}

// Investments returns a copy of the investments.
func (s *Store) Investments() []entity.Investment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.investments.snapshot()
}

// FindInvestment resolves an investment by ID.
func (s *Store) FindInvestment(id string) (entity.Investment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.investments.find(id)
}

// AddInvestment appends investment with a fresh ID.
func (s *Store) AddInvestment(ctx context.Context, investment entity.Investment) (entity.Investment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.investments.add(ctx, investment, s.newID())
}

// UpdateInvestment replaces the investment with the same ID.
func (s *Store) UpdateInvestment(ctx context.Context, investment entity.Investment) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.investments.update(ctx, investment)
}

// DeleteInvestment removes the investment with the given ID.
func (s *Store) DeleteInvestment(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.investments.remove(ctx, id)
}

// Transactions returns a copy of the transactions.
func (s *Store) Transactions() []entity.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.transactions.snapshot()
}

// FindTransaction resolves a transaction by ID.
func (s *Store) FindTransaction(id string) (entity.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.transactions.find(id)
}

// AddTransaction appends transaction with a fresh ID. AccountID is not checked.
func (s *Store) AddTransaction(ctx context.Context, transaction entity.Transaction) (entity.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transactions.add(ctx, transaction, s.newID())
}

// UpdateTransaction replaces the transaction with the same ID.
func (s *Store) UpdateTransaction(ctx context.Context, transaction entity.Transaction) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transactions.update(ctx, transaction)
}

// DeleteTransaction removes the transaction with the given ID.
func (s *Store) DeleteTransaction(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transactions.remove(ctx, id)
}

// Categories returns a copy of the categories.
func (s *Store) Categories() []entity.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categories.snapshot()
}

// FindCategory resolves a category by ID.
func (s *Store) FindCategory(id string) (entity.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categories.find(id)
}

// AddCategory appends category with a fresh ID.
func (s *Store) AddCategory(ctx context.Context, category entity.Category) (entity.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.categories.add(ctx, category, s.newID())
}

// UpdateCategory replaces the category with the same ID.
func (s *Store) UpdateCategory(ctx context.Context, category entity.Category) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.categories.update(ctx, category)
}

// DeleteCategory removes the category with the given ID.
func (s *Store) DeleteCategory(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.categories.remove(ctx, id)
}
