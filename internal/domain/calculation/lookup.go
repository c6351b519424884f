package calculation

import (
	"sort"

	"github.com/finance-tracker/dashboard/internal/domain/entity"
)

// FindAccount resolves a soft account reference. The boolean is false when no account has the ID.
func FindAccount(accounts []entity.Account, id string) (entity.Account, bool) {
	for _, account := range accounts {
		if account.ID == id {
			return account, true
		}
	}
	return entity.Account{}, false
}

// AccountName returns the name of the referenced account, or entity.UnknownAccountName when it does not exist.
func AccountName(accounts []entity.Account, id string) string {
	if account, ok := FindAccount(accounts, id); ok {
		return account.Name
	}
	return entity.UnknownAccountName
}

// RecentTransactions returns at most limit transactions, newest first.
// The input slice is not modified.
func RecentTransactions(transactions []entity.Transaction, limit int) []entity.Transaction {
	sorted := make([]entity.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
