package transaction

import (
	"context"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
	"github.com/finance-tracker/dashboard/internal/domain/calculation"
	"github.com/finance-tracker/dashboard/internal/domain/entity"
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	AccountID string                  // Optional filter
	Type      *entity.TransactionType // Optional filter
	Limit     int                     // Zero or negative means no limit
}

// TransactionOutput is a transaction together with the resolved account name.
type TransactionOutput struct {
	entity.Transaction
	AccountName string
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []TransactionOutput
}

// ListTransactionsUseCase handles listing transactions logic.
type ListTransactionsUseCase struct {
	transactionStore adapter.TransactionStore
	accountStore     adapter.AccountStore
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionStore adapter.TransactionStore, accountStore adapter.AccountStore) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionStore: transactionStore,
		accountStore:     accountStore,
	}
}

// Execute lists the matching transactions newest first.
func (uc *ListTransactionsUseCase) Execute(_ context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	accounts := uc.accountStore.Accounts()

	// Apply filters
	var filtered []entity.Transaction
	for _, tx := range uc.transactionStore.Transactions() {
		if input.AccountID != "" && tx.AccountID != input.AccountID {
			continue
		}
		if input.Type != nil && tx.Type != *input.Type {
			continue
		}
		filtered = append(filtered, tx)
	}

	limit := input.Limit
	if limit <= 0 {
		limit = -1
	}
	sorted := calculation.RecentTransactions(filtered, limit)

	outputs := make([]TransactionOutput, len(sorted))
	for i, tx := range sorted {
		outputs[i] = TransactionOutput{
			Transaction: tx,
			AccountName: calculation.AccountName(accounts, tx.AccountID),
		}
	}

	return &ListTransactionsOutput{
		Transactions: outputs,
	}, nil
}
