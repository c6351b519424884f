package model

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/dashboard/internal/domain/entity"
)

// TransactionRecord is the persisted form of a transaction.
type TransactionRecord struct {
	ID          string          `json:"id"`
	AccountID   string          `json:"accountId"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Date        Date            `json:"date"`
}

// ToEntity converts a TransactionRecord to a domain Transaction entity.
func (r *TransactionRecord) ToEntity() entity.Transaction {
	return entity.Transaction{
		ID:          r.ID,
		AccountID:   r.AccountID,
		Type:        entity.TransactionType(r.Type),
		Amount:      r.Amount,
		Description: r.Description,
		Category:    r.Category,
		Date:        r.Date.Time,
	}
}

// TransactionFromEntity creates a TransactionRecord from a domain Transaction entity.
func TransactionFromEntity(transaction entity.Transaction) TransactionRecord {
	return TransactionRecord{
		ID:          transaction.ID,
		AccountID:   transaction.AccountID,
		Type:        string(transaction.Type),
		Amount:      transaction.Amount,
		Description: transaction.Description,
		Category:    transaction.Category,
		Date:        Date{Time: transaction.Date},
	}
}
