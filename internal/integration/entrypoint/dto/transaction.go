package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/dashboard/internal/application/usecase/transaction"
	"github.com/finance-tracker/dashboard/internal/domain/entity"
	"github.com/finance-tracker/dashboard/internal/integration/persistence/model"
)

// TransactionRequest represents the request body for transaction creation and replacement.
type TransactionRequest struct {
	AccountID   string          `json:"accountId"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Date        model.Date      `json:"date"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string          `json:"id"`
	AccountID   string          `json:"accountId"`
	AccountName string          `json:"accountName,omitempty"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Date        model.Date      `json:"date"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToCreateTransactionInput converts the request to the creation input.
func (r TransactionRequest) ToCreateTransactionInput() transaction.CreateTransactionInput {
	return transaction.CreateTransactionInput{
		AccountID:   r.AccountID,
		Type:        entity.TransactionType(r.Type),
		Amount:      r.Amount,
		Description: r.Description,
		Category:    r.Category,
		Date:        r.Date.Time,
	}
}

// ToUpdateTransactionInput converts the request to the update input of the transaction id.
func (r TransactionRequest) ToUpdateTransactionInput(id string) transaction.UpdateTransactionInput {
	return transaction.UpdateTransactionInput{
		ID:          id,
		AccountID:   r.AccountID,
		Type:        entity.TransactionType(r.Type),
		Amount:      r.Amount,
		Description: r.Description,
		Category:    r.Category,
		Date:        r.Date.Time,
	}
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(tx entity.Transaction, accountName string) TransactionResponse {
	return TransactionResponse{
		ID:          tx.ID,
		AccountID:   tx.AccountID,
		AccountName: accountName,
		Type:        string(tx.Type),
		Amount:      tx.Amount,
		Description: tx.Description,
		Category:    tx.Category,
		Date:        model.Date{Time: tx.Date},
	}
}

// ToTransactionListResponse converts the list output to a TransactionListResponse.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, tx := range output.Transactions {
		transactions[i] = ToTransactionResponse(tx.Transaction, tx.AccountName)
	}
	return TransactionListResponse{
		Transactions: transactions,
	}
}
