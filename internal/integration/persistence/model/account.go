package model

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/dashboard/internal/domain/entity"
)

// AccountRecord is the persisted form of an account.
type AccountRecord struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Institution string          `json:"institution"`
	Type        string          `json:"type"`
	Balance     decimal.Decimal `json:"balance"`
	Currency    string          `json:"currency"`
	Color       string          `json:"color,omitempty"`
}

// ToEntity converts an AccountRecord to a domain Account entity.
func (r *AccountRecord) ToEntity() entity.Account {
	return entity.Account{
		ID:          r.ID,
		Name:        r.Name,
		Institution: r.Institution,
		Type:        entity.AccountType(r.Type),
		Balance:     r.Balance,
		Currency:    r.Currency,
		Color:       r.Color,
	}
}

// AccountFromEntity creates an AccountRecord from a domain Account entity.
func AccountFromEntity(account entity.Account) AccountRecord {
	return AccountRecord{
		ID:          account.ID,
		Name:        account.Name,
		Institution: account.Institution,
		Type:        string(account.Type),
		Balance:     account.Balance,
		Currency:    account.Currency,
		Color:       account.Color,
	}
}
