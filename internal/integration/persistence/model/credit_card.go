package model

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/dashboard/internal/domain/entity"
)

// CreditCardRecord is the persisted form of a credit card.
type CreditCardRecord struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Institution     string          `json:"institution"`
	LastFourDigits  string          `json:"lastFourDigits"`
	Limit           decimal.Decimal `json:"limit"`
	DueDate         int             `json:"dueDate"`
	ClosingDate     int             `json:"closingDate"`
	CurrentBalance  decimal.Decimal `json:"currentBalance"`
	AvailableCredit decimal.Decimal `json:"availableCredit"`
	Color           string          `json:"color,omitempty"`
}

// ToEntity converts a CreditCardRecord to a domain CreditCard entity.
func (r *CreditCardRecord) ToEntity() entity.CreditCard {
	return entity.CreditCard{
		ID:              r.ID,
		Name:            r.Name,
		Institution:     r.Institution,
		LastFourDigits:  r.LastFourDigits,
		Limit:           r.Limit,
		DueDate:         r.DueDate,
		ClosingDate:     r.ClosingDate,
		CurrentBalance:  r.CurrentBalance,
		AvailableCredit: r.AvailableCredit,
		Color:           r.Color,
	}
}

// CreditCardFromEntity creates a CreditCardRecord from a domain CreditCard entity.
func CreditCardFromEntity(card entity.CreditCard) CreditCardRecord {
	return CreditCardRecord{
		ID:              card.ID,
		Name:            card.Name,
		Institution:     card.Institution,
		LastFourDigits:  card.LastFourDigits,
		Limit:           card.Limit,
		DueDate:         card.DueDate,
		ClosingDate:     card.ClosingDate,
		CurrentBalance:  card.CurrentBalance,
		AvailableCredit: card.AvailableCredit,
		Color:           card.Color,
	}
}
