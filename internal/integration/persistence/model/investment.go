package model

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/dashboard/internal/domain/entity"
)

// InvestmentRecord is the persisted form of an investment.
type InvestmentRecord struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	InitialAmount decimal.Decimal `json:"initialAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Currency      string          `json:"currency"`
	PurchaseDate  Date            `json:"purchaseDate"`
	ReturnRate    decimal.Decimal `json:"returnRate"`
	Notes         string          `json:"notes,omitempty"`
	Color         string          `json:"color,omitempty"`
}

// ToEntity converts an InvestmentRecord to a domain Investment entity.
func (r *InvestmentRecord) ToEntity() entity.Investment {
	return entity.Investment{
		ID:            r.ID,
		Name:          r.Name,
		Type:          entity.InvestmentType(r.Type),
		InitialAmount: r.InitialAmount,
		CurrentAmount: r.CurrentAmount,
		Currency:      r.Currency,
		PurchaseDate:  r.PurchaseDate.Time,
		ReturnRate:    r.ReturnRate,
		Notes:         r.Notes,
		Color:         r.Color,
	}
}

// InvestmentFromEntity creates an InvestmentRecord from a domain Investment entity.
func InvestmentFromEntity(investment entity.Investment) InvestmentRecord {
	return InvestmentRecord{
		ID:            investment.ID,
		Name:          investment.Name,
		Type:          string(investment.Type),
		InitialAmount: investment.InitialAmount,
		CurrentAmount: investment.CurrentAmount,
		Currency:      investment.Currency,
		PurchaseDate:  Date{Time: investment.PurchaseDate},
		ReturnRate:    investment.ReturnRate,
		Notes:         investment.Notes,
		Color:         investment.Color,
	}
}
