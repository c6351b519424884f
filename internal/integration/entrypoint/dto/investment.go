package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/dashboard/internal/application/usecase/investment"
	"github.com/finance-tracker/dashboard/internal/domain/calculation"
	"github.com/finance-tracker/dashboard/internal/domain/entity"
	"github.com/finance-tracker/dashboard/internal/integration/persistence/model"
)

// InvestmentRequest represents the request body for investment creation and replacement.
type InvestmentRequest struct {
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	InitialAmount decimal.Decimal `json:"initialAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Currency      string          `json:"currency"`
	PurchaseDate  model.Date      `json:"purchaseDate"`
	ReturnRate    decimal.Decimal `json:"returnRate"`
	Notes         string          `json:"notes,omitempty"`
	Color         string          `json:"color,omitempty"`
}

// InvestmentResponse represents a single investment in API responses.
type InvestmentResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	InitialAmount decimal.Decimal `json:"initialAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Currency      string          `json:"currency"`
	PurchaseDate  model.Date      `json:"purchaseDate"`
	ReturnRate    decimal.Decimal `json:"returnRate"`
	Return        decimal.Decimal `json:"return"`
	Notes         string          `json:"notes,omitempty"`
	Color         string          `json:"color,omitempty"`
}

// InvestmentListResponse represents the response for listing investments.
type InvestmentListResponse struct {
	Investments []InvestmentResponse `json:"investments"`
	Total       decimal.Decimal      `json:"total"`
}

// ToCreateInvestmentInput converts the request to the creation input.
func (r InvestmentRequest) ToCreateInvestmentInput(defaultCurrency string) investment.CreateInvestmentInput {
	return investment.CreateInvestmentInput{
		Name:          r.Name,
		Type:          entity.InvestmentType(r.Type),
		InitialAmount: r.InitialAmount,
		CurrentAmount: r.CurrentAmount,
		Currency:      currencyOrDefault(r.Currency, defaultCurrency),
		PurchaseDate:  r.PurchaseDate.Time,
		ReturnRate:    r.ReturnRate,
		Notes:         r.Notes,
		Color:         r.Color,
	}
}

// ToUpdateInvestmentInput converts the request to the update input of the investment id.
func (r InvestmentRequest) ToUpdateInvestmentInput(id, defaultCurrency string) investment.UpdateInvestmentInput {
	return investment.UpdateInvestmentInput{
		ID:            id,
		Name:          r.Name,
		Type:          entity.InvestmentType(r.Type),
		InitialAmount: r.InitialAmount,
		CurrentAmount: r.CurrentAmount,
		Currency:      currencyOrDefault(r.Currency, defaultCurrency),
		PurchaseDate:  r.PurchaseDate.Time,
		ReturnRate:    r.ReturnRate,
		Notes:         r.Notes,
		Color:         r.Color,
	}
}

// ToInvestmentResponse converts a domain Investment entity to an InvestmentResponse DTO.
func ToInvestmentResponse(inv entity.Investment) InvestmentResponse {
	return InvestmentResponse{
		ID:            inv.ID,
		Name:          inv.Name,
		Type:          string(inv.Type),
		InitialAmount: inv.InitialAmount,
		CurrentAmount: inv.CurrentAmount,
		Currency:      inv.Currency,
		PurchaseDate:  model.Date{Time: inv.PurchaseDate},
		ReturnRate:    inv.ReturnRate,
		Return:        calculation.InvestmentReturn(inv),
		Notes:         inv.Notes,
		Color:         inv.Color,
	}
}

// ToInvestmentListResponse converts the list output to an InvestmentListResponse.
func ToInvestmentListResponse(output *investment.ListInvestmentsOutput) InvestmentListResponse {
	investments := make([]InvestmentResponse, len(output.Investments))
	for i, inv := range output.Investments {
		investments[i] = ToInvestmentResponse(inv.Investment)
	}
	return InvestmentListResponse{
		Investments: investments,
		Total:       output.Total,
	}
}
