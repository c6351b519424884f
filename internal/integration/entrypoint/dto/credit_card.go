package dto

import (
	"github.com/shopspring/decimal"

	creditcard "github.com/finance-tracker/dashboard/internal/application/usecase/credit_card"
	"github.com/finance-tracker/dashboard/internal/domain/calculation"
	"github.com/finance-tracker/dashboard/internal/domain/entity"
)

// CreditCardRequest represents the request body for credit card creation and replacement.
// Available credit is always derived and therefore not accepted.
type CreditCardRequest struct {
	Name           string          `json:"name"`
	Institution    string          `json:"institution"`
	LastFourDigits string          `json:"lastFourDigits"`
	Limit          decimal.Decimal `json:"limit"`
	DueDate        int             `json:"dueDate"`
	ClosingDate    int             `json:"closingDate"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	Color          string          `json:"color,omitempty"`
}

// CreditCardResponse represents a single credit card in API responses.
type CreditCardResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Institution     string          `json:"institution"`
	LastFourDigits  string          `json:"lastFourDigits"`
	Limit           decimal.Decimal `json:"limit"`
	DueDate         int             `json:"dueDate"`
	ClosingDate     int             `json:"closingDate"`
	CurrentBalance  decimal.Decimal `json:"currentBalance"`
	AvailableCredit decimal.Decimal `json:"availableCredit"`
	Utilization     decimal.Decimal `json:"utilization"`
	Color           string          `json:"color,omitempty"`
}

// CreditCardListResponse represents the response for listing credit cards.
type CreditCardListResponse struct {
	CreditCards          []CreditCardResponse `json:"creditCards"`
	TotalDebt            decimal.Decimal      `json:"totalDebt"`
	TotalAvailableCredit decimal.Decimal      `json:"totalAvailableCredit"`
}

// ToCreateCreditCardInput converts the request to the creation input.
func (r CreditCardRequest) ToCreateCreditCardInput() creditcard.CreateCreditCardInput {
	return creditcard.CreateCreditCardInput{
		Name:           r.Name,
		Institution:    r.Institution,
		LastFourDigits: r.LastFourDigits,
		Limit:          r.Limit,
		DueDate:        r.DueDate,
		ClosingDate:    r.ClosingDate,
		CurrentBalance: r.CurrentBalance,
		Color:          r.Color,
	}
}

// ToUpdateCreditCardInput converts the request to the update input of the card id.
func (r CreditCardRequest) ToUpdateCreditCardInput(id string) creditcard.UpdateCreditCardInput {
	return creditcard.UpdateCreditCardInput{
		ID:             id,
		Name:           r.Name,
		Institution:    r.Institution,
		LastFourDigits: r.LastFourDigits,
		Limit:          r.Limit,
		DueDate:        r.DueDate,
		ClosingDate:    r.ClosingDate,
		CurrentBalance: r.CurrentBalance,
		Color:          r.Color,
	}
}

// ToCreditCardResponse converts a domain CreditCard entity to a CreditCardResponse DTO.
func ToCreditCardResponse(card entity.CreditCard) CreditCardResponse {
	return CreditCardResponse{
		ID:              card.ID,
		Name:            card.Name,
		Institution:     card.Institution,
		LastFourDigits:  card.LastFourDigits,
		Limit:           card.Limit,
		DueDate:         card.DueDate,
		ClosingDate:     card.ClosingDate,
		CurrentBalance:  card.CurrentBalance,
		AvailableCredit: card.AvailableCredit,
		Utilization:     calculation.CardUtilization(card),
		Color:           card.Color,
	}
}

// ToCreditCardListResponse converts the list output to a CreditCardListResponse.
func ToCreditCardListResponse(output *creditcard.ListCreditCardsOutput) CreditCardListResponse {
	cards := make([]CreditCardResponse, len(output.CreditCards))
	for i, card := range output.CreditCards {
		cards[i] = ToCreditCardResponse(card.CreditCard)
	}
	return CreditCardListResponse{
		CreditCards:          cards,
		TotalDebt:            output.TotalDebt,
		TotalAvailableCredit: output.TotalAvailableCredit,
	}
}
