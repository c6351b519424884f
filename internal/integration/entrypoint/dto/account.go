package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/dashboard/internal/application/usecase/account"
	"github.com/finance-tracker/dashboard/internal/domain/entity"
)

// AccountRequest represents the request body for account creation and replacement.
type AccountRequest struct {
	Name        string          `json:"name"`
	Institution string          `json:"institution"`
	Type        string          `json:"type"`
	Balance     decimal.Decimal `json:"balance"`
	Currency    string          `json:"currency"`
	Color       string          `json:"color,omitempty"`
}

// AccountResponse represents a single account in API responses.
type AccountResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Institution string          `json:"institution"`
	Type        string          `json:"type"`
	Balance     decimal.Decimal `json:"balance"`
	Currency    string          `json:"currency"`
	Color       string          `json:"color,omitempty"`
}

// AccountListResponse represents the response for listing accounts.
type AccountListResponse struct {
	Accounts     []AccountResponse `json:"accounts"`
	TotalBalance decimal.Decimal   `json:"totalBalance"`
}

// ToCreateAccountInput converts the request to the creation input.
func (r AccountRequest) ToCreateAccountInput(defaultCurrency string) account.CreateAccountInput {
	return account.CreateAccountInput{
		Name:        r.Name,
		Institution: r.Institution,
		Type:        entity.AccountType(r.Type),
		Balance:     r.Balance,
		Currency:    currencyOrDefault(r.Currency, defaultCurrency),
		Color:       r.Color,
	}
}

// ToUpdateAccountInput converts the request to the update input of the account id.
func (r AccountRequest) ToUpdateAccountInput(id, defaultCurrency string) account.UpdateAccountInput {
	return account.UpdateAccountInput{
		ID:          id,
		Name:        r.Name,
		Institution: r.Institution,
		Type:        entity.AccountType(r.Type),
		Balance:     r.Balance,
		Currency:    currencyOrDefault(r.Currency, defaultCurrency),
		Color:       r.Color,
	}
}

// ToAccountResponse converts a domain Account entity to an AccountResponse DTO.
func ToAccountResponse(a entity.Account) AccountResponse {
	return AccountResponse{
		ID:          a.ID,
		Name:        a.Name,
		Institution: a.Institution,
		Type:        string(a.Type),
		Balance:     a.Balance,
		Currency:    a.Currency,
		Color:       a.Color,
	}
}

// ToAccountListResponse converts the list output to an AccountListResponse.
func ToAccountListResponse(output *account.ListAccountsOutput) AccountListResponse {
	accounts := make([]AccountResponse, len(output.Accounts))
	for i, a := range output.Accounts {
		accounts[i] = ToAccountResponse(a)
	}
	return AccountListResponse{
		Accounts:     accounts,
		TotalBalance: output.TotalBalance,
	}
}

func currencyOrDefault(currency, defaultCurrency string) string {
	if currency == "" {
		return defaultCurrency
	}
	return currency
}
