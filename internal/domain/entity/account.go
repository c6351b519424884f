// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/shopspring/decimal"

// AccountType represents the kind of bank account.
type AccountType string

const (
	AccountTypeChecking   AccountType = "checking"
	AccountTypeSavings    AccountType = "savings"
	AccountTypeInvestment AccountType = "investment"
	AccountTypeOther      AccountType = "other"
)

// IsValid reports whether t is one of the known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeInvestment, AccountTypeOther:
		return true
	}
	return false
}

// UnknownAccountName is displayed when a transaction references an account that no longer exists.
const UnknownAccountName = "Conta Desconhecida"

// Account represents a bank account tracked by the dashboard.
type Account struct {
	ID          string
	Name        string
	Institution string
	Type        AccountType
	Balance     decimal.Decimal // May be negative (overdraft)
	Currency    string
	Color       string // Optional
}
