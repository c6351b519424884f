package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvestmentType represents the asset class of an investment.
type InvestmentType string

const (
	InvestmentTypeStock       InvestmentType = "stock"
	InvestmentTypeCrypto      InvestmentType = "crypto"
	InvestmentTypeFixedIncome InvestmentType = "fixedIncome"
	InvestmentTypeRealEstate  InvestmentType = "realEstate"
	InvestmentTypeOther       InvestmentType = "other"
)

// IsValid reports whether t is one of the known investment types.
func (t InvestmentType) IsValid() bool {
	switch t {
	case InvestmentTypeStock, InvestmentTypeCrypto, InvestmentTypeFixedIncome, InvestmentTypeRealEstate, InvestmentTypeOther:
		return true
	}
	return false
}

// Investment represents a position held by the user.
type Investment struct {
	ID            string
	Name          string
	Type          InvestmentType
	InitialAmount decimal.Decimal
	CurrentAmount decimal.Decimal
	Currency      string
	PurchaseDate  time.Time
	ReturnRate    decimal.Decimal // Informational percentage, aggregation ignores it
	Notes         string          // Optional
	Color         string          // Optional
}
