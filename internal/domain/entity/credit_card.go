package entity

import "github.com/shopspring/decimal"

// CreditCard represents a credit card with its limit and current bill.
type CreditCard struct {
	ID              string
	Name            string
	Institution     string
	LastFourDigits  string
	Limit           decimal.Decimal
	DueDate         int // Day of month
	ClosingDate     int // Day of month
	CurrentBalance  decimal.Decimal
	AvailableCredit decimal.Decimal // Stored redundantly, see RecomputeAvailableCredit
	Color           string          // Optional
}

// RecomputeAvailableCredit sets AvailableCredit to Limit minus CurrentBalance.
func (c *CreditCard) RecomputeAvailableCredit() {
	c.AvailableCredit = c.Limit.Sub(c.CurrentBalance)
}
