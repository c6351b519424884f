package creditcard

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
	"github.com/finance-tracker/dashboard/internal/domain/calculation"
	"github.com/finance-tracker/dashboard/internal/domain/entity"
)

// CreditCardOutput is a card together with its limit utilization.
type CreditCardOutput struct {
	entity.CreditCard
	Utilization decimal.Decimal
}

// ListCreditCardsOutput represents the output of listing credit cards.
type ListCreditCardsOutput struct {
	CreditCards          []CreditCardOutput
	TotalDebt            decimal.Decimal
	TotalAvailableCredit decimal.Decimal
}

// ListCreditCardsUseCase handles listing credit cards logic.
type ListCreditCardsUseCase struct {
	cardStore adapter.CreditCardStore
}

// NewListCreditCardsUseCase creates a new ListCreditCardsUseCase instance.
func NewListCreditCardsUseCase(cardStore adapter.CreditCardStore) *ListCreditCardsUseCase {
	return &ListCreditCardsUseCase{
		cardStore: cardStore,
	}
}

// Execute lists the credit cards in stored order.
func (uc *ListCreditCardsUseCase) Execute(_ context.Context) (*ListCreditCardsOutput, error) {
	cards := uc.cardStore.CreditCards()

	outputs := make([]CreditCardOutput, len(cards))
	for i, card := range cards {
		outputs[i] = CreditCardOutput{
			CreditCard:  card,
			Utilization: calculation.CardUtilization(card),
		}
	}

	return &ListCreditCardsOutput{
		CreditCards:          outputs,
		TotalDebt:            calculation.TotalCreditCardDebt(cards),
		TotalAvailableCredit: calculation.TotalAvailableCredit(cards),
	}, nil
}
