package creditcard

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/dashboard/internal/application/formatter"
	"github.com/finance-tracker/dashboard/internal/application/store"
	domainerror "github.com/finance-tracker/dashboard/internal/domain/error"
	"github.com/finance-tracker/dashboard/internal/integration/persistence"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	repo := persistence.NewStateRepository(persistence.NewMemoryStore(), persistence.DefaultKeyPrefix)
	return store.New(context.Background(), repo)
}

func validInput() CreateCreditCardInput {
	return CreateCreditCardInput{
		Name:           "Inter Gold",
		Institution:    "Banco Inter",
		LastFourDigits: "1234",
		Limit:          decimal.NewFromInt(5000),
		DueDate:        10,
		ClosingDate:    3,
		CurrentBalance: decimal.NewFromInt(1250),
	}
}

func TestCreateCreditCard_DerivesAvailableCredit(t *testing.T) {
	s := newTestStore(t)
	uc := NewCreateCreditCardUseCase(s)

	out, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !out.CreditCard.AvailableCredit.Equal(decimal.NewFromInt(3750)) {
		t.Errorf("expected available credit 3750, got %s", out.CreditCard.AvailableCredit)
	}
	if out.CreditCard.ID == "" {
		t.Error("expected a fresh id")
	}

	found := false
	for _, color := range formatter.Palette {
		if out.CreditCard.Color == color {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a palette color, got %q", out.CreditCard.Color)
	}
	if len(s.CreditCards()) != 2 {
		t.Errorf("expected 2 cards in store, got %d", len(s.CreditCards()))
	}
}

func TestUpdateCreditCard_RecomputesAvailableCredit(t *testing.T) {
	s := newTestStore(t)
	uc := NewUpdateCreditCardUseCase(s)

	seed := s.CreditCards()[0]
	out, err := uc.Execute(context.Background(), UpdateCreditCardInput{
		ID:             seed.ID,
		Name:           seed.Name,
		Institution:    seed.Institution,
		LastFourDigits: seed.LastFourDigits,
		Limit:          seed.Limit,
		DueDate:        seed.DueDate,
		ClosingDate:    seed.ClosingDate,
		CurrentBalance: decimal.NewFromInt(2000),
		Color:          seed.Color,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !out.CreditCard.AvailableCredit.Equal(decimal.NewFromInt(3000)) {
		t.Errorf("expected available credit 3000, got %s", out.CreditCard.AvailableCredit)
	}
	stored, _ := s.FindCreditCard(seed.ID)
	if !stored.AvailableCredit.Equal(decimal.NewFromInt(3000)) {
		t.Errorf("expected stored available credit 3000, got %s", stored.AvailableCredit)
	}
}

func TestUpdateCreditCard_UnknownID(t *testing.T) {
	s := newTestStore(t)
	uc := NewUpdateCreditCardUseCase(s)

	in := validInput()
	_, err := uc.Execute(context.Background(), UpdateCreditCardInput{
		ID:             "missing",
		Name:           in.Name,
		LastFourDigits: in.LastFourDigits,
		Limit:          in.Limit,
		DueDate:        in.DueDate,
		ClosingDate:    in.ClosingDate,
		CurrentBalance: in.CurrentBalance,
	})

	var recErr *domainerror.RecordError
	if !errors.As(err, &recErr) || recErr.Code != domainerror.ErrCodeRecordNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
	if !errors.Is(err, domainerror.ErrCreditCardNotFound) {
		t.Errorf("expected ErrCreditCardNotFound, got %v", err)
	}
}

func TestCreateCreditCard_Validation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*CreateCreditCardInput)
		wantCode domainerror.RecordErrorCode
	}{
		{"blank name", func(in *CreateCreditCardInput) { in.Name = "" }, domainerror.ErrCodeNameRequired},
		{"short digits", func(in *CreateCreditCardInput) { in.LastFourDigits = "12" }, domainerror.ErrCodeInvalidLastFourDigits},
		{"negative limit", func(in *CreateCreditCardInput) { in.Limit = decimal.NewFromInt(-1) }, domainerror.ErrCodeNegativeAmount},
		{"due date 32", func(in *CreateCreditCardInput) { in.DueDate = 32 }, domainerror.ErrCodeInvalidDayOfMonth},
		{"closing date 0", func(in *CreateCreditCardInput) { in.ClosingDate = 0 }, domainerror.ErrCodeInvalidDayOfMonth},
		{"bad color", func(in *CreateCreditCardInput) { in.Color = "purple" }, domainerror.ErrCodeInvalidColorFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			uc := NewCreateCreditCardUseCase(s)

			in := validInput()
			tt.mutate(&in)
			_, err := uc.Execute(context.Background(), in)

			var recErr *domainerror.RecordError
			if !errors.As(err, &recErr) {
				t.Fatalf("expected RecordError, got %v", err)
			}
			if recErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, recErr.Code)
			}
			if len(s.CreditCards()) != 1 {
				t.Errorf("expected no card to be added")
			}
		})
	}
}

func TestListCreditCards(t *testing.T) {
	s := newTestStore(t)
	out, err := NewListCreditCardsUseCase(s).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(out.CreditCards) != 1 {
		t.Fatalf("expected 1 card, got %d", len(out.CreditCards))
	}
	if !out.CreditCards[0].Utilization.Equal(decimal.NewFromInt(25)) {
		t.Errorf("expected utilization 25, got %s", out.CreditCards[0].Utilization)
	}
	if !out.TotalDebt.Equal(decimal.NewFromInt(1250)) {
		t.Errorf("expected total debt 1250, got %s", out.TotalDebt)
	}
	if !out.TotalAvailableCredit.Equal(decimal.NewFromInt(3750)) {
		t.Errorf("expected total available 3750, got %s", out.TotalAvailableCredit)
	}
}

func TestDeleteCreditCard_Idempotent(t *testing.T) {
	s := newTestStore(t)
	uc := NewDeleteCreditCardUseCase(s)

	first, err := uc.Execute(context.Background(), DeleteCreditCardInput{CreditCardID: "1"})
	if err != nil || !first.Removed {
		t.Fatalf("first delete = %+v, %v", first, err)
	}
	second, err := uc.Execute(context.Background(), DeleteCreditCardInput{CreditCardID: "1"})
	if err != nil || second.Removed {
		t.Fatalf("second delete = %+v, %v", second, err)
	}
}
