package account

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/dashboard/internal/application/store"
	"github.com/finance-tracker/dashboard/internal/domain/entity"
	domainerror "github.com/finance-tracker/dashboard/internal/domain/error"
	"github.com/finance-tracker/dashboard/internal/integration/persistence"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	repo := persistence.NewStateRepository(persistence.NewMemoryStore(), persistence.DefaultKeyPrefix)
	return store.New(context.Background(), repo)
}

func TestCreateAccount(t *testing.T) {
	s := newTestStore(t)
	uc := NewCreateAccountUseCase(s)

	out, err := uc.Execute(context.Background(), CreateAccountInput{
		Name:        "Cheque Especial",
		Institution: "Itaú",
		Type:        entity.AccountTypeChecking,
		Balance:     decimal.NewFromInt(-500),
		Currency:    "BRL",
		Color:       "#1F4287",
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out.Account.Color != "#1F4287" {
		t.Errorf("expected explicit color to be kept, got %q", out.Account.Color)
	}

	list, err := NewListAccountsUseCase(s).Execute(context.Background())
	if err != nil {
		t.Fatalf("List Execute() error = %v", err)
	}
	if !list.TotalBalance.Equal(decimal.NewFromInt(17000)) {
		t.Errorf("expected total balance 17000, got %s", list.TotalBalance)
	}
}

func TestCreateAccount_Validation(t *testing.T) {
	tests := []struct {
		name     string
		input    CreateAccountInput
		wantCode domainerror.RecordErrorCode
	}{
		{"invalid type", CreateAccountInput{Name: "X", Type: "wallet", Currency: "BRL"}, domainerror.ErrCodeInvalidAccountType},
		{"blank name", CreateAccountInput{Name: " ", Type: entity.AccountTypeSavings, Currency: "BRL"}, domainerror.ErrCodeNameRequired},
		{"blank currency", CreateAccountInput{Name: "X", Type: entity.AccountTypeSavings}, domainerror.ErrCodeCurrencyRequired},
		{"bad color", CreateAccountInput{Name: "X", Type: entity.AccountTypeSavings, Currency: "BRL", Color: "blue"}, domainerror.ErrCodeInvalidColorFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateAccountUseCase(newTestStore(t))

			_, err := uc.Execute(context.Background(), tt.input)

			var recErr *domainerror.RecordError
			if !errors.As(err, &recErr) {
				t.Fatalf("expected RecordError, got %v", err)
			}
			if recErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, recErr.Code)
			}
		})
	}
}

func TestUpdateAccount(t *testing.T) {
	s := newTestStore(t)
	uc := NewUpdateAccountUseCase(s)

	_, err := uc.Execute(context.Background(), UpdateAccountInput{
		ID:       "2",
		Name:     "Poupança",
		Type:     entity.AccountTypeSavings,
		Balance:  decimal.NewFromInt(16000),
		Currency: "BRL",
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	account, _ := s.FindAccount("2")
	if !account.Balance.Equal(decimal.NewFromInt(16000)) {
		t.Errorf("expected balance 16000, got %s", account.Balance)
	}
	if account.Institution != "" {
		t.Errorf("expected full replacement to clear institution, got %q", account.Institution)
	}

	_, err = uc.Execute(context.Background(), UpdateAccountInput{ID: "99", Name: "X", Type: entity.AccountTypeOther, Currency: "BRL"})
	if !errors.Is(err, domainerror.ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestDeleteAccount(t *testing.T) {
	s := newTestStore(t)
	uc := NewDeleteAccountUseCase(s)

	out, err := uc.Execute(context.Background(), DeleteAccountInput{AccountID: "1"})
	if err != nil || !out.Removed {
		t.Fatalf("Execute() = %+v, %v", out, err)
	}
	if len(s.Transactions()) != 3 {
		t.Errorf("expected transactions to survive account deletion")
	}
}
