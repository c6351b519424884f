package investment

import (
	"context"
	"errors"
	"testing"
	"time"

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

func TestCreateInvestment_ReturnRate(t *testing.T) {
	tests := []struct {
		name     string
		initial  string
		current  string
		given    string
		wantRate string
	}{
		{"derived gain", "10000", "10550", "0", "5.5"},
		{"derived rounded", "3000", "4000", "0", "33.33"},
		{"derived loss", "1000", "750", "0", "-25"},
		{"zero initial keeps given", "0", "500", "12", "12"},
		{"zero current keeps given", "100", "0", "-100", "-100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateInvestmentUseCase(newTestStore(t))

			out, err := uc.Execute(context.Background(), CreateInvestmentInput{
				Name:          "CDB",
				Type:          entity.InvestmentTypeFixedIncome,
				InitialAmount: decimal.RequireFromString(tt.initial),
				CurrentAmount: decimal.RequireFromString(tt.current),
				Currency:      "BRL",
				PurchaseDate:  time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC),
				ReturnRate:    decimal.RequireFromString(tt.given),
			})
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if !out.Investment.ReturnRate.Equal(decimal.RequireFromString(tt.wantRate)) {
				t.Errorf("expected return rate %s, got %s", tt.wantRate, out.Investment.ReturnRate)
			}
		})
	}
}

func TestCreateInvestment_Validation(t *testing.T) {
	uc := NewCreateInvestmentUseCase(newTestStore(t))

	tests := []struct {
		name     string
		input    CreateInvestmentInput
		wantCode domainerror.RecordErrorCode
	}{
		{
			name:     "invalid type",
			input:    CreateInvestmentInput{Name: "X", Type: "bond", Currency: "BRL", PurchaseDate: time.Now()},
			wantCode: domainerror.ErrCodeInvalidInvestmentType,
		},
		{
			name:     "missing date",
			input:    CreateInvestmentInput{Name: "X", Type: entity.InvestmentTypeStock, Currency: "BRL"},
			wantCode: domainerror.ErrCodeMissingDate,
		},
		{
			name:     "missing currency",
			input:    CreateInvestmentInput{Name: "X", Type: entity.InvestmentTypeStock, PurchaseDate: time.Now()},
			wantCode: domainerror.ErrCodeCurrencyRequired,
		},
		{
			name: "negative amount",
			input: CreateInvestmentInput{
				Name: "X", Type: entity.InvestmentTypeStock, Currency: "BRL", PurchaseDate: time.Now(),
				InitialAmount: decimal.NewFromInt(-5),
			},
			wantCode: domainerror.ErrCodeNegativeAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
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

func TestUpdateInvestment(t *testing.T) {
	s := newTestStore(t)
	uc := NewUpdateInvestmentUseCase(s)

	bitcoin, ok := s.FindInvestment("2")
	if !ok {
		t.Fatal("seed investment 2 missing")
	}

	out, err := uc.Execute(context.Background(), UpdateInvestmentInput{
		ID:            bitcoin.ID,
		Name:          bitcoin.Name,
		Type:          bitcoin.Type,
		InitialAmount: bitcoin.InitialAmount,
		CurrentAmount: decimal.NewFromInt(10000),
		Currency:      bitcoin.Currency,
		PurchaseDate:  bitcoin.PurchaseDate,
		Color:         bitcoin.Color,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !out.Investment.ReturnRate.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected return rate 100, got %s", out.Investment.ReturnRate)
	}

	_, err = uc.Execute(context.Background(), UpdateInvestmentInput{
		ID: "missing", Name: "X", Type: entity.InvestmentTypeOther, Currency: "BRL", PurchaseDate: time.Now(),
	})
	if !errors.Is(err, domainerror.ErrInvestmentNotFound) {
		t.Errorf("expected ErrInvestmentNotFound, got %v", err)
	}
}

func TestListInvestments(t *testing.T) {
	out, err := NewListInvestmentsUseCase(newTestStore(t)).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !out.Total.Equal(decimal.NewFromInt(18050)) {
		t.Errorf("expected total 18050, got %s", out.Total)
	}
	if len(out.Investments) != 2 {
		t.Fatalf("expected 2 investments, got %d", len(out.Investments))
	}
	if !out.Investments[1].Return.Equal(decimal.NewFromInt(50)) {
		t.Errorf("expected bitcoin return 50, got %s", out.Investments[1].Return)
	}
}
