package category

import (
	"context"
	"errors"
	"testing"

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

func TestCreateCategory(t *testing.T) {
	s := newTestStore(t)

	out, err := NewCreateCategoryUseCase(s).Execute(context.Background(), CreateCategoryInput{
		Name: "Lazer",
		Type: entity.CategoryTypeExpense,
		Icon: "film",
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out.Category.Color == "" {
		t.Error("expected a default color")
	}
	if len(s.Categories()) != 6 {
		t.Errorf("expected 6 categories, got %d", len(s.Categories()))
	}
}

func TestCreateCategory_InvalidType(t *testing.T) {
	_, err := NewCreateCategoryUseCase(newTestStore(t)).Execute(context.Background(), CreateCategoryInput{
		Name: "Lazer",
		Type: "transfer",
	})
	if !errors.Is(err, domainerror.ErrInvalidCategoryType) {
		t.Errorf("expected ErrInvalidCategoryType, got %v", err)
	}
}

func TestListCategories_TypeFilterIncludesBoth(t *testing.T) {
	uc := NewListCategoriesUseCase(newTestStore(t))

	income := entity.CategoryTypeIncome
	out, err := uc.Execute(context.Background(), ListCategoriesInput{Type: &income})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var names []string
	for _, c := range out.Categories {
		names = append(names, c.Name)
	}
	if len(names) != 2 || names[0] != "Renda" || names[1] != "Investimentos" {
		t.Errorf("expected [Renda Investimentos], got %v", names)
	}
}

func TestUpdateCategory_TransactionsKeepLabel(t *testing.T) {
	s := newTestStore(t)

	_, err := NewUpdateCategoryUseCase(s).Execute(context.Background(), UpdateCategoryInput{
		ID:    "4",
		Name:  "Salário",
		Type:  entity.CategoryTypeIncome,
		Color: "#9C27B0",
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	tx, _ := s.FindTransaction("1")
	if tx.Category != "Renda" {
		t.Errorf("expected transaction label to stay Renda, got %q", tx.Category)
	}
}

func TestDeleteCategory(t *testing.T) {
	s := newTestStore(t)
	uc := NewDeleteCategoryUseCase(s)

	out, err := uc.Execute(context.Background(), DeleteCategoryInput{CategoryID: "3"})
	if err != nil || !out.Removed {
		t.Fatalf("Execute() = %+v, %v", out, err)
	}
	out, err = uc.Execute(context.Background(), DeleteCategoryInput{CategoryID: "3"})
	if err != nil || out.Removed {
		t.Fatalf("second Execute() = %+v, %v", out, err)
	}
}
