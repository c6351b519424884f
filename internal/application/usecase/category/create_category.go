// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
	"github.com/finance-tracker/dashboard/internal/application/formatter"
	"github.com/finance-tracker/dashboard/internal/domain/entity"
	domainerror "github.com/finance-tracker/dashboard/internal/domain/error"
	"github.com/finance-tracker/dashboard/internal/domain/valueobject"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Name  string
	Type  entity.CategoryType
	Color string // Optional, defaults to a random palette color
	Icon  string // Optional
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryStore adapter.CategoryStore
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryStore adapter.CategoryStore) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryStore: categoryStore,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	category := entity.Category{
		Name:  input.Name,
		Type:  input.Type,
		Color: input.Color,
		Icon:  input.Icon,
	}

	if err := validateCategory(category); err != nil {
		return nil, err
	}

	// Apply decorative default
	if category.Color == "" {
		category.Color = formatter.RandomColor()
	}

	created, err := uc.categoryStore.AddCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{
		Category: created,
	}, nil
}

// validateCategory checks the editable fields. Duplicate names are allowed.
func validateCategory(category entity.Category) error {
	if !category.Type.IsValid() {
		return domainerror.NewRecordError(
			domainerror.ErrCodeInvalidCategoryType,
			"category type must be 'income', 'expense' or 'both'",
			domainerror.ErrInvalidCategoryType,
		)
	}

	return valueobject.FirstError(
		valueobject.ValidateName(category.Name),
		valueobject.ValidateColor(category.Color),
	)
}
