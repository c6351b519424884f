package category

import (
	"context"
	"fmt"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
	"github.com/finance-tracker/dashboard/internal/domain/entity"
	domainerror "github.com/finance-tracker/dashboard/internal/domain/error"
)

// UpdateCategoryInput represents the input for category update. Every field is replaced.
type UpdateCategoryInput struct {
	ID    string
	Name  string
	Type  entity.CategoryType
	Color string
	Icon  string
}

// UpdateCategoryOutput represents the output of category update.
type UpdateCategoryOutput struct {
	Category entity.Category
}

// UpdateCategoryUseCase handles category update logic.
// Transactions keep the category label they were saved with.
type UpdateCategoryUseCase struct {
	categoryStore adapter.CategoryStore
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryStore adapter.CategoryStore) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryStore: categoryStore,
	}
}

// Execute performs the category update.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	category := entity.Category{
		ID:    input.ID,
		Name:  input.Name,
		Type:  input.Type,
		Color: input.Color,
		Icon:  input.Icon,
	}

	if err := validateCategory(category); err != nil {
		return nil, err
	}

	matched, err := uc.categoryStore.UpdateCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	if !matched {
		return nil, domainerror.NewNotFoundError(domainerror.ErrCategoryNotFound)
	}

	return &UpdateCategoryOutput{
		Category: category,
	}, nil
}
