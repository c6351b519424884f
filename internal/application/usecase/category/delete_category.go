package category

import (
	"context"
	"fmt"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	CategoryID string
}

// DeleteCategoryOutput represents the output of category deletion.
type DeleteCategoryOutput struct {
	Removed bool
}

// DeleteCategoryUseCase handles category deletion logic.
type DeleteCategoryUseCase struct {
	categoryStore adapter.CategoryStore
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryStore adapter.CategoryStore) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryStore: categoryStore,
	}
}

// Execute performs the category deletion.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	removed, err := uc.categoryStore.DeleteCategory(ctx, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}

	return &DeleteCategoryOutput{
		Removed: removed,
	}, nil
}
