package category

import (
	"context"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
	"github.com/finance-tracker/dashboard/internal/domain/entity"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	Type *entity.CategoryType // Optional filter, "both" categories always match
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []entity.Category
}

// ListCategoriesUseCase handles listing categories logic.
type ListCategoriesUseCase struct {
	categoryStore adapter.CategoryStore
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryStore adapter.CategoryStore) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryStore: categoryStore,
	}
}

// Execute lists the categories in stored order.
func (uc *ListCategoriesUseCase) Execute(_ context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	categories := uc.categoryStore.Categories()
	if input.Type == nil {
		return &ListCategoriesOutput{Categories: categories}, nil
	}

	filtered := make([]entity.Category, 0, len(categories))
	for _, category := range categories {
		if category.Type == *input.Type || category.Type == entity.CategoryTypeBoth {
			filtered = append(filtered, category)
		}
	}

	return &ListCategoriesOutput{
		Categories: filtered,
	}, nil
}
