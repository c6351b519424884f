package dto

import (
	"github.com/finance-tracker/dashboard/internal/application/usecase/category"
	"github.com/finance-tracker/dashboard/internal/domain/entity"
)

// CategoryRequest represents the request body for category creation and replacement.
type CategoryRequest struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Color string `json:"color,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Color string `json:"color"`
	Icon  string `json:"icon,omitempty"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCreateCategoryInput converts the request to the creation input.
func (r CategoryRequest) ToCreateCategoryInput() category.CreateCategoryInput {
	return category.CreateCategoryInput{
		Name:  r.Name,
		Type:  entity.CategoryType(r.Type),
		Color: r.Color,
		Icon:  r.Icon,
	}
}

// ToUpdateCategoryInput converts the request to the update input of the category id.
func (r CategoryRequest) ToUpdateCategoryInput(id string) category.UpdateCategoryInput {
	return category.UpdateCategoryInput{
		ID:    id,
		Name:  r.Name,
		Type:  entity.CategoryType(r.Type),
		Color: r.Color,
		Icon:  r.Icon,
	}
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(c entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:    c.ID,
		Name:  c.Name,
		Type:  string(c.Type),
		Color: c.Color,
		Icon:  c.Icon,
	}
}

// ToCategoryListResponse converts a list of categories to CategoryListResponse.
func ToCategoryListResponse(categories []entity.Category) CategoryListResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		responses[i] = ToCategoryResponse(c)
	}
	return CategoryListResponse{
		Categories: responses,
	}
}
