package model

import "github.com/finance-tracker/dashboard/internal/domain/entity"

// CategoryRecord is the persisted form of a category.
type CategoryRecord struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Color string `json:"color"`
	Icon  string `json:"icon,omitempty"`
}

// ToEntity converts a CategoryRecord to a domain Category entity.
func (r *CategoryRecord) ToEntity() entity.Category {
	return entity.Category{
		ID:    r.ID,
		Name:  r.Name,
		Type:  entity.CategoryType(r.Type),
		Color: r.Color,
		Icon:  r.Icon,
	}
}

// CategoryFromEntity creates a CategoryRecord from a domain Category entity.
func CategoryFromEntity(category entity.Category) CategoryRecord {
	return CategoryRecord{
		ID:    category.ID,
		Name:  category.Name,
		Type:  string(category.Type),
		Color: category.Color,
		Icon:  category.Icon,
	}
}
