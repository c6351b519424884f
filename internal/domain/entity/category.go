package entity

// CategoryType represents which transactions a category applies to.
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeBoth    CategoryType = "both"
)

// IsValid reports whether t is one of the known category types.
func (t CategoryType) IsValid() bool {
	switch t {
	case CategoryTypeIncome, CategoryTypeExpense, CategoryTypeBoth:
		return true
	}
	return false
}

// Category is a labeling vocabulary entry for transactions.
type Category struct {
	ID    string
	Name  string
	Type  CategoryType
	Color string
	Icon  string // Optional
}
