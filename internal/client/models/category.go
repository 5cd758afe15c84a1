package models

// CategoryType enumerates the supported category kinds.
type CategoryType string

const (
	CategoryTypeExpense  CategoryType = "expense"
	CategoryTypeIncome   CategoryType = "income"
	CategoryTypeTransfer CategoryType = "transfer"
)

// Category labels transactions and forms a tree via the parent pointer.
// An empty ParentCategoryID means the category is a root.
type Category struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Type             CategoryType `json:"type"`
	ParentCategoryID string       `json:"parent_category_id,omitempty"`
	Color            string       `json:"color,omitempty"`
	Icon             string       `json:"icon,omitempty"`
}

// CreateCategoryRequest is the payload for creating a category.
type CreateCategoryRequest struct {
	Name             string       `json:"name"`
	Type             CategoryType `json:"type"`
	ParentCategoryID string       `json:"parent_category_id,omitempty"`
	Color            string       `json:"color,omitempty"`
	Icon             string       `json:"icon,omitempty"`
}

// UpdateCategoryRequest is the payload for updating a category.
type UpdateCategoryRequest = CreateCategoryRequest
