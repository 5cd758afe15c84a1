package api

import (
	"context"
	"net/http"

	"github.com/ledgerline/ledgerline/internal/client/models"
)

// ListCategories fetches every category of the active tenant.
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory creates a category and returns the server-issued record.
func (c *Client) CreateCategory(ctx context.Context, req models.CreateCategoryRequest) (models.Category, error) {
	var category models.Category
	if err := c.do(ctx, http.MethodPost, "/categories", nil, nil, req, &category); err != nil {
		return models.Category{}, err
	}
	return category, nil
}

// UpdateCategory updates the category with the given id.
func (c *Client) UpdateCategory(ctx context.Context, id string, req models.UpdateCategoryRequest) (models.Category, error) {
	var category models.Category
	if err := c.do(ctx, http.MethodPut, "/categories/"+id, nil, nil, req, &category); err != nil {
		return models.Category{}, err
	}
	return category, nil
}

// DeleteCategory deletes the category with the given id.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/categories/"+id, nil, nil, nil, nil)
}
