package stores

import (
	"context"

	"github.com/ledgerline/ledgerline/internal/client/models"
	"github.com/ledgerline/ledgerline/internal/client/toast"
	"github.com/ledgerline/ledgerline/internal/client/views"
	"github.com/ledgerline/ledgerline/internal/logging"
)

// CategoryAPI is the slice of the API client the category store needs.
type CategoryAPI interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, req models.CreateCategoryRequest) (models.Category, error)
	UpdateCategory(ctx context.Context, id string, req models.UpdateCategoryRequest) (models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

// CategoryStore caches the active tenant's categories.
type CategoryStore struct {
	col    *collection[models.Category]
	client CategoryAPI
	toast  *toast.Notifier
	log    logging.Logger
}

func NewCategoryStore(client CategoryAPI, notifier *toast.Notifier, log logging.Logger, tenants *TenantSignal) *CategoryStore {
	s := &CategoryStore{
		col:    newCollection(func(c models.Category) string { return c.ID }),
		client: client,
		toast:  notifier,
		log:    log,
	}
	tenants.Subscribe(func(ctx context.Context, tenantID string) {
		s.col.clear()
		if tenantID != "" {
			s.List(ctx)
		}
	})
	return s
}

// Categories returns a copy of the cached collection, flat.
func (s *CategoryStore) Categories() []models.Category { return s.col.Items() }

// Loading reports whether a call is in flight.
func (s *CategoryStore) Loading() bool { return s.col.Loading() }

// Len returns the number of cached categories.
func (s *CategoryStore) Len() int { return s.col.Len() }

// GetByID looks up a category in the cache; no implicit fetch.
func (s *CategoryStore) GetByID(id string) (models.Category, bool) { return s.col.GetByID(id) }

// Tree arranges the cached flat collection into a parent/child tree.
// Recomputed on every read.
func (s *CategoryStore) Tree() []*views.CategoryNode {
	return views.BuildCategoryTree(s.col.Items())
}

// List reloads the collection from the server.
func (s *CategoryStore) List(ctx context.Context) {
	gen := s.col.beginList()

	categories, err := s.client.ListCategories(ctx)
	if err != nil {
		s.col.endList(gen)
		s.log.Error(ctx, "loading categories failed", "err", err)
		s.toast.Error("Failed to load categories")
		return
	}

	s.col.replaceAll(gen, categories)
}

// Create creates a category and appends the server-issued record.
func (s *CategoryStore) Create(ctx context.Context, req models.CreateCategoryRequest) (models.Category, error) {
	gen := s.col.generation()
	s.col.setLoading(true)
	defer s.col.setLoading(false)

	category, err := s.client.CreateCategory(ctx, req)
	if err != nil {
		return models.Category{}, err
	}

	s.col.add(gen, category)
	s.toast.Success("Category created successfully")
	return category, nil
}

// Update updates a category and replaces the cached entry by id.
func (s *CategoryStore) Update(ctx context.Context, id string, req models.UpdateCategoryRequest) (models.Category, error) {
	gen := s.col.generation()
	s.col.setLoading(true)
	defer s.col.setLoading(false)

	category, err := s.client.UpdateCategory(ctx, id, req)
	if err != nil {
		return models.Category{}, err
	}

	s.col.replace(gen, id, category)
	s.toast.Success("Category updated successfully")
	return category, nil
}

// Delete deletes a category and removes the cached entry by id.
func (s *CategoryStore) Delete(ctx context.Context, id string) error {
	gen := s.col.generation()
	s.col.setLoading(true)
	defer s.col.setLoading(false)

	if err := s.client.DeleteCategory(ctx, id); err != nil {
		return err
	}

	s.col.remove(gen, id)
	s.toast.Success("Category deleted successfully")
	return nil
}
