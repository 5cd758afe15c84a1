package stores

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/ledgerline/internal/client/models"
)

func TestCategoryStoreTenantReactivity(t *testing.T) {
	client := &fakeCategoryAPI{categories: []models.Category{{ID: "c1", Name: "Food"}}}
	notifier, _ := newTestNotifier()
	sig := NewTenantSignal()
	s := NewCategoryStore(client, notifier, testLogger(), sig)

	ctx := context.Background()
	sig.Set(ctx, "t1")
	assert.Equal(t, 1, client.listCalls, "tenant selection triggers a reload")
	require.Len(t, s.Categories(), 1)

	sig.Set(ctx, "")
	assert.Empty(t, s.Categories())
	assert.Equal(t, 1, client.listCalls, "clearing the tenant must not hit the API")

	sig.Set(ctx, "t2")
	assert.Equal(t, 2, client.listCalls)
}

func TestCategoryStoreTreeFromCache(t *testing.T) {
	client := &fakeCategoryAPI{categories: []models.Category{
		{ID: "root", Name: "Home"},
		{ID: "child", Name: "Utilities", ParentCategoryID: "root"},
		{ID: "orphan", Name: "Dangling", ParentCategoryID: "missing"},
	}}
	notifier, _ := newTestNotifier()
	s := NewCategoryStore(client, notifier, testLogger(), NewTenantSignal())

	s.List(context.Background())

	roots := s.Tree()
	require.Len(t, roots, 2, "orphans are promoted to roots")
	assert.Equal(t, "Home", roots[0].Name)
	require.Len(t, roots[0].Children, 1)
	assert.Equal(t, "Utilities", roots[0].Children[0].Name)
	assert.Equal(t, "Dangling", roots[1].Name)
}

func TestCategoryStoreListFailureToasts(t *testing.T) {
	client := &fakeCategoryAPI{listErr: errors.New("boom")}
	notifier, rec := newTestNotifier()
	s := NewCategoryStore(client, notifier, testLogger(), NewTenantSignal())

	s.List(context.Background())

	assert.Contains(t, rec.Texts(), "Failed to load categories")
}

func TestCategoryStoreCreateAndUpdate(t *testing.T) {
	client := &fakeCategoryAPI{
		created: models.Category{ID: "srv-1", Name: "Transport", Type: models.CategoryTypeExpense},
	}
	notifier, rec := newTestNotifier()
	s := NewCategoryStore(client, notifier, testLogger(), NewTenantSignal())

	ctx := context.Background()
	category, err := s.Create(ctx, models.CreateCategoryRequest{Name: "Transport", Type: models.CategoryTypeExpense})
	require.NoError(t, err)
	assert.Equal(t, "srv-1", category.ID)

	_, err = s.Update(ctx, "srv-1", models.UpdateCategoryRequest{Name: "Commute", Type: models.CategoryTypeExpense})
	require.NoError(t, err)
	got, ok := s.GetByID("srv-1")
	require.True(t, ok)
	assert.Equal(t, "Commute", got.Name)

	assert.Contains(t, rec.Texts(), "Category created successfully")
	assert.Contains(t, rec.Texts(), "Category updated successfully")
}
