package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledgerline/ledgerline/internal/client/models"
	"github.com/ledgerline/ledgerline/internal/client/views"
)

func (a *App) showCategories(ctx context.Context) {
	if a.categories.Len() == 0 {
		a.categories.List(ctx)
	}

	roots := a.categories.Tree()
	if len(roots) == 0 {
		fmt.Fprintln(a.out, "No categories. Create one with: addcategory")
		return
	}

	fmt.Fprintln(a.out, "Categories:")
	for _, root := range roots {
		a.printCategory(root, 1)
	}
}

func (a *App) printCategory(node *views.CategoryNode, depth int) {
	fmt.Fprintf(a.out, "%s%s  %s (%s)\n", strings.Repeat("  ", depth), node.ID, node.Name, node.Type)
	for _, child := range node.Children {
		a.printCategory(child, depth+1)
	}
}

// addCategory interactively collects the fields and creates a category
// through the store.
func (a *App) addCategory(ctx context.Context) error {
	if err := a.requireTenantContext(); err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Category name", a.out)
	if err != nil {
		return err
	}
	kind, err := getSimpleText(a.reader, "Type (expense/income/transfer)", a.out)
	if err != nil {
		return err
	}
	parent, err := getSimpleText(a.reader, "Parent category id (empty for root)", a.out)
	if err != nil {
		return err
	}

	_, err = a.categories.Create(ctx, models.CreateCategoryRequest{
		Name:             name,
		Type:             models.CategoryType(kind),
		ParentCategoryID: parent,
	})
	return err
}

func (a *App) deleteCategory(ctx context.Context, id string) error {
	if err := a.requireTenantContext(); err != nil {
		return err
	}
	return a.categories.Delete(ctx, id)
}
