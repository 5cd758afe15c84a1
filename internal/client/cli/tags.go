package cli

import (
	"context"
	"fmt"

	"github.com/ledgerline/ledgerline/internal/client/models"
)

func (a *App) showTags(ctx context.Context) {
	if a.tags.Len() == 0 {
		a.tags.List(ctx)
	}

	tags := a.tags.Tags()
	if len(tags) == 0 {
		fmt.Fprintln(a.out, "No tags. Create one with: addtag <name>")
		return
	}

	fmt.Fprintln(a.out, "Tags:")
	for _, tag := range tags {
		fmt.Fprintf(a.out, "  %s  %s\n", tag.ID, tag.Name)
	}
}

// AddTag creates a tag through the store's optimistic create flow.
func (a *App) AddTag(ctx context.Context, name string) error {
	if err := a.requireTenantContext(); err != nil {
		return err
	}
	_, err := a.tags.Create(ctx, models.CreateTagRequest{Name: name})
	return err
}

func (a *App) deleteTag(ctx context.Context, id string) error {
	if err := a.requireTenantContext(); err != nil {
		return err
	}
	return a.tags.Delete(ctx, id)
}
