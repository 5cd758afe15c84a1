package api

import (
	"context"
	"net/http"

	"github.com/ledgerline/ledgerline/internal/client/models"
)

// ListTags fetches every tag of the active tenant.
func (c *Client) ListTags(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	if err := c.do(ctx, http.MethodGet, "/tags", nil, nil, nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// CreateTag creates a tag and returns the server-issued record.
func (c *Client) CreateTag(ctx context.Context, req models.CreateTagRequest) (models.Tag, error) {
	var tag models.Tag
	if err := c.do(ctx, http.MethodPost, "/tags", nil, nil, req, &tag); err != nil {
		return models.Tag{}, err
	}
	return tag, nil
}

// UpdateTag updates the tag with the given id.
func (c *Client) UpdateTag(ctx context.Context, id string, req models.UpdateTagRequest) (models.Tag, error) {
	var tag models.Tag
	if err := c.do(ctx, http.MethodPut, "/tags/"+id, nil, nil, req, &tag); err != nil {
		return models.Tag{}, err
	}
	return tag, nil
}

// DeleteTag deletes the tag with the given id.
func (c *Client) DeleteTag(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/tags/"+id, nil, nil, nil, nil)
}
