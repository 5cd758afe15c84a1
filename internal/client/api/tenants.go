package api

import (
	"context"
	"net/http"

	"github.com/ledgerline/ledgerline/internal/client/models"
)

// ListUserTenants fetches the tenants the authenticated user belongs to.
func (c *Client) ListUserTenants(ctx context.Context) ([]models.Tenant, error) {
	var tenants []models.Tenant
	if err := c.do(ctx, http.MethodGet, "/users/tenants", nil, nil, nil, &tenants); err != nil {
		return nil, err
	}
	return tenants, nil
}

// CreateTenant creates a tenant. The backend links it to the creating
// user automatically.
func (c *Client) CreateTenant(ctx context.Context, req models.CreateTenantRequest) (models.Tenant, error) {
	var tenant models.Tenant
	if err := c.do(ctx, http.MethodPost, "/tenants", nil, nil, req, &tenant); err != nil {
		return models.Tenant{}, err
	}
	return tenant, nil
}
