package api

import (
	"context"
	"net/http"

	"github.com/ledgerline/ledgerline/internal/client/models"
)

// ListAccounts fetches every account of the active tenant.
func (c *Client) ListAccounts(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account
	if err := c.do(ctx, http.MethodGet, "/accounts", nil, nil, nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// CreateAccount creates an account and returns the server-issued record.
func (c *Client) CreateAccount(ctx context.Context, req models.CreateAccountRequest) (models.Account, error) {
	var account models.Account
	if err := c.do(ctx, http.MethodPost, "/accounts", nil, nil, req, &account); err != nil {
		return models.Account{}, err
	}
	return account, nil
}

// UpdateAccount updates the account with the given id.
func (c *Client) UpdateAccount(ctx context.Context, id string, req models.UpdateAccountRequest) (models.Account, error) {
	var account models.Account
	if err := c.do(ctx, http.MethodPut, "/accounts/"+id, nil, nil, req, &account); err != nil {
		return models.Account{}, err
	}
	return account, nil
}

// DeleteAccount deletes the account with the given id.
func (c *Client) DeleteAccount(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/accounts/"+id, nil, nil, nil, nil)
}
