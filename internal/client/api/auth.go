package api

import (
	"context"
	"net/http"

	"github.com/ledgerline/ledgerline/internal/common"
	"github.com/ledgerline/ledgerline/internal/client/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates against the server. tenantID is optional; when
// given it is sent as the tenant header so the server can scope the
// issued session immediately.
func (c *Client) Login(ctx context.Context, email, password, tenantID string) (models.AuthResponse, error) {
	var header http.Header
	if tenantID != "" {
		header = http.Header{common.TenantHeaderName: []string{tenantID}}
	}

	var resp models.AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", nil, header, loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return models.AuthResponse{}, err
	}
	return resp, nil
}

// Register creates a new user account.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, nil, req, &resp); err != nil {
		return models.AuthResponse{}, err
	}
	return resp, nil
}

// Profile fetches the authenticated user's profile.
func (c *Client) Profile(ctx context.Context) (models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, nil, nil, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}
