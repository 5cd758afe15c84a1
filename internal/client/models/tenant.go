package models

// Tenant is an isolated data partition; all domain entities belong to
// exactly one tenant.
type Tenant struct {
	TenantID string `json:"tenant_id"`
	Name     string `json:"name"`
}

// CreateTenantRequest is the payload for creating a tenant. The backend
// links the new tenant to the creating user automatically.
type CreateTenantRequest struct {
	Name string `json:"name"`
}

// User is the authenticated profile. No roles are modeled client-side.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	User         User   `json:"user"`
}

// RegisterRequest is the payload for creating a user account.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
