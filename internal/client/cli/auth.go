package cli

import (
	"context"
	"fmt"

	"github.com/ledgerline/ledgerline/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped
// in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. On success the
// issued tokens are persisted, the user's tenants are loaded, a
// previously selected tenant is restored, and any route preserved by a
// guard redirect is resumed.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	tenantID, _ := a.storage.TenantID()
	resp, err := a.api.Login(ctx, email, password, tenantID)
	if err != nil {
		// the pipeline already surfaced a toast
		return err
	}

	a.finishAuth(ctx, resp)
	return nil
}

// Register prompts for a name, email and password and creates a new
// account. A successful registration signs the user in directly.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	resp, err := a.api.Register(ctx, models.RegisterRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return err
	}

	a.finishAuth(ctx, resp)
	return nil
}

func (a *App) finishAuth(ctx context.Context, resp models.AuthResponse) {
	a.storage.SetAuthToken(resp.Token)
	if resp.RefreshToken != "" {
		a.storage.SetRefreshToken(resp.RefreshToken)
	}
	a.user = resp.User

	fmt.Fprintf(a.out, "Logged in as %s\n", resp.User.Email)

	if _, err := a.tenants.LoadUserTenants(ctx); err == nil {
		a.tenants.Restore(ctx)
	}

	if a.returnTo != "" {
		a.resume(ctx)
		return
	}
	a.route = RouteDashboard
}

// Logout clears the persisted session and the tenant context; the
// tenant signal change empties every entity store synchronously.
func (a *App) Logout(ctx context.Context) error {
	a.storage.RemoveAuthToken()
	a.storage.RemoveRefreshToken()
	a.tenants.Clear(ctx)
	a.user = models.User{}
	a.route = RouteLogin

	fmt.Fprintln(a.out, "Logged out")
	return nil
}
