package cli

import (
	"context"
	"fmt"
)

// showProfile fetches and prints the authenticated user's profile.
func (a *App) showProfile(ctx context.Context) {
	user, err := a.api.Profile(ctx)
	if err != nil {
		return
	}
	a.user = user

	fmt.Fprintln(a.out, "Profile:")
	fmt.Fprintf(a.out, "  Name:  %s\n", user.Name)
	fmt.Fprintf(a.out, "  Email: %s\n", user.Email)
	if tenant, ok := a.tenants.CurrentTenant(); ok {
		fmt.Fprintf(a.out, "  Tenant: %s\n", tenant.Name)
	}
}
