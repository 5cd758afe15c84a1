package cli

import (
	"context"
	"fmt"
)

// showTenantSelect prints the tenants the user belongs to. Selection
// happens through the "select <tenant-id>" command.
func (a *App) showTenantSelect(ctx context.Context) {
	tenants := a.tenants.UserTenants()
	if len(tenants) == 0 {
		if _, err := a.tenants.LoadUserTenants(ctx); err != nil {
			return
		}
		tenants = a.tenants.UserTenants()
	}

	if len(tenants) == 0 {
		fmt.Fprintln(a.out, "No tenants yet. Create one with: newtenant <name>")
		return
	}

	current := a.tenants.CurrentTenantID()
	fmt.Fprintln(a.out, "Your tenants (select <id>):")
	for _, t := range tenants {
		marker := " "
		if t.TenantID == current {
			marker = "*"
		}
		fmt.Fprintf(a.out, " %s %s  %s\n", marker, t.TenantID, t.Name)
	}
}

// SelectTenant makes the given tenant active and resumes any route a
// tenant guard redirect preserved.
func (a *App) SelectTenant(ctx context.Context, id string) error {
	if d := a.guard.RequireAuth(RouteTenantSelect); !d.Allowed {
		a.redirect(ctx, d)
		return nil
	}

	if err := a.tenants.Select(ctx, id); err != nil {
		fmt.Fprintf(a.out, "Unknown tenant: %s\n", id)
		return err
	}

	if a.returnTo != "" {
		a.resume(ctx)
		return nil
	}
	a.Navigate(ctx, RouteDashboard)
	return nil
}

// NewTenant creates a tenant; the store reloads the tenant list and
// auto-selects the new tenant.
func (a *App) NewTenant(ctx context.Context, name string) error {
	if d := a.guard.RequireAuth(RouteTenantSelect); !d.Allowed {
		a.redirect(ctx, d)
		return nil
	}

	if _, err := a.tenants.Create(ctx, name); err != nil {
		return err
	}

	if a.returnTo != "" {
		a.resume(ctx)
		return nil
	}
	a.Navigate(ctx, RouteDashboard)
	return nil
}
