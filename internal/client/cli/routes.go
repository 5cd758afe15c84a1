package cli

import (
	"net/url"
	"strings"
)

// Route surface. Auth routes are guest-only, tenant selection requires
// authentication, everything under the protected set requires both
// authentication and a selected tenant.
const (
	RouteLogin        = "/auth/login"
	RouteRegister     = "/auth/register"
	RouteTenantSelect = "/tenants/select"
	RouteDashboard    = "/dashboard"
	RouteAccounts     = "/accounts"
	RouteTransactions = "/transactions"
	RouteCategories   = "/categories"
	RouteTags         = "/tags"
	RouteProfile      = "/profile"
)

func isGuestRoute(route string) bool {
	return route == RouteLogin || route == RouteRegister
}

func isProtectedRoute(route string) bool {
	switch route {
	case RouteDashboard, RouteAccounts, RouteTransactions, RouteCategories, RouteTags, RouteProfile:
		return true
	}
	return false
}

// withReturnURL appends the originally requested route to a redirect
// target as a returnUrl query parameter.
func withReturnURL(route, returnTo string) string {
	if returnTo == "" {
		return route
	}
	return route + "?returnUrl=" + url.QueryEscape(returnTo)
}

// splitReturnURL separates a route from its returnUrl parameter.
func splitReturnURL(route string) (path, returnTo string) {
	path, query, ok := strings.Cut(route, "?")
	if !ok {
		return path, ""
	}
	values, err := url.ParseQuery(query)
	if err != nil {
		return path, ""
	}
	return path, values.Get("returnUrl")
}
