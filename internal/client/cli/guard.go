package cli

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionState is the slice of the persistent store the guards read.
type SessionState interface {
	AuthToken() (string, bool)
	TenantID() (string, bool)
}

// Warner is the toast surface the guards report through.
type Warner interface {
	Warning(text string)
}

// Decision is a guard verdict. A disallowed navigation carries the
// redirect target, with the originally requested route preserved as a
// returnUrl parameter.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

// Guard implements the route-entry predicates.
type Guard struct {
	storage SessionState
	toast   Warner
}

func NewGuard(storage SessionState, toast Warner) *Guard {
	return &Guard{storage: storage, toast: toast}
}

// RequireAuth passes iff a usable token is stored. An expired JWT counts
// as absent. On failure the user is warned and redirected to login with
// the requested route preserved.
func (g *Guard) RequireAuth(target string) Decision {
	token, ok := g.storage.AuthToken()
	if !ok || !tokenUsable(token, time.Now()) {
		g.toast.Warning("Please login to access this page")
		return Decision{RedirectTo: withReturnURL(RouteLogin, target)}
	}
	return Decision{Allowed: true}
}

// RequireTenant passes iff a tenant id is stored. On failure the user is
// warned and redirected to tenant selection, likewise preserving the
// requested route. Meant to run after RequireAuth.
func (g *Guard) RequireTenant(target string) Decision {
	if _, ok := g.storage.TenantID(); !ok {
		g.toast.Warning("Please select a tenant to continue")
		return Decision{RedirectTo: withReturnURL(RouteTenantSelect, target)}
	}
	return Decision{Allowed: true}
}

// RequireGuest is the authenticated guard's negation, used on the auth
// routes: an already authenticated user goes straight to the dashboard.
func (g *Guard) RequireGuest() Decision {
	token, ok := g.storage.AuthToken()
	if ok && tokenUsable(token, time.Now()) {
		return Decision{RedirectTo: RouteDashboard}
	}
	return Decision{Allowed: true}
}

// tokenUsable reports whether the stored token is worth presenting to
// the server. Claims are read without signature verification: the server
// owns validation, the client only avoids sending a token it can already
// see is expired. Tokens that do not parse as a JWT, or carry no expiry,
// are presented as-is.
func tokenUsable(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return exp.After(now)
}
