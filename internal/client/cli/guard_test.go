package cli

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/ledgerline/internal/client/toast"
)

type fakeSession struct {
	token  string
	tenant string
}

func (f *fakeSession) AuthToken() (string, bool) { return f.token, f.token != "" }
func (f *fakeSession) TenantID() (string, bool)  { return f.tenant, f.tenant != "" }

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func newGuard(session *fakeSession) (*Guard, *toast.Recorder) {
	rec := &toast.Recorder{}
	return NewGuard(session, toast.NewNotifier(rec)), rec
}

func TestRequireAuthPassesWithToken(t *testing.T) {
	g, rec := newGuard(&fakeSession{token: signedToken(t, time.Now().Add(time.Hour))})

	d := g.RequireAuth(RouteAccounts)

	assert.True(t, d.Allowed)
	assert.Empty(t, rec.Texts())
}

func TestRequireAuthRedirectsWithoutToken(t *testing.T) {
	g, rec := newGuard(&fakeSession{})

	d := g.RequireAuth(RouteAccounts)

	assert.False(t, d.Allowed)
	assert.Equal(t, "/auth/login?returnUrl=%2Faccounts", d.RedirectTo)
	assert.Contains(t, rec.Texts(), "Please login to access this page")
}

func TestRequireAuthTreatsExpiredTokenAsAbsent(t *testing.T) {
	g, rec := newGuard(&fakeSession{token: signedToken(t, time.Now().Add(-time.Hour))})

	d := g.RequireAuth(RouteDashboard)

	assert.False(t, d.Allowed)
	path, returnTo := splitReturnURL(d.RedirectTo)
	assert.Equal(t, RouteLogin, path)
	assert.Equal(t, RouteDashboard, returnTo)
	assert.Contains(t, rec.Texts(), "Please login to access this page")
}

func TestRequireAuthAcceptsOpaqueToken(t *testing.T) {
	// not a JWT: presence is enough, the server owns validation
	g, _ := newGuard(&fakeSession{token: "opaque-session-token"})

	assert.True(t, g.RequireAuth(RouteAccounts).Allowed)
}

func TestRequireTenantRedirectsWithoutTenant(t *testing.T) {
	g, rec := newGuard(&fakeSession{token: "tok"})

	d := g.RequireTenant(RouteTransactions)

	assert.False(t, d.Allowed)
	path, returnTo := splitReturnURL(d.RedirectTo)
	assert.Equal(t, RouteTenantSelect, path)
	assert.Equal(t, RouteTransactions, returnTo)
	assert.Contains(t, rec.Texts(), "Please select a tenant to continue")
}

func TestRequireTenantPassesWithTenant(t *testing.T) {
	g, rec := newGuard(&fakeSession{token: "tok", tenant: "t1"})

	assert.True(t, g.RequireTenant(RouteTransactions).Allowed)
	assert.Empty(t, rec.Texts())
}

func TestRequireGuestRedirectsAuthenticated(t *testing.T) {
	g, _ := newGuard(&fakeSession{token: "tok"})

	d := g.RequireGuest()

	assert.False(t, d.Allowed)
	assert.Equal(t, RouteDashboard, d.RedirectTo)
}

func TestRequireGuestPassesAnonymous(t *testing.T) {
	g, _ := newGuard(&fakeSession{})

	assert.True(t, g.RequireGuest().Allowed)
}

func TestRequireGuestPassesWithExpiredToken(t *testing.T) {
	g, _ := newGuard(&fakeSession{token: signedToken(t, time.Now().Add(-time.Minute))})

	assert.True(t, g.RequireGuest().Allowed)
}

func TestSplitReturnURLRoundTrip(t *testing.T) {
	route := withReturnURL(RouteLogin, "/transactions")
	path, returnTo := splitReturnURL(route)

	assert.Equal(t, RouteLogin, path)
	assert.Equal(t, "/transactions", returnTo)

	path, returnTo = splitReturnURL(RouteLogin)
	assert.Equal(t, RouteLogin, path)
	assert.Equal(t, "", returnTo)
}
