package api

import (
	"net/http"
	"strings"

	"github.com/ledgerline/ledgerline/internal/common"
)

// CredentialSource provides the persisted credentials consulted by the
// request transformers. storage.Store satisfies it.
type CredentialSource interface {
	AuthToken() (string, bool)
	TenantID() (string, bool)
}

// publicEndpoints never receive the auth header, even when a token exists.
var publicEndpoints = []string{"/auth/login", "/auth/register"}

// tenantSkipPaths never receive the tenant header: auth endpoints are
// pre-tenant, tenant and user management are inherently cross-tenant.
var tenantSkipPaths = []string{"/auth/", "/tenants", "/users/"}

// NewTransport builds the outbound request pipeline around base. The
// transformers run in order auth → tenant → trailing slash, so the path is
// normalized last, on the fully decorated request.
//
// apiRoot is the path prefix of the API base URL (e.g. "/api"); only paths
// under it get the trailing-slash treatment.
func NewTransport(base http.RoundTripper, creds CredentialSource, apiRoot string) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	var rt http.RoundTripper = &trailingSlashTransport{next: base, apiRoot: apiRoot}
	rt = &tenantTransport{next: rt, creds: creds}
	rt = &authTransport{next: rt, creds: creds}
	return rt
}

// authTransport attaches the bearer token to every request except the
// public auth endpoints.
type authTransport struct {
	next  http.RoundTripper
	creds CredentialSource
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	for _, e := range publicEndpoints {
		if strings.Contains(req.URL.Path, e) {
			return t.next.RoundTrip(req)
		}
	}

	token, ok := t.creds.AuthToken()
	if !ok {
		return t.next.RoundTrip(req)
	}

	req = req.Clone(req.Context())
	req.Header.Set(common.AuthHeaderName, common.BearerPrefix+token)
	return t.next.RoundTrip(req)
}

// tenantTransport attaches the tenant-scoping header except on auth,
// tenant-management and user-management paths.
type tenantTransport struct {
	next  http.RoundTripper
	creds CredentialSource
}

func (t *tenantTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	for _, p := range tenantSkipPaths {
		if strings.Contains(req.URL.Path, p) {
			return t.next.RoundTrip(req)
		}
	}

	tenantID, ok := t.creds.TenantID()
	if !ok {
		return t.next.RoundTrip(req)
	}

	req = req.Clone(req.Context())
	req.Header.Set(common.TenantHeaderName, tenantID)
	return t.next.RoundTrip(req)
}

// trailingSlashTransport appends a trailing slash to API paths that lack
// one. The backend redirects non-canonical paths, and the redirect drops
// the reverse-proxy path prefix, so the client must always request the
// canonical form directly. The query string is left untouched.
type trailingSlashTransport struct {
	next    http.RoundTripper
	apiRoot string
}

func (t *trailingSlashTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	p := req.URL.Path
	if !strings.HasPrefix(p, t.apiRoot) || strings.HasSuffix(p, "/") {
		return t.next.RoundTrip(req)
	}

	req = req.Clone(req.Context())
	req.URL.Path += "/"
	if req.URL.RawPath != "" {
		req.URL.RawPath += "/"
	}
	return t.next.RoundTrip(req)
}
