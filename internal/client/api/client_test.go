package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/ledgerline/internal/client/models"
	"github.com/ledgerline/ledgerline/internal/client/toast"
	"github.com/ledgerline/ledgerline/internal/common"
	"github.com/ledgerline/ledgerline/internal/logging"
)

type fakeSessionStore struct {
	token         string
	tenant        string
	tokenRemoved  bool
	tenantRemoved bool
}

func (f *fakeSessionStore) AuthToken() (string, bool) { return f.token, f.token != "" }
func (f *fakeSessionStore) TenantID() (string, bool)  { return f.tenant, f.tenant != "" }
func (f *fakeSessionStore) RemoveAuthToken()          { f.token = ""; f.tokenRemoved = true }
func (f *fakeSessionStore) RemoveTenantID()           { f.tenant = ""; f.tenantRemoved = true }

func testLogger() logging.Logger {
	return logging.Discard()
}

func newTestClient(t *testing.T, baseURL string, store *fakeSessionStore) (*Client, *toast.Recorder) {
	t.Helper()
	rec := &toast.Recorder{}
	c, err := New(baseURL, store, toast.NewNotifier(rec), testLogger())
	require.NoError(t, err)
	return c, rec
}

func TestListAccounts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/accounts/", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get(common.AuthHeaderName))
		assert.Equal(t, "t1", r.Header.Get(common.TenantHeaderName))
		_ = json.NewEncoder(w).Encode([]models.Account{{ID: "a1", Name: "Checking"}})
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL+"/api", &fakeSessionStore{token: "tok", tenant: "t1"})

	accounts, err := c.ListAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "a1", accounts[0].ID)
}

func TestListTransactionsQueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/transactions/", r.URL.Path)
		assert.Equal(t, "202401", r.URL.Query().Get("accrual_month"))
		assert.Equal(t, "a1", r.URL.Query().Get("account_id"))
		assert.Equal(t, "debit", r.URL.Query().Get("transaction_type"))
		_ = json.NewEncoder(w).Encode([]models.Transaction{})
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL+"/api", &fakeSessionStore{token: "tok", tenant: "t1"})

	_, err := c.ListTransactions(context.Background(), TransactionQuery{
		AccrualMonth: "202401",
		AccountID:    "a1",
		Type:         models.TransactionTypeDebit,
	})
	require.NoError(t, err)
}

func TestLoginOmitsAuthHeaderAndSendsTenant(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login/", r.URL.Path)
		assert.Empty(t, r.Header.Get(common.AuthHeaderName), "public endpoint must never be decorated")
		assert.Equal(t, "t1", r.Header.Get(common.TenantHeaderName), "explicit login tenant header is kept")

		var req loginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "u@example.com", req.Email)

		_ = json.NewEncoder(w).Encode(models.AuthResponse{Token: "fresh"})
	}))
	defer srv.Close()

	// a stale token exists in storage; login must still be undecorated
	c, _ := newTestClient(t, srv.URL+"/api", &fakeSessionStore{token: "stale"})

	resp, err := c.Login(context.Background(), "u@example.com", "secret", "t1")
	require.NoError(t, err)
	assert.Equal(t, "fresh", resp.Token)
}

func TestUnauthorizedClearsSessionAndNavigates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	store := &fakeSessionStore{token: "tok", tenant: "t1"}
	c, rec := newTestClient(t, srv.URL+"/api", store)

	var navigated bool
	c.OnSessionExpired(func() { navigated = true })

	_, err := c.ListAccounts(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnauthorized)
	assert.True(t, IsStatus(err, http.StatusUnauthorized))

	assert.True(t, store.tokenRemoved)
	assert.True(t, store.tenantRemoved)
	assert.True(t, navigated)
	assert.Contains(t, rec.Texts(), "Session expired. Please login again.")
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantToast string
		sentinel  error
	}{
		{"forbidden", http.StatusForbidden, "", "Access denied. You do not have permission.", common.ErrUnauthorized},
		{"not found", http.StatusNotFound, "", "Resource not found.", common.ErrNotFound},
		{"server error", http.StatusInternalServerError, "", "Server error. Please try again later.", common.ErrUnavailable},
		{"bad gateway", http.StatusBadGateway, "", "Server error. Please try again later.", common.ErrUnavailable},
		{"unavailable", http.StatusServiceUnavailable, "", "Server error. Please try again later.", common.ErrUnavailable},
		{"server message used", http.StatusUnprocessableEntity, `{"message":"name is required"}`, "name is required", nil},
		{"generic fallback", http.StatusTeapot, "", "An unexpected error occurred", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			store := &fakeSessionStore{token: "tok", tenant: "t1"}
			c, rec := newTestClient(t, srv.URL+"/api", store)

			_, err := c.ListAccounts(context.Background())
			require.Error(t, err, "the normalizer must rethrow")
			assert.True(t, IsStatus(err, tt.status))
			if tt.sentinel != nil {
				assert.ErrorIs(t, err, tt.sentinel)
			}
			assert.Contains(t, rec.Texts(), tt.wantToast)

			// only 401 touches the session
			assert.False(t, store.tokenRemoved)
			assert.False(t, store.tenantRemoved)
		})
	}
}

func TestNetworkFailureSurfacesUnderlyingMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c, rec := newTestClient(t, srv.URL+"/api", &fakeSessionStore{})

	_, err := c.ListAccounts(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnavailable)
	assert.False(t, IsStatus(err, http.StatusInternalServerError))
	require.NotEmpty(t, rec.Texts())
}

func TestCreateAccountRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/accounts/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req models.CreateAccountRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		_ = json.NewEncoder(w).Encode(models.Account{
			ID: "srv-1", Name: req.Name, Type: req.Type, Currency: req.Currency,
		})
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL+"/api", &fakeSessionStore{token: "tok", tenant: "t1"})

	account, err := c.CreateAccount(context.Background(), models.CreateAccountRequest{
		Name: "Savings", Type: models.AccountTypeBank, Currency: "USD",
	})
	require.NoError(t, err)
	assert.Equal(t, "srv-1", account.ID)
	assert.Equal(t, "Savings", account.Name)
}
