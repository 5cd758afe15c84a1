package stores

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ledgerline/ledgerline/internal/client/models"
	"github.com/ledgerline/ledgerline/internal/client/toast"
	"github.com/ledgerline/ledgerline/internal/client/views"
	"github.com/ledgerline/ledgerline/internal/logging"
)

// AccountAPI is the slice of the API client the account store needs.
type AccountAPI interface {
	ListAccounts(ctx context.Context) ([]models.Account, error)
	CreateAccount(ctx context.Context, req models.CreateAccountRequest) (models.Account, error)
	UpdateAccount(ctx context.Context, id string, req models.UpdateAccountRequest) (models.Account, error)
	DeleteAccount(ctx context.Context, id string) error
}

// AccountStore caches the active tenant's accounts.
type AccountStore struct {
	col    *collection[models.Account]
	client AccountAPI
	toast  *toast.Notifier
	log    logging.Logger
}

// NewAccountStore constructs the store and registers its tenant
// subscription: a newly selected tenant triggers a reload, a cleared
// tenant empties the collection without a network call.
func NewAccountStore(client AccountAPI, notifier *toast.Notifier, log logging.Logger, tenants *TenantSignal) *AccountStore {
	s := &AccountStore{
		col:    newCollection(func(a models.Account) string { return a.ID }),
		client: client,
		toast:  notifier,
		log:    log,
	}
	tenants.Subscribe(func(ctx context.Context, tenantID string) {
		s.col.clear()
		if tenantID != "" {
			s.List(ctx)
		}
	})
	return s
}

// Accounts returns a copy of the cached collection.
func (s *AccountStore) Accounts() []models.Account { return s.col.Items() }

// Loading reports whether a call is in flight.
func (s *AccountStore) Loading() bool { return s.col.Loading() }

// Len returns the number of cached accounts.
func (s *AccountStore) Len() int { return s.col.Len() }

// GetByID looks up an account in the cache; no implicit fetch.
func (s *AccountStore) GetByID(id string) (models.Account, bool) { return s.col.GetByID(id) }

// TotalBalance sums the initial balances of the cached accounts.
func (s *AccountStore) TotalBalance() decimal.Decimal {
	return views.TotalInitialBalance(s.col.Items())
}

// List reloads the collection from the server. A failed list leaves the
// previous collection in place and surfaces a toast; the error stops
// here. A stale response (an overlapping newer list, or a tenant change
// mid-flight) is discarded.
func (s *AccountStore) List(ctx context.Context) {
	gen := s.col.beginList()

	accounts, err := s.client.ListAccounts(ctx)
	if err != nil {
		s.col.endList(gen)
		s.log.Error(ctx, "loading accounts failed", "err", err)
		s.toast.Error("Failed to load accounts")
		return
	}

	s.col.replaceAll(gen, accounts)
}

// Create creates an account and appends the server-issued record. The
// error is propagated so forms can show field-level feedback.
func (s *AccountStore) Create(ctx context.Context, req models.CreateAccountRequest) (models.Account, error) {
	gen := s.col.generation()
	s.col.setLoading(true)
	defer s.col.setLoading(false)

	account, err := s.client.CreateAccount(ctx, req)
	if err != nil {
		return models.Account{}, err
	}

	s.col.add(gen, account)
	s.toast.Success("Account created successfully")
	return account, nil
}

// Update updates an account and replaces the cached entry by id.
func (s *AccountStore) Update(ctx context.Context, id string, req models.UpdateAccountRequest) (models.Account, error) {
	gen := s.col.generation()
	s.col.setLoading(true)
	defer s.col.setLoading(false)

	account, err := s.client.UpdateAccount(ctx, id, req)
	if err != nil {
		return models.Account{}, err
	}

	s.col.replace(gen, id, account)
	s.toast.Success("Account updated successfully")
	return account, nil
}

// Delete deletes an account and removes the cached entry by id.
func (s *AccountStore) Delete(ctx context.Context, id string) error {
	gen := s.col.generation()
	s.col.setLoading(true)
	defer s.col.setLoading(false)

	if err := s.client.DeleteAccount(ctx, id); err != nil {
		return err
	}

	s.col.remove(gen, id)
	s.toast.Success("Account deleted successfully")
	return nil
}
