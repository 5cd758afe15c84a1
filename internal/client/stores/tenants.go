package stores

import (
	"context"
	"fmt"
	"sync"

	"github.com/ledgerline/ledgerline/internal/client/models"
	"github.com/ledgerline/ledgerline/internal/client/toast"
	"github.com/ledgerline/ledgerline/internal/common"
	"github.com/ledgerline/ledgerline/internal/logging"
)

// TenantAPI is the slice of the API client the tenant store needs.
type TenantAPI interface {
	ListUserTenants(ctx context.Context) ([]models.Tenant, error)
	CreateTenant(ctx context.Context, req models.CreateTenantRequest) (models.Tenant, error)
}

// TenantStorage persists the selected tenant id across sessions.
type TenantStorage interface {
	TenantID() (string, bool)
	SetTenantID(id string)
	RemoveTenantID()
}

// TenantStore manages the user's tenant list and the active tenant
// selection. Selecting a tenant persists the id and fires the tenant
// signal, which the entity stores subscribe to.
type TenantStore struct {
	client  TenantAPI
	storage TenantStorage
	signal  *TenantSignal
	toast   *toast.Notifier
	log     logging.Logger

	mu      sync.Mutex
	tenants []models.Tenant
}

func NewTenantStore(client TenantAPI, storage TenantStorage, signal *TenantSignal, notifier *toast.Notifier, log logging.Logger) *TenantStore {
	return &TenantStore{
		client:  client,
		storage: storage,
		signal:  signal,
		toast:   notifier,
		log:     log,
	}
}

// UserTenants returns a copy of the loaded tenant list.
func (s *TenantStore) UserTenants() []models.Tenant {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Tenant, len(s.tenants))
	copy(out, s.tenants)
	return out
}

// CurrentTenantID returns the active tenant id, empty when none is
// selected.
func (s *TenantStore) CurrentTenantID() string { return s.signal.Current() }

// CurrentTenant returns the active tenant's record from the loaded list.
func (s *TenantStore) CurrentTenant() (models.Tenant, bool) {
	return s.find(s.signal.Current())
}

func (s *TenantStore) find(id string) (models.Tenant, bool) {
	if id == "" {
		return models.Tenant{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tenants {
		if t.TenantID == id {
			return t, true
		}
	}
	return models.Tenant{}, false
}

// LoadUserTenants fetches the tenants the user belongs to. Unlike the
// entity stores the error is propagated: login and tenant selection
// flows need to know whether the list is usable.
func (s *TenantStore) LoadUserTenants(ctx context.Context) ([]models.Tenant, error) {
	tenants, err := s.client.ListUserTenants(ctx)
	if err != nil {
		s.toast.Error("Failed to load tenants")
		return nil, err
	}

	s.mu.Lock()
	s.tenants = tenants
	s.mu.Unlock()
	return tenants, nil
}

// Select makes the tenant with the given id active. The id must be in
// the loaded tenant list; selection persists across sessions and fires
// the tenant signal, reloading every entity store.
func (s *TenantStore) Select(ctx context.Context, id string) error {
	tenant, ok := s.find(id)
	if !ok {
		return fmt.Errorf("tenant %q: %w", id, common.ErrNotFound)
	}

	s.storage.SetTenantID(id)
	s.signal.Set(ctx, id)
	s.toast.Success("Switched to " + tenant.Name)
	return nil
}

// Create creates a tenant, reloads the user's tenant list (the backend
// links the new tenant to the creating user) and auto-selects it.
func (s *TenantStore) Create(ctx context.Context, name string) (models.Tenant, error) {
	tenant, err := s.client.CreateTenant(ctx, models.CreateTenantRequest{Name: name})
	if err != nil {
		return models.Tenant{}, err
	}

	if _, err := s.LoadUserTenants(ctx); err != nil {
		return tenant, err
	}
	if err := s.Select(ctx, tenant.TenantID); err != nil {
		return tenant, err
	}
	s.toast.Success("Tenant created successfully!")
	return tenant, nil
}

// Restore reinstates a tenant selection persisted by an earlier
// session. Called on startup after authentication; a missing stored id
// is not an error.
func (s *TenantStore) Restore(ctx context.Context) {
	id, ok := s.storage.TenantID()
	if !ok {
		return
	}
	s.log.Debug(ctx, "restoring tenant selection", "tenant", id)
	s.signal.Set(ctx, id)
}

// Clear drops the tenant selection, both persisted and in memory. The
// signal change clears every entity store synchronously.
func (s *TenantStore) Clear(ctx context.Context) {
	s.storage.RemoveTenantID()
	s.signal.Set(ctx, "")
	s.mu.Lock()
	s.tenants = nil
	s.mu.Unlock()
}
