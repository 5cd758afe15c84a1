package stores

import (
	"context"
	"sync"

	"github.com/ledgerline/ledgerline/internal/client/api"
	"github.com/ledgerline/ledgerline/internal/client/models"
	"github.com/ledgerline/ledgerline/internal/client/toast"
	"github.com/ledgerline/ledgerline/internal/client/views"
	"github.com/ledgerline/ledgerline/internal/logging"
)

// TransactionAPI is the slice of the API client the transaction store needs.
type TransactionAPI interface {
	ListTransactions(ctx context.Context, query api.TransactionQuery) ([]models.Transaction, error)
	CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) (models.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, req models.UpdateTransactionRequest) (models.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
}

// TransactionStore caches the active tenant's transactions and holds the
// current client-side filter descriptor. The accrual month, account and
// type dimensions are also pushed to the server on List; the remaining
// dimensions are applied client-side on read (see Filtered).
type TransactionStore struct {
	col    *collection[models.Transaction]
	client TransactionAPI
	toast  *toast.Notifier
	log    logging.Logger

	mu      sync.Mutex
	filters views.TransactionFilter
}

func NewTransactionStore(client TransactionAPI, notifier *toast.Notifier, log logging.Logger, tenants *TenantSignal) *TransactionStore {
	s := &TransactionStore{
		col:    newCollection(func(t models.Transaction) string { return t.ID }),
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

// Transactions returns a copy of the cached collection, unfiltered.
func (s *TransactionStore) Transactions() []models.Transaction { return s.col.Items() }

// Filtered applies the current filter descriptor to the cached
// collection. Pull-based: recomputed on every read.
func (s *TransactionStore) Filtered() []models.Transaction {
	return views.FilterTransactions(s.col.Items(), s.Filters())
}

// Loading reports whether a call is in flight.
func (s *TransactionStore) Loading() bool { return s.col.Loading() }

// Len returns the number of cached transactions, ignoring filters.
func (s *TransactionStore) Len() int { return s.col.Len() }

// GetByID looks up a transaction in the cache; no implicit fetch.
func (s *TransactionStore) GetByID(id string) (models.Transaction, bool) { return s.col.GetByID(id) }

// Filters returns the current filter descriptor.
func (s *TransactionStore) Filters() views.TransactionFilter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// SetFilters replaces the filter descriptor. It does not trigger a
// reload; callers decide when to List.
func (s *TransactionStore) SetFilters(f views.TransactionFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = f
}

// ResetFilters clears every filter dimension.
func (s *TransactionStore) ResetFilters() {
	s.SetFilters(views.TransactionFilter{})
}

// List reloads the collection, pushing the server-supported filter
// dimensions as query parameters. Failure semantics match the other
// stores: previous collection kept, toast surfaced, error stops here.
func (s *TransactionStore) List(ctx context.Context) {
	gen := s.col.beginList()

	f := s.Filters()
	transactions, err := s.client.ListTransactions(ctx, api.TransactionQuery{
		AccrualMonth: f.AccrualMonth,
		AccountID:    f.AccountID,
		Type:         f.Type,
	})
	if err != nil {
		s.col.endList(gen)
		s.log.Error(ctx, "loading transactions failed", "err", err)
		s.toast.Error("Failed to load transactions")
		return
	}

	s.col.replaceAll(gen, transactions)
}

// Create creates a transaction and appends the server-issued record.
func (s *TransactionStore) Create(ctx context.Context, req models.CreateTransactionRequest) (models.Transaction, error) {
	gen := s.col.generation()
	s.col.setLoading(true)
	defer s.col.setLoading(false)

	transaction, err := s.client.CreateTransaction(ctx, req)
	if err != nil {
		return models.Transaction{}, err
	}

	s.col.add(gen, transaction)
	s.toast.Success("Transaction created successfully")
	return transaction, nil
}

// Update updates a transaction and replaces the cached entry by id.
func (s *TransactionStore) Update(ctx context.Context, id string, req models.UpdateTransactionRequest) (models.Transaction, error) {
	gen := s.col.generation()
	s.col.setLoading(true)
	defer s.col.setLoading(false)

	transaction, err := s.client.UpdateTransaction(ctx, id, req)
	if err != nil {
		return models.Transaction{}, err
	}

	s.col.replace(gen, id, transaction)
	s.toast.Success("Transaction updated successfully")
	return transaction, nil
}

// Delete deletes a transaction and removes the cached entry by id.
func (s *TransactionStore) Delete(ctx context.Context, id string) error {
	gen := s.col.generation()
	s.col.setLoading(true)
	defer s.col.setLoading(false)

	if err := s.client.DeleteTransaction(ctx, id); err != nil {
		return err
	}

	s.col.remove(gen, id)
	s.toast.Success("Transaction deleted successfully")
	return nil
}
