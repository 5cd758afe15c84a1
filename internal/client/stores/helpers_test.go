package stores

import (
	"context"
	"sync"
	"time"

	"github.com/ledgerline/ledgerline/internal/client/api"
	"github.com/ledgerline/ledgerline/internal/client/models"
	"github.com/ledgerline/ledgerline/internal/client/toast"
	"github.com/ledgerline/ledgerline/internal/logging"
)

// Polling intervals for assert/require Eventually.
const (
	waitFor = time.Second
	tick    = 5 * time.Millisecond
)

func testLogger() logging.Logger {
	return logging.Discard()
}

func newTestNotifier() (*toast.Notifier, *toast.Recorder) {
	rec := &toast.Recorder{}
	return toast.NewNotifier(rec), rec
}

// fakeAccountAPI serves canned responses. The optional block channel
// makes a call hang until released, closing entered first, so tests can
// deterministically interleave a tenant change with an in-flight request.
type fakeAccountAPI struct {
	mu       sync.Mutex
	accounts []models.Account
	listErr  error
	block    chan struct{}
	entered  chan struct{}

	created models.Account
	updated models.Account
	callErr error
}

func (f *fakeAccountAPI) wait() {
	if f.block != nil {
		if f.entered != nil {
			close(f.entered)
		}
		<-f.block
	}
}

func (f *fakeAccountAPI) setAccounts(accounts []models.Account) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accounts = accounts
}

func (f *fakeAccountAPI) ListAccounts(ctx context.Context) ([]models.Account, error) {
	f.wait()
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Account, len(f.accounts))
	copy(out, f.accounts)
	return out, nil
}

func (f *fakeAccountAPI) CreateAccount(ctx context.Context, req models.CreateAccountRequest) (models.Account, error) {
	f.wait()
	if f.callErr != nil {
		return models.Account{}, f.callErr
	}
	return f.created, nil
}

func (f *fakeAccountAPI) UpdateAccount(ctx context.Context, id string, req models.UpdateAccountRequest) (models.Account, error) {
	if f.callErr != nil {
		return models.Account{}, f.callErr
	}
	return f.updated, nil
}

func (f *fakeAccountAPI) DeleteAccount(ctx context.Context, id string) error {
	return f.callErr
}

type fakeTransactionAPI struct {
	transactions []models.Transaction
	listErr      error
	lastQuery    api.TransactionQuery

	created models.Transaction
	updated models.Transaction
	callErr error
}

func (f *fakeTransactionAPI) ListTransactions(ctx context.Context, query api.TransactionQuery) ([]models.Transaction, error) {
	f.lastQuery = query
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.transactions, nil
}

func (f *fakeTransactionAPI) CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) (models.Transaction, error) {
	if f.callErr != nil {
		return models.Transaction{}, f.callErr
	}
	return f.created, nil
}

func (f *fakeTransactionAPI) UpdateTransaction(ctx context.Context, id string, req models.UpdateTransactionRequest) (models.Transaction, error) {
	if f.callErr != nil {
		return models.Transaction{}, f.callErr
	}
	return f.updated, nil
}

func (f *fakeTransactionAPI) DeleteTransaction(ctx context.Context, id string) error {
	return f.callErr
}

type fakeCategoryAPI struct {
	categories []models.Category
	listErr    error
	listCalls  int

	created models.Category
	callErr error
}

func (f *fakeCategoryAPI) ListCategories(ctx context.Context) ([]models.Category, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.categories, nil
}

func (f *fakeCategoryAPI) CreateCategory(ctx context.Context, req models.CreateCategoryRequest) (models.Category, error) {
	if f.callErr != nil {
		return models.Category{}, f.callErr
	}
	return f.created, nil
}

func (f *fakeCategoryAPI) UpdateCategory(ctx context.Context, id string, req models.UpdateCategoryRequest) (models.Category, error) {
	if f.callErr != nil {
		return models.Category{}, f.callErr
	}
	return models.Category{ID: id, Name: req.Name, Type: req.Type, ParentCategoryID: req.ParentCategoryID}, nil
}

func (f *fakeCategoryAPI) DeleteCategory(ctx context.Context, id string) error {
	return f.callErr
}

type fakeTagAPI struct {
	tags    []models.Tag
	listErr error

	created models.Tag
	callErr error
	block   chan struct{}
}

func (f *fakeTagAPI) ListTags(ctx context.Context) ([]models.Tag, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.tags, nil
}

func (f *fakeTagAPI) CreateTag(ctx context.Context, req models.CreateTagRequest) (models.Tag, error) {
	if f.block != nil {
		<-f.block
	}
	if f.callErr != nil {
		return models.Tag{}, f.callErr
	}
	return f.created, nil
}

func (f *fakeTagAPI) UpdateTag(ctx context.Context, id string, req models.UpdateTagRequest) (models.Tag, error) {
	if f.callErr != nil {
		return models.Tag{}, f.callErr
	}
	return models.Tag{ID: id, Name: req.Name}, nil
}

func (f *fakeTagAPI) DeleteTag(ctx context.Context, id string) error {
	return f.callErr
}

type fakeTenantAPI struct {
	tenants   []models.Tenant
	listErr   error
	created   models.Tenant
	createErr error
}

func (f *fakeTenantAPI) ListUserTenants(ctx context.Context) ([]models.Tenant, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.tenants, nil
}

func (f *fakeTenantAPI) CreateTenant(ctx context.Context, req models.CreateTenantRequest) (models.Tenant, error) {
	if f.createErr != nil {
		return models.Tenant{}, f.createErr
	}
	return f.created, nil
}

type fakeTenantStorage struct {
	id  string
	set bool
}

func (f *fakeTenantStorage) TenantID() (string, bool) { return f.id, f.set }
func (f *fakeTenantStorage) SetTenantID(id string)    { f.id, f.set = id, true }
func (f *fakeTenantStorage) RemoveTenantID()          { f.id, f.set = "", false }
