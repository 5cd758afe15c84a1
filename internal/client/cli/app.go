package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/ledgerline/ledgerline/internal/client/api"
	"github.com/ledgerline/ledgerline/internal/client/config"
	"github.com/ledgerline/ledgerline/internal/client/models"
	"github.com/ledgerline/ledgerline/internal/client/storage"
	"github.com/ledgerline/ledgerline/internal/client/stores"
	"github.com/ledgerline/ledgerline/internal/client/toast"
	"github.com/ledgerline/ledgerline/internal/common"
	"github.com/ledgerline/ledgerline/internal/logging"
)

// App is the ledgerline CLI application: storage, API client, entity
// stores and the REPL state (current route, pending return route,
// authenticated user).
type App struct {
	config  *config.Config
	api     *api.Client
	storage *storage.Store
	toast   *toast.Notifier
	guard   *Guard
	log     logging.Logger

	signal       *stores.TenantSignal
	accounts     *stores.AccountStore
	transactions *stores.TransactionStore
	categories   *stores.CategoryStore
	tags         *stores.TagStore
	tenants      *stores.TenantStore

	reader   *bufio.Reader
	out      io.Writer
	user     models.User
	route    string
	returnTo string
}

// AppOption configures an App.
type AppOption func(*App)

// WithInput replaces stdin, for tests.
func WithInput(r io.Reader) AppOption {
	return func(a *App) { a.reader = bufio.NewReader(r) }
}

// WithOutput replaces stdout, for tests.
func WithOutput(w io.Writer) AppOption {
	return func(a *App) { a.out = w }
}

// WithSink replaces the toast sink, for tests. Must be applied through
// NewApp so the stores pick up the replacement notifier.
func WithSink(sink toast.Sink) AppOption {
	return func(a *App) { a.toast = toast.NewNotifier(sink) }
}

// NewApp wires the full client: persistent store, notification relay,
// API client with the request pipeline, tenant signal and entity stores.
func NewApp(cfg *config.Config, log logging.Logger, opts ...AppOption) (*App, error) {
	a := &App{
		config: cfg,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		route:  RouteLogin,
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.toast == nil {
		a.toast = toast.NewNotifier(toast.NewWriterSink(a.out))
	}

	a.storage = storage.New(cfg.StoragePath, log)
	a.guard = NewGuard(a.storage, a.toast)

	apiClient, err := api.New(cfg.APIBaseURL, a.storage, a.toast, log,
		api.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}))
	if err != nil {
		return nil, err
	}
	a.api = apiClient
	a.api.OnSessionExpired(a.handleSessionExpired)

	a.signal = stores.NewTenantSignal()
	a.accounts = stores.NewAccountStore(a.api, a.toast, log, a.signal)
	a.transactions = stores.NewTransactionStore(a.api, a.toast, log, a.signal)
	a.categories = stores.NewCategoryStore(a.api, a.toast, log, a.signal)
	a.tags = stores.NewTagStore(a.api, a.toast, log, a.signal)
	a.tenants = stores.NewTenantStore(a.api, a.storage, a.signal, a.toast, log)

	return a, nil
}

// Run restores any persisted session, then starts the REPL. Blocks
// until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to ledgerline CLI (type 'help' for commands)")

	if a.isLoggedIn() {
		if _, err := a.tenants.LoadUserTenants(ctx); err == nil {
			a.tenants.Restore(ctx)
		}
		a.route = RouteDashboard
	}

	scanner := bufio.NewScanner(a.reader)
	runREPL(ctx, a, a.status, scanner, a.out)
}

func (a *App) isLoggedIn() bool {
	_, ok := a.storage.AuthToken()
	return ok
}

// requireTenantContext protects the mutation commands, which do not go
// through Navigate: they need a session and a selected tenant just like
// the views they act on.
func (a *App) requireTenantContext() error {
	if !a.isLoggedIn() {
		a.toast.Warning("Please login to access this page")
		return common.ErrUnauthorized
	}
	if _, ok := a.storage.TenantID(); !ok {
		a.toast.Warning("Please select a tenant to continue")
		return common.ErrNoTenant
	}
	return nil
}

func (a *App) status() string {
	s := ""
	if a.user.Email != "" {
		s = a.user.Email
	}
	if tenant, ok := a.tenants.CurrentTenant(); ok {
		if s != "" {
			s += " @ "
		}
		s += tenant.Name
	}
	if s != "" {
		s = fmt.Sprintf("(%s) ", s)
	}
	return s
}

// Navigate moves to a route, consulting the guards. A rejected
// navigation redirects and remembers the requested route; completing
// the redirect target (login, tenant selection) resumes it.
func (a *App) Navigate(ctx context.Context, route string) {
	switch {
	case isGuestRoute(route):
		if d := a.guard.RequireGuest(); !d.Allowed {
			a.Navigate(ctx, d.RedirectTo)
			return
		}
	case route == RouteTenantSelect:
		if d := a.guard.RequireAuth(route); !d.Allowed {
			a.redirect(ctx, d)
			return
		}
	case isProtectedRoute(route):
		if d := a.guard.RequireAuth(route); !d.Allowed {
			a.redirect(ctx, d)
			return
		}
		if d := a.guard.RequireTenant(route); !d.Allowed {
			a.redirect(ctx, d)
			return
		}
	default:
		// unmatched paths land on login
		a.Navigate(ctx, RouteLogin)
		return
	}

	a.route = route
	a.render(ctx, route)
}

func (a *App) redirect(ctx context.Context, d Decision) {
	path, returnTo := splitReturnURL(d.RedirectTo)
	a.returnTo = returnTo
	a.route = path
	a.render(ctx, path)
}

// resume re-navigates to the route a guard redirect preserved, if any.
func (a *App) resume(ctx context.Context) {
	if a.returnTo == "" {
		return
	}
	route := a.returnTo
	a.returnTo = ""
	a.Navigate(ctx, route)
}

func (a *App) render(ctx context.Context, route string) {
	switch route {
	case RouteLogin:
		a.Login(ctx)
	case RouteRegister:
		a.Register(ctx)
	case RouteTenantSelect:
		a.showTenantSelect(ctx)
	case RouteDashboard:
		a.showDashboard(ctx)
	case RouteAccounts:
		a.showAccounts(ctx)
	case RouteTransactions:
		a.showTransactions(ctx)
	case RouteCategories:
		a.showCategories(ctx)
	case RouteTags:
		a.showTags(ctx)
	case RouteProfile:
		a.showProfile(ctx)
	}
}

// handleSessionExpired runs after a 401 cleared the stored credentials:
// drop the in-memory session, empty the tenant-scoped collections and
// route back to login, remembering where the user was.
func (a *App) handleSessionExpired() {
	a.user = models.User{}
	a.tenants.Clear(context.Background())
	if isProtectedRoute(a.route) {
		a.returnTo = a.route
	}
	a.route = RouteLogin
}
