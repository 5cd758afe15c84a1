package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to
// operate. The real App type satisfies this interface; tests can provide
// a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Navigate(ctx context.Context, route string)
	SelectTenant(ctx context.Context, id string) error
	NewTenant(ctx context.Context, name string) error
	AddTag(ctx context.Context, name string) error
	SetFilter(ctx context.Context, args []string) error
	Logout(ctx context.Context) error

	addAccount(ctx context.Context) error
	addTransaction(ctx context.Context) error
	addCategory(ctx context.Context) error
	deleteAccount(ctx context.Context, id string) error
	deleteTransaction(ctx context.Context, id string) error
	deleteCategory(ctx context.Context, id string) error
	deleteTag(ctx context.Context, id string) error
}

// runREPL reads a line, parses the first token as the command and
// dispatches to methods on a. Unknown commands are reported back to the
// user. The loop exits on scanner EOF, ctx cancellation, or when the
// user types "exit" or "quit".
//
// View commands navigate through the guards, so an unauthenticated
// "accounts" turns into the login flow with the accounts view resumed
// afterwards.
//
// Any errors returned by command handlers are ignored here; handlers and
// the notification relay surface their own feedback. This keeps the loop
// resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, out io.Writer) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		fmt.Fprintf(out, "ledgerline %s> ", statusFn())
		if !scanner.Scan() {
			return
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(out, "Views:    dashboard, accounts, transactions, categories, tags, profile, tenants")
				fmt.Fprintln(out, "Create:   addaccount, addtxn, addcategory, addtag <name>, newtenant <name>")
				fmt.Fprintln(out, "Edit:     rmaccount <id>, rmtxn <id>, rmcategory <id>, rmtag <id>")
				fmt.Fprintln(out, "Filter:   filter key=value ... | filter reset")
				fmt.Fprintln(out, "Session:  select <tenant-id>, logout, exit")
			} else {
				fmt.Fprintln(out, "Available commands: login, register, exit")
			}

		case "login":
			a.Navigate(ctx, RouteLogin)
		case "register":
			a.Navigate(ctx, RouteRegister)
		case "logout":
			_ = a.Logout(ctx)

		case "tenants":
			a.Navigate(ctx, RouteTenantSelect)
		case "select":
			if len(args) == 0 {
				fmt.Fprintln(out, "Usage: select <tenant-id>")
				continue
			}
			_ = a.SelectTenant(ctx, args[0])
		case "newtenant":
			if len(args) == 0 {
				fmt.Fprintln(out, "Usage: newtenant <name>")
				continue
			}
			_ = a.NewTenant(ctx, strings.Join(args, " "))

		case "dashboard":
			a.Navigate(ctx, RouteDashboard)
		case "accounts":
			a.Navigate(ctx, RouteAccounts)
		case "transactions", "txns":
			a.Navigate(ctx, RouteTransactions)
		case "categories":
			a.Navigate(ctx, RouteCategories)
		case "tags":
			a.Navigate(ctx, RouteTags)
		case "profile":
			a.Navigate(ctx, RouteProfile)

		case "addaccount":
			_ = a.addAccount(ctx)
		case "addtxn":
			_ = a.addTransaction(ctx)
		case "addcategory":
			_ = a.addCategory(ctx)
		case "addtag":
			if len(args) == 0 {
				fmt.Fprintln(out, "Usage: addtag <name>")
				continue
			}
			_ = a.AddTag(ctx, strings.Join(args, " "))

		case "rmaccount":
			if len(args) == 0 {
				fmt.Fprintln(out, "Usage: rmaccount <id>")
				continue
			}
			_ = a.deleteAccount(ctx, args[0])
		case "rmtxn":
			if len(args) == 0 {
				fmt.Fprintln(out, "Usage: rmtxn <id>")
				continue
			}
			_ = a.deleteTransaction(ctx, args[0])
		case "rmcategory":
			if len(args) == 0 {
				fmt.Fprintln(out, "Usage: rmcategory <id>")
				continue
			}
			_ = a.deleteCategory(ctx, args[0])
		case "rmtag":
			if len(args) == 0 {
				fmt.Fprintln(out, "Usage: rmtag <id>")
				continue
			}
			_ = a.deleteTag(ctx, args[0])

		case "filter":
			if len(args) == 0 {
				fmt.Fprintln(out, "Usage: filter key=value ... | filter reset")
				continue
			}
			if err := a.SetFilter(ctx, args); err != nil {
				fmt.Fprintln(out, err)
			}

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}
	}
}
