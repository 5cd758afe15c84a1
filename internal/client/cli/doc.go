// Package cli provides the interactive ledgerline command-line client.
//
// It wires configuration, the persistent key-value store, the API client
// and the entity stores into a REPL whose commands map onto the route
// surface of the application: auth pages (guest-only), tenant selection
// (auth-only) and a guarded subtree of entity views requiring both
// authentication and a selected tenant.
//
// Navigation goes through Navigate, which consults the route guards.
// A rejected navigation redirects (login or tenant selection) and
// preserves the originally requested route; after the user completes
// the redirect target, the pending route is resumed.
//
// The REPL is started via App.Run(ctx), which blocks until the user
// exits. See App, Navigate and runREPL for details.
package cli
