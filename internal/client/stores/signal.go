// Package stores implements the per-entity in-memory stores that cache
// API results and keep them consistent with the active tenant. Each store
// holds an ordered, id-unique collection plus a loading flag; mutation
// always round-trips through the API before the collection changes.
package stores

import (
	"context"
	"sync"
)

// TenantSignal holds the active tenant id and notifies subscribers on
// change. Subscriptions are registered once at store construction and
// live for the process lifetime.
//
// Callbacks run synchronously, in registration order, outside the signal
// lock, so a callback may read the signal but must not call Set.
type TenantSignal struct {
	mu      sync.Mutex
	current string
	subs    []func(ctx context.Context, tenantID string)
}

func NewTenantSignal() *TenantSignal {
	return &TenantSignal{}
}

// Current returns the active tenant id, empty when none is selected.
func (s *TenantSignal) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Subscribe registers fn to run on every tenant change. An empty tenant
// id means the tenant was cleared (logout or deselection).
func (s *TenantSignal) Subscribe(fn func(ctx context.Context, tenantID string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Set switches the active tenant and notifies subscribers. Setting the
// current value again is a no-op.
func (s *TenantSignal) Set(ctx context.Context, tenantID string) {
	s.mu.Lock()
	if s.current == tenantID {
		s.mu.Unlock()
		return
	}
	s.current = tenantID
	subs := make([]func(context.Context, string), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(ctx, tenantID)
	}
}
