// Package storage implements the persistent client state store: a small
// JSON file holding the auth token, active tenant id and user preferences.
//
// The store is deliberately forgiving: a write failure (e.g. read-only
// filesystem) or a malformed file is logged and treated as absent/no-op.
// Storage is local, so failures are terminal for that single operation —
// no retries.
package storage

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"github.com/ledgerline/ledgerline/internal/logging"
)

// Well-known keys. Values are JSON-serialized.
const (
	KeyAuthToken       = "auth_token"
	KeyRefreshToken    = "refresh_token"
	KeyTenantID        = "tenant_id"
	KeyLanguage        = "language"
	KeyTheme           = "theme"
	KeyUserPreferences = "user_preferences"
)

// Store is a process-wide, concurrency-safe key-value store persisted to a
// single JSON file. All operations are synchronous and never propagate
// storage failures past their own boundary.
type Store struct {
	mu   sync.Mutex
	path string
	data map[string]json.RawMessage
	log  logging.Logger
}

// New loads the store from path, creating an empty store if the file does
// not exist or cannot be parsed.
func New(path string, log logging.Logger) *Store {
	s := &Store{path: path, data: map[string]json.RawMessage{}, log: log}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn(context.Background(), "cannot read state file, starting empty", "path", path, "err", err)
		}
		return s
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		s.log.Warn(context.Background(), "malformed state file, starting empty", "path", path, "err", err)
		s.data = map[string]json.RawMessage{}
	}
	return s
}

// Set serializes value and stores it under key. Serialization or write
// failures are logged and the operation becomes a no-op.
func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(value)
	if err != nil {
		s.log.Error(context.Background(), "cannot serialize value", "key", key, "err", err)
		return
	}
	s.data[key] = raw
	s.persist()
}

// Get deserializes the value stored under key into out and reports whether
// a usable value was present. A missing key or malformed content yields
// false and leaves out untouched.
func (s *Store) Get(key string, out any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.data[key]
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.log.Warn(context.Background(), "malformed stored value", "key", key, "err", err)
		return false
	}
	return true
}

// Remove deletes the value stored under key.
func (s *Store) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	s.persist()
}

// Clear removes every stored value.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = map[string]json.RawMessage{}
	s.persist()
}

// persist writes the whole map back to disk. Caller holds the lock.
func (s *Store) persist() {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		s.log.Error(context.Background(), "cannot serialize state", "err", err)
		return
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		s.log.Error(context.Background(), "cannot write state file", "path", s.path, "err", err)
	}
}
