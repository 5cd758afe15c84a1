package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/ledgerline/internal/logging"
)

func testLogger() logging.Logger {
	return logging.Discard()
}

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.json")
	return New(path, testLogger()), path
}

func TestSetGetRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)

	s.Set("k", map[string]int{"a": 1})

	var out map[string]int
	require.True(t, s.Get("k", &out))
	assert.Equal(t, map[string]int{"a": 1}, out)
}

func TestGetMissingKey(t *testing.T) {
	s, _ := newTestStore(t)

	var out string
	assert.False(t, s.Get("nope", &out))
	assert.Empty(t, out)
}

func TestPersistsAcrossInstances(t *testing.T) {
	s, path := newTestStore(t)
	s.SetAuthToken("tok")
	s.SetTenantID("t1")

	s2 := New(path, testLogger())

	token, ok := s2.AuthToken()
	require.True(t, ok)
	assert.Equal(t, "tok", token)

	tenant, ok := s2.TenantID()
	require.True(t, ok)
	assert.Equal(t, "t1", tenant)
}

func TestMalformedFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte(`{ not json`), 0o600))

	s := New(path, testLogger())

	_, ok := s.AuthToken()
	assert.False(t, ok)

	// the store must still be usable
	s.SetAuthToken("tok")
	token, ok := s.AuthToken()
	require.True(t, ok)
	assert.Equal(t, "tok", token)
}

func TestMalformedValueTreatedAsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"auth_token": 42}`), 0o600))

	s := New(path, testLogger())

	_, ok := s.AuthToken()
	assert.False(t, ok)
}

func TestRemoveAndClear(t *testing.T) {
	s, _ := newTestStore(t)
	s.SetAuthToken("tok")
	s.SetTenantID("t1")

	s.RemoveAuthToken()
	_, ok := s.AuthToken()
	assert.False(t, ok)

	tenant, ok := s.TenantID()
	require.True(t, ok)
	assert.Equal(t, "t1", tenant)

	s.Clear()
	_, ok = s.TenantID()
	assert.False(t, ok)
}

func TestWriteFailureIsNoOp(t *testing.T) {
	// point the store at a path whose parent directory does not exist
	path := filepath.Join(t.TempDir(), "missing", "state.json")
	s := New(path, testLogger())

	require.NotPanics(t, func() { s.SetAuthToken("tok") })

	// value stays readable in memory for this session
	token, ok := s.AuthToken()
	require.True(t, ok)
	assert.Equal(t, "tok", token)
}

func TestUserPreferences(t *testing.T) {
	s, _ := newTestStore(t)

	type prefs struct {
		Language string `json:"language"`
		Compact  bool   `json:"compact"`
	}
	s.SetUserPreferences(prefs{Language: "en", Compact: true})

	var out prefs
	require.True(t, s.UserPreferences(&out))
	assert.Equal(t, prefs{Language: "en", Compact: true}, out)
}
