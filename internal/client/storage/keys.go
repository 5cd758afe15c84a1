package storage

// Typed helpers for the well-known keys. Absent values come back as
// ("", false) so callers never have to distinguish "missing" from
// "unreadable".

// AuthToken returns the stored access token, if any.
func (s *Store) AuthToken() (string, bool) {
	return s.getString(KeyAuthToken)
}

// SetAuthToken stores the access token.
func (s *Store) SetAuthToken(token string) { s.Set(KeyAuthToken, token) }

// RemoveAuthToken deletes the stored access token.
func (s *Store) RemoveAuthToken() { s.Remove(KeyAuthToken) }

// RefreshToken returns the stored refresh token, if any.
func (s *Store) RefreshToken() (string, bool) {
	return s.getString(KeyRefreshToken)
}

// SetRefreshToken stores the refresh token.
func (s *Store) SetRefreshToken(token string) { s.Set(KeyRefreshToken, token) }

// RemoveRefreshToken deletes the stored refresh token.
func (s *Store) RemoveRefreshToken() { s.Remove(KeyRefreshToken) }

// TenantID returns the persisted active tenant id, if any.
func (s *Store) TenantID() (string, bool) {
	return s.getString(KeyTenantID)
}

// SetTenantID persists the active tenant id across sessions.
func (s *Store) SetTenantID(id string) { s.Set(KeyTenantID, id) }

// RemoveTenantID deletes the persisted tenant id.
func (s *Store) RemoveTenantID() { s.Remove(KeyTenantID) }

// Language returns the stored UI language, if any.
func (s *Store) Language() (string, bool) { return s.getString(KeyLanguage) }

// SetLanguage stores the UI language.
func (s *Store) SetLanguage(lang string) { s.Set(KeyLanguage, lang) }

// Theme returns the stored UI theme, if any.
func (s *Store) Theme() (string, bool) { return s.getString(KeyTheme) }

// SetTheme stores the UI theme.
func (s *Store) SetTheme(theme string) { s.Set(KeyTheme, theme) }

// UserPreferences deserializes stored preferences into out.
func (s *Store) UserPreferences(out any) bool {
	return s.Get(KeyUserPreferences, out)
}

// SetUserPreferences stores the user preferences object.
func (s *Store) SetUserPreferences(prefs any) { s.Set(KeyUserPreferences, prefs) }

func (s *Store) getString(key string) (string, bool) {
	var v string
	if !s.Get(key, &v) || v == "" {
		return "", false
	}
	return v, true
}
