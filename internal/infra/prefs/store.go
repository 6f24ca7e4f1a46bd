// Package prefs is a small file-backed key/value store. It is the
// service analogue of the browser localStorage the admin panel used for
// the bearer token, theme, currency and builder preview URL.
package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"staradmin/config"

	"github.com/pkg/errors"
)

// Well-known preference keys.
const (
	KeyAuthToken  = "admin_auth_token"
	KeyTheme      = "theme"
	KeyCurrency   = "currency"
	KeyPreviewURL = "site_builder_preview_url"
)

// Store persists string preferences as a single JSON file. Every write
// goes through a temp-file rename so a crash never leaves a torn file.
type Store struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// New loads the preference file at the configured path, creating an
// empty store when the file does not exist yet.
func New(cfg *config.Config) (*Store, error) {
	return Open(cfg.Prefs.Path)
}

// Open loads the preference file at path.
func Open(path string) (*Store, error) {
	s := &Store{path: path, values: map[string]string{}}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read prefs file")
	}
	if len(raw) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(raw, &s.values); err != nil {
		return nil, errors.Wrap(err, "decode prefs file")
	}

	return s, nil
}

// Get returns the stored value for key, or "" when absent.
func (s *Store) Get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.values[key]
}

// Set stores value under key and flushes to disk.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value

	return s.flushLocked()
}

// Delete removes key and flushes to disk. Deleting an absent key is a
// no-op.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.values[key]; !ok {
		return nil
	}
	delete(s.values, key)

	return s.flushLocked()
}

func (s *Store) flushLocked() error {
	raw, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode prefs")
	}

	dir := filepath.Dir(s.path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "create prefs dir")
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return errors.Wrap(err, "write prefs file")
	}

	return errors.Wrap(os.Rename(tmp, s.path), "replace prefs file")
}
