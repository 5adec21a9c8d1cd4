// Package prefs persists the client's display preferences. There is a
// single source of truth injected at the application root instead of
// ad hoc reads scattered across views.
package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// darkModeKey is the fixed key the preference is stored under.
const darkModeKey = "panpath-dark-mode"

// Store reads and writes preferences at a fixed file path.
type Store struct {
	path string
}

// DefaultPath returns the preference file location under the user config
// directory.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(configDir, "panpath", "prefs.json")
}

// NewStore returns a store at the given path, or the default when empty.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath()
	}
	return &Store{path: path}
}

// DarkMode reads the persisted flag. A missing or unreadable file means
// the default (false).
func (s *Store) DarkMode() bool {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return false
	}
	var prefs map[string]bool
	if err := json.Unmarshal(data, &prefs); err != nil {
		return false
	}
	return prefs[darkModeKey]
}

// SetDarkMode persists the flag, creating the directory on first write.
func (s *Store) SetDarkMode(enabled bool) error {
	prefs := map[string]bool{}
	if data, err := os.ReadFile(s.path); err == nil {
		// best effort: a corrupt file is overwritten
		json.Unmarshal(data, &prefs)
	}
	prefs[darkModeKey] = enabled

	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating prefs dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing prefs: %w", err)
	}
	return nil
}
