package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDarkModeDefaultsToFalse(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "prefs.json"))
	assert.False(t, s.DarkMode())
}

func TestDarkModeSurvivesReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")

	s := NewStore(path)
	require.NoError(t, s.SetDarkMode(true))

	// A fresh store at the same path simulates a reload.
	reloaded := NewStore(path)
	assert.True(t, reloaded.DarkMode())

	require.NoError(t, reloaded.SetDarkMode(false))
	assert.False(t, NewStore(path).DarkMode())
}

func TestCorruptFileFallsBackToDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := NewStore(path)
	assert.False(t, s.DarkMode())

	// A write repairs the file.
	require.NoError(t, s.SetDarkMode(true))
	assert.True(t, s.DarkMode())
}

func TestStoreCreatesMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "prefs.json")
	s := NewStore(path)
	require.NoError(t, s.SetDarkMode(true))
	assert.True(t, s.DarkMode())
}
