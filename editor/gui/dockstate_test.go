package gui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutStateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")

	s := DefaultLayoutState()
	s.ShowAdhesion = true
	s.ShowModes = false
	s.AllHidden = true
	require.NoError(t, s.Save(path))

	loaded, err := LoadLayoutState(path)
	require.NoError(t, err)
	assert.Equal(t, s, loaded)
}

func TestLayoutStateMissingFileUsesDefaults(t *testing.T) {
	s, err := LoadLayoutState(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultLayoutState(), s)
}

func TestLayoutStateBadYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o644))
	_, err := LoadLayoutState(path)
	assert.Error(t, err)
}

func TestLayoutSaverInterval(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	saver := NewLayoutSaver(path)
	s := DefaultLayoutState()

	// Interval has not elapsed yet, nothing written.
	require.NoError(t, saver.Tick(s))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	saver.last = time.Now().Add(-3 * time.Second)
	require.NoError(t, saver.Tick(s))
	_, err = os.Stat(path)
	assert.NoError(t, err)
}
