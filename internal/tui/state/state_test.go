package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestManager_LoadMissingFileOK(t *testing.T) {
	root := t.TempDir()
	m := New(filepath.Join(root, "flowstate", "preferences.json"))
	require.NoError(t, m.Load())
	require.Equal(t, CurrentVersion, m.state.Version)
	require.NotNil(t, m.state.TaskDone)

	_, ok := m.SidebarCollapsed()
	require.False(t, ok)
}

func TestManager_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	m := New(path)
	m.SetTheme("dark")
	m.SetSidebarCollapsed(true)
	m.SetLastView("starred")
	m.SetTaskDone("2", false)
	require.NoError(t, m.Close())

	reloaded := New(path)
	require.NoError(t, reloaded.Load())
	require.Equal(t, "dark", reloaded.Theme())
	collapsed, ok := reloaded.SidebarCollapsed()
	require.True(t, ok)
	require.True(t, collapsed)
	require.Equal(t, "starred", reloaded.LastView())
	done, ok := reloaded.TaskDone("2")
	require.True(t, ok)
	require.False(t, done)
	_, ok = reloaded.TaskDone("1")
	require.False(t, ok)
}

func TestManager_DebouncedSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	m := New(path)
	m.debounce = 10 * time.Millisecond
	m.SetTheme("light")

	require.Eventually(t, func() bool {
		_, err := os.Stat(path)
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, m.Close())
}

func TestManager_CloseWithoutChangesWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	m := New(path)
	require.NoError(t, m.Load())
	require.NoError(t, m.Close())
	_, err := os.Stat(path)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestManager_InMemoryWhenPathEmpty(t *testing.T) {
	m := New("")
	m.SetTheme("dark")
	require.NoError(t, m.Load())
	require.Equal(t, "dark", m.Theme())
	require.NoError(t, m.SaveNow())
	require.NoError(t, m.Close())
}

func TestManager_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	m := New(path)
	require.Error(t, m.Load())
}

func TestManager_SaveUpgradesVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme":"dark"}`), 0o644))

	m := New(path)
	require.NoError(t, m.Load())
	m.SetTheme("light")
	m.SetTaskDone("1", true)
	require.NoError(t, m.SaveNow())
	require.NoError(t, m.Close())

	payload, err := os.ReadFile(path)
	require.NoError(t, err)
	var saved Preferences
	require.NoError(t, json.Unmarshal(payload, &saved))
	require.Equal(t, CurrentVersion, saved.Version)
	require.Equal(t, "light", saved.Theme)
	require.Equal(t, map[string]bool{"1": true}, saved.TaskDone)
	require.Nil(t, saved.SidebarCollapsed)
}
