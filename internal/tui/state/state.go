// Package state persists flowstate UI preferences between sessions. Mail and
// calendar data are never written here.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"
)

const (
	CurrentVersion = 1

	defaultDebounce = 1 * time.Second
)

// Preferences is the on-disk document.
type Preferences struct {
	Version          int             `json:"version"`
	Theme            string          `json:"theme,omitempty"`             // light, dark or system
	SidebarCollapsed *bool           `json:"sidebar_collapsed,omitempty"` // nil defers to config
	LastView         string          `json:"last_view,omitempty"`         // sidebar view id
	TaskDone         map[string]bool `json:"task_done,omitempty"`         // quick task id -> completed
}

type Manager struct {
	path     string
	lockPath string

	mu       sync.Mutex
	state    Preferences
	dirty    bool
	timer    *time.Timer
	debounce time.Duration
}

// New returns a manager for path. An empty path keeps preferences in memory.
func New(path string) *Manager {
	path = strings.TrimSpace(path)
	lockPath := ""
	if path != "" {
		lockPath = path + ".lock"
	}
	return &Manager{
		path:     path,
		lockPath: lockPath,
		state: Preferences{
			Version:  CurrentVersion,
			TaskDone: make(map[string]bool),
		},
		debounce: defaultDebounce,
	}
}

func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.path == "" {
		return nil
	}

	loaded, err := m.loadLocked()
	if err != nil {
		return err
	}
	m.state = loaded
	m.dirty = false
	return nil
}

func (m *Manager) Theme() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Theme
}

func (m *Manager) SetTheme(theme string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	theme = strings.TrimSpace(theme)
	if m.state.Theme == theme {
		return
	}
	m.state.Theme = theme
	m.markDirtyLocked()
}

// SidebarCollapsed returns the saved value and whether one was saved.
func (m *Manager) SidebarCollapsed() (bool, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state.SidebarCollapsed == nil {
		return false, false
	}
	return *m.state.SidebarCollapsed, true
}

func (m *Manager) SetSidebarCollapsed(collapsed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state.SidebarCollapsed != nil && *m.state.SidebarCollapsed == collapsed {
		return
	}
	m.state.SidebarCollapsed = &collapsed
	m.markDirtyLocked()
}

func (m *Manager) LastView() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.LastView
}

func (m *Manager) SetLastView(view string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	view = strings.TrimSpace(view)
	if view == "" || m.state.LastView == view {
		return
	}
	m.state.LastView = view
	m.markDirtyLocked()
}

// TaskDone returns the saved completion for a quick task.
func (m *Manager) TaskDone(id string) (bool, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	done, ok := m.state.TaskDone[strings.TrimSpace(id)]
	return done, ok
}

func (m *Manager) SetTaskDone(id string, done bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id = strings.TrimSpace(id)
	if id == "" {
		return
	}
	if m.state.TaskDone == nil {
		m.state.TaskDone = make(map[string]bool)
	}
	if prev, ok := m.state.TaskDone[id]; ok && prev == done {
		return
	}
	m.state.TaskDone[id] = done
	m.markDirtyLocked()
}

func (m *Manager) Close() error {
	m.mu.Lock()
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	needsSave := m.dirty
	m.mu.Unlock()
	if !needsSave {
		return nil
	}
	return m.SaveNow()
}

func (m *Manager) SaveNow() error {
	m.mu.Lock()
	if m.path == "" {
		m.mu.Unlock()
		return nil
	}
	prefs := clonePreferences(m.state)
	m.dirty = false
	m.mu.Unlock()

	prefs.Version = CurrentVersion

	if err := withFileLock(m.lockPath, func() error {
		return writeAtomicJSON(m.path, prefs)
	}); err != nil {
		m.mu.Lock()
		m.dirty = true
		m.mu.Unlock()
		return err
	}
	return nil
}

func (m *Manager) markDirtyLocked() {
	m.dirty = true
	if m.path == "" {
		return
	}
	if m.timer == nil {
		m.timer = time.AfterFunc(m.debounce, func() {
			_ = m.SaveNow()
		})
		return
	}
	_ = m.timer.Reset(m.debounce)
}

func (m *Manager) loadLocked() (Preferences, error) {
	var out Preferences
	if err := withFileLock(m.lockPath, func() error {
		payload, err := os.ReadFile(m.path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				out = Preferences{Version: CurrentVersion}
				return nil
			}
			return err
		}
		if len(payload) == 0 {
			out = Preferences{Version: CurrentVersion}
			return nil
		}
		if err := json.Unmarshal(payload, &out); err != nil {
			return fmt.Errorf("parse %s: %w", m.path, err)
		}
		return nil
	}); err != nil {
		return Preferences{}, err
	}

	if out.Version <= 0 {
		out.Version = CurrentVersion
	}
	if out.TaskDone == nil {
		out.TaskDone = make(map[string]bool)
	}
	return out, nil
}

func withFileLock(lockPath string, fn func() error) error {
	if strings.TrimSpace(lockPath) == "" {
		return fn()
	}
	if err := os.MkdirAll(filepath.Dir(lockPath), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("lock %s: %w", lockPath, err)
	}
	defer func() {
		_ = syscall.Flock(int(f.Fd()), syscall.LOCK_UN)
	}()
	return fn()
}

func writeAtomicJSON(path string, prefs Preferences) error {
	payload, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func clonePreferences(prefs Preferences) Preferences {
	out := prefs
	if prefs.SidebarCollapsed != nil {
		collapsed := *prefs.SidebarCollapsed
		out.SidebarCollapsed = &collapsed
	}
	if prefs.TaskDone != nil {
		out.TaskDone = make(map[string]bool, len(prefs.TaskDone))
		for k, v := range prefs.TaskDone {
			out.TaskDone[k] = v
		}
	}
	return out
}
