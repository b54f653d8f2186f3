// Package tui is the flowstate Bubble Tea interface: sidebar, timeline,
// context panel and compose overlay.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tOgg1/flowstate/internal/calendar"
	"github.com/tOgg1/flowstate/internal/fixtures"
	"github.com/tOgg1/flowstate/internal/logging"
	"github.com/tOgg1/flowstate/internal/models"
	"github.com/tOgg1/flowstate/internal/timeline"
	"github.com/tOgg1/flowstate/internal/tui/state"
	"github.com/tOgg1/flowstate/internal/tui/styles"
)

const (
	defaultRefreshInterval = time.Minute
	toastDuration          = 2 * time.Second
)

// Config configures a Model.
type Config struct {
	Data             fixtures.Dataset
	Theme            string
	RefreshInterval  time.Duration
	UpcomingLimit    int
	FocusMode        bool
	SidebarCollapsed bool
	View             string

	// ThemeExplicit and SidebarExplicit mark values pinned for this run; saved
	// preferences do not replace them.
	ThemeExplicit   bool
	SidebarExplicit bool

	// StatePath is the preferences file; empty keeps preferences in memory.
	StatePath string

	// Clock defaults to time.Now.
	Clock func() time.Time

	// HasDarkBackground resolves the "system" theme; defaults to querying the terminal.
	HasDarkBackground func() bool
}

type Model struct {
	data          fixtures.Dataset
	prefs         *state.Manager
	clock         func() time.Time
	now           time.Time
	refresh       time.Duration
	upcomingLimit int
	logger        zerolog.Logger

	themeName string
	theme     styles.Theme
	hasDark   bool

	width     int
	height    int
	view      ViewID
	collapsed bool
	showHelp  bool

	focusMode bool
	session   models.FocusSession

	groups   []timeline.Group
	items    []models.TimelineItem
	selected int
	offset   int

	cal       calendar.Cursor
	eventDays map[calendar.DayKey]bool
	tasks     []models.QuickTask

	compose  composeState
	toast    string
	toastSeq int
}

type tickMsg time.Time

type clearToastMsg struct {
	seq int
}

// NewModel builds the model and restores saved preferences over the cfg
// values not marked explicit.
func NewModel(cfg Config) (*Model, error) {
	cfg = cfg.normalize()
	if _, ok := styles.Themes[cfg.Theme]; !ok && cfg.Theme != "system" {
		return nil, fmt.Errorf("invalid theme %q", cfg.Theme)
	}

	m := &Model{
		data:          cfg.Data,
		prefs:         state.New(cfg.StatePath),
		clock:         cfg.Clock,
		refresh:       cfg.RefreshInterval,
		upcomingLimit: cfg.UpcomingLimit,
		logger:        logging.Component("tui"),
		themeName:     cfg.Theme,
		view:          parseView(cfg.View),
		collapsed:     cfg.SidebarCollapsed,
	}
	if err := m.prefs.Load(); err != nil {
		// Non-fatal: fall back to in-memory defaults.
		m.logger.Warn().Err(err).Str("path", cfg.StatePath).Msg("load preferences")
	}
	if theme := m.prefs.Theme(); theme != "" && !cfg.ThemeExplicit {
		m.themeName = theme
	}
	if collapsed, ok := m.prefs.SidebarCollapsed(); ok && !cfg.SidebarExplicit {
		m.collapsed = collapsed
	}
	if view := m.prefs.LastView(); view != "" && cfg.View == "" {
		m.view = parseView(view)
	}

	m.hasDark = cfg.HasDarkBackground()
	m.theme = styles.Resolve(m.themeName, func() bool { return m.hasDark })

	m.now = m.clock()
	m.cal = calendar.NewCursor(m.now)
	m.eventDays = calendar.EventDays(m.data.Events, m.now.Location())
	m.tasks = make([]models.QuickTask, len(m.data.Tasks))
	copy(m.tasks, m.data.Tasks)
	for i := range m.tasks {
		if done, ok := m.prefs.TaskDone(m.tasks[i].ID); ok {
			m.tasks[i].Completed = done
		}
	}
	if cfg.FocusMode {
		m.setFocus(true)
	}
	m.recompute()
	return m, nil
}

// Run starts the program on the alternate screen and blocks until it exits.
func Run(cfg Config) error {
	model, err := NewModel(cfg)
	if err != nil {
		return err
	}
	defer model.Close()

	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

// Close flushes pending preference writes.
func (m *Model) Close() error {
	if m == nil || m.prefs == nil {
		return nil
	}
	return m.prefs.Close()
}

func (m *Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		return m, nil
	case tickMsg:
		m.now = m.clock()
		m.recompute()
		return m, m.tickCmd()
	case clearToastMsg:
		if typed.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.compose.active {
			return m, m.handleComposeKey(typed)
		}
		if m.showHelp {
			switch typed.String() {
			case "?", "esc", "q":
				m.showHelp = false
			}
			return m, nil
		}
		return m, m.handleKey(typed)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		return tea.Quit
	case "?":
		m.showHelp = true
	case "c":
		m.openCompose()
	case "f":
		m.setFocus(!m.focusMode)
		m.recompute()
	case "esc":
		// Compose is closed; nothing else listens for Esc.
	case "ctrl+k":
		return m.setToast("Search is not available yet")
	case "j", "down":
		m.moveSelection(1)
	case "k", "up":
		m.moveSelection(-1)
	case "enter":
		return m.joinSelected()
	case "g", "home":
		m.selected = 0
	case "G", "end":
		m.selected = maxInt(0, len(m.items)-1)
	case "]":
		m.switchView(1)
	case "[":
		m.switchView(-1)
	case "b":
		m.collapsed = !m.collapsed
		m.prefs.SetSidebarCollapsed(m.collapsed)
	case "t":
		m.themeName = styles.Next(m.themeName)
		m.theme = styles.Resolve(m.themeName, func() bool { return m.hasDark })
		m.prefs.SetTheme(m.themeName)
		return m.setToast("Theme: " + m.themeName)
	case "<", ",":
		m.cal = m.cal.Prev()
	case ">":
		m.cal = m.cal.Next()
	case ".":
		m.cal = m.cal.Today(m.now)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.toggleTask(int(msg.String()[0] - '1'))
	}
	return nil
}

func (m *Model) setFocus(on bool) {
	if on == m.focusMode {
		return
	}
	m.focusMode = on
	if on {
		m.session = models.FocusSession{
			ID:                   uuid.NewString(),
			StartTime:            m.now,
			IsActive:             true,
			BlockedNotifications: true,
		}
		m.logger.Debug().Str("session", m.session.ID).Msg("focus mode on")
		return
	}
	m.session.IsActive = false
	m.session.EndTime = m.now
	m.logger.Debug().Str("session", m.session.ID).Dur("elapsed", m.session.Elapsed(m.now)).Msg("focus mode off")
}

// recompute rebuilds the timeline from the current now and focus mode and
// keeps the selection on the same item when it is still visible.
func (m *Model) recompute() {
	var selectedID string
	if m.selected >= 0 && m.selected < len(m.items) {
		selectedID = m.items[m.selected].ItemID()
	}

	m.groups = timeline.Aggregate(m.data.Emails, m.data.Events, m.focusMode, m.now)
	m.items = timeline.Flatten(m.groups)

	m.selected = 0
	for i, item := range m.items {
		if item.ItemID() == selectedID {
			m.selected = i
			break
		}
	}
}

func (m *Model) moveSelection(delta int) {
	if len(m.items) == 0 {
		m.selected = 0
		return
	}
	m.selected = maxInt(0, minInt(len(m.items)-1, m.selected+delta))
}

// joinSelected reports the conference link of the selected event. Links are
// shown, never opened.
func (m *Model) joinSelected() tea.Cmd {
	if m.selected < 0 || m.selected >= len(m.items) {
		return nil
	}
	event, ok := m.items[m.selected].(*models.CalendarEvent)
	if !ok {
		return nil
	}
	if event.ConferenceLink == "" {
		return m.setToast("No conference link for " + event.Title)
	}
	link := logging.RedactLink(event.ConferenceLink)
	m.logger.Debug().Str("event", event.ID).Str("link", link).Msg("join requested")
	return m.setToast("Join: " + link)
}

func (m *Model) switchView(delta int) {
	idx := 0
	for i, item := range navItems {
		if item.id == m.view {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(navItems)) % len(navItems)
	m.view = navItems[idx].id
	m.prefs.SetLastView(string(m.view))
}

func (m *Model) toggleTask(idx int) {
	if idx < 0 || idx >= len(m.tasks) {
		return
	}
	m.tasks[idx].Completed = !m.tasks[idx].Completed
	m.prefs.SetTaskDone(m.tasks[idx].ID, m.tasks[idx].Completed)
}

func (m *Model) setToast(text string) tea.Cmd {
	m.toast = strings.TrimSpace(text)
	m.toastSeq++
	seq := m.toastSeq
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return clearToastMsg{seq: seq}
	})
}

func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	header := m.renderHeader()
	footer := m.renderFooter()
	bodyHeight := maxInt(0, m.height-lipgloss.Height(header)-lipgloss.Height(footer))

	var body string
	switch {
	case m.compose.active:
		body = m.renderComposeOverlay(m.width, bodyHeight)
	case m.showHelp:
		body = m.renderHelpOverlay(m.width, bodyHeight)
	default:
		body = m.renderBody(bodyHeight)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m *Model) renderBody(height int) string {
	cols := styles.ComputeColumnWidths(m.width, m.collapsed)
	gap := strings.Repeat(" ", styles.LayoutGap)

	parts := make([]string, 0, 5)
	if cols.Sidebar > 0 {
		parts = append(parts, m.renderSidebar(cols.Sidebar, height), gap)
	}
	parts = append(parts, m.renderTimeline(cols.Timeline, height))
	if cols.Context > 0 {
		parts = append(parts, gap, m.renderContextPanel(cols.Context, height))
	}
	return lipgloss.NewStyle().Height(height).MaxHeight(height).Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
}

func (c Config) normalize() Config {
	c.Theme = strings.TrimSpace(c.Theme)
	if c.Theme == "" {
		c.Theme = "system"
	}
	if c.RefreshInterval <= 0 {
		c.RefreshInterval = defaultRefreshInterval
	}
	if c.UpcomingLimit <= 0 {
		c.UpcomingLimit = timeline.DefaultUpcomingLimit
	}
	if c.Clock == nil {
		c.Clock = time.Now
	}
	if c.HasDarkBackground == nil {
		c.HasDarkBackground = lipgloss.HasDarkBackground
	}
	return c
}
