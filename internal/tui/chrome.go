package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const (
	clockLayout    = "15:04"
	headDateLayout = "Monday, Jan 2"
	focusBadge     = "Focus Mode Active [F]"
)

func (m *Model) renderHeader() string {
	theme := m.theme
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Base.Foreground)).
		Background(lipgloss.Color(theme.Chrome.Header)).
		Padding(0, 1)

	title := lipgloss.NewStyle().Bold(true).Render(viewTitle(m.view))
	center := m.headerSubtitle()
	right := m.now.Format(clockLayout) + "  " + m.now.Format(headDateLayout)
	line := joinHeader(title, center, right, maxInt(0, m.width-2))
	return style.Width(maxInt(0, m.width)).Render(line)
}

func (m *Model) headerSubtitle() string {
	if m.focusMode {
		return "Showing priority items only"
	}
	return fmt.Sprintf("%d unread • %d events today", m.data.UnreadCount(), m.data.EventsOn(m.now))
}

func (m *Model) renderFooter() string {
	theme := m.theme
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Base.Muted)).
		Background(lipgloss.Color(theme.Chrome.Footer)).
		Padding(0, 1)

	left := "c Compose  f Focus  j/k Move  [/] View  ? Help  q Quit"
	if m.compose.active {
		left = "Tab Next field  Ctrl+T Schedule  Ctrl+S Send  Esc Discard"
	}
	center := ""
	if m.toast != "" {
		center = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Chrome.Toast)).Bold(true).Render(m.toast)
	}
	right := ""
	if m.focusMode {
		right = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Signal.Focus)).
			Bold(true).
			Render(focusBadge + " " + formatElapsed(m.session.Elapsed(m.now)))
	}
	line := joinHeader(left, center, right, maxInt(0, m.width-2))
	return style.Width(maxInt(0, m.width)).Render(line)
}

func joinHeader(left, center, right string, width int) string {
	left = strings.TrimSpace(left)
	center = strings.TrimSpace(center)
	right = strings.TrimSpace(right)
	if width <= 0 {
		return left
	}

	space := width - lipgloss.Width(left) - lipgloss.Width(center) - lipgloss.Width(right)
	if space < 2 {
		line := left
		if right != "" {
			line = left + "  " + right
		}
		return truncateVis(line, width)
	}

	leftGap := space / 2
	rightGap := space - leftGap
	return truncateVis(left+strings.Repeat(" ", leftGap)+center+strings.Repeat(" ", rightGap)+right, width)
}

// formatElapsed renders a focus session length as "12m" or "1h05m".
func formatElapsed(d time.Duration) string {
	minutes := int(d / time.Minute)
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh%02dm", minutes/60, minutes%60)
}
