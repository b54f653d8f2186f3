package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m *Model) renderSidebar(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if width <= 6 {
		return m.renderSidebarCollapsed(width, height)
	}

	theme := m.theme
	muted := theme.Muted()
	inner := maxInt(1, width-2)

	lines := make([]string, 0, height)
	lines = append(lines, theme.Accent().Render(truncateVis("◆ Flowstate", inner)))
	lines = append(lines, "")
	compose := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Base.Background)).
		Background(lipgloss.Color(theme.Base.Accent)).
		Bold(true).
		Render(padRight(" + Compose  c", inner))
	lines = append(lines, compose, "")

	spaces := false
	for _, item := range navItems {
		if item.space && !spaces {
			spaces = true
			lines = append(lines, "", muted.Render("SPACES"))
		}
		lines = append(lines, m.renderNavItem(item, inner))
	}

	bottom := []string{
		m.renderFocusToggle(inner),
		muted.Render(truncateVis("◐ Theme: "+m.themeName+"  t", inner)),
		muted.Render(truncateVis("« Collapse  b", inner)),
	}

	for len(lines)+len(bottom) < height {
		lines = append(lines, "")
	}
	lines = append(lines, bottom...)

	style := lipgloss.NewStyle().
		Width(width - 1).
		Height(height).
		MaxHeight(height).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(lipgloss.Color(theme.Base.Border)).
		Padding(0, 1, 0, 0)
	return style.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderNavItem(item navItem, width int) string {
	label := item.icon + " " + item.label
	badge := ""
	if item.count > 0 {
		badge = fmt.Sprintf("%d", item.count)
	}
	line := spread(label, badge, width)
	if item.id == m.view {
		return lipgloss.NewStyle().
			Background(lipgloss.Color(m.theme.Chrome.SelectedItem)).
			Foreground(lipgloss.Color(m.theme.Base.Accent)).
			Bold(true).
			Render(padRight(line, width))
	}
	return m.theme.Text().Render(line)
}

func (m *Model) renderFocusToggle(width int) string {
	if m.focusMode {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.theme.Signal.Focus)).
			Bold(true).
			Render(truncateVis("◉ Focus on  f", width))
	}
	return m.theme.Muted().Render(truncateVis("○ Focus off  f", width))
}

func (m *Model) renderSidebarCollapsed(width, height int) string {
	inner := maxInt(1, width-1)
	lines := make([]string, 0, height)
	lines = append(lines, m.theme.Accent().Render("◆"), "", m.theme.Accent().Render("+"), "")
	for _, item := range navItems {
		icon := item.icon
		if item.id == m.view {
			icon = m.theme.Accent().Render(icon)
		} else {
			icon = m.theme.Muted().Render(icon)
		}
		lines = append(lines, icon)
	}
	focus := "○"
	if m.focusMode {
		focus = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Signal.Focus)).Render("◉")
	}
	for len(lines) < height-2 {
		lines = append(lines, "")
	}
	lines = append(lines, focus, m.theme.Muted().Render("»"))

	return lipgloss.NewStyle().
		Width(inner).
		Height(height).
		MaxHeight(height).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(lipgloss.Color(m.theme.Base.Border)).
		Render(strings.Join(lines, "\n"))
}
