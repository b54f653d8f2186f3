package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tOgg1/flowstate/internal/calendar"
	"github.com/tOgg1/flowstate/internal/timeline"
)

func (m *Model) renderContextPanel(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	inner := maxInt(1, width-2)
	sections := make([]string, 0, 4)
	if m.focusMode {
		sections = append(sections, m.renderFocusBanner(inner))
	}
	sections = append(sections,
		m.renderMiniCalendar(inner),
		m.renderUpcoming(inner),
		m.renderQuickTasks(inner),
	)

	style := lipgloss.NewStyle().
		Width(width - 1).
		Height(height).
		MaxHeight(height).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(m.theme.Base.Border)).
		PaddingLeft(1)
	return style.Render(strings.Join(sections, "\n\n"))
}

func (m *Model) renderFocusBanner(width int) string {
	focus := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Signal.Focus)).Bold(true)
	return strings.Join([]string{
		focus.Render(truncateVis("◎ Focus Mode", width)),
		m.theme.Muted().Render(truncateVis("Only priority items shown", width)),
	}, "\n")
}

func (m *Model) renderMiniCalendar(width int) string {
	opts := calendar.DefaultOptions()
	opts.HeaderStyle = m.theme.Muted()
	opts.DayStyle = m.theme.Text()
	opts.OutsideStyle = m.theme.Muted().Faint(true)
	opts.EventStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Base.Accent))
	opts.TodayStyle = lipgloss.NewStyle().Bold(true).Underline(true)

	title := spread(
		m.theme.Text().Bold(true).Render(calendar.Title(m.cal.Month)),
		m.theme.Muted().Render("< . >"),
		width,
	)
	weeks := calendar.Weeks(m.cal.Month, m.cal.Selected, m.now, m.eventDays)
	return title + "\n" + calendar.Render(weeks, opts)
}

func (m *Model) renderUpcoming(width int) string {
	lines := []string{sectionTitle(m, "UPCOMING", width)}
	events := timeline.Upcoming(m.data.Events, m.now, m.upcomingLimit)
	if len(events) == 0 {
		return strings.Join(append(lines, m.theme.Muted().Render("Nothing scheduled")), "\n")
	}
	for _, event := range events {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.EventColor(string(event.EventType)))).Render("●")
		when := timeline.TimeUntil(event, m.now)
		whenStyle := m.theme.Muted()
		if when == "Now" {
			whenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Signal.Success)).Bold(true)
		}
		title := truncateVis(event.Title, maxInt(1, width-lipgloss.Width(when)-3))
		lines = append(lines, spread(dot+" "+m.theme.Text().Render(title), whenStyle.Render(when), width))
		lines = append(lines, m.theme.Muted().Render(truncateVis("  "+eventTimeRange(event, m.now.Location()), width)))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderQuickTasks(width int) string {
	lines := []string{sectionTitle(m, "QUICK TASKS", width)}
	for i, task := range m.tasks {
		box := "[ ]"
		text := m.theme.Text()
		if task.Completed {
			box = "[x]"
			text = m.theme.Muted().Strikethrough(true)
		}
		key := ""
		if i < 9 {
			key = fmt.Sprintf("%d ", i+1)
		}
		lines = append(lines, m.theme.Muted().Render(key+box)+" "+text.Render(truncateVis(task.Text, maxInt(1, width-len(key)-4))))
	}
	return strings.Join(lines, "\n")
}

func sectionTitle(m *Model, title string, width int) string {
	return m.theme.Muted().Bold(true).Render(truncateVis(title, width))
}
