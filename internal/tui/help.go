package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpItem struct {
	key  string
	desc string
}

type helpSection struct {
	title string
	items []helpItem
}

var helpSections = []helpSection{
	{title: "Global", items: []helpItem{
		{key: "q / Ctrl+C", desc: "quit"},
		{key: "?", desc: "toggle help"},
		{key: "c", desc: "compose"},
		{key: "f", desc: "toggle focus mode"},
		{key: "Ctrl+K", desc: "search (not available)"},
	}},
	{title: "Timeline", items: []helpItem{
		{key: "j/k", desc: "move selection"},
		{key: "g/G", desc: "first / last item"},
		{key: "Enter", desc: "join selected event"},
		{key: "[ / ]", desc: "previous / next view"},
	}},
	{title: "Panels", items: []helpItem{
		{key: "b", desc: "collapse sidebar"},
		{key: "t", desc: "cycle theme"},
		{key: "< / >", desc: "calendar month"},
		{key: ".", desc: "calendar today"},
		{key: "1-9", desc: "toggle quick task"},
	}},
	{title: "Compose", items: []helpItem{
		{key: "Tab", desc: "next field"},
		{key: "Ctrl+T", desc: "toggle schedule"},
		{key: "Ctrl+S", desc: "send"},
		{key: "Esc", desc: "discard"},
	}},
}

func (m *Model) renderHelpOverlay(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	theme := m.theme

	lines := make([]string, 0, 32)
	lines = append(lines, theme.Text().Bold(true).Render("Help"), "")
	keyStyle := theme.Accent()
	for _, sec := range helpSections {
		lines = append(lines, lipgloss.NewStyle().Bold(true).Render(sec.title))
		for _, it := range sec.items {
			lines = append(lines, "  "+keyStyle.Render(padRight(it.key, 10))+"  "+it.desc)
		}
		lines = append(lines, "")
	}
	lines = append(lines, theme.Muted().Render("Dismiss: ? or Esc"))

	panelWidth := minInt(maxInt(40, width-10), 72)
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Base.Border)).
		Padding(1, 2).
		Width(panelWidth)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, panel.Render(strings.Join(lines, "\n")))
}
