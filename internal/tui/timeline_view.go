package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/tOgg1/flowstate/internal/models"
	"github.com/tOgg1/flowstate/internal/timeline"
)

const (
	maxCardLabels    = 2
	maxCardAttendees = 4
	eventTimeLayout  = "3:04 PM"
)

// renderTimeline draws the day groups and scrolls so the selected card is
// fully visible.
func (m *Model) renderTimeline(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(m.groups) == 0 {
		msg := m.theme.Muted().Render(timeline.EmptyMessage(m.focusMode))
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	var (
		lines    []string
		selStart int
		selEnd   int
		index    int
	)
	for gi, group := range m.groups {
		if gi > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, m.renderGroupHeader(group, width))
		for _, item := range group.Items {
			card := m.renderCard(item, width, index == m.selected)
			if index == m.selected {
				selStart = len(lines)
				selEnd = selStart + len(card)
			}
			lines = append(lines, card...)
			index++
		}
	}

	m.offset = scrollOffset(m.offset, selStart, selEnd, height, len(lines))
	end := minInt(len(lines), m.offset+height)
	visible := lines[m.offset:end]
	return lipgloss.NewStyle().Width(width).Height(height).MaxHeight(height).Render(strings.Join(visible, "\n"))
}

// scrollOffset returns the first visible line so that [start,end) fits in
// the window of height lines, moving as little as possible from offset.
func scrollOffset(offset, start, end, height, total int) int {
	if height <= 0 {
		return 0
	}
	if end-start > height {
		end = start + height
	}
	if start < offset {
		offset = start
	}
	if end > offset+height {
		offset = end - height
	}
	if maxOffset := maxInt(0, total-height); offset > maxOffset {
		offset = maxOffset
	}
	return maxInt(0, offset)
}

func (m *Model) renderGroupHeader(group timeline.Group, width int) string {
	label := m.theme.Accent().Render(strings.ToUpper(group.Label))
	count := m.theme.Muted().Render(fmt.Sprintf(" %d ", len(group.Items)))
	rule := width - lipgloss.Width(label) - lipgloss.Width(count)
	if rule < 0 {
		return truncateVis(label+count, width)
	}
	return label + count + m.theme.Muted().Render(strings.Repeat("─", rule))
}

func (m *Model) renderCard(item models.TimelineItem, width int, selected bool) []string {
	var body []string
	var bar string
	inner := maxInt(1, width-3)

	switch it := item.(type) {
	case *models.EmailThread:
		body = m.emailCardLines(it, inner)
		bar = m.priorityBar(it.Priority)
	case *models.CalendarEvent:
		body = m.eventCardLines(it, inner)
		bar = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.EventColor(string(it.EventType)))).Render("▌")
	}

	cursor := " "
	if selected {
		cursor = m.theme.Accent().Render("›")
	}
	out := make([]string, 0, len(body))
	for i, line := range body {
		prefix := cursor + bar + " "
		if i > 0 {
			prefix = " " + bar + " "
		}
		row := prefix + padRight(line, inner)
		if selected {
			row = lipgloss.NewStyle().Background(lipgloss.Color(m.theme.Chrome.SelectedItem)).Render(row)
		}
		out = append(out, row)
	}
	return out
}

func (m *Model) priorityBar(priority models.Priority) string {
	switch priority {
	case models.PriorityUrgent:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Signal.Urgent)).Render("▌")
	case models.PriorityHigh:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Signal.High)).Render("▌")
	default:
		return " "
	}
}

func (m *Model) emailCardLines(email *models.EmailThread, width int) []string {
	theme := m.theme
	text := theme.Text()
	if !email.IsRead {
		text = text.Bold(true)
	}

	left := theme.Avatar(email.From) + " " + text.Render(email.From.DisplayName())
	for i, label := range email.Labels {
		if i == maxCardLabels {
			break
		}
		left += " " + theme.Muted().Render("["+label+"]")
	}
	right := theme.Muted().Render(humanize.RelTime(email.Timestamp, m.now, "ago", "from now"))
	if email.IsStarred {
		right += " " + lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Signal.Star)).Render("★")
	}
	if !email.IsRead {
		right += " " + theme.Accent().Render("●")
	}

	lines := []string{
		spread(left, right, width),
		text.Render(truncateVis(email.Subject, width)),
	}
	for _, line := range wrapLines(email.Snippet, width, 2) {
		lines = append(lines, theme.Muted().Render(line))
	}

	var footer []string
	if email.HasAttachment {
		footer = append(footer, "⎘ Attachment")
	}
	if email.ReplyCount > 0 {
		footer = append(footer, fmt.Sprintf("↩ %d", email.ReplyCount))
	}
	if email.LinkedEvent != "" {
		footer = append(footer, "◷ Event linked")
	}
	if len(footer) > 0 {
		lines = append(lines, theme.Muted().Render(truncateVis(strings.Join(footer, "  "), width)))
	}
	return lines
}

func (m *Model) eventCardLines(event *models.CalendarEvent, width int) []string {
	theme := m.theme
	color := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.EventColor(string(event.EventType))))

	title := theme.Text().Bold(true).Render(event.Title)
	if event.EventType == models.EventTypeFocus {
		title = color.Render("◎ ") + title
	}
	var right string
	switch {
	case timeline.IsNow(event, m.now):
		right = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Signal.Success)).Bold(true).Render("● Now")
	case event.Status == models.EventStatusTentative:
		right = theme.Muted().Render("tentative")
	case event.Status == models.EventStatusCancelled:
		right = theme.Muted().Render("cancelled")
	}

	meta := eventTimeRange(event, m.now.Location())
	if !event.IsAllDay {
		meta += fmt.Sprintf(" · %dm", event.DurationMinutes())
	}
	if event.Location != "" {
		meta += " · " + event.Location
	}

	lines := []string{
		spread(title, right, width),
		color.Render(truncateVis(meta, width)),
	}

	var extras []string
	if len(event.Attendees) > 0 {
		extras = append(extras, theme.AvatarGroup(event.Attendees, maxCardAttendees))
	}
	if event.ConferenceLink != "" {
		extras = append(extras, theme.Accent().Render("⧉ Join"))
	}
	if len(extras) > 0 {
		lines = append(lines, truncateVis(strings.Join(extras, "  "), width))
	}
	return lines
}

// eventTimeRange renders "3:04 PM – 4:00 PM" in loc, or "All day".
func eventTimeRange(event *models.CalendarEvent, loc *time.Location) string {
	if event.IsAllDay {
		return "All day"
	}
	return event.StartTime.In(loc).Format(eventTimeLayout) + " – " + event.EndTime.In(loc).Format(eventTimeLayout)
}
