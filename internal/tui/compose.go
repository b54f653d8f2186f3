package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type composeField int

const (
	composeFieldTo composeField = iota
	composeFieldSubject
	composeFieldBody
)

const composeFieldCount = 3

const sendNotWiredToast = "Sending is not wired in this build"

type composeState struct {
	active   bool
	focus    composeField
	to       string
	subject  string
	body     string
	schedule bool
}

func (m *Model) openCompose() {
	m.compose = composeState{active: true}
}

// closeCompose discards the draft.
func (m *Model) closeCompose() {
	m.compose = composeState{}
}

func (m *Model) handleComposeKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.closeCompose()
		return nil
	case "ctrl+s":
		m.logger.Debug().
			Int("recipients", len(splitRecipients(m.compose.to))).
			Bool("scheduled", m.compose.schedule).
			Msg("compose closed without sending")
		m.closeCompose()
		return m.setToast(sendNotWiredToast)
	case "ctrl+t":
		m.compose.schedule = !m.compose.schedule
		return nil
	case "tab":
		m.compose.focus = (m.compose.focus + 1) % composeFieldCount
		return nil
	case "shift+tab":
		m.compose.focus = (m.compose.focus + composeFieldCount - 1) % composeFieldCount
		return nil
	case "enter":
		if m.compose.focus == composeFieldBody {
			m.compose.body += "\n"
			return nil
		}
		m.compose.focus++
		return nil
	case "backspace", "ctrl+h":
		m.composeDeleteRune()
		return nil
	}

	switch msg.Type {
	case tea.KeySpace:
		m.composeInsert(" ")
	case tea.KeyRunes:
		if len(msg.Runes) > 0 {
			m.composeInsert(string(msg.Runes))
		}
	}
	return nil
}

func (m *Model) activeComposeField() *string {
	switch m.compose.focus {
	case composeFieldTo:
		return &m.compose.to
	case composeFieldSubject:
		return &m.compose.subject
	default:
		return &m.compose.body
	}
}

func (m *Model) composeInsert(s string) {
	field := m.activeComposeField()
	*field += s
}

func (m *Model) composeDeleteRune() {
	field := m.activeComposeField()
	runes := []rune(*field)
	if len(runes) == 0 {
		return
	}
	*field = string(runes[:len(runes)-1])
}

func splitRecipients(value string) []string {
	parts := strings.FieldsFunc(value, func(r rune) bool { return r == ',' || r == ';' })
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (m *Model) renderComposeOverlay(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	theme := m.theme
	panelWidth := minInt(maxInt(40, width-8), 80)
	inner := maxInt(1, panelWidth-6)

	label := func(field composeField, name string) string {
		if m.compose.focus == field {
			return theme.Accent().Render(name)
		}
		return theme.Muted().Render(name)
	}
	value := func(field composeField, v string) string {
		if m.compose.focus == field {
			v += "_"
		}
		return v
	}

	schedule := "[ ] Schedule send"
	if m.compose.schedule {
		schedule = "[x] Schedule send"
	}

	lines := []string{
		theme.Text().Bold(true).Render("New message"),
		"",
		label(composeFieldTo, "To:      ") + truncateVis(value(composeFieldTo, m.compose.to), inner-9),
		label(composeFieldSubject, "Subject: ") + truncateVis(value(composeFieldSubject, m.compose.subject), inner-9),
		theme.Muted().Render(strings.Repeat("─", inner)),
	}
	bodyLines := strings.Split(value(composeFieldBody, m.compose.body), "\n")
	maxBody := maxInt(3, height-14)
	if len(bodyLines) > maxBody {
		bodyLines = bodyLines[len(bodyLines)-maxBody:]
	}
	for _, line := range bodyLines {
		lines = append(lines, truncateVis(line, inner))
	}
	for i := len(bodyLines); i < maxBody; i++ {
		lines = append(lines, "")
	}
	lines = append(lines,
		theme.Muted().Render(strings.Repeat("─", inner)),
		theme.Muted().Render(schedule+"  ctrl+t"),
		"",
		theme.Muted().Render("[Ctrl+S: Send] [Esc: Discard] [Tab: Next]"),
	)

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Base.Accent)).
		Padding(1, 2).
		Width(panelWidth - 2)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, panel.Render(strings.Join(lines, "\n")))
}
