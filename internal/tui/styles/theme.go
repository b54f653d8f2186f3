// Package styles holds the flowstate TUI palettes and layout helpers.
package styles

import "github.com/charmbracelet/lipgloss"

// BaseColors defines global UI colors.
type BaseColors struct {
	Background string
	Foreground string
	Muted      string
	Accent     string
	Border     string
}

// SignalColors mark priority, focus and success states.
type SignalColors struct {
	Urgent  string
	High    string
	Star    string
	Focus   string
	Success string
}

// EventColors defines one color per calendar event type.
type EventColors struct {
	Meeting  string
	Task     string
	Reminder string
	Focus    string
}

// ChromeColors defines non-content UI colors.
type ChromeColors struct {
	Header       string
	Footer       string
	Sidebar      string
	SelectedItem string
	Toast        string
}

// Theme defines the flowstate style tokens.
type Theme struct {
	Name string
	Dark bool

	Base   BaseColors
	Signal SignalColors
	Event  EventColors
	Chrome ChromeColors
}

// Themes lists available palettes by name.
var Themes = map[string]Theme{
	"light": LightTheme,
	"dark":  DarkTheme,
}

// Names in toggle order.
var Names = []string{"light", "dark", "system"}

// Resolve returns the palette for name. "system" (and anything unknown)
// follows the terminal background as reported by hasDark.
func Resolve(name string, hasDark func() bool) Theme {
	if theme, ok := Themes[name]; ok {
		return theme
	}
	if hasDark == nil {
		hasDark = lipgloss.HasDarkBackground
	}
	if hasDark() {
		return DarkTheme
	}
	return LightTheme
}

// Next returns the theme name after name in toggle order.
func Next(name string) string {
	for i, n := range Names {
		if n == name {
			return Names[(i+1)%len(Names)]
		}
	}
	return Names[0]
}

// EventColor returns the color for an event type name.
func (t Theme) EventColor(eventType string) string {
	switch eventType {
	case "task":
		return t.Event.Task
	case "reminder":
		return t.Event.Reminder
	case "focus":
		return t.Event.Focus
	default:
		return t.Event.Meeting
	}
}

// Text is a foreground style in the theme foreground.
func (t Theme) Text() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Base.Foreground))
}

// Muted is a foreground style for secondary text.
func (t Theme) Muted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Base.Muted))
}

// Accent is a bold accent foreground style.
func (t Theme) Accent() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Base.Accent)).Bold(true)
}

// Fg is a foreground style in an arbitrary color code.
func Fg(code string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}
