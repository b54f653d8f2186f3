package styles

import "github.com/charmbracelet/lipgloss"

const (
	// LayoutGap is the default space between columns.
	LayoutGap = 1

	// SidebarWidth is the expanded navigation width.
	SidebarWidth = 22

	// SidebarCollapsedWidth shows icons only.
	SidebarCollapsedWidth = 5
)

const (
	minContextWidth  = 28
	maxContextWidth  = 34
	minTimelineWidth = 40
)

// ColumnWidths defines responsive column widths for the three panes.
type ColumnWidths struct {
	Sidebar  int
	Timeline int
	Context  int
}

// ComputeColumnWidths returns widths for sidebar, timeline and context panel.
// The context panel is dropped first on narrow terminals, then the sidebar
// collapses.
func ComputeColumnWidths(totalWidth int, collapsed bool) ColumnWidths {
	if totalWidth <= 0 {
		return ColumnWidths{}
	}

	sidebar := SidebarWidth
	if collapsed {
		sidebar = SidebarCollapsedWidth
	}
	context := clampInt(totalWidth/4, minContextWidth, maxContextWidth)
	timeline := totalWidth - sidebar - context - LayoutGap*2
	if timeline >= minTimelineWidth {
		return ColumnWidths{Sidebar: sidebar, Timeline: timeline, Context: context}
	}

	timeline = totalWidth - sidebar - LayoutGap
	if timeline >= minTimelineWidth {
		return ColumnWidths{Sidebar: sidebar, Timeline: timeline}
	}

	sidebar = SidebarCollapsedWidth
	timeline = totalWidth - sidebar - LayoutGap
	if timeline >= minTimelineWidth {
		return ColumnWidths{Sidebar: sidebar, Timeline: timeline}
	}
	return ColumnWidths{Timeline: totalWidth}
}

// PanelStyle returns a rounded panel with a focused or idle border.
func PanelStyle(theme Theme, focused bool) lipgloss.Style {
	border := theme.Base.Border
	if focused {
		border = theme.Base.Accent
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
