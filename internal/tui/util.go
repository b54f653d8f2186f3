package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// truncateVis cuts s to width visible cells, ANSI sequences included.
func truncateVis(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	return truncate.StringWithTail(s, uint(width), "…")
}

// wrapLines word-wraps s to width and returns at most maxLines lines; the last
// kept line is truncated when text was dropped.
func wrapLines(s string, width, maxLines int) []string {
	if width <= 0 {
		return nil
	}
	lines := strings.Split(wordwrap.String(s, width), "\n")
	for i := range lines {
		lines[i] = truncateVis(lines[i], width)
	}
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
		lines[maxLines-1] = truncateVis(lines[maxLines-1]+" …", width)
	}
	return lines
}

// padRight pads s with spaces to width visible cells.
func padRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// spread places left and right on one line of width cells.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return truncateVis(left+" "+right, width)
	}
	return left + strings.Repeat(" ", gap) + right
}
