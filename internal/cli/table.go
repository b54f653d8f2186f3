package cli

import (
	"bufio"
	"io"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	tablePadding = 2

	// textColumnWidth caps free-text columns such as subjects, titles and
	// rejection errors so the columns after them stay on screen.
	textColumnWidth = 48

	ellipsis = "…"
)

// table aligns rows into columns by printable width. Escape sequences do not
// count toward a column's width and survive truncation.
type table struct {
	headers []string
	rows    [][]string
	limits  map[int]int
}

func newTable(headers ...string) *table {
	return &table{headers: headers, limits: make(map[int]int)}
}

// clip truncates cells in column col to at most width cells, ellipsis included.
func (t *table) clip(col, width int) *table {
	if width > 0 {
		t.limits[col] = width
	}
	return t
}

func (t *table) add(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) cell(col int, value string) string {
	limit, ok := t.limits[col]
	if !ok || ansi.PrintableRuneWidth(value) <= limit {
		return value
	}
	return truncate.StringWithTail(value, uint(limit), ellipsis)
}

func (t *table) write(out io.Writer) error {
	colCount := len(t.headers)
	for _, row := range t.rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return nil
	}

	lines := make([][]string, 0, len(t.rows)+1)
	if len(t.headers) > 0 {
		lines = append(lines, t.headers)
	}
	for _, row := range t.rows {
		clipped := make([]string, len(row))
		for col, value := range row {
			clipped[col] = t.cell(col, value)
		}
		lines = append(lines, clipped)
	}

	widths := make([]int, colCount)
	for _, line := range lines {
		for col, value := range line {
			if w := ansi.PrintableRuneWidth(value); w > widths[col] {
				widths[col] = w
			}
		}
	}

	w := bufio.NewWriter(out)
	for _, line := range lines {
		var b strings.Builder
		for col := 0; col < colCount; col++ {
			value := ""
			if col < len(line) {
				value = line[col]
			}
			b.WriteString(value)
			if col < colCount-1 {
				pad := widths[col] - ansi.PrintableRuneWidth(value)
				b.WriteString(strings.Repeat(" ", max(pad, 0)+tablePadding))
			}
		}
		b.WriteByte('\n')
		if _, err := w.WriteString(b.String()); err != nil {
			return err
		}
	}
	return w.Flush()
}
