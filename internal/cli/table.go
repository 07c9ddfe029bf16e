// Package cli provides command-line interface utilities.
package cli

import (
	"strings"
)

// Table is a simple table formatter with dynamic column widths.
type Table struct {
	headers   []string
	rows      [][]string
	padding   int
	maxWidths map[int]int // maximum width per column index (0 = no limit)
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers:   headers,
		rows:      make([][]string, 0),
		padding:   2,
		maxWidths: make(map[int]int),
	}
}

// SetColumnMaxWidth sets a maximum width for a specific column. Text longer
// than this wraps onto continuation lines.
func (t *Table) SetColumnMaxWidth(colIndex, maxWidth int) {
	t.maxWidths[colIndex] = maxWidth
}

// AddRow adds a row to the table, padding or truncating to the header count.
func (t *Table) AddRow(row []string) {
	cells := make([]string, len(t.headers))
	copy(cells, row)
	t.rows = append(t.rows, cells)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	// Wrap cells that exceed their column's max width.
	wrapped := make([][][]string, len(t.rows))
	for rowIdx, row := range t.rows {
		wrapped[rowIdx] = make([][]string, len(row))
		for colIdx, cell := range row {
			if maxWidth := t.maxWidths[colIdx]; maxWidth > 0 {
				wrapped[rowIdx][colIdx] = wrapText(cell, maxWidth)
			} else {
				wrapped[rowIdx][colIdx] = []string{cell}
			}
		}
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range wrapped {
		for i, lines := range row {
			for _, line := range lines {
				if len(line) > widths[i] {
					widths[i] = len(line)
				}
			}
		}
	}

	gap := strings.Repeat(" ", t.padding)
	var b strings.Builder

	cells := make([]string, len(t.headers))
	for i, h := range t.headers {
		cells[i] = padRight(h, widths[i])
	}
	b.WriteString(strings.TrimRight(strings.Join(cells, gap), " "))
	b.WriteString("\n")

	for i := range t.headers {
		cells[i] = strings.Repeat("-", widths[i])
	}
	b.WriteString(strings.Join(cells, gap))
	b.WriteString("\n")

	for _, row := range wrapped {
		height := 1
		for _, lines := range row {
			if len(lines) > height {
				height = len(lines)
			}
		}
		for lineIdx := 0; lineIdx < height; lineIdx++ {
			for colIdx := range t.headers {
				line := ""
				if lineIdx < len(row[colIdx]) {
					line = row[colIdx][lineIdx]
				}
				cells[colIdx] = padRight(line, widths[colIdx])
			}
			b.WriteString(strings.TrimRight(strings.Join(cells, gap), " "))
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// wrapText splits text into lines no longer than maxWidth, breaking on
// spaces where possible.
func wrapText(text string, maxWidth int) []string {
	if len(text) <= maxWidth {
		return []string{text}
	}

	var lines []string
	var current strings.Builder
	for _, word := range strings.Fields(text) {
		switch {
		case current.Len() == 0:
			current.WriteString(word)
		case current.Len()+1+len(word) <= maxWidth:
			current.WriteString(" ")
			current.WriteString(word)
		default:
			lines = append(lines, current.String())
			current.Reset()
			current.WriteString(word)
		}
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

// padRight pads s with spaces to the given width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
