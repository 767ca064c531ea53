package ui

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
)

// Table renders a decoded JSON collection as aligned columns. Columns
// are the union of the objects' top-level keys, id first, the rest
// alphabetical. Nested values render with %v.
type Table struct {
	writer  io.Writer
	headers []string
	rows    [][]string
}

// NewTable builds a table from a collection as returned by an adapter:
// a []any of map[string]any objects. Non-object entries render in a
// single "value" column.
func NewTable(w io.Writer, items []any) *Table {
	t := &Table{writer: w}

	seen := map[string]bool{}
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		for k := range obj {
			seen[k] = true
		}
	}

	if len(seen) == 0 && len(items) > 0 {
		t.headers = []string{"value"}
		for _, item := range items {
			t.rows = append(t.rows, []string{fmt.Sprintf("%v", item)})
		}
		return t
	}

	for k := range seen {
		if k != "id" {
			t.headers = append(t.headers, k)
		}
	}
	sort.Strings(t.headers)
	if seen["id"] {
		t.headers = append([]string{"id"}, t.headers...)
	}

	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		row := make([]string, len(t.headers))
		for i, h := range t.headers {
			if v, present := obj[h]; present {
				row[i] = fmt.Sprintf("%v", v)
			}
		}
		t.rows = append(t.rows, row)
	}
	return t
}

// Render writes the table with a colored header row.
func (t *Table) Render() {
	if len(t.headers) == 0 {
		return
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	header := color.New(color.FgCyan, color.Bold)
	for i, h := range t.headers {
		if i > 0 {
			fmt.Fprint(t.writer, "  ")
		}
		header.Fprint(t.writer, pad(h, widths[i]))
	}
	fmt.Fprintln(t.writer)

	for i, w := range widths {
		if i > 0 {
			fmt.Fprint(t.writer, "  ")
		}
		fmt.Fprint(t.writer, strings.Repeat("-", w))
	}
	fmt.Fprintln(t.writer)

	for _, row := range t.rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(t.writer, "  ")
			}
			fmt.Fprint(t.writer, pad(cell, widths[i]))
		}
		fmt.Fprintln(t.writer)
	}
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
