// Package render turns tables into display text.
//
// Rendering is pure: every function here returns a string and performs no
// I/O apart from Fprint, which writes an already rendered table.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/leengari/reltable/internal/domain/schema"
)

// Style selects the output layout
type Style string

const (
	StyleFixed   Style = "fixed"   // every column padded to Options.Width
	StyleAligned Style = "aligned" // columns sized to their content
	StyleBox     Style = "box"     // bordered table
)

// DefaultWidth is the column width of the fixed style
const DefaultWidth = 20

// Options controls rendering
type Options struct {
	Style Style
	Width int // fixed style only; DefaultWidth when <= 0
}

// ParseStyle converts a style name into a Style
func ParseStyle(s string) (Style, error) {
	switch Style(strings.ToLower(s)) {
	case "", StyleFixed:
		return StyleFixed, nil
	case StyleAligned:
		return StyleAligned, nil
	case StyleBox:
		return StyleBox, nil
	}
	return "", fmt.Errorf("unknown output style %q (want fixed, aligned or box)", s)
}

// Render formats table according to opts
func Render(table *schema.Table, opts Options) string {
	switch opts.Style {
	case StyleAligned:
		return renderAligned(table)
	case StyleBox:
		return renderBox(table)
	default:
		width := opts.Width
		if width <= 0 {
			width = DefaultWidth
		}
		return renderFixed(table, width)
	}
}

// Fprint writes a "=== title ===" banner followed by the rendered table
func Fprint(w io.Writer, title string, table *schema.Table, opts Options) error {
	if title != "" {
		if _, err := fmt.Fprintf(w, "=== %s ===\n", strings.ToUpper(title)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, Render(table, opts))
	return err
}

// renderFixed pads every cell to width, left aligned
// Cells wider than width are printed in full
func renderFixed(table *schema.Table, width int) string {
	var b strings.Builder

	for _, col := range table.Columns() {
		fmt.Fprintf(&b, "%-*s", width, col)
	}
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", width*table.ColumnCount()))
	b.WriteString("\n")

	table.Each(func(_ int, rec schema.Record) {
		for i := 0; i < rec.Len(); i++ {
			fmt.Fprintf(&b, "%-*s", width, rec.Cell(i))
		}
		b.WriteString("\n")
	})
	b.WriteString("\n")

	return b.String()
}

// renderAligned lays the table out with a tabwriter
func renderAligned(table *schema.Table) string {
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)

	cols := table.Columns()
	fmt.Fprintln(tw, strings.Join(cols, "\t"))

	sep := make([]string, len(cols))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	table.Each(func(_ int, rec schema.Record) {
		fmt.Fprintln(tw, strings.Join(rec.Values(), "\t"))
	})
	tw.Flush()

	return b.String()
}
