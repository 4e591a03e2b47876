// Package ui writes terminal output: colored lines and aligned tables.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
)

// Colors for terminal output
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Red    = "\033[31m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

// Writer is the UI output destination
type Writer struct {
	out     io.Writer
	noColor bool
}

// NewWriter creates a UI writer
func NewWriter(out io.Writer, noColor bool) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{
		out:     out,
		noColor: noColor,
	}
}

// IsTerminal reports whether out is an interactive terminal. Colors are
// only worth emitting when it is.
func IsTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Color applies color if enabled
func (w *Writer) Color(c, text string) string {
	if w.noColor {
		return text
	}
	return c + text + Reset
}

// Println writes a line
func (w *Writer) Println(line string) {
	fmt.Fprintln(w.out, line)
}

// Header prints a section header
func (w *Writer) Header(title string) {
	w.Println(w.Color(Bold+Cyan, "━━━ "+title+" ━━━"))
}

// Warning prints a warning
func (w *Writer) Warning(msg string) {
	w.Println(w.Color(Yellow, msg))
}

// Error prints an error in brackets, e.g. "[ Unknown unit: parsecs ]"
func (w *Writer) Error(msg string) {
	w.Println(w.Color(Red, "[ "+msg+" ]"))
}

// Table renders a table
type Table struct {
	w       *Writer
	headers []string
	rows    [][]string
	widths  []int
}

// NewTable creates a table
func (w *Writer) NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	return &Table{
		w:       w,
		headers: headers,
		rows:    [][]string{},
		widths:  widths,
	}
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	// Pad or truncate cells to match header count
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
		if n := runewidth.StringWidth(row[i]); n > t.widths[i] {
			t.widths[i] = n
		}
	}
	t.rows = append(t.rows, row)
}

// Render prints the table. Widths are display columns, so abbreviations
// such as "m²" and "µg" line up.
func (t *Table) Render() {
	t.w.Println(t.w.Color(Bold, t.line(t.headers)))

	sep := make([]string, len(t.widths))
	for i, w := range t.widths {
		sep[i] = strings.Repeat("─", w)
	}
	t.w.Println(strings.Join(sep, "─┼─"))

	for _, row := range t.rows {
		t.w.Println(t.line(row))
	}
}

func (t *Table) line(cells []string) string {
	padded := make([]string, len(cells))
	for i, c := range cells {
		padded[i] = runewidth.FillRight(c, t.widths[i])
	}
	return strings.TrimRight(strings.Join(padded, " │ "), " ")
}
