// Package menu renders the ranked directory shortlist and maps one line of
// user input back to a directory or an informational listing.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/hartmannw/navigate/internal/frecency"
	"github.com/hartmannw/navigate/internal/models"
	"github.com/hartmannw/navigate/internal/registry"
)

// MaxChoices is the default cap on each of the two ranked lists.
const MaxChoices = 10

// Menu presents the shortlist on out and reads replies from in. Everything
// the menu writes goes to out (normally stderr); the primary output stream
// is reserved for the single resolved path.
type Menu struct {
	in         io.Reader
	out        io.Writer
	maxChoices int
}

// New creates a Menu reading replies from in and rendering to out, with at
// most maxChoices entries per ranked list.
func New(in io.Reader, out io.Writer, maxChoices int) *Menu {
	return &Menu{in: in, out: out, maxChoices: maxChoices}
}

// Run renders the menu, blocks for exactly one reply line, and returns the
// selected directory. An informational or invalid reply returns the empty
// string: nothing was selected. This read is the single point in the whole
// program that can block on the user.
func (m *Menu) Run(db *models.Database) string {
	options := m.render(db)

	scanner := bufio.NewScanner(m.in)
	if !scanner.Scan() {
		slog.Debug("menu: no selection read")
		return ""
	}
	return m.handle(scanner.Text(), options, db)
}

// render writes the two ranked lists and the informational commands,
// returning the table mapping a rendered index back to its directory.
// Indices are contiguous across both lists, frequency first.
func (m *Menu) render(db *models.Database) map[string]string {
	options := make(map[string]string)
	idx := 0

	fmt.Fprintln(m.out, headerStyle.Render("Most Frequent Directories:"))
	for _, dir := range top(frecency.Rank(db.Counts), m.maxChoices) {
		fmt.Fprintf(m.out, "  (%d) %s\n", idx, dir)
		options[strconv.Itoa(idx)] = dir
		idx++
	}

	fmt.Fprintln(m.out, headerStyle.Render("Most Recent Directories:"))
	for _, dir := range top(frecency.Rank(db.Times), m.maxChoices) {
		fmt.Fprintf(m.out, "  (%d) %s\n", idx, dir)
		options[strconv.Itoa(idx)] = dir
		idx++
	}

	fmt.Fprintln(m.out, headerStyle.Render("Other options:"))
	fmt.Fprintln(m.out, "  (i) List ignored directories")
	fmt.Fprintln(m.out, "  (m) List all marks")
	return options
}

// handle maps one reply line to a directory, or performs the informational
// listing it names and selects nothing.
func (m *Menu) handle(selection string, options map[string]string, db *models.Database) string {
	if dir, ok := options[selection]; ok {
		slog.Debug("menu: selection",
			slog.String("input", selection),
			slog.String("directory", dir))
		return dir
	}
	switch selection {
	case "i":
		m.listIgnored(db)
	case "m":
		m.listMarks(db)
	default:
		fmt.Fprintf(m.out, "Invalid option: %s\n", selection)
	}
	return ""
}

func (m *Menu) listIgnored(db *models.Database) {
	fmt.Fprintln(m.out, "Ignored directories:")
	for _, dir := range registry.SortedIgnored(db) {
		fmt.Fprintf(m.out, "  %s\n", dir)
	}
}

func (m *Menu) listMarks(db *models.Database) {
	fmt.Fprintln(m.out, "Marked directories:")
	for _, name := range registry.SortedMarks(db) {
		fmt.Fprintln(m.out, MarkLine(name, db.Marks[name]))
	}
}

// MarkLine formats one mark listing line: the colored mark name followed by
// its target directory.
func MarkLine(name, target string) string {
	return fmt.Sprintf("  %s %s", markStyle.Render(name), target)
}

func top(keys []string, n int) []string {
	if len(keys) > n {
		return keys[:n]
	}
	return keys
}
