// Package registry manages the named-mark table and the ignore set, keeping
// the two halves of the database consistent: a directory is never both
// ignored and scored.
package registry

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/hartmannw/navigate/internal/apperr"
	"github.com/hartmannw/navigate/internal/models"
)

// SetMark points name at dir, overwriting any existing mark of that name.
func SetMark(db *models.Database, name, dir string) {
	db.Marks[name] = dir
	slog.Debug("registry: added mark", slog.String("name", name), slog.String("directory", dir))
}

// RemoveMark deletes the named mark and returns the directory it pointed
// at. Returns apperr.ErrNotFound when no such mark exists.
func RemoveMark(db *models.Database, name string) (string, error) {
	dir, ok := db.Marks[name]
	if !ok {
		return "", apperr.ErrNotFound
	}
	delete(db.Marks, name)
	slog.Debug("registry: removed mark", slog.String("name", name), slog.String("directory", dir))
	return dir, nil
}

// Ignore adds dir to the ignore set and drops any visit record for it, as
// one logical step.
func Ignore(db *models.Database, dir string) {
	db.Ignored[dir] = struct{}{}
	delete(db.Counts, dir)
	delete(db.Times, dir)
	slog.Debug("registry: ignoring directory", slog.String("directory", dir))
}

// Unignore removes dir from the ignore set. Returns apperr.ErrNotFound when
// dir was not being ignored.
func Unignore(db *models.Database, dir string) error {
	if !db.IsIgnored(dir) {
		return apperr.ErrNotFound
	}
	delete(db.Ignored, dir)
	slog.Debug("registry: removed directory from ignore", slog.String("directory", dir))
	return nil
}

// MarksWithPrefix returns the names of all marks that start with prefix,
// sorted. The match is case-sensitive.
func MarksWithPrefix(db *models.Database, prefix string) []string {
	var names []string
	for name := range db.Marks {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// SuggestMarks returns "did you mean" candidates for a name that did not
// resolve: the marks sharing the longest non-empty prefix with name, sorted.
// The full name is tried first, then successively shorter prefixes; the
// first prefix with any matches wins. A name sharing no leading characters
// with any mark yields no suggestions.
func SuggestMarks(db *models.Database, name string) []string {
	for prefix := name; prefix != ""; prefix = prefix[:len(prefix)-1] {
		if names := MarksWithPrefix(db, prefix); len(names) > 0 {
			return names
		}
	}
	return nil
}

// SortedMarks returns every mark name in sorted order.
func SortedMarks(db *models.Database) []string {
	names := make([]string, 0, len(db.Marks))
	for name := range db.Marks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SortedIgnored returns every ignored directory in sorted order.
func SortedIgnored(db *models.Database) []string {
	dirs := make([]string, 0, len(db.Ignored))
	for dir := range db.Ignored {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs
}
