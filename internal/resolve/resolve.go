// Package resolve turns one program invocation into either a single
// directory to emit or a database mutation. Exactly one branch runs per
// invocation: mark management, ignore management, mark jump, visit
// recording, the interactive menu, or a search over the ranked lists.
package resolve

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/hartmannw/navigate/internal/apperr"
	"github.com/hartmannw/navigate/internal/frecency"
	"github.com/hartmannw/navigate/internal/menu"
	"github.com/hartmannw/navigate/internal/models"
	"github.com/hartmannw/navigate/internal/registry"
)

// Request is one parsed invocation. At most one of Mark, Ignore, Jump and
// Add is expected to be set; Args carries the positional arguments when
// none of them is.
type Request struct {
	// Args holds the positional arguments. One argument is a literal
	// directory; two or more form a search where the first selects the
	// ranking and the rest are the terms.
	Args []string

	// Mark names a mark to set on the working directory, or to remove
	// when Delete is set.
	Mark string

	// Jump names a mark whose target should be emitted without touching
	// the visit history.
	Jump string

	// Add is a directory whose visit should be recorded without emitting
	// anything.
	Add string

	// Ignore toggles the working directory in or out of the ignore set,
	// depending on Delete.
	Ignore bool

	// Delete flips Mark and Ignore from adding to removing.
	Delete bool

	// WorkDir overrides the detected working directory. Shell wrappers
	// pass it to keep symbolic links unexpanded.
	WorkDir string
}

// Result is the outcome of a resolution. Resolved reports whether Path
// should be emitted; an unresolved outcome still leaves database changes
// behind that the caller must persist.
type Result struct {
	Path     string
	Resolved bool
}

// Resolver applies requests against one loaded database.
type Resolver struct {
	db    *models.Database
	model frecency.Model
	menu  *menu.Menu
	msgs  io.Writer

	now   func() time.Time
	chdir func(string) error
	getwd func() (string, error)
}

// Option adjusts a Resolver during construction.
type Option func(*Resolver)

// WithClock replaces the time source.
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) { r.now = now }
}

// WithChdir replaces the directory-change probe.
func WithChdir(chdir func(string) error) Option {
	return func(r *Resolver) { r.chdir = chdir }
}

// WithGetwd replaces the working-directory lookup.
func WithGetwd(getwd func() (string, error)) Option {
	return func(r *Resolver) { r.getwd = getwd }
}

// New creates a Resolver over db. Human-readable notices are written to
// msgs, which must not be the stream the resolved path is emitted on.
func New(db *models.Database, model frecency.Model, m *menu.Menu, msgs io.Writer, opts ...Option) *Resolver {
	r := &Resolver{
		db:    db,
		model: model,
		menu:  m,
		msgs:  msgs,
		now:   time.Now,
		chdir: os.Chdir,
		getwd: os.Getwd,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve runs the single branch req selects. A non-nil error is fatal and
// means the database must not be written back; every other outcome, even an
// unresolved one, expects the caller to persist the database afterwards.
func (r *Resolver) Resolve(req Request) (Result, error) {
	switch {
	case req.Mark != "":
		return Result{}, r.processMark(req)
	case req.Ignore:
		return Result{}, r.processIgnore(req)
	case req.Jump != "":
		return r.processJump(req.Jump), nil
	case req.Add != "":
		r.addVisit(req.Add)
		return Result{}, nil
	case len(req.Args) == 0:
		dir := r.menu.Run(r.db)
		if dir == "" {
			return Result{}, nil
		}
		return Result{Path: r.confirm(dir), Resolved: true}, nil
	default:
		return r.search(req.Args)
	}
}

func (r *Resolver) processMark(req Request) error {
	if req.Delete {
		if _, err := registry.RemoveMark(r.db, req.Mark); err != nil {
			fmt.Fprintf(r.msgs, "Mark %s does not exist.\n", req.Mark)
		}
		return nil
	}
	wd, err := r.workdir(req)
	if err != nil {
		return err
	}
	registry.SetMark(r.db, req.Mark, wd)
	return nil
}

func (r *Resolver) processIgnore(req Request) error {
	wd, err := r.workdir(req)
	if err != nil {
		return err
	}
	if req.Delete {
		if err := registry.Unignore(r.db, wd); err != nil {
			fmt.Fprintf(r.msgs, "Directory '%s' was not being ignored.\n", wd)
		}
		return nil
	}
	registry.Ignore(r.db, wd)
	return nil
}

// processJump emits a mark target verbatim. Jumping never records a visit
// and never probes the target; a dangling mark is still emitted so the
// caller's shell reports the failure.
func (r *Resolver) processJump(name string) Result {
	if dir, ok := r.db.Marks[name]; ok {
		slog.Debug("jump: mark hit",
			slog.String("mark", name),
			slog.String("directory", dir))
		return Result{Path: dir, Resolved: true}
	}
	fmt.Fprintf(r.msgs, "Mark %s does not exist.\n", name)
	if suggestions := registry.SuggestMarks(r.db, name); len(suggestions) > 0 {
		fmt.Fprintln(r.msgs, "Did you mean one of these marks?")
		for _, mark := range suggestions {
			fmt.Fprintln(r.msgs, menu.MarkLine(mark, r.db.Marks[mark]))
		}
		fmt.Fprintln(r.msgs)
	}
	return Result{}
}

// addVisit records a visit without emitting anything. Shell hooks call this
// on every directory change, so an ignored directory is skipped entirely.
func (r *Resolver) addVisit(dir string) {
	if r.db.IsIgnored(dir) {
		slog.Debug("add: directory ignored", slog.String("directory", dir))
		return
	}
	r.model.Record(r.db, dir, r.now())
	r.model.EvictStale(r.db, r.now())
}

// search resolves positional arguments. A single argument is taken as a
// literal directory. With more, the first argument selects the ranking to
// walk and every remaining term must be a substring of the match.
func (r *Resolver) search(args []string) (Result, error) {
	slog.Debug("search: arguments", slog.String("args", strings.Join(args, " ")))
	if len(args) == 1 {
		return Result{Path: r.confirm(args[0]), Resolved: true}, nil
	}

	var scores map[string]float64
	switch args[0] {
	case "f":
		scores = r.db.Counts
	case "r":
		scores = r.db.Times
	default:
		return Result{}, fmt.Errorf("%w: '%s' is an invalid search type. Use 'r' for recent and 'f' for frequent.",
			apperr.ErrUsage, args[0])
	}

	terms := args[1:]
	for _, dir := range frecency.Rank(scores) {
		if matchesAll(dir, terms) {
			return Result{Path: r.confirm(dir), Resolved: true}, nil
		}
	}
	fmt.Fprintf(r.msgs, "Could not find a directory that matches '%s'\n", strings.Join(terms, " "))
	return Result{}, nil
}

// confirm changes into dir to prove it is reachable, then records the visit
// under the directory actually landed in. An unreachable directory is still
// returned so the caller's shell surfaces the real error, but it leaves no
// trace in the visit history.
func (r *Resolver) confirm(dir string) string {
	if err := r.chdir(dir); err != nil {
		slog.Debug("resolve: directory change failed",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return dir
	}
	landed := dir
	if wd, err := r.getwd(); err == nil {
		landed = wd
	}
	if !r.db.IsIgnored(landed) {
		r.model.Record(r.db, landed, r.now())
		r.model.EvictStale(r.db, r.now())
	}
	return landed
}

func (r *Resolver) workdir(req Request) (string, error) {
	if req.WorkDir != "" {
		return req.WorkDir, nil
	}
	wd, err := r.getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	return wd, nil
}

func matchesAll(dir string, terms []string) bool {
	for _, term := range terms {
		if !strings.Contains(dir, term) {
			return false
		}
	}
	return true
}
