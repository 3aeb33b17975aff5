// Package store persists the navigate database as a single JSON record,
// loaded once at startup and written back atomically at exit.
package store

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/hartmannw/navigate/internal/fileutil"
	"github.com/hartmannw/navigate/internal/models"
)

// Store loads and saves the database at a fixed path.
type Store struct {
	path string
}

// New creates a Store for the database file at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the database from disk. A missing file yields a fresh empty
// database; a file that exists but cannot be parsed is a fatal load error.
func (s *Store) Load() (*models.Database, error) {
	data, err := fileutil.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("store: creating new database", slog.String("path", s.path))
		return models.NewDatabase(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: read database: %w", err)
	}

	db, err := decode(data)
	if err != nil {
		return nil, err
	}
	slog.Debug("store: loaded database",
		slog.String("path", s.path),
		slog.Int("directories", len(db.Counts)),
		slog.Int("marks", len(db.Marks)))
	return db, nil
}

// Save writes the database back. The write is atomic: a reader never sees a
// partially written file, and a crash mid-write leaves the previous file
// intact.
func (s *Store) Save(db *models.Database) error {
	data, err := encode(db)
	if err != nil {
		return err
	}
	if err := fileutil.AtomicWrite(s.path, data); err != nil {
		return fmt.Errorf("store: write database: %w", err)
	}
	slog.Debug("store: wrote database", slog.String("path", s.path))
	return nil
}
