// Package testutil provides shared test helpers for seeding and inspecting
// navigation databases on disk.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/hartmannw/navigate/internal/models"
	"github.com/hartmannw/navigate/internal/store"
)

// DatabaseFilename is the file name used by the helpers below, matching the
// default configuration.
const DatabaseFilename = "navigate.json"

// WriteDatabase persists db under dir using the standard database filename.
func WriteDatabase(t *testing.T, dir string, db *models.Database) {
	t.Helper()
	if err := store.New(filepath.Join(dir, DatabaseFilename)).Save(db); err != nil {
		t.Fatal(err)
	}
}

// ReadDatabase loads the database stored under dir.
func ReadDatabase(t *testing.T, dir string) *models.Database {
	t.Helper()
	db, err := store.New(filepath.Join(dir, DatabaseFilename)).Load()
	if err != nil {
		t.Fatal(err)
	}
	return db
}
