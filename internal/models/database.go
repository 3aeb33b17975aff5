// Package models defines the domain types for navigate.
package models

// Database is the root persisted object: four named collections describing
// everything the tool knows about the user's directories.
type Database struct {
	// Marks maps a user-chosen name to the directory it points at. Many
	// marks may target the same directory. Marks outlive visit records.
	Marks map[string]string
	// Counts maps a directory to its decayed visit frequency. Counts are
	// only ever multiplied by the discount factor or incremented by one,
	// so a count can never go negative.
	Counts map[string]float64
	// Ignored holds directories excluded from scoring, search, and the
	// menu. A directory in Ignored never appears in Counts or Times.
	Ignored map[string]struct{}
	// Times maps a directory to the epoch time (seconds) of its last
	// successful visit.
	Times map[string]float64
}

// NewDatabase returns an empty Database with all collections initialized.
func NewDatabase() *Database {
	return &Database{
		Marks:   make(map[string]string),
		Counts:  make(map[string]float64),
		Ignored: make(map[string]struct{}),
		Times:   make(map[string]float64),
	}
}

// IsIgnored reports whether dir is in the ignore set.
func (db *Database) IsIgnored(dir string) bool {
	_, ok := db.Ignored[dir]
	return ok
}
