package store

import (
	"encoding/json"
	"fmt"

	"github.com/hartmannw/navigate/internal/models"
)

// record is the on-disk shape of the database: one JSON object with exactly
// four top-level collections. The ignore set is stored as directory → 1 to
// stay readable by (and compatible with) earlier versions of the tool.
type record struct {
	Mark   map[string]string  `json:"mark"`
	Count  map[string]float64 `json:"count"`
	Ignore map[string]int     `json:"ignore"`
	Time   map[string]float64 `json:"time"`
}

// decode parses data into a Database, rejecting unknown top-level keys so a
// file from some other tool (or a corrupted one) fails loudly instead of
// being silently rewritten without its extra contents.
func decode(data []byte) (*models.Database, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("store: parse database: %w", err)
	}
	for key := range top {
		switch key {
		case "mark", "count", "ignore", "time":
		default:
			return nil, fmt.Errorf("store: unknown key %q in database", key)
		}
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("store: parse database: %w", err)
	}

	db := models.NewDatabase()
	for name, dir := range rec.Mark {
		db.Marks[name] = dir
	}
	for dir, count := range rec.Count {
		db.Counts[dir] = count
	}
	for dir := range rec.Ignore {
		db.Ignored[dir] = struct{}{}
	}
	for dir, at := range rec.Time {
		db.Times[dir] = at
	}
	return db, nil
}

// encode serializes the database. All four collections are always present
// so the record keeps a fixed shape.
func encode(db *models.Database) ([]byte, error) {
	rec := record{
		Mark:   db.Marks,
		Count:  db.Counts,
		Ignore: make(map[string]int, len(db.Ignored)),
		Time:   db.Times,
	}
	if rec.Mark == nil {
		rec.Mark = map[string]string{}
	}
	if rec.Count == nil {
		rec.Count = map[string]float64{}
	}
	if rec.Time == nil {
		rec.Time = map[string]float64{}
	}
	for dir := range db.Ignored {
		rec.Ignore[dir] = 1
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("store: encode database: %w", err)
	}
	return data, nil
}
