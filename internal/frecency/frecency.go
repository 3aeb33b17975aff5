// Package frecency implements the visit-scoring model: per-directory
// frequency counters with a global multiplicative decay on every visit, and
// an age-based eviction rule for directories not visited in a long time.
package frecency

import (
	"log/slog"
	"sort"
	"time"

	"github.com/hartmannw/navigate/internal/models"
)

const (
	// DiscountFactor is the default multiplier applied to every count on
	// each recorded visit, shifting relative weight toward recent activity.
	DiscountFactor = 0.99
	// MaxAge is the default window after which an unvisited directory is
	// evicted from the database.
	MaxAge = 30 * 24 * time.Hour
)

// Model holds the scoring parameters for one invocation.
type Model struct {
	// Discount multiplies every count on each recorded visit.
	Discount float64
	// MaxAge bounds how long a directory may go unvisited before eviction.
	MaxAge time.Duration
}

// Default returns a Model with the standard parameters.
func Default() Model {
	return Model{Discount: DiscountFactor, MaxAge: MaxAge}
}

// Record registers a successful visit to dir at time now. Existing counts
// decay first, then dir gains a full, undecayed increment and a fresh
// timestamp; two visits to the same directory with no other activity yield
// a count of 1*0.99 + 1 = 1.99.
func (m Model) Record(db *models.Database, dir string, now time.Time) {
	decay(db.Counts, m.Discount)
	db.Counts[dir]++
	db.Times[dir] = epochSeconds(now)
	slog.Debug("frecency: recorded visit",
		slog.String("directory", dir),
		slog.Float64("count", db.Counts[dir]))
}

// EvictStale removes every directory whose last visit is further in the
// past than the model's MaxAge, from both the count and time maps. Marks
// are untouched; ignored directories have no entries here to begin with.
func (m Model) EvictStale(db *models.Database, now time.Time) {
	cutoff := epochSeconds(now) - m.MaxAge.Seconds()
	for dir, at := range db.Times {
		if at < cutoff {
			slog.Debug("frecency: evicting stale directory", slog.String("directory", dir))
			delete(db.Times, dir)
			delete(db.Counts, dir)
		}
	}
}

// Rank returns the keys of scores ordered by descending score. Ties are
// broken by ascending key so the ordering is stable across runs.
func Rank(scores map[string]float64) []string {
	keys := make([]string, 0, len(scores))
	for k := range scores {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if scores[keys[i]] != scores[keys[j]] {
			return scores[keys[i]] > scores[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}

// decay multiplies every count by factor. Counts only ever shrink toward
// zero here; they can never go negative.
func decay(counts map[string]float64, factor float64) {
	for dir := range counts {
		counts[dir] *= factor
	}
}

func epochSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
