package frecency

import (
	"math"
	"testing"
	"time"

	"github.com/hartmannw/navigate/internal/models"
)

var base = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRecordSingleVisit(t *testing.T) {
	db := models.NewDatabase()
	m := Default()

	m.Record(db, "/home/user/work", base)

	if got := db.Counts["/home/user/work"]; !almostEqual(got, 1) {
		t.Errorf("count = %v, want 1", got)
	}
	if _, ok := db.Times["/home/user/work"]; !ok {
		t.Error("timestamp not set")
	}
}

func TestRecordDecaysBeforeIncrement(t *testing.T) {
	// Two visits with no other activity: the first visit's count decays
	// once, the second contributes a full increment.
	db := models.NewDatabase()
	m := Default()

	m.Record(db, "/d", base)
	m.Record(db, "/d", base.Add(time.Minute))

	if got := db.Counts["/d"]; !almostEqual(got, 1*0.99+1) {
		t.Errorf("count = %v, want 1.99", got)
	}
}

func TestRecordInterleavedVisits(t *testing.T) {
	db := models.NewDatabase()
	m := Default()

	m.Record(db, "/a", base)
	m.Record(db, "/b", base.Add(time.Minute))
	m.Record(db, "/a", base.Add(2*time.Minute))

	if got := db.Counts["/a"]; !almostEqual(got, 0.99*0.99+1) {
		t.Errorf("count[/a] = %v, want 1.9801", got)
	}
	if got := db.Counts["/b"]; !almostEqual(got, 0.99) {
		t.Errorf("count[/b] = %v, want 0.99", got)
	}
}

func TestRecordOnEmptyDatabase(t *testing.T) {
	// Decay over zero entries is a no-op, not a panic.
	db := models.NewDatabase()
	Default().Record(db, "/only", base)
	if len(db.Counts) != 1 || len(db.Times) != 1 {
		t.Errorf("unexpected database state: %+v", db)
	}
}

func TestEvictStaleOnEmptyDatabase(t *testing.T) {
	db := models.NewDatabase()
	Default().EvictStale(db, base)
	if len(db.Counts) != 0 || len(db.Times) != 0 {
		t.Errorf("unexpected database state: %+v", db)
	}
}

func TestEvictStaleRemovesOldEntries(t *testing.T) {
	db := models.NewDatabase()
	m := Default()

	db.Counts["/old"] = 5
	db.Times["/old"] = epochSeconds(base) - m.MaxAge.Seconds() - 1

	// A fresh visit prunes incrementally: record, then evict.
	m.Record(db, "/new", base)
	m.EvictStale(db, base)

	if _, ok := db.Counts["/old"]; ok {
		t.Error("stale directory still in counts")
	}
	if _, ok := db.Times["/old"]; ok {
		t.Error("stale directory still in times")
	}
	if _, ok := db.Counts["/new"]; !ok {
		t.Error("fresh directory evicted")
	}
}

func TestEvictStaleKeepsEntriesAtBoundary(t *testing.T) {
	// Exactly max-age old is not "older than" the threshold.
	db := models.NewDatabase()
	m := Default()
	db.Counts["/edge"] = 1
	db.Times["/edge"] = epochSeconds(base) - m.MaxAge.Seconds()

	m.EvictStale(db, base)

	if _, ok := db.Counts["/edge"]; !ok {
		t.Error("boundary entry should survive eviction")
	}
}

func TestCountsStayNonNegative(t *testing.T) {
	db := models.NewDatabase()
	m := Default()
	for i := 0; i < 100; i++ {
		m.Record(db, "/a", base.Add(time.Duration(i)*time.Second))
		if i%3 == 0 {
			m.Record(db, "/b", base.Add(time.Duration(i)*time.Second))
		}
	}
	for dir, count := range db.Counts {
		if count < 0 {
			t.Errorf("count[%s] = %v, negative", dir, count)
		}
	}
}

func TestRank(t *testing.T) {
	scores := map[string]float64{
		"/rare":   0.5,
		"/often":  5,
		"/mid":    2,
		"/tied-b": 1,
		"/tied-a": 1,
	}
	got := Rank(scores)
	want := []string{"/often", "/mid", "/tied-a", "/tied-b", "/rare"}
	if len(got) != len(want) {
		t.Fatalf("Rank returned %d keys, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Rank[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRankEmpty(t *testing.T) {
	if got := Rank(nil); len(got) != 0 {
		t.Errorf("Rank(nil) = %v", got)
	}
}
