package menu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hartmannw/navigate/internal/models"
)

func seededDB() *models.Database {
	db := models.NewDatabase()
	db.Counts["/often"] = 9
	db.Counts["/sometimes"] = 3
	db.Counts["/rarely"] = 1
	db.Times["/rarely"] = 300
	db.Times["/often"] = 200
	db.Times["/sometimes"] = 100
	db.Marks["beta"] = "/b"
	db.Marks["alpha"] = "/a"
	db.Ignored["/hidden"] = struct{}{}
	return db
}

func TestRenderNumbersAcrossBothLists(t *testing.T) {
	var out bytes.Buffer
	m := New(strings.NewReader("\n"), &out, 10)

	options := m.render(seededDB())

	// Three frequency entries then three recency entries share one index
	// sequence.
	want := map[string]string{
		"0": "/often", "1": "/sometimes", "2": "/rarely",
		"3": "/rarely", "4": "/often", "5": "/sometimes",
	}
	for idx, dir := range want {
		if options[idx] != dir {
			t.Errorf("options[%s] = %q, want %q", idx, options[idx], dir)
		}
	}
	if len(options) != len(want) {
		t.Errorf("len(options) = %d, want %d", len(options), len(want))
	}

	text := out.String()
	for _, line := range []string{
		"Most Frequent Directories:",
		"  (0) /often",
		"Most Recent Directories:",
		"  (3) /rarely",
		"Other options:",
		"  (i) List ignored directories",
		"  (m) List all marks",
	} {
		if !strings.Contains(text, line) {
			t.Errorf("menu output missing %q:\n%s", line, text)
		}
	}
}

func TestRenderCapsEachList(t *testing.T) {
	db := models.NewDatabase()
	for i := 0; i < 15; i++ {
		dir := "/dir" + string(rune('a'+i))
		db.Counts[dir] = float64(i)
		db.Times[dir] = float64(i)
	}
	var out bytes.Buffer
	m := New(strings.NewReader(""), &out, 10)

	options := m.render(db)

	if len(options) != 20 {
		t.Errorf("len(options) = %d, want 20", len(options))
	}
	if _, ok := options["19"]; !ok {
		t.Error("expected index 19 to be rendered")
	}
	if _, ok := options["20"]; ok {
		t.Error("index 20 should not exist")
	}
}

func TestRunSelectsByIndex(t *testing.T) {
	var out bytes.Buffer
	m := New(strings.NewReader("1\n"), &out, 10)

	if got := m.Run(seededDB()); got != "/sometimes" {
		t.Errorf("Run = %q, want /sometimes", got)
	}
}

func TestRunIgnoredListing(t *testing.T) {
	var out bytes.Buffer
	m := New(strings.NewReader("i\n"), &out, 10)

	if got := m.Run(seededDB()); got != "" {
		t.Errorf("Run = %q, want no selection", got)
	}
	if !strings.Contains(out.String(), "Ignored directories:") ||
		!strings.Contains(out.String(), "  /hidden") {
		t.Errorf("ignored listing missing:\n%s", out.String())
	}
}

func TestRunMarksListingSorted(t *testing.T) {
	var out bytes.Buffer
	m := New(strings.NewReader("m\n"), &out, 10)

	if got := m.Run(seededDB()); got != "" {
		t.Errorf("Run = %q, want no selection", got)
	}
	text := out.String()
	alpha := strings.Index(text, "alpha /a")
	beta := strings.Index(text, "beta /b")
	if alpha < 0 || beta < 0 {
		t.Fatalf("marks listing missing entries:\n%s", text)
	}
	if alpha > beta {
		t.Error("marks not sorted by name")
	}
}

func TestRunInvalidSelection(t *testing.T) {
	var out bytes.Buffer
	m := New(strings.NewReader("nope\n"), &out, 10)

	if got := m.Run(seededDB()); got != "" {
		t.Errorf("Run = %q, want no selection", got)
	}
	if !strings.Contains(out.String(), "Invalid option: nope") {
		t.Errorf("missing invalid-option message:\n%s", out.String())
	}
}

func TestRunNoInput(t *testing.T) {
	var out bytes.Buffer
	m := New(strings.NewReader(""), &out, 10)

	if got := m.Run(seededDB()); got != "" {
		t.Errorf("Run = %q, want no selection", got)
	}
}
