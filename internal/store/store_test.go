package store

import (
	"path/filepath"
	"testing"

	"github.com/sferro/chatlens/internal/analyze"
	"github.com/sferro/chatlens/internal/parse"
)

func testData(t *testing.T) *analyze.ChatData {
	t.Helper()
	data, err := analyze.Analyze(parse.Parse(
		"12/01/2023, 09:00 - Alice: Hello\n12/01/2023, 09:02 - Bob: Hi there!"))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	return data
}

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "chatlens.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestPutGetRoundTrip(t *testing.T) {
	db := openTestDB(t)
	data := testData(t)

	id, err := db.Put("/chats/export.txt", 111, 222, data)
	if err != nil {
		t.Fatalf("Put: %v", err)
	}

	meta, got, err := db.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if meta == nil || got == nil {
		t.Fatal("snapshot not found after Put")
	}
	if meta.FileName != "export.txt" || meta.TotalMessages != 2 {
		t.Fatalf("unexpected meta: %+v", meta)
	}
	if len(meta.Participants) != 2 || meta.Participants[0] != "Alice" {
		t.Fatalf("unexpected participants: %v", meta.Participants)
	}
	if got.AvgResponseTime != data.AvgResponseTime || got.TotalMessages != data.TotalMessages {
		t.Fatalf("snapshot mismatch: %+v", got)
	}
}

func TestLookupReusesUnchangedFile(t *testing.T) {
	db := openTestDB(t)
	data := testData(t)

	id, err := db.Put("/chats/export.txt", 111, 222, data)
	if err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, gotID, err := db.Lookup("/chats/export.txt", 111, 222)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got == nil || gotID != id {
		t.Fatalf("expected stored snapshot, got %v (%q)", got, gotID)
	}

	// changed mtime means re-analysis
	got, _, err = db.Lookup("/chats/export.txt", 999, 222)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got != nil {
		t.Fatal("stale snapshot returned for changed file")
	}
}

func TestPutReplacesSameFile(t *testing.T) {
	db := openTestDB(t)
	data := testData(t)

	if _, err := db.Put("/chats/export.txt", 1, 1, data); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if _, err := db.Put("/chats/export.txt", 2, 2, data); err != nil {
		t.Fatalf("Put: %v", err)
	}

	n, err := db.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 snapshot per file, got %d", n)
	}
}

func TestListAndDelete(t *testing.T) {
	db := openTestDB(t)
	data := testData(t)

	idA, err := db.Put("/chats/a.txt", 1, 1, data)
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if _, err := db.Put("/chats/b.txt", 1, 1, data); err != nil {
		t.Fatalf("Put: %v", err)
	}

	rows, err := db.List(0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	if err := db.Delete(idA); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	meta, _, err := db.Get(idA)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if meta != nil {
		t.Fatal("deleted snapshot still present")
	}
}
