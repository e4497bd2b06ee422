package storage

import (
	"path/filepath"
	"testing"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "corpus.db"))
	if err != nil {
		t.Fatalf("OpenDB() error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testEntries() []IndexedEntry {
	return []IndexedEntry{
		{Key: "smith2020", Type: "article", Title: "Influenza Dynamics", Authors: "Smith J, Doe J", Year: "2020", Venue: "J. Virol.", DOI: "10.1/abc", Source: "main.bib"},
		{Key: "wang2024", Type: "inproceedings", Title: "Flow Simulation Methods", Authors: "Wang W", Year: "2024", Venue: "Proc. CFD", Source: "main.bib"},
	}
}

func TestRebuildAndGet(t *testing.T) {
	db := testDB(t)

	count, err := db.Rebuild(testEntries())
	if err != nil {
		t.Fatalf("Rebuild() error: %v", err)
	}
	if count != 2 {
		t.Errorf("Rebuild() = %d, want 2", count)
	}

	e, err := db.GetByKey("smith2020")
	if err != nil {
		t.Fatalf("GetByKey() error: %v", err)
	}
	if e == nil || e.Title != "Influenza Dynamics" || e.DOI != "10.1/abc" {
		t.Errorf("GetByKey() = %+v", e)
	}

	missing, err := db.GetByKey("ghost")
	if err != nil {
		t.Fatalf("GetByKey(ghost) error: %v", err)
	}
	if missing != nil {
		t.Errorf("GetByKey(ghost) = %+v, want nil", missing)
	}
}

func TestRebuildReplacesOldIndex(t *testing.T) {
	db := testDB(t)

	if _, err := db.Rebuild(testEntries()); err != nil {
		t.Fatalf("first Rebuild() error: %v", err)
	}
	if _, err := db.Rebuild(testEntries()[:1]); err != nil {
		t.Fatalf("second Rebuild() error: %v", err)
	}

	count, err := db.Count()
	if err != nil {
		t.Fatalf("Count() error: %v", err)
	}
	if count != 1 {
		t.Errorf("Count() = %d, want 1 after rebuild", count)
	}
}

func TestSearch(t *testing.T) {
	db := testDB(t)
	if _, err := db.Rebuild(testEntries()); err != nil {
		t.Fatalf("Rebuild() error: %v", err)
	}

	results, err := db.Search("influenza", 10)
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(results) != 1 || results[0].Key != "smith2020" {
		t.Errorf("Search(influenza) = %+v, want smith2020", results)
	}

	none, err := db.Search("nonexistent", 10)
	if err != nil {
		t.Fatalf("Search(miss) error: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("Search(miss) = %+v, want empty", none)
	}
}

func TestListAllOrdered(t *testing.T) {
	db := testDB(t)
	if _, err := db.Rebuild(testEntries()); err != nil {
		t.Fatalf("Rebuild() error: %v", err)
	}

	all, err := db.ListAll(0)
	if err != nil {
		t.Fatalf("ListAll() error: %v", err)
	}
	if len(all) != 2 || all[0].Key != "smith2020" || all[1].Key != "wang2024" {
		t.Errorf("ListAll() = %+v, want [smith2020 wang2024]", all)
	}
}

func TestPrepareFTSQuery(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"influenza", "influenza"},
		{"  spaced  ", "spaced"},
		{`flow-based`, `"flow-based"`},
		{`say "hi"`, `"say ""hi"""`},
		{"", ""},
	}
	for _, tt := range tests {
		if got := prepareFTSQuery(tt.in); got != tt.want {
			t.Errorf("prepareFTSQuery(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
