package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lshen/bibgen/internal/bibtex"
	"github.com/lshen/bibgen/internal/config"
)

func TestFlattenEntry(t *testing.T) {
	entries := bibtex.Parse(`@article{smith2020,
		author = {Smith, John and Doe, Jane},
		title = {An {FTS} Title},
		journal = {J. Methods},
		year = {2020},
		doi = {https://doi.org/10.1/ABC},
	}`)
	if len(entries) != 1 {
		t.Fatalf("Parse() returned %d entries, want 1", len(entries))
	}

	got := flattenEntry(entries[0], "main.bib")
	if got.Key != "smith2020" || got.Type != "article" {
		t.Errorf("key/type = %s/%s", got.Key, got.Type)
	}
	if got.Title != "An FTS Title" {
		t.Errorf("Title = %q, want markup stripped", got.Title)
	}
	if got.Authors != "Smith J, Doe J" {
		t.Errorf("Authors = %q, want %q", got.Authors, "Smith J, Doe J")
	}
	if got.Venue != "J. Methods" {
		t.Errorf("Venue = %q", got.Venue)
	}
	if got.DOI != "10.1/abc" {
		t.Errorf("DOI = %q, want normalized 10.1/abc", got.DOI)
	}
	if got.Source != "main.bib" {
		t.Errorf("Source = %q", got.Source)
	}
}

func TestIndexedEntries_FirstSourceWins(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.bib")
	second := filepath.Join(dir, "second.bib")
	if err := os.WriteFile(first, []byte(`@article{k, title = {From First}, year = {1}}`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(second, []byte(`
@article{k, title = {From Second}, year = {2}}
@article{only, title = {Only Here}, year = {3}}
`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{BibSources: []string{"first.bib", "second.bib", "absent.bib"}}
	got := indexedEntries(dir, cfg)

	if len(got) != 2 {
		t.Fatalf("indexedEntries() = %d entries, want 2", len(got))
	}
	if got[0].Key != "k" || got[0].Title != "From First" || got[0].Source != first {
		t.Errorf("got[0] = %+v, want k from first.bib", got[0])
	}
	if got[1].Key != "only" || got[1].Source != second {
		t.Errorf("got[1] = %+v, want only from second.bib", got[1])
	}
}
