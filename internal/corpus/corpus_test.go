package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lshen/bibgen/internal/bibtex"
)

func entry(key string, fields map[string]string) bibtex.Entry {
	f := bibtex.NewFields()
	for k, v := range fields {
		f.Set(k, v)
	}
	return bibtex.Entry{Key: key, Type: "article", Fields: f}
}

func TestMerge_FirstSourceWins(t *testing.T) {
	c := New()
	c.Merge([]bibtex.Entry{entry("k1", map[string]string{"year": "2019"})})
	c.Merge([]bibtex.Entry{
		entry("k1", map[string]string{"year": "2024"}),
		entry("k2", map[string]string{"year": "2020"}),
	})

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	got, _ := c.Get("k1")
	if y := got.Fields.Get("year"); y != "2019" {
		t.Errorf("k1 year = %q, want 2019 (first source must win)", y)
	}
	keys := c.Keys()
	if keys[0] != "k1" || keys[1] != "k2" {
		t.Errorf("Keys() = %v, want [k1 k2]", keys)
	}
}

func TestLoad_MissingSourceSkipped(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "refs.bib")
	if err := os.WriteFile(path, []byte(`@article{a, year = {2020}}`), 0644); err != nil {
		t.Fatal(err)
	}

	c, counts := Load([]string{filepath.Join(dir, "absent.bib"), path})
	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
	if len(counts) != 1 || counts[0].Path != path || counts[0].Entries != 1 {
		t.Errorf("counts = %+v, want one entry for %s", counts, path)
	}
}

func TestReadSource_InvalidUTF8Replaced(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "refs.bib")
	raw := append([]byte(`@article{a, note = {bad `), 0xff, 0xfe)
	raw = append(raw, []byte(`}, year = {1}}`)...)
	if err := os.WriteFile(path, raw, 0644); err != nil {
		t.Fatal(err)
	}

	entries, ok := ReadSource(path)
	if !ok || len(entries) != 1 {
		t.Fatalf("ReadSource() = %d entries ok=%v, want 1 entry", len(entries), ok)
	}
	if got := entries[0].Fields.Get("year"); got != "1" {
		t.Errorf("year = %q, want 1", got)
	}
}

func TestDuplicates_DOICaseInsensitive(t *testing.T) {
	c := New()
	c.Merge([]bibtex.Entry{
		entry("a", map[string]string{"doi": "10.1/X"}),
		entry("b", map[string]string{"doi": "10.1/x"}),
		entry("c", map[string]string{"doi": "10.9/unique"}),
	})

	groups := c.Duplicates()
	if len(groups) != 1 {
		t.Fatalf("Duplicates() = %d groups, want 1", len(groups))
	}
	g := groups[0]
	if g.Reason != "doi" || g.Value != "10.1/x" {
		t.Errorf("group = %+v, want doi group for 10.1/x", g)
	}
	if len(g.Keys) != 2 {
		t.Errorf("group keys = %v, want [a b]", g.Keys)
	}
}

func TestDuplicates_TitleYearFallback(t *testing.T) {
	c := New()
	c.Merge([]bibtex.Entry{
		entry("a", map[string]string{"title": "A {Great} Result", "year": "2020"}),
		entry("b", map[string]string{"title": "a great result", "year": "2020"}),
		entry("c", map[string]string{"title": "a great result", "year": "2021"}),
		entry("d", map[string]string{"title": "", "year": "2020"}),
	})

	groups := c.Duplicates()
	if len(groups) != 1 {
		t.Fatalf("Duplicates() = %d groups, want 1", len(groups))
	}
	if groups[0].Reason != "title-year" || len(groups[0].Keys) != 2 {
		t.Errorf("group = %+v, want title-year group of 2", groups[0])
	}
}

func TestDuplicates_SortedByDescendingSize(t *testing.T) {
	c := New()
	c.Merge([]bibtex.Entry{
		entry("a", map[string]string{"doi": "10.1/small"}),
		entry("b", map[string]string{"doi": "10.1/small"}),
		entry("c", map[string]string{"doi": "10.1/big"}),
		entry("d", map[string]string{"doi": "10.1/big"}),
		entry("e", map[string]string{"doi": "10.1/big"}),
	})

	groups := c.Duplicates()
	if len(groups) != 2 {
		t.Fatalf("Duplicates() = %d groups, want 2", len(groups))
	}
	if len(groups[0].Keys) != 3 || groups[0].Value != "10.1/big" {
		t.Errorf("first group = %+v, want the 3-member group", groups[0])
	}
}

func TestFindByDOI(t *testing.T) {
	c := New()
	c.Merge([]bibtex.Entry{
		entry("a", map[string]string{"doi": "https://doi.org/10.1/ABC"}),
	})
	if got := c.FindByDOI("doi:10.1/abc"); got != "a" {
		t.Errorf("FindByDOI() = %q, want a", got)
	}
	if got := c.FindByDOI("10.9/none"); got != "" {
		t.Errorf("FindByDOI(miss) = %q, want empty", got)
	}
}
