// Package corpus merges parsed BibTeX entries from ordered sources and
// detects likely duplicate records.
package corpus

import (
	"os"
	"strings"

	"github.com/lshen/bibgen/internal/bibtex"
)

// Corpus is an ordered key -> entry mapping merged from one or more
// sources. Merge order matters: a key present in an earlier source is
// never overwritten by a later one.
type Corpus struct {
	keys    []string
	entries map[string]bibtex.Entry
}

// New returns an empty corpus.
func New() *Corpus {
	return &Corpus{entries: make(map[string]bibtex.Entry)}
}

// Merge adds entries from one source. Keys already present keep their
// earlier entry and position; new keys are appended in order.
func (c *Corpus) Merge(entries []bibtex.Entry) {
	for _, e := range entries {
		if _, ok := c.entries[e.Key]; ok {
			continue
		}
		c.keys = append(c.keys, e.Key)
		c.entries[e.Key] = e
	}
}

// Get returns the entry for key, if present.
func (c *Corpus) Get(key string) (bibtex.Entry, bool) {
	e, ok := c.entries[key]
	return e, ok
}

// Has reports whether key is present.
func (c *Corpus) Has(key string) bool {
	_, ok := c.entries[key]
	return ok
}

// Keys returns the keys in order of first appearance.
func (c *Corpus) Keys() []string {
	return c.keys
}

// Entries returns the entries in order of first appearance.
func (c *Corpus) Entries() []bibtex.Entry {
	out := make([]bibtex.Entry, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, c.entries[k])
	}
	return out
}

// Len returns the number of entries.
func (c *Corpus) Len() int {
	return len(c.keys)
}

// ReadSource reads one BibTeX file permissively: invalid UTF-8 bytes
// are replaced with U+FFFD rather than failing, and a missing file
// yields (nil, false) so callers can skip it silently.
func ReadSource(path string) ([]bibtex.Entry, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	text := strings.ToValidUTF8(string(data), "�")
	return bibtex.Parse(text), true
}

// SourceCount records how many entries one source contributed to a
// load, before merging.
type SourceCount struct {
	Path    string `json:"path"`
	Entries int    `json:"entries"`
}

// Load reads and merges the given sources in order. Missing sources
// are skipped silently and do not appear in the counts.
func Load(paths []string) (*Corpus, []SourceCount) {
	c := New()
	var counts []SourceCount
	for _, p := range paths {
		entries, ok := ReadSource(p)
		if !ok {
			continue
		}
		counts = append(counts, SourceCount{Path: p, Entries: len(entries)})
		c.Merge(entries)
	}
	return c, counts
}
