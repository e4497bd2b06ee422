package corpus

import (
	"sort"
	"strings"

	"github.com/lshen/bibgen/internal/bibtex"
	"github.com/lshen/bibgen/internal/latex"
)

// DuplicateGroup is a set of entry keys judged to describe the same
// work, either by shared DOI or by shared normalized title and year.
type DuplicateGroup struct {
	Reason string   `json:"reason"` // "doi" or "title-year"
	Value  string   `json:"value"`  // the shared DOI or "title (year)"
	Keys   []string `json:"keys"`
}

// Duplicates groups likely duplicate entries. Entries with a DOI are
// grouped by its lowercased form; entries without one fall back to the
// (normalized title, year) pair when both are nonempty. Groups with a
// single member are dropped, and the rest are sorted by descending
// size so the worst offenders come first.
func (c *Corpus) Duplicates() []DuplicateGroup {
	byDOI := make(map[string][]string)
	byTitleYear := make(map[string][]string)

	for _, key := range c.keys {
		e := c.entries[key]
		if doi := strings.ToLower(strings.TrimSpace(e.Fields.Get("doi"))); doi != "" {
			byDOI[doi] = append(byDOI[doi], key)
			continue
		}
		title := latex.NormalizeTitle(e.Fields.Get("title"))
		year := strings.TrimSpace(e.Fields.Get("year"))
		if title == "" || year == "" {
			continue
		}
		byTitleYear[title+" ("+year+")"] = append(byTitleYear[title+" ("+year+")"], key)
	}

	var groups []DuplicateGroup
	for doi, keys := range byDOI {
		if len(keys) > 1 {
			groups = append(groups, DuplicateGroup{Reason: "doi", Value: doi, Keys: keys})
		}
	}
	for ty, keys := range byTitleYear {
		if len(keys) > 1 {
			groups = append(groups, DuplicateGroup{Reason: "title-year", Value: ty, Keys: keys})
		}
	}

	sort.Slice(groups, func(i, j int) bool {
		if len(groups[i].Keys) != len(groups[j].Keys) {
			return len(groups[i].Keys) > len(groups[j].Keys)
		}
		return groups[i].Value < groups[j].Value
	})
	return groups
}

// FindByDOI returns the key of the first entry whose doi field
// normalizes to the same form as doi, or "".
func (c *Corpus) FindByDOI(doi string) string {
	want := bibtex.NormalizeDOI(doi)
	if want == "" {
		return ""
	}
	for _, key := range c.keys {
		if bibtex.NormalizeDOI(c.entries[key].Fields.Get("doi")) == want {
			return key
		}
	}
	return ""
}
