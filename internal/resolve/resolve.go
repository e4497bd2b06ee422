// Package resolve turns citation keys into formatted reference blocks,
// consulting a manual override table before the parsed corpus.
package resolve

import (
	"regexp"
	"strings"

	"github.com/lshen/bibgen/internal/corpus"
	"github.com/lshen/bibgen/internal/format"
	"github.com/lshen/bibgen/internal/latex"
)

// Tables holds the lookup inputs for a resolution pass.
type Tables struct {
	// Aliases collapses known duplicate or renamed citation keys to
	// one canonical key before lookup and deduplication.
	Aliases map[string]string

	// Overrides maps a citation key to a fully pre-formatted reference
	// line, taking precedence over the corpus.
	Overrides map[string]string

	// MaxAuthors caps the author list per formatted entry; 0 means
	// the default of 3.
	MaxAuthors int
}

func (t Tables) maxAuthors() int {
	if t.MaxAuthors > 0 {
		return t.MaxAuthors
	}
	return 3
}

// Canonical applies the alias table to every key and removes later
// duplicates, preserving first-occurrence order.
func (t Tables) Canonical(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if canon, ok := t.Aliases[k]; ok {
			k = canon
		}
		out = append(out, k)
	}
	return latex.Uniq(out)
}

// Item is one resolved reference.
type Item struct {
	Key    string `json:"key"`
	Text   string `json:"text"`
	Source string `json:"source"` // "manual" or "corpus"
}

// Result is the outcome of a resolution pass: whatever could be
// resolved, plus the keys that could not.
type Result struct {
	Items   []Item   `json:"items"`
	Missing []string `json:"missing,omitempty"`
}

// Resolve maps citation keys to formatted references. Keys are first
// canonicalized and deduplicated; each is then looked up in the manual
// override table, then the corpus. Unresolvable keys land in Missing
// rather than aborting the pass.
func Resolve(keys []string, c *corpus.Corpus, tables Tables) Result {
	var res Result
	for _, key := range tables.Canonical(keys) {
		if text, ok := tables.Overrides[key]; ok {
			res.Items = append(res.Items, Item{Key: key, Text: text, Source: "manual"})
			continue
		}
		if e, ok := c.Get(key); ok {
			text := format.Entry(e, tables.maxAuthors())
			res.Items = append(res.Items, Item{Key: key, Text: text, Source: "corpus"})
			continue
		}
		res.Missing = append(res.Missing, key)
	}
	return res
}

// Bibitems renders a result as LaTeX \bibitem blocks. Missing keys
// become trailing %-comment lines so the generated file still compiles
// while flagging what needs attention.
func Bibitems(res Result) string {
	var b strings.Builder
	for _, item := range res.Items {
		b.WriteString("\n\t\\bibitem{")
		b.WriteString(item.Key)
		b.WriteString("}\n\t")
		b.WriteString(item.Text)
		b.WriteString("\n")
	}
	out := strings.TrimRight(b.String(), " \t\n")
	if out != "" {
		out += "\n"
	}
	for _, key := range res.Missing {
		out += "% missing: " + key + "\n"
	}
	return out
}

// bibitemPattern matches a \bibitem marker and captures its key.
var bibitemPattern = regexp.MustCompile(`\\bibitem\s*\{([^}]*)\}`)

// BibitemKeys returns the keys declared by \bibitem markers in a
// generated bibliography, in order of appearance.
func BibitemKeys(text string) []string {
	var keys []string
	for _, m := range bibitemPattern.FindAllStringSubmatch(text, -1) {
		if k := strings.TrimSpace(m[1]); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// Check reports which of the given citation keys (canonicalized and
// deduplicated) have no \bibitem marker in the generated bibliography.
func Check(keys []string, bibitems string, tables Tables) []string {
	have := make(map[string]bool)
	for _, k := range BibitemKeys(bibitems) {
		have[k] = true
	}
	var missing []string
	for _, k := range tables.Canonical(keys) {
		if !have[k] {
			missing = append(missing, k)
		}
	}
	return missing
}
