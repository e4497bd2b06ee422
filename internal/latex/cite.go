// Package latex extracts citation keys from LaTeX source and strips
// TeX markup from text, best effort.
package latex

import (
	"regexp"
	"strings"
)

// citePattern matches \cite, \citep, \citet and friends, capturing the
// comma-separated key list inside the braces.
var citePattern = regexp.MustCompile(`\\cite\w*\s*\{([^}]*)\}`)

// ExtractCiteKeys returns every citation key referenced in a document,
// in order of appearance. Keys cited more than once appear more than
// once; use Uniq to deduplicate.
func ExtractCiteKeys(text string) []string {
	var keys []string
	for _, m := range citePattern.FindAllStringSubmatch(text, -1) {
		for _, k := range strings.Split(m[1], ",") {
			k = strings.TrimSpace(k)
			if k != "" {
				keys = append(keys, k)
			}
		}
	}
	return keys
}

// Uniq removes later duplicates from a key sequence, preserving
// first-occurrence order.
func Uniq(keys []string) []string {
	seen := make(map[string]bool, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}
