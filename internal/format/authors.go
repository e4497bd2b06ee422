// Package format renders parsed entries as formatted reference lines.
package format

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lshen/bibgen/internal/latex"
)

// SplitAuthors splits a raw author field on the literal BibTeX
// separator " and ", dropping empty parts.
func SplitAuthors(field string) []string {
	if field == "" {
		return nil
	}
	parts := strings.Split(strings.ReplaceAll(field, "\n", " "), " and ")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

var givenSeparator = regexp.MustCompile(`[\s\-]+`)

// initials concatenates the uppercased first letter of each
// whitespace- or hyphen-separated given-name token.
func initials(given string) string {
	var b strings.Builder
	for _, tok := range givenSeparator.Split(given, -1) {
		if tok == "" {
			continue
		}
		r, _ := utf8.DecodeRuneInString(tok)
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

// FormatAuthor renders one name as "Surname Initials". Both "Smith,
// John Paul" and "John Paul Smith" yield "Smith JP". Returns "" when
// no surname can be found.
func FormatAuthor(name string) string {
	name = latex.Strip(name)

	var surname, given string
	if i := strings.Index(name, ","); i >= 0 {
		surname = strings.TrimSpace(name[:i])
		given = strings.TrimSpace(name[i+1:])
	} else {
		toks := strings.Fields(name)
		if len(toks) == 0 {
			return ""
		}
		surname = toks[len(toks)-1]
		given = strings.Join(toks[:len(toks)-1], " ")
	}
	if surname == "" {
		return ""
	}

	if ini := initials(given); ini != "" {
		return surname + " " + ini
	}
	return surname
}

// FormatAuthors renders an author field as a citation author string.
// Past maxAuthors names, the list is cut and ", et al." appended; a
// non-positive maxAuthors means no cap.
func FormatAuthors(field string, maxAuthors int) string {
	var authors []string
	for _, raw := range SplitAuthors(field) {
		if a := FormatAuthor(raw); a != "" {
			authors = append(authors, a)
		}
	}
	if len(authors) == 0 {
		return ""
	}
	if maxAuthors > 0 && len(authors) > maxAuthors {
		return strings.Join(authors[:maxAuthors], ", ") + ", et al."
	}
	return strings.Join(authors, ", ")
}
