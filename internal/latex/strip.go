package latex

import (
	"regexp"
	"strings"
)

// ampMarker protects literal \& during stripping. NUL bytes cannot
// occur in the inputs, so the marker never collides with content.
const ampMarker = "\x00amp\x00"

// The Strip passes, applied in order. Each is a standalone rewrite so
// the sequence stays auditable.
var (
	// \'e, \'{e}, \"o, \~n and the other common accent macros become
	// the bare letter.
	accentPattern = regexp.MustCompile(`\\[` + "`" + `'"^~=.uvHc]\s*\{?\s*([A-Za-z])\s*\}?`)

	// Remaining \command invocations, with an optional star, optional
	// [opt] and at most one non-nested {arg}. Not a macro expander.
	commandPattern = regexp.MustCompile(`\\[a-zA-Z]+\*?(\[[^\]]*\])?(\{[^}]*\})?`)

	// Stray apostrophe left between letters by accent stripping.
	strayApostrophe = regexp.MustCompile(`([A-Za-z])'([A-Za-z])`)

	whitespaceRun = regexp.MustCompile(`\s+`)
)

// Strip converts a TeX-marked-up field value to plain text. Escaped
// ampersands survive as \&; everything else that looks like markup is
// removed.
func Strip(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, `\&`, ampMarker)
	s = accentPattern.ReplaceAllString(s, "$1")
	s = commandPattern.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, `\`, "")
	s = strings.ReplaceAll(s, "{", "")
	s = strings.ReplaceAll(s, "}", "")
	s = strayApostrophe.ReplaceAllString(s, "$1$2")
	s = strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
	return strings.ReplaceAll(s, ampMarker, `\&`)
}

var (
	titleCommand = regexp.MustCompile(`\\[a-zA-Z]+\s*`)
	nonAlnum     = regexp.MustCompile(`[^0-9a-zA-Z]+`)
)

// NormalizeTitle reduces a title to a comparison form for duplicate
// detection: braces and TeX commands dropped, everything but
// alphanumerics collapsed to single spaces, lowercased.
func NormalizeTitle(title string) string {
	t := strings.ReplaceAll(title, "{", " ")
	t = strings.ReplaceAll(t, "}", " ")
	t = titleCommand.ReplaceAllString(t, " ")
	t = nonAlnum.ReplaceAllString(t, " ")
	t = whitespaceRun.ReplaceAllString(t, " ")
	return strings.ToLower(strings.TrimSpace(t))
}
