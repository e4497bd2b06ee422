package bibtex

import "strings"

// Field machine states. The scanner is always between fields, before a
// value, or inside one.
const (
	stateName = iota
	stateBeforeValue
	stateValue
)

// Parse scans raw BibTeX text and returns entries in order of first
// appearance. Scanning is byte-oriented: every structural character is
// ASCII, so multi-byte UTF-8 content passes through values untouched.
//
// Malformed input is handled without error: an entry with no comma
// after its key is skipped, and an @ with no opening delimiter before
// the end of input aborts the scan, leaving earlier entries parsed.
// A duplicate entry key replaces the earlier fields but keeps the
// earlier position.
func Parse(text string) []Entry {
	var entries []Entry
	index := make(map[string]int)

	i, n := 0, len(text)
	for i < n {
		at := strings.IndexByte(text[i:], '@')
		if at < 0 {
			break
		}
		at += i

		// Entry type: letters and hyphens after the @.
		j := at + 1
		for j < n && isSpace(text[j]) {
			j++
		}
		k := j
		for k < n && (isLetter(text[k]) || text[k] == '-') {
			k++
		}
		entryType := strings.ToLower(strings.TrimSpace(text[j:k]))

		// Opening delimiter decides the closing one.
		for k < n && text[k] != '{' && text[k] != '(' {
			k++
		}
		if k >= n {
			// No opening delimiter before end of input: give up on
			// the rest of this blob.
			break
		}
		closing := byte('}')
		if text[k] == '(' {
			closing = ')'
		}
		k++

		// Entry key runs to the first comma or line break.
		for k < n && isSpace(text[k]) {
			k++
		}
		keyStart := k
		for k < n && text[k] != ',' && text[k] != '\n' && text[k] != '\r' {
			k++
		}
		entryKey := strings.TrimSpace(text[keyStart:k])

		comma := strings.IndexByte(text[k:], ',')
		if comma < 0 {
			i = k
			continue
		}

		fields := NewFields()
		pos := scanFields(text, k+comma+1, closing, fields)

		if entryKey != "" {
			e := Entry{Key: entryKey, Type: entryType, Fields: fields}
			if prev, ok := index[entryKey]; ok {
				entries[prev] = e
			} else {
				index[entryKey] = len(entries)
				entries = append(entries, e)
			}
		}
		i = pos + 1
	}

	return entries
}

// scanFields consumes name = value pairs starting just past the comma
// that follows the entry key, until the entry's closing delimiter or
// the end of input. It returns the index of the last character
// consumed (the closing delimiter, or len(text) at end of input).
//
// The brace depth counter and quote flag are what keep commas, braces
// and closing delimiters inside nested or quoted content from being
// taken as terminators: only depth-0, unquoted occurrences count.
func scanFields(text string, pos int, closing byte, fields *Fields) int {
	n := len(text)

	var (
		name    string
		pending bool
		eqSeen  bool
		value   []byte
		depth   int
		quoted  bool
	)

	flush := func() {
		if !pending {
			return
		}
		fields.Set(strings.ToLower(name), cleanValue(string(value)))
		name = ""
		pending = false
		eqSeen = false
		value = value[:0]
	}

	state := stateName
	for pos < n {
		ch := text[pos]

		switch state {
		case stateName:
			if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == ',' {
				pos++
				continue
			}
			if ch == closing && depth == 0 && !quoted {
				flush()
				return pos
			}
			start := pos
			for pos < n && isNameByte(text[pos]) {
				pos++
			}
			name = strings.TrimSpace(text[start:pos])
			pending = true
			state = stateBeforeValue

		case stateBeforeValue:
			if isSpace(ch) || (ch == '=' && !eqSeen) {
				if ch == '=' {
					eqSeen = true
				}
				pos++
				continue
			}
			state = stateValue

		case stateValue:
			// Quotes only toggle at depth 0; while quoted, nothing is
			// structural.
			if ch == '"' && depth == 0 {
				quoted = !quoted
				value = append(value, ch)
				pos++
				continue
			}
			if !quoted {
				switch {
				case ch == '{':
					depth++
				case ch == '}':
					wasTop := depth == 0
					if depth > 0 {
						depth--
					}
					if closing == '}' && wasTop {
						flush()
						return pos
					}
				case ch == ',' && depth == 0:
					flush()
					state = stateName
					pos++
					continue
				case ch == closing && depth == 0:
					// (...)-delimited entries end here.
					flush()
					return pos
				}
			}
			value = append(value, ch)
			pos++
		}
	}

	// Input ended mid-entry: fields flushed so far stand, the partial
	// one is dropped.
	return pos
}

// cleanValue trims a buffered value and removes one wrapping layer of
// braces or double quotes.
func cleanValue(v string) string {
	v = strings.TrimSpace(v)
	v = stripOuterBraces(v)
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		v = v[1 : len(v)-1]
	}
	return strings.TrimSpace(v)
}

// stripOuterBraces removes a brace pair that wraps the entire value:
// "{A {B} C}" becomes "A {B} C", while "{A} and {B}" is left alone
// because its leading brace closes before the end.
func stripOuterBraces(s string) string {
	if len(s) < 2 || s[0] != '{' || s[len(s)-1] != '}' {
		return s
	}
	depth := 0
	for i := 0; i < len(s)-1; i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s
			}
		}
	}
	return strings.TrimSpace(s[1 : len(s)-1])
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameByte(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}
