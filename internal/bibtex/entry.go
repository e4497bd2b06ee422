// Package bibtex implements a minimal BibTeX entry scanner.
//
// The scanner handles arbitrarily nested brace groups and quoted strings
// inside field values, and both entry delimiter styles ({...} and (...)).
// It is not a full BibTeX grammar: @string/@preamble macros, crossref
// resolution, and comments outside entries are out of scope.
package bibtex

import "strings"

// Entry is one bibliographic record.
type Entry struct {
	Key    string // citation key, unique within a corpus
	Type   string // declared entry type, lowercased (article, book, ...)
	Fields *Fields
}

// Fields is an ordered mapping from lowercase field name to raw value.
// A name keeps the position of its first write; writing it again
// replaces the value in place.
type Fields struct {
	names  []string
	values map[string]string
}

// NewFields returns an empty field mapping.
func NewFields() *Fields {
	return &Fields{values: make(map[string]string)}
}

// Set stores value under name, replacing any prior value.
func (f *Fields) Set(name, value string) {
	if _, ok := f.values[name]; !ok {
		f.names = append(f.names, name)
	}
	f.values[name] = value
}

// Get returns the value for name, or "" if absent.
func (f *Fields) Get(name string) string {
	return f.values[name]
}

// Has reports whether name is present.
func (f *Fields) Has(name string) bool {
	_, ok := f.values[name]
	return ok
}

// Pick returns the first of the named fields with a nonempty trimmed
// value, or "".
func (f *Fields) Pick(names ...string) string {
	for _, n := range names {
		if v := strings.TrimSpace(f.values[n]); v != "" {
			return v
		}
	}
	return ""
}

// Names returns the field names in first-write order.
func (f *Fields) Names() []string {
	return f.names
}

// Len returns the number of fields.
func (f *Fields) Len() int {
	return len(f.names)
}

// Map returns a copy of the mapping for serialization. Order is not
// preserved; use Names for ordered iteration.
func (f *Fields) Map() map[string]string {
	m := make(map[string]string, len(f.values))
	for k, v := range f.values {
		m[k] = v
	}
	return m
}
