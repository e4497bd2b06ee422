package format

import (
	"strings"

	"github.com/lshen/bibgen/internal/bibtex"
	"github.com/lshen/bibgen/internal/latex"
)

// RefTag maps a declared entry type to its bracketed category tag.
func RefTag(entryType string) string {
	switch strings.ToLower(entryType) {
	case "article":
		return "[J]"
	case "inproceedings", "conference", "proceedings":
		return "[C]"
	case "techreport":
		return "[R]"
	case "book":
		return "[M]"
	case "phdthesis", "mastersthesis":
		return "[D]"
	default:
		return "[Z]"
	}
}

// Entry renders one entry as a single reference line, for example
//
//	Smith J, Doe J. A title[J]. Journal Name, 2020, 12(3): 100-110.
//
// The category decides the venue layout. A journal or booktitle field
// overrides the declared type when picking the tag, since .bib files
// in the wild often declare nonstandard types.
func Entry(e bibtex.Entry, maxAuthors int) string {
	entryType := strings.ToLower(e.Type)
	hasJournal := e.Fields.Pick("journal") != ""
	hasBooktitle := e.Fields.Pick("booktitle") != ""

	var tag string
	switch {
	case hasJournal:
		tag = "[J]"
	case hasBooktitle:
		tag = "[C]"
	default:
		tag = RefTag(entryType)
	}

	authors := strings.TrimRight(FormatAuthors(e.Fields.Pick("author"), maxAuthors), ".")
	title := latex.Strip(e.Fields.Pick("title"))
	if title == "" {
		title = e.Key
	}
	year := e.Fields.Pick("year")

	switch {
	case hasJournal || entryType == "article":
		journal := latex.Strip(e.Fields.Pick("journal"))
		volume := e.Fields.Pick("volume")
		number := e.Fields.Pick("number")
		pages := strings.ReplaceAll(e.Fields.Pick("pages"), "--", "-")

		var parts []string
		if journal != "" {
			parts = append(parts, journal)
		}
		if year != "" {
			parts = append(parts, year)
		}

		var vn string
		switch {
		case volume != "" && number != "":
			vn = volume + "(" + number + ")"
		case volume != "":
			vn = volume
		case number != "":
			vn = "(" + number + ")"
		}
		var tail string
		switch {
		case vn != "" && pages != "":
			tail = vn + ": " + pages
		case vn != "":
			tail = vn
		case pages != "":
			tail = pages
		}
		if tail != "" {
			parts = append(parts, tail)
		}
		return line(authors, title, tag, strings.Join(parts, ", "), ". ")

	case hasBooktitle || entryType == "inproceedings" || entryType == "conference" || entryType == "proceedings":
		booktitle := latex.Strip(e.Fields.Pick("booktitle"))
		pages := strings.ReplaceAll(e.Fields.Pick("pages"), "--", "-")

		venue := year
		if booktitle != "" {
			rest := joinNonEmpty(", ", year, pages)
			venue = booktitle
			if rest != "" {
				venue += ": " + rest
			}
		}
		return line(authors, title, tag, venue, "//")

	case entryType == "techreport":
		institution := latex.Strip(e.Fields.Pick("institution"))
		number := e.Fields.Pick("number")
		return line(authors, title, tag, joinNonEmpty(", ", institution, year, number), ". ")
	}

	// Books, theses and everything else.
	published := latex.Strip(e.Fields.Pick("howpublished", "publisher", "note"))
	return line(authors, title, tag, joinNonEmpty(", ", published, year), ". ")
}

// line assembles the final reference string. sep joins the tagged
// title to the venue: ". " for journal-style lines, "//" for
// proceedings. An empty venue drops the whole clause so the line never
// ends in dangling punctuation.
func line(authors, title, tag, venue, sep string) string {
	head := title + tag
	if authors != "" {
		head = authors + ". " + head
	}
	if venue == "" {
		return head + "."
	}
	return head + sep + venue + "."
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
