package main

import (
	"fmt"
	"os"

	"github.com/lshen/bibgen/internal/bibtex"
	"github.com/lshen/bibgen/internal/config"
	"github.com/lshen/bibgen/internal/corpus"
	"github.com/lshen/bibgen/internal/format"
	"github.com/lshen/bibgen/internal/latex"
	"github.com/lshen/bibgen/internal/storage"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(indexCmd)
}

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Rebuild the corpus index from the .bib sources",
	Long: `Rebuild the SQLite corpus index under .bibgen/ from the configured
.bib sources. The index is a derived, disposable artifact used by the
search command; rerun this after editing the sources.`,
	RunE: runIndex,
}

// IndexResult is the response for the index command.
type IndexResult struct {
	Status  string `json:"status"`
	Entries int    `json:"entries"`
}

func runIndex(cmd *cobra.Command, args []string) error {
	root, cfg := mustFindProject()

	if err := os.MkdirAll(config.CachePath(root), 0755); err != nil {
		exitWithError(ExitError, "creating cache directory: %v", err)
	}

	db, err := storage.OpenDB(config.DBPath(root))
	if err != nil {
		exitWithError(ExitError, "opening database: %v", err)
	}
	defer db.Close()

	count, err := db.Rebuild(indexedEntries(root, cfg))
	if err != nil {
		exitWithError(ExitDataError, "rebuilding index: %v", err)
	}

	if humanOutput {
		fmt.Printf("Indexed %d entries\n", count)
	} else {
		outputJSON(IndexResult{Status: "indexed", Entries: count})
	}

	return nil
}

// indexedEntries loads the sources one by one so each merged entry can
// be attributed to the file it first appeared in.
func indexedEntries(root string, cfg *config.Config) []storage.IndexedEntry {
	c := corpus.New()
	var out []storage.IndexedEntry
	for _, path := range cfg.SourcePaths(root) {
		entries, ok := corpus.ReadSource(path)
		if !ok {
			continue
		}
		for _, e := range entries {
			if c.Has(e.Key) {
				continue
			}
			out = append(out, flattenEntry(e, path))
		}
		c.Merge(entries)
	}
	return out
}

// flattenEntry reduces an entry to the plain-text columns the index
// stores and searches.
func flattenEntry(e bibtex.Entry, source string) storage.IndexedEntry {
	return storage.IndexedEntry{
		Key:     e.Key,
		Type:    e.Type,
		Title:   latex.Strip(e.Fields.Get("title")),
		Authors: format.FormatAuthors(e.Fields.Get("author"), 0),
		Year:    e.Fields.Get("year"),
		Venue:   latex.Strip(e.Fields.Pick("journal", "booktitle", "institution", "publisher", "howpublished")),
		DOI:     bibtex.NormalizeDOI(e.Fields.Get("doi")),
		Source:  source,
	}
}
