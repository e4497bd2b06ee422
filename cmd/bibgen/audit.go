package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lshen/bibgen/internal/corpus"
	"github.com/lshen/bibgen/internal/latex"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(auditCmd)
}

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit citation keys against the merged corpus",
	Long: `Audit the project's documents against its BibTeX sources.

Reports per-document citation-key counts, the union of keys across all
documents, per-source entry counts, keys with no matching entry, and
likely duplicate records (same DOI, or same normalized title and year).`,
	RunE: runAudit,
}

// DocKeyCount summarizes one document's citations.
type DocKeyCount struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Keys int    `json:"keys"` // unique canonical keys
}

// AuditReport is the response for the audit command.
type AuditReport struct {
	Docs       []DocKeyCount           `json:"docs"`
	UnionKeys  int                     `json:"union_keys"`
	Sources    []corpus.SourceCount    `json:"sources"`
	Loaded     int                     `json:"loaded"`
	Missing    []string                `json:"missing,omitempty"`
	Duplicates []corpus.DuplicateGroup `json:"duplicates,omitempty"`
}

func runAudit(cmd *cobra.Command, args []string) error {
	root, cfg := mustFindProject()
	c, counts := loadCorpus(root, cfg)
	tables := resolveTables(cfg)

	report := AuditReport{Sources: counts, Loaded: c.Len()}

	docNames := make([]string, 0, len(cfg.Docs))
	for name := range cfg.Docs {
		docNames = append(docNames, name)
	}
	sort.Strings(docNames)

	var union []string
	for _, name := range docNames {
		keys := tables.Canonical(readDocKeys(root, cfg, name))
		union = append(union, keys...)
		report.Docs = append(report.Docs, DocKeyCount{
			Name: name,
			Path: cfg.Docs[name],
			Keys: len(keys),
		})
	}
	union = latex.Uniq(union)
	report.UnionKeys = len(union)

	for _, key := range union {
		if _, manual := cfg.ManualRefs[key]; manual {
			continue
		}
		if !c.Has(key) {
			report.Missing = append(report.Missing, key)
		}
	}
	report.Duplicates = c.Duplicates()

	if humanOutput {
		printAuditHuman(report)
	} else {
		outputJSON(report)
	}

	return nil
}

func printAuditHuman(r AuditReport) {
	for _, d := range r.Docs {
		fmt.Printf("%-20s %4d keys  (%s)\n", d.Name, d.Keys, d.Path)
	}
	fmt.Printf("union: %d unique keys\n\n", r.UnionKeys)

	for _, s := range r.Sources {
		fmt.Printf("%-40s %4d entries\n", s.Path, s.Entries)
	}
	fmt.Printf("loaded: %d entries after merge\n", r.Loaded)

	if len(r.Missing) > 0 {
		fmt.Printf("\nmissing (%d):\n", len(r.Missing))
		for _, k := range r.Missing {
			fmt.Printf("  %s\n", k)
		}
	}
	if len(r.Duplicates) > 0 {
		fmt.Printf("\nduplicate candidates (%d):\n", len(r.Duplicates))
		for _, g := range r.Duplicates {
			fmt.Printf("  [%s] %s: %s\n", g.Reason, g.Value, strings.Join(g.Keys, ", "))
		}
	}
}
