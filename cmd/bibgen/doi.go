package main

import (
	"fmt"

	"github.com/lshen/bibgen/internal/pdf"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doiCmd)
}

var doiCmd = &cobra.Command{
	Use:   "doi <pdf>...",
	Short: "Match PDF reprints to corpus entries by DOI",
	Long: `Extract a DOI from the first pages of each PDF and look it up in
the merged corpus. Reports the matching citation key per file, or
"unmatched" when the DOI is unknown or absent.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDOI,
}

// DOIMatch is the per-file row of the doi report.
type DOIMatch struct {
	File  string `json:"file"`
	DOI   string `json:"doi,omitempty"`
	Key   string `json:"key,omitempty"`
	Error string `json:"error,omitempty"`
}

func runDOI(cmd *cobra.Command, args []string) error {
	root, cfg := mustFindProject()
	c, _ := loadCorpus(root, cfg)

	matches := make([]DOIMatch, 0, len(args))
	for _, path := range args {
		m := DOIMatch{File: path}
		doi, err := pdf.ExtractDOI(path)
		if err != nil {
			m.Error = err.Error()
		} else if doi != "" {
			m.DOI = doi
			m.Key = c.FindByDOI(doi)
		}
		matches = append(matches, m)
	}

	if humanOutput {
		for _, m := range matches {
			switch {
			case m.Error != "":
				fmt.Printf("%-40s error: %s\n", m.File, m.Error)
			case m.Key != "":
				fmt.Printf("%-40s %s -> %s\n", m.File, m.DOI, m.Key)
			case m.DOI != "":
				fmt.Printf("%-40s %s -> unmatched\n", m.File, m.DOI)
			default:
				fmt.Printf("%-40s no DOI found\n", m.File)
			}
		}
	} else {
		outputJSON(matches)
	}

	return nil
}
