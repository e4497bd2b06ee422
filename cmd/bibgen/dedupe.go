package main

import (
	"fmt"
	"strings"

	"github.com/lshen/bibgen/internal/corpus"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(dedupeCmd)
}

var dedupeCmd = &cobra.Command{
	Use:   "dedupe",
	Short: "Find likely duplicate entries in the merged corpus",
	Long: `Find likely duplicate entries in the merged corpus.

Entries sharing a DOI (case-insensitive) are grouped; entries without
a DOI are grouped by normalized title and year. Groups are reported
largest first.`,
	RunE: runDedupe,
}

func runDedupe(cmd *cobra.Command, args []string) error {
	root, cfg := mustFindProject()
	c, _ := loadCorpus(root, cfg)

	groups := c.Duplicates()

	// Empty result is not an error
	if groups == nil {
		groups = []corpus.DuplicateGroup{}
	}

	if humanOutput {
		if len(groups) == 0 {
			fmt.Println("No duplicate candidates")
			return nil
		}
		for _, g := range groups {
			fmt.Printf("[%s] %s\n", g.Reason, g.Value)
			fmt.Printf("  %s\n", strings.Join(g.Keys, ", "))
		}
	} else {
		outputJSON(groups)
	}

	return nil
}
