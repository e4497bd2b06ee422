package main

import (
	"fmt"
	"os"

	"github.com/lshen/bibgen/internal/resolve"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check <doc>",
	Short: "Check a document's citations against the generated bibliography",
	Long: `Check that every citation key a document uses has a \bibitem entry
in the configured bibitems_file. Keys are canonicalized through the
alias table before the comparison.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

// CheckReport is the response for the check command.
type CheckReport struct {
	Cited   int      `json:"cited"` // unique canonical keys in the document
	Missing []string `json:"missing,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	root, cfg := mustFindProject()
	tables := resolveTables(cfg)

	path := cfg.BibitemsPath(root)
	if path == "" {
		exitWithError(ExitConfigError, "bibitems_file not configured")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		exitWithError(ExitError, "reading %s: %v", path, err)
	}

	keys := readDocKeys(root, cfg, args[0])
	missing := resolve.Check(keys, string(data), tables)
	report := CheckReport{Cited: len(tables.Canonical(keys)), Missing: missing}

	if humanOutput {
		if len(missing) == 0 {
			fmt.Printf("All %d cited keys present\n", report.Cited)
		} else {
			fmt.Printf("%d of %d cited keys missing:\n", len(missing), report.Cited)
			for _, k := range missing {
				fmt.Printf("  %s\n", k)
			}
		}
	} else {
		outputJSON(report)
	}

	return nil
}
