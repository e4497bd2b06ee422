package main

import (
	"fmt"
	"os"

	"github.com/lshen/bibgen/internal/resolve"
	"github.com/spf13/cobra"
)

var resolveWrite bool

func init() {
	resolveCmd.Flags().BoolVar(&resolveWrite, "write", false, "Write the bibitems to the configured bibitems_file")
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <doc>",
	Short: "Resolve a document's citations into \\bibitem blocks",
	Long: `Resolve the citation keys of a document into formatted references.

The document is a configured doc name or a .tex path. Keys are
canonicalized through the alias table, deduplicated, and looked up in
the manual override table first, then the merged corpus. Keys found in
neither are reported as missing instead of aborting.

With --human the generated \bibitem text is printed; by default the
resolved items and missing keys are emitted as JSON. With --write the
text is also written to the configured bibitems_file.`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func runResolve(cmd *cobra.Command, args []string) error {
	root, cfg := mustFindProject()
	c, _ := loadCorpus(root, cfg)

	keys := readDocKeys(root, cfg, args[0])
	res := resolve.Resolve(keys, c, resolveTables(cfg))
	text := resolve.Bibitems(res)

	if resolveWrite {
		path := cfg.BibitemsPath(root)
		if path == "" {
			exitWithError(ExitConfigError, "bibitems_file not configured")
		}
		if err := os.WriteFile(path, []byte(text), 0644); err != nil {
			exitWithError(ExitError, "writing %s: %v", path, err)
		}
	}

	if humanOutput {
		fmt.Print(text)
		if len(res.Missing) > 0 {
			fmt.Fprintf(os.Stderr, "%d keys unresolved\n", len(res.Missing))
		}
	} else {
		outputJSON(res)
	}

	return nil
}
