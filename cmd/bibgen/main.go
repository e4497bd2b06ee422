// Package main provides the bibgen CLI entry point.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bibgen",
	Short: "BibTeX corpus auditor and bibliography generator",
	Long: `bibgen audits the BibTeX sources of a LaTeX project and generates
\bibitem bibliographies from the citation keys a document actually uses.

A project is a directory tree marked by a bibgen.yaml config listing the
.bib sources in precedence order. All commands output JSON by default
for easy integration with other tools; pass --human for text.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}
