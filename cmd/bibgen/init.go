package main

import (
	"fmt"
	"os"

	"github.com/lshen/bibgen/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a bibgen project in the current directory",
	Long: `Initialize a bibgen project in the current directory.

Creates:
  bibgen.yaml     # Starter config (edit bib_sources and docs)
  .bibgen/        # Cache directory for the corpus index`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	root := startDir()

	if config.IsProject(root) {
		exitWithError(ExitError, "directory already contains a bibgen project")
	}

	cfg := &config.Config{
		BibSources: []string{"refs.bib"},
	}
	if err := cfg.Save(root); err != nil {
		exitWithError(ExitError, "creating %s: %v", config.ConfigFile, err)
	}

	if err := os.MkdirAll(config.CachePath(root), 0755); err != nil {
		exitWithError(ExitError, "creating cache directory: %v", err)
	}

	if humanOutput {
		fmt.Printf("Initialized bibgen project in %s\n", root)
	} else {
		outputJSON(StatusResponse{Status: "initialized", Path: root})
	}

	return nil
}
