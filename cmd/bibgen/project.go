package main

import (
	"os"
	"strings"

	"github.com/lshen/bibgen/internal/config"
	"github.com/lshen/bibgen/internal/corpus"
	"github.com/lshen/bibgen/internal/latex"
	"github.com/lshen/bibgen/internal/resolve"
)

// startDir returns where project discovery begins: BIBGEN_ROOT if set,
// otherwise the current directory.
func startDir() string {
	if root := os.Getenv("BIBGEN_ROOT"); root != "" {
		return root
	}
	cwd, err := os.Getwd()
	if err != nil {
		exitWithError(ExitError, "getting current directory: %v", err)
	}
	return cwd
}

// mustFindProject locates the project root and loads its config,
// exiting with a config error when either step fails.
func mustFindProject() (string, *config.Config) {
	root, err := config.FindProject(startDir())
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	cfg, err := config.Load(root)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	return root, cfg
}

// loadCorpus merges the configured bib sources in precedence order.
// Missing sources are skipped silently, as are all scanner-level
// problems; the corpus holds whatever could be parsed.
func loadCorpus(root string, cfg *config.Config) (*corpus.Corpus, []corpus.SourceCount) {
	return corpus.Load(cfg.SourcePaths(root))
}

// resolveTables builds the lookup tables for resolution from config.
func resolveTables(cfg *config.Config) resolve.Tables {
	return resolve.Tables{
		Aliases:    cfg.CanonicalKeys,
		Overrides:  cfg.ManualRefs,
		MaxAuthors: cfg.AuthorCap(),
	}
}

// readDocKeys extracts citation keys from one document, resolved by
// configured doc name or by path. A missing document yields no keys,
// matching the silent-skip rule for missing inputs.
func readDocKeys(root string, cfg *config.Config, doc string) []string {
	data, err := os.ReadFile(cfg.DocPath(root, doc))
	if err != nil {
		return nil
	}
	return latex.ExtractCiteKeys(strings.ToValidUTF8(string(data), "�"))
}
