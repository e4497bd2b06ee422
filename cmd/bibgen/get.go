package main

import (
	"fmt"

	"github.com/lshen/bibgen/internal/format"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Show one entry by citation key",
	Long: `Show one entry by citation key: its formatted reference line plus
the raw fields as parsed from the .bib source. The alias table is
applied, so a known duplicate key finds its canonical entry.`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

// GetResponse is the response for the get command.
type GetResponse struct {
	Key       string            `json:"key"`
	Type      string            `json:"type"`
	Formatted string            `json:"formatted"`
	Fields    map[string]string `json:"fields"`
}

func runGet(cmd *cobra.Command, args []string) error {
	root, cfg := mustFindProject()
	c, _ := loadCorpus(root, cfg)

	key := args[0]
	if canon, ok := cfg.CanonicalKeys[key]; ok {
		key = canon
	}

	e, ok := c.Get(key)
	if !ok {
		exitWithError(ExitDataError, "no entry for key %q", key)
	}

	resp := GetResponse{
		Key:       e.Key,
		Type:      e.Type,
		Formatted: format.Entry(e, cfg.AuthorCap()),
		Fields:    e.Fields.Map(),
	}

	if humanOutput {
		fmt.Printf("%s (%s)\n%s\n\n", resp.Key, resp.Type, resp.Formatted)
		for _, name := range e.Fields.Names() {
			fmt.Printf("  %-12s %s\n", name, e.Fields.Get(name))
		}
	} else {
		outputJSON(resp)
	}

	return nil
}
