package main

import (
	"fmt"
	"os"

	"github.com/lshen/bibgen/internal/config"
	"github.com/lshen/bibgen/internal/storage"
	"github.com/spf13/cobra"
)

var searchLimit int

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", DefaultSearchLimit, "Maximum results to return")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the corpus index by keyword",
	Long: `Search the corpus index over keys, titles, authors and venues.

Run bibgen index first to build or refresh the index.

Examples:
  bibgen search "phylogenetics"
  bibgen search "smith2020"`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	root, _ := mustFindProject()

	dbPath := config.DBPath(root)
	if _, err := os.Stat(dbPath); err != nil {
		exitWithError(ExitConfigError, "corpus index not found, run: bibgen index")
	}

	db, err := storage.OpenDB(dbPath)
	if err != nil {
		exitWithError(ExitError, "opening database: %v", err)
	}
	defer db.Close()

	results, err := db.Search(args[0], searchLimit)
	if err != nil {
		exitWithError(ExitError, "searching: %v", err)
	}

	// Empty result is not an error
	if results == nil {
		results = []storage.IndexedEntry{}
	}

	if humanOutput {
		if len(results) == 0 {
			fmt.Println("No entries found")
		} else {
			fmt.Printf("Found %d entries:\n\n", len(results))
			for i, e := range results {
				printEntrySummary(i+1, e)
			}
		}
	} else {
		outputJSON(results)
	}

	return nil
}

func printEntrySummary(num int, e storage.IndexedEntry) {
	fmt.Printf("[%d] %s\n", num, e.Key)
	fmt.Printf("    %s\n", truncateString(e.Title, SummaryTitleLen))
	if e.Authors != "" {
		fmt.Printf("    %s\n", e.Authors)
	}
	if e.Venue != "" {
		fmt.Printf("    %s (%s)\n", e.Venue, e.Year)
	} else if e.Year != "" {
		fmt.Printf("    (%s)\n", e.Year)
	}
	fmt.Println()
}
