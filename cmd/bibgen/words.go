package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/lshen/bibgen/internal/latex"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(wordsCmd)
}

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Count words in the project's .tex files",
	Long: `Count Chinese characters and English words in every .tex file under
the project root, after stripping LaTeX markup, environments and math.

The weighted column is the thesis-length metric: Chinese characters
plus half the English word count. Paths containing a words.exclude
substring from the config are skipped.`,
	RunE: runWords,
}

// FileWordCount is the per-file row of the words report.
type FileWordCount struct {
	Path     string `json:"path"`
	Chinese  int    `json:"chinese"`
	English  int    `json:"english"`
	Weighted int    `json:"weighted"`
}

// WordsReport is the response for the words command.
type WordsReport struct {
	Files []FileWordCount `json:"files"`
	Total FileWordCount   `json:"total"`
}

func runWords(cmd *cobra.Command, args []string) error {
	root, cfg := mustFindProject()

	report := WordsReport{Files: []FileWordCount{}}
	var total latex.WordCount

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".tex") {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		for _, excl := range cfg.Words.Exclude {
			if strings.Contains(rel, excl) {
				return nil
			}
		}

		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil
		}
		count := latex.CountWords(strings.ToValidUTF8(string(data), "�"))
		total.Add(count)
		report.Files = append(report.Files, FileWordCount{
			Path:     rel,
			Chinese:  count.Chinese,
			English:  count.English,
			Weighted: count.Weighted(),
		})
		return nil
	})
	if err != nil {
		exitWithError(ExitError, "walking project: %v", err)
	}

	report.Total = FileWordCount{
		Path:     "total",
		Chinese:  total.Chinese,
		English:  total.English,
		Weighted: total.Weighted(),
	}

	if humanOutput {
		fmt.Printf("%-40s %8s %8s %8s\n", "file", "chinese", "english", "weighted")
		for _, f := range report.Files {
			fmt.Printf("%-40s %8d %8d %8d\n", f.Path, f.Chinese, f.English, f.Weighted)
		}
		fmt.Printf("%-40s %8d %8d %8d\n", "total", total.Chinese, total.English, total.Weighted())
	} else {
		outputJSON(report)
	}

	return nil
}
