package latex

import "regexp"

// Markup removal for word counting. Coarser than Strip: whole
// environments and math go away rather than just their markers.
var (
	commentLine    = regexp.MustCompile(`%.*`)
	environment    = regexp.MustCompile(`(?s)\\begin\{[^}]*\}.*?\\end\{[^}]*\}`)
	displayMath    = regexp.MustCompile(`(?s)\$\$.*?\$\$`)
	inlineMath     = regexp.MustCompile(`(?s)\$.*?\$`)
	commandWithArg = regexp.MustCompile(`\\[a-zA-Z_]+\{[^}]*\}`)
	bareCommand    = regexp.MustCompile(`\\[a-zA-Z_]+`)
	braceChar      = regexp.MustCompile(`[{}]`)
	englishWord    = regexp.MustCompile(`\b[a-zA-Z]+\b`)
)

// WordCount holds the counts for one document.
type WordCount struct {
	Chinese int `json:"chinese"`
	English int `json:"english"`
}

// Weighted returns the thesis-length metric: Chinese characters plus
// half the English word count, rounded down.
func (w WordCount) Weighted() int {
	return w.Chinese + w.English/2
}

// Add accumulates another count into w.
func (w *WordCount) Add(other WordCount) {
	w.Chinese += other.Chinese
	w.English += other.English
}

// CountWords counts Chinese characters and English words in a LaTeX
// document after removing markup, environments and math.
func CountWords(text string) WordCount {
	text = cleanDocument(text)

	var c WordCount
	for _, r := range text {
		if r >= 0x4e00 && r <= 0x9fff {
			c.Chinese++
		}
	}
	c.English = len(englishWord.FindAllString(text, -1))
	return c
}

func cleanDocument(text string) string {
	text = commentLine.ReplaceAllString(text, "")
	text = environment.ReplaceAllString(text, "")
	text = displayMath.ReplaceAllString(text, "")
	text = inlineMath.ReplaceAllString(text, "")
	text = commandWithArg.ReplaceAllString(text, "")
	text = bareCommand.ReplaceAllString(text, "")
	return braceChar.ReplaceAllString(text, " ")
}
