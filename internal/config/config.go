// Package config handles project configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents a project configured by bibgen.yaml at its root.
type Config struct {
	// BibSources lists the BibTeX files to merge, in precedence order:
	// a key found in an earlier source wins. Paths are relative to the
	// project root.
	BibSources []string `yaml:"bib_sources"`

	// Docs names the LaTeX documents whose citations are resolved,
	// keyed by a short name usable on the command line.
	Docs map[string]string `yaml:"docs,omitempty"`

	// BibitemsFile is where the resolve command writes (and the check
	// command reads) the generated bibliography.
	BibitemsFile string `yaml:"bibitems_file,omitempty"`

	// MaxAuthors caps the author list per formatted reference; 0
	// means the default of 3.
	MaxAuthors int `yaml:"max_authors,omitempty"`

	// CanonicalKeys maps known duplicate or renamed citation keys to
	// their canonical form.
	CanonicalKeys map[string]string `yaml:"canonical_keys,omitempty"`

	// ManualRefs maps citation keys to pre-formatted reference lines
	// that take precedence over the parsed corpus.
	ManualRefs map[string]string `yaml:"manual_refs,omitempty"`

	// Words configures the word-count command.
	Words WordsConfig `yaml:"words,omitempty"`
}

// WordsConfig configures word counting over the project's .tex files.
type WordsConfig struct {
	// Exclude drops any .tex path containing one of these substrings.
	Exclude []string `yaml:"exclude,omitempty"`
}

const (
	// ConfigFile marks the project root.
	ConfigFile = "bibgen.yaml"
	// CacheDir holds derived, disposable artifacts.
	CacheDir = ".bibgen"
	// DBFile is the corpus index inside CacheDir.
	DBFile = "corpus.db"
)

// ConfigPath returns the path to bibgen.yaml from a root path.
func ConfigPath(root string) string {
	return filepath.Join(root, ConfigFile)
}

// CachePath returns the path to the cache directory from a root path.
func CachePath(root string) string {
	return filepath.Join(root, CacheDir)
}

// DBPath returns the path to the corpus index from a root path.
func DBPath(root string) string {
	return filepath.Join(root, CacheDir, DBFile)
}

// IsProject checks if the given path contains a bibgen project.
func IsProject(root string) bool {
	info, err := os.Stat(ConfigPath(root))
	return err == nil && info.Mode().IsRegular()
}

// FindProject walks up from the given path to find a bibgen project.
// Returns the project root path or an error if not found.
func FindProject(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	for {
		if IsProject(abs) {
			return abs, nil
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("not in a bibgen project (no %s found)", ConfigFile)
		}
		abs = parent
	}
}

// Load reads configuration from the project at the given root.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(ConfigPath(root))
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// Save writes configuration to the project at the given root.
func (c *Config) Save(root string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(root), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// SourcePaths returns the configured bib sources resolved against the
// project root, preserving their precedence order.
func (c *Config) SourcePaths(root string) []string {
	paths := make([]string, 0, len(c.BibSources))
	for _, s := range c.BibSources {
		paths = append(paths, resolvePath(root, s))
	}
	return paths
}

// DocPath resolves a document argument: a configured doc name first,
// otherwise a path relative to the project root.
func (c *Config) DocPath(root, doc string) string {
	if p, ok := c.Docs[doc]; ok {
		return resolvePath(root, p)
	}
	return resolvePath(root, doc)
}

// BibitemsPath returns the configured bibitems file resolved against
// the project root, or "" when not configured.
func (c *Config) BibitemsPath(root string) string {
	if c.BibitemsFile == "" {
		return ""
	}
	return resolvePath(root, c.BibitemsFile)
}

// AuthorCap returns the configured author cap, defaulting to 3.
func (c *Config) AuthorCap() int {
	if c.MaxAuthors > 0 {
		return c.MaxAuthors
	}
	return 3
}

func resolvePath(root, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}
