package analyze

import (
	"path/filepath"
	"strings"
)

// Bucket is a semantic file category used to drive message inference.
type Bucket string

const (
	BucketDocs   Bucket = "documentation"
	BucketTest   Bucket = "test"
	BucketConfig Bucket = "configuration"
	BucketStyle  Bucket = "style"
	BucketSource Bucket = "source"
)

// CategoryRule matches paths into a bucket by substring or extension.
// Substrings are checked against the full lowercased path, extensions
// against the file's extension (including the dot).
type CategoryRule struct {
	Bucket     Bucket
	Substrings []string
	Extensions []string
}

func (r CategoryRule) matches(path string) bool {
	lower := strings.ToLower(path)
	for _, s := range r.Substrings {
		if strings.Contains(lower, s) {
			return true
		}
	}
	ext := filepath.Ext(lower)
	for _, e := range r.Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Config carries the categorization rule table and the token lists the
// inferencer keys on. It is an explicit value: construct one with
// DefaultConfig and pass it to New.
type Config struct {
	// Rules are evaluated in order; the first match wins. Paths matching
	// no rule fall through to BucketSource.
	Rules []CategoryRule

	// FixTokens mark a source or test path as fix-flavored.
	FixTokens []string

	// RefactorTokens mark any path as refactor-flavored.
	RefactorTokens []string
}

// DefaultConfig returns the standard rule table: documentation, then test,
// then configuration, then style, in that priority order.
func DefaultConfig() Config {
	return Config{
		Rules: []CategoryRule{
			{
				Bucket:     BucketDocs,
				Substrings: []string{"readme", "changelog", "license", "docs/", "doc/"},
				Extensions: []string{".md", ".rst", ".adoc", ".txt"},
			},
			{
				Bucket:     BucketTest,
				Substrings: []string{"test", ".spec.", "__tests__", "_spec"},
			},
			{
				Bucket:     BucketConfig,
				Substrings: []string{"config", "dockerfile", "makefile", ".gitignore", ".env"},
				Extensions: []string{".json", ".yml", ".yaml", ".toml", ".ini", ".lock"},
			},
			{
				Bucket:     BucketStyle,
				Extensions: []string{".css", ".scss", ".sass", ".less", ".styl"},
			},
		},
		FixTokens:      []string{"fix", "bug", "patch"},
		RefactorTokens: []string{"refactor"},
	}
}

// BucketFor classifies a single path. Deterministic: the result depends
// only on the path and the rule table.
func (c Config) BucketFor(path string) Bucket {
	for _, rule := range c.Rules {
		if rule.matches(path) {
			return rule.Bucket
		}
	}
	return BucketSource
}

// Categorize buckets every path; each path lands in exactly one bucket.
// Buckets with no members are omitted from the map.
func (c Config) Categorize(paths []string) map[Bucket][]string {
	out := map[Bucket][]string{}
	for _, p := range paths {
		b := c.BucketFor(p)
		out[b] = append(out[b], p)
	}
	return out
}
