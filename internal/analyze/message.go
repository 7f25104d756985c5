package analyze

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
)

// composeMessage assembles the final suggestion: type[(scope)]: description.
func composeMessage(t CommitType, scope, description string) string {
	if scope != "" {
		return fmt.Sprintf("%s(%s): %s", t, scope, description)
	}
	return fmt.Sprintf("%s: %s", t, description)
}

// describe synthesizes the human-readable description for the change set.
// Whole-bucket rules win over the single-file rule so that e.g. one new
// spec file reads "add tests" rather than naming the file.
func describe(categorized map[Bucket][]string, files []FileChange) string {
	total := len(files)
	var created, modified, deleted []FileChange
	for _, f := range files {
		switch f.Kind {
		case KindCreated:
			created = append(created, f)
		case KindDeleted:
			deleted = append(deleted, f)
		case KindModified:
			modified = append(modified, f)
		}
	}

	switch {
	case len(categorized[BucketDocs]) == total:
		return "update documentation"
	case len(categorized[BucketTest]) == total:
		if len(created) > 0 {
			return "add tests"
		}
		return "update tests"
	case len(categorized[BucketConfig]) == total:
		return "update configuration"
	case len(categorized[BucketStyle]) == total:
		return "update styles"
	}

	if total == 1 {
		f := files[0]
		name := filepath.Base(f.Path)
		switch f.Kind {
		case KindCreated:
			return "add " + name
		case KindDeleted:
			return "remove " + name
		default:
			return "update " + name
		}
	}

	if len(deleted) > len(created) && len(deleted) > len(modified) {
		return "remove deprecated code"
	}

	if len(categorized[BucketSource]) > 0 {
		if len(created) > len(modified) {
			if feature := dominantToken(created); feature != "" {
				return "add " + feature
			}
			return "add new features"
		}
		if feature := dominantToken(modified); feature != "" {
			return "update " + feature
		}
		return "update implementation"
	}

	if total <= 3 {
		return "update project files"
	}
	return "update multiple components"
}

// dominantToken extracts the most frequent word (longer than 2 characters,
// appearing more than once) from the files' base names, after splitting
// camelCase, kebab-case and snake_case. Returns "" when nothing repeats.
func dominantToken(files []FileChange) string {
	counts := map[string]int{}
	var order []string

	for _, f := range files {
		base := filepath.Base(f.Path)
		base = strings.TrimSuffix(base, filepath.Ext(base))
		for _, tok := range splitTokens(base) {
			if len(tok) <= 2 {
				continue
			}
			if counts[tok] == 0 {
				order = append(order, tok)
			}
			counts[tok]++
		}
	}

	best := ""
	for _, tok := range order {
		if counts[tok] > 1 && (best == "" || counts[tok] > counts[best]) {
			best = tok
		}
	}
	return best
}

// splitTokens lowercases and splits a name on camelCase boundaries and on
// any non-alphanumeric separator.
func splitTokens(name string) []string {
	var tokens []string
	var b strings.Builder

	flush := func() {
		if b.Len() > 0 {
			tokens = append(tokens, strings.ToLower(b.String()))
			b.Reset()
		}
	}

	var prev rune
	for _, r := range name {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			flush()
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
		prev = r
	}
	flush()

	return tokens
}
