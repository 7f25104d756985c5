package analyze

import (
	"path/filepath"
	"strings"
)

// CommitType is the conventional-commit type label.
type CommitType string

const (
	TypeFeat     CommitType = "feat"
	TypeFix      CommitType = "fix"
	TypeRefactor CommitType = "refactor"
	TypeDocs     CommitType = "docs"
	TypeTest     CommitType = "test"
	TypeStyle    CommitType = "style"
	TypeChore    CommitType = "chore"
)

// Infer derives the commit type and scope from the categorized buckets and
// the per-kind change counts. Pure: same inputs, same answer.
func (c Config) Infer(categorized map[Bucket][]string, files []FileChange) (CommitType, string) {
	return c.inferType(categorized, files), inferScope(categorized, files)
}

func (c Config) inferType(categorized map[Bucket][]string, files []FileChange) CommitType {
	total := len(files)
	if total == 0 {
		return TypeChore
	}

	only := func(b Bucket) bool { return len(categorized[b]) == total }

	switch {
	case only(BucketDocs):
		return TypeDocs
	case only(BucketTest):
		return TypeTest
	case only(BucketConfig):
		return TypeChore
	case only(BucketStyle):
		return TypeStyle
	}

	var created, modified int
	for _, f := range files {
		switch f.Kind {
		case KindCreated:
			created++
		case KindModified:
			modified++
		}
	}

	if created > 0 && modified == 0 {
		return TypeFeat
	}

	for _, b := range []Bucket{BucketSource, BucketTest} {
		for _, p := range categorized[b] {
			if containsAny(p, c.FixTokens) {
				return TypeFix
			}
		}
	}

	for _, f := range files {
		if containsAny(f.Path, c.RefactorTokens) {
			return TypeRefactor
		}
	}

	if len(categorized[BucketSource]) > 0 {
		if created > modified {
			return TypeFeat
		}
		return TypeFeat // modified-majority keeps the feat bias
	}

	return TypeChore
}

func containsAny(path string, tokens []string) bool {
	lower := strings.ToLower(path)
	for _, t := range tokens {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}

// inferScope picks a scope label: the single file's basename, the deepest
// directory common to every path, or the lone bucket's short name.
func inferScope(categorized map[Bucket][]string, files []FileChange) string {
	if len(files) == 1 {
		base := filepath.Base(files[0].Path)
		return strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
	}

	if dir := commonDir(files); dir != "" {
		return dir
	}

	if len(files) > 0 {
		total := len(files)
		for bucket, short := range map[Bucket]string{
			BucketDocs:   "docs",
			BucketTest:   "tests",
			BucketConfig: "config",
		} {
			if len(categorized[bucket]) == total {
				return short
			}
		}
	}

	return ""
}

// commonDir returns the final component of the longest path-segment prefix
// shared by every file, or "" when the files only share the repo root.
func commonDir(files []FileChange) string {
	if len(files) == 0 {
		return ""
	}

	prefix := strings.Split(files[0].Path, "/")
	prefix = prefix[:len(prefix)-1] // drop the filename

	for _, f := range files[1:] {
		segs := strings.Split(f.Path, "/")
		segs = segs[:len(segs)-1]
		if len(segs) < len(prefix) {
			prefix = prefix[:len(segs)]
		}
		for i := range prefix {
			if prefix[i] != segs[i] {
				prefix = prefix[:i]
				break
			}
		}
	}

	if len(prefix) == 0 {
		return ""
	}
	return prefix[len(prefix)-1]
}
