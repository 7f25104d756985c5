// Package analyze turns a repository's pending changes into a structured
// summary and a suggested conventional commit message.
package analyze

import (
	"fmt"
	"strings"

	"github.com/sprite-ai/autocommit/internal/diff"
	"github.com/sprite-ai/autocommit/internal/status"
)

// Mode selects which subset of the tree is compared against HEAD.
type Mode string

const (
	ModeAll      Mode = "all"
	ModeStaged   Mode = "staged"
	ModeUnstaged Mode = "unstaged"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeAll, ModeStaged, ModeUnstaged:
		return true
	}
	return false
}

// ChangeKind is what happened to a file.
type ChangeKind string

const (
	KindCreated  ChangeKind = "created"
	KindModified ChangeKind = "modified"
	KindDeleted  ChangeKind = "deleted"
	KindRenamed  ChangeKind = "renamed"
)

// FileChange is one changed path with its line tallies.
type FileChange struct {
	Path      string     `json:"path"`
	From      string     `json:"from,omitempty"` // old path, renames only
	Kind      ChangeKind `json:"kind"`
	Additions int        `json:"additions"`
	Deletions int        `json:"deletions"`
}

// LineStats sums line changes across all files.
type LineStats struct {
	Additions int `json:"additions"`
	Deletions int `json:"deletions"`
}

// Result is the complete analysis of a repository's pending changes.
// It is built fresh on every Analyze call and never mutated afterwards.
type Result struct {
	HasChanges    bool   `json:"has_changes"`
	Mode          Mode   `json:"mode"`
	IsFirstCommit bool   `json:"is_first_commit"`
	Message       string `json:"message,omitempty"` // set when HasChanges is false

	Files       []FileChange        `json:"files,omitempty"`
	Categorized map[Bucket][]string `json:"categorized,omitempty"`
	LineStats   LineStats           `json:"line_stats"`

	SuggestedType    CommitType `json:"suggested_type,omitempty"`
	SuggestedScope   string     `json:"suggested_scope,omitempty"`
	SuggestedMessage string     `json:"suggested_message,omitempty"`
}

// Summarize renders the one-line human-readable summary, e.g.
// "3 file(s) changed: 2 modified, 1 created (+42, -15)". When there are no
// changes it returns the explanatory message verbatim.
func (r *Result) Summarize() string {
	if !r.HasChanges {
		return r.Message
	}

	counts := map[ChangeKind]int{}
	for _, f := range r.Files {
		counts[f.Kind]++
	}

	var parts []string
	for _, k := range []ChangeKind{KindModified, KindCreated, KindDeleted, KindRenamed} {
		if c := counts[k]; c > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", c, k))
		}
	}

	return fmt.Sprintf("%d file(s) changed: %s (+%d, -%d)",
		len(r.Files), strings.Join(parts, ", "),
		r.LineStats.Additions, r.LineStats.Deletions)
}

// Queries is the read-only view of the version-control tool the analyzer
// needs. *git.Repo satisfies it.
type Queries interface {
	ResolveHead() (string, error)
	StatusShort() (string, error)
	DiffStaged() (string, error)
	DiffWorking() (string, error)
	DiffEmptyTree() (string, error)
}

// Analyzer classifies pending changes and suggests commit messages.
type Analyzer struct {
	cfg Config
}

// New returns an Analyzer using the given categorization config.
func New(cfg Config) *Analyzer {
	return &Analyzer{cfg: cfg}
}

// Analyze inspects the repository's pending changes for the given mode and
// returns a fully-populated Result. It issues only read-only queries.
func (a *Analyzer) Analyze(repo Queries, mode Mode) (*Result, error) {
	if mode == "" {
		mode = ModeAll
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("unknown mode %q", mode)
	}

	// A HEAD resolution failure is the first-commit state, not an error.
	_, headErr := repo.ResolveHead()
	isFirst := headErr != nil

	statusText, err := repo.StatusShort()
	if err != nil {
		return nil, fmt.Errorf("reading status: %w", err)
	}
	changes := status.Parse(statusText)

	rawDiff, err := a.diffText(repo, mode, isFirst)
	if err != nil {
		return nil, err
	}

	ds, err := diff.Parse(rawDiff)
	if err != nil {
		return nil, fmt.Errorf("parsing %s diff: %w", mode, err)
	}

	files := mergeChanges(ds, changes, mode, isFirst)

	r := &Result{
		Mode:          mode,
		IsFirstCommit: isFirst,
		Files:         files,
	}

	if len(files) == 0 {
		r.Message = noChangesMessage(mode)
		return r, nil
	}

	r.HasChanges = true
	for _, f := range files {
		r.LineStats.Additions += f.Additions
		r.LineStats.Deletions += f.Deletions
	}

	r.Categorized = a.cfg.Categorize(paths(files))
	r.SuggestedType, r.SuggestedScope = a.cfg.Infer(r.Categorized, files)
	r.SuggestedMessage = composeMessage(r.SuggestedType, r.SuggestedScope, describe(r.Categorized, files))

	return r, nil
}

// diffText fetches the raw diff for the mode. Before the first commit the
// only meaningful diff is the index against the empty tree. In all mode the
// staged and unstaged diffs are concatenated; mergeChanges reconciles paths
// that appear in both.
func (a *Analyzer) diffText(repo Queries, mode Mode, isFirst bool) (string, error) {
	if isFirst {
		out, err := repo.DiffEmptyTree()
		if err != nil {
			return "", fmt.Errorf("diffing against empty tree: %w", err)
		}
		return out, nil
	}

	switch mode {
	case ModeStaged:
		out, err := repo.DiffStaged()
		if err != nil {
			return "", fmt.Errorf("diffing index: %w", err)
		}
		return out, nil
	case ModeUnstaged:
		out, err := repo.DiffWorking()
		if err != nil {
			return "", fmt.Errorf("diffing working tree: %w", err)
		}
		return out, nil
	default:
		staged, err := repo.DiffStaged()
		if err != nil {
			return "", fmt.Errorf("diffing index: %w", err)
		}
		working, err := repo.DiffWorking()
		if err != nil {
			return "", fmt.Errorf("diffing working tree: %w", err)
		}
		return staged + "\n" + working, nil
	}
}

// mergeChanges reconciles diff-derived and status-derived records into one
// FileChange per path, in first-seen order (diff first, then status).
// Diff-derived kind and counts win; the status listing only recovers paths
// the diff cannot express (untracked files, binary or mode-only changes),
// which get zero line counts. Status recovery applies to the full tree
// comparison only — in staged or unstaged mode the diff alone defines the
// file set, so e.g. untracked files never leak into a staged analysis.
func mergeChanges(ds *diff.Set, changes *status.Changes, mode Mode, isFirst bool) []FileChange {
	var files []FileChange
	index := map[string]int{}

	for _, df := range ds.Files {
		path := df.Path()
		if i, ok := index[path]; ok {
			// Same path from the staged and unstaged diffs: one record,
			// combined counts.
			files[i].Additions += df.Added
			files[i].Deletions += df.Deleted
			if k := kindOf(df); files[i].Kind == KindModified && k != KindModified {
				files[i].Kind = k
			}
			continue
		}

		fc := FileChange{
			Path:      path,
			Kind:      kindOf(df),
			Additions: df.Added,
			Deletions: df.Deleted,
		}
		if df.IsRenamed {
			fc.From = df.OldPath
		}
		if isFirst {
			fc.Kind = KindCreated
		}
		index[path] = len(files)
		files = append(files, fc)
	}

	if mode != ModeAll && !isFirst {
		return files
	}

	appendMissing := func(path string, kind ChangeKind, from string) {
		if _, ok := index[path]; ok {
			return
		}
		if isFirst {
			kind = KindCreated
			from = ""
		}
		index[path] = len(files)
		files = append(files, FileChange{Path: path, From: from, Kind: kind})
	}

	for _, p := range changes.Modified {
		appendMissing(p, KindModified, "")
	}
	for _, p := range changes.Created {
		appendMissing(p, KindCreated, "")
	}
	for _, p := range changes.Deleted {
		appendMissing(p, KindDeleted, "")
	}
	for _, r := range changes.Renamed {
		appendMissing(r.To, KindRenamed, r.From)
	}

	return files
}

func kindOf(f *diff.File) ChangeKind {
	switch {
	case f.IsNew:
		return KindCreated
	case f.IsDeleted:
		return KindDeleted
	case f.IsRenamed:
		return KindRenamed
	default:
		return KindModified
	}
}

func noChangesMessage(mode Mode) string {
	switch mode {
	case ModeStaged:
		return "no staged changes found"
	case ModeUnstaged:
		return "no unstaged changes found"
	default:
		return "no changes found"
	}
}

func paths(files []FileChange) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Path
	}
	return out
}
