// Package diff parses unified diff text into per-file change records.
package diff

import (
	"fmt"
	"strings"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
)

// File is one changed file in a diff with its line tallies.
type File struct {
	OldPath   string
	NewPath   string
	IsNew     bool
	IsDeleted bool
	IsRenamed bool
	IsBinary  bool
	Fragments []*gitdiff.TextFragment
	Added     int
	Deleted   int
}

// Path returns the canonical path for the file, preferring the new path.
func (f *File) Path() string {
	if f.NewPath != "" {
		return f.NewPath
	}
	return f.OldPath
}

// Name returns the display name, showing both sides of a rename.
func (f *File) Name() string {
	if f.IsRenamed {
		return fmt.Sprintf("%s → %s", f.OldPath, f.NewPath)
	}
	return f.Path()
}

// Set holds the parsed files of one or more concatenated diffs.
type Set struct {
	Files []*File
	Raw   string
}

// Stats returns the aggregate file and line counts.
func (s *Set) Stats() (files, added, deleted int) {
	files = len(s.Files)
	for _, f := range s.Files {
		added += f.Added
		deleted += f.Deleted
	}
	return
}

// Parse reads unified diff text, which may be several diffs concatenated,
// and returns one File per file entry. Empty or whitespace-only input
// yields an empty Set. A path touched by more than one concatenated diff
// produces multiple entries; callers merge by path.
func Parse(raw string) (*Set, error) {
	s := &Set{Raw: raw}
	if strings.TrimSpace(raw) == "" {
		return s, nil
	}

	parsed, _, err := gitdiff.Parse(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing diff: %w", err)
	}

	for _, pf := range parsed {
		f := &File{
			OldPath:   pf.OldName,
			NewPath:   pf.NewName,
			IsNew:     pf.IsNew,
			IsDeleted: pf.IsDelete,
			IsRenamed: pf.IsRename,
			IsBinary:  pf.IsBinary,
		}

		for _, frag := range pf.TextFragments {
			f.Fragments = append(f.Fragments, frag)
			for _, line := range frag.Lines {
				switch line.Op {
				case gitdiff.OpAdd:
					f.Added++
				case gitdiff.OpDelete:
					f.Deleted++
				}
			}
		}

		s.Files = append(s.Files, f)
	}

	return s, nil
}
