// Package status parses git's short-form (porcelain) status listing.
package status

import "strings"

// Rename is an old-path/new-path pair from a rename entry.
type Rename struct {
	From string
	To   string
}

// Changes holds the paths from a status listing grouped by change kind.
type Changes struct {
	Modified []string
	Created  []string
	Deleted  []string
	Renamed  []Rename
}

// Empty reports whether the listing contained no entries.
func (c *Changes) Empty() bool {
	return len(c.Modified) == 0 && len(c.Created) == 0 &&
		len(c.Deleted) == 0 && len(c.Renamed) == 0
}

// Paths returns every tracked path in listing order. For renames the new
// path is the tracked one.
func (c *Changes) Paths() []string {
	paths := make([]string, 0, len(c.Modified)+len(c.Created)+len(c.Deleted)+len(c.Renamed))
	paths = append(paths, c.Modified...)
	paths = append(paths, c.Created...)
	paths = append(paths, c.Deleted...)
	for _, r := range c.Renamed {
		paths = append(paths, r.To)
	}
	return paths
}

// Parse classifies each porcelain status line (two status characters, a
// space, then the path) into modified/created/deleted/renamed lists.
// Unrecognized non-empty lines count as modified rather than being dropped.
func Parse(raw string) *Changes {
	c := &Changes{}

	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if len(line) < 3 {
			c.Modified = append(c.Modified, strings.TrimSpace(line))
			continue
		}

		index, worktree := line[0], line[1]
		path := strings.TrimSpace(line[3:])

		switch {
		case strings.Contains(path, " -> "):
			parts := strings.SplitN(path, " -> ", 2)
			c.Renamed = append(c.Renamed, Rename{From: parts[0], To: parts[1]})
		case index == '?' && worktree == '?':
			c.Created = append(c.Created, path)
		case index == 'A':
			c.Created = append(c.Created, path)
		case index == 'D' || worktree == 'D':
			c.Deleted = append(c.Deleted, path)
		default:
			c.Modified = append(c.Modified, path)
		}
	}

	return c
}
