package tui

import (
	"fmt"
	"strings"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
	"github.com/charmbracelet/lipgloss"

	"github.com/sprite-ai/autocommit/internal/diff"
)

// renderPreview flattens a diff set into styled display lines for the
// scrollable preview.
func renderPreview(ds *diff.Set) []string {
	var lines []string

	for i, f := range ds.Files {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, fileHeaderStyle.Render(f.Name()))

		if f.IsBinary {
			lines = append(lines, helpBarStyle.Render("  (binary file)"))
			continue
		}

		lines = append(lines, renderFragments(f)...)
	}

	return lines
}

func renderFragments(f *diff.File) []string {
	var content []string
	for _, frag := range f.Fragments {
		for _, line := range frag.Lines {
			content = append(content, strings.TrimRight(line.Line, "\n\r"))
		}
	}
	highlighted := diff.HighlightLines(f.Path(), content)

	var lines []string
	idx := 0
	for _, frag := range f.Fragments {
		lines = append(lines, hunkHeaderStyle.Render(hunkHeader(frag)))
		for _, line := range frag.Lines {
			var hl diff.HighlightedLine
			if idx < len(highlighted) {
				hl = highlighted[idx]
			}
			idx++
			lines = append(lines, renderLine(line.Op, hl))
		}
	}
	return lines
}

func renderLine(op gitdiff.LineOp, hl diff.HighlightedLine) string {
	var marker string
	var style lipgloss.Style
	switch op {
	case gitdiff.OpAdd:
		marker, style = "+", addedLineStyle
	case gitdiff.OpDelete:
		marker, style = "-", deletedLineStyle
	default:
		marker, style = " ", contextLineStyle
	}

	// Context lines keep their syntax colors; changed lines take the
	// add/delete color so the change stands out.
	if op == gitdiff.OpContext {
		var b strings.Builder
		b.WriteString(style.Render(marker + " "))
		for _, span := range hl.Spans {
			if span.Color != "" {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(span.Color)).Render(span.Text))
			} else {
				b.WriteString(style.Render(span.Text))
			}
		}
		return b.String()
	}

	return style.Render(marker + " " + hl.Plain())
}

func hunkHeader(frag *gitdiff.TextFragment) string {
	header := fmt.Sprintf("@@ -%d,%d +%d,%d @@",
		frag.OldPosition, frag.OldLines,
		frag.NewPosition, frag.NewLines)
	if frag.Comment != "" {
		header += " " + frag.Comment
	}
	return header
}
