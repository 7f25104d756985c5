package diff

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Span is a syntax-highlighted chunk of a line.
type Span struct {
	Text  string
	Color string // hex color, empty for default
}

// HighlightedLine is one source line split into colored spans.
type HighlightedLine struct {
	Spans []Span
}

// Plain returns the line's text without color information.
func (hl HighlightedLine) Plain() string {
	var b strings.Builder
	for _, s := range hl.Spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// HighlightLines syntax-highlights source lines for the given filename,
// returning one HighlightedLine per input line. Unknown file types pass
// through uncolored.
func HighlightLines(filename string, lines []string) []HighlightedLine {
	lexer := lexerForFile(filename)
	if lexer == nil {
		return plainLines(lines)
	}

	iterator, err := lexer.Tokenise(nil, strings.Join(lines, "\n"))
	if err != nil {
		return plainLines(lines)
	}

	style := styles.Get("dracula")
	if style == nil {
		style = styles.Fallback
	}

	result := make([]HighlightedLine, 0, len(lines))
	current := HighlightedLine{}

	for _, token := range iterator.Tokens() {
		for i, part := range strings.Split(token.Value, "\n") {
			if i > 0 {
				result = append(result, current)
				current = HighlightedLine{}
			}
			if part == "" {
				continue
			}
			span := Span{Text: part}
			if entry := style.Get(token.Type); entry.Colour.IsSet() {
				span.Color = entry.Colour.String()
			}
			current.Spans = append(current.Spans, span)
		}
	}
	result = append(result, current)

	for len(result) < len(lines) {
		result = append(result, HighlightedLine{})
	}
	return result[:len(lines)]
}

func plainLines(lines []string) []HighlightedLine {
	result := make([]HighlightedLine, len(lines))
	for i, line := range lines {
		result[i] = HighlightedLine{Spans: []Span{{Text: line}}}
	}
	return result
}

func lexerForFile(filename string) chroma.Lexer {
	lexer := lexers.Match(filename)
	if lexer == nil {
		if ext := filepath.Ext(filename); ext != "" {
			lexer = lexers.Match("file" + ext)
		}
	}
	if lexer != nil {
		lexer = chroma.Coalesce(lexer)
	}
	return lexer
}
