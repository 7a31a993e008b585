// Package highlight maps lines of source text to coloured spans using chroma.
package highlight

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Span is a run of text drawn in one colour. Color is a "#rrggbb" string, or
// empty for the terminal's default foreground.
type Span struct {
	Color string
	Text  string
}

type Highlighter struct {
	style *chroma.Style
}

// New returns a Highlighter using the named chroma style, falling back to
// chroma's default style for unknown names.
func New(styleName string) *Highlighter {
	return &Highlighter{style: styles.Get(styleName)}
}

// Lines highlights lines as one document so multi-line constructs such as
// block comments colour correctly. The lexer is chosen by the file name,
// then by analysing the first line, then plain text. The result always has
// exactly one entry per input line.
func (h *Highlighter) Lines(path string, lines []string) [][]Span {
	out := make([][]Span, len(lines))
	if len(lines) == 0 {
		return out
	}

	lexer := h.lexerFor(path, lines[0])
	iter, err := lexer.Tokenise(nil, strings.Join(lines, "\n")+"\n")
	if err != nil {
		return plain(lines)
	}

	tokenLines := chroma.SplitTokensIntoLines(iter.Tokens())
	for i, line := range lines {
		if i >= len(tokenLines) {
			out[i] = []Span{{Text: line}}
			continue
		}
		out[i] = h.spans(tokenLines[i])
		if joined(out[i]) != line {
			out[i] = []Span{{Text: line}}
		}
	}
	return out
}

func (h *Highlighter) lexerFor(path, firstLine string) chroma.Lexer {
	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil {
		lexer = lexers.Analyse(firstLine)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}

func (h *Highlighter) spans(tokens []chroma.Token) []Span {
	spans := make([]Span, 0, len(tokens))
	for _, tok := range tokens {
		text := strings.TrimRight(tok.Value, "\n")
		if text == "" {
			continue
		}
		color := ""
		if entry := h.style.Get(tok.Type); entry.Colour.IsSet() {
			color = entry.Colour.String()
		}
		if n := len(spans); n > 0 && spans[n-1].Color == color {
			spans[n-1].Text += text
			continue
		}
		spans = append(spans, Span{Color: color, Text: text})
	}
	return spans
}

func plain(lines []string) [][]Span {
	out := make([][]Span, len(lines))
	for i, line := range lines {
		out[i] = []Span{{Text: line}}
	}
	return out
}

func joined(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}
