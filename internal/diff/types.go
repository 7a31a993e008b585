// Package diff turns two versions of a file into context-bounded hunks.
package diff

import (
	"slices"

	"github.com/yourusername/gitti/internal/highlight"
)

// Tag marks a line as unchanged, added or removed.
type Tag int

const (
	Equal Tag = iota
	Insert
	Delete
)

func (t Tag) String() string {
	switch t {
	case Equal:
		return "Equal"
	case Insert:
		return "Insert"
	case Delete:
		return "Delete"
	default:
		return "Unknown"
	}
}

// Placeholder marks a synthetic hunk that stands in for content that could
// not be diffed.
type Placeholder int

const (
	NotPlaceholder Placeholder = iota
	BinaryFile
	UnreadableFile
)

// Text is the line shown for the placeholder.
func (p Placeholder) Text() string {
	switch p {
	case BinaryFile:
		return "[Binary file]"
	case UnreadableFile:
		return "[Unable to read file]"
	default:
		return ""
	}
}

// DiffLine is one line of the flat diff. OldLine is set (non-zero) for
// Equal and Delete lines, NewLine for Equal and Insert lines.
type DiffLine struct {
	OldLine   int
	NewLine   int
	Tag       Tag
	Text      string
	Highlight []highlight.Span
}

// Equal reports whether two lines are identical, spans included.
func (l DiffLine) Equal(o DiffLine) bool {
	return l.OldLine == o.OldLine &&
		l.NewLine == o.NewLine &&
		l.Tag == o.Tag &&
		l.Text == o.Text &&
		slices.Equal(l.Highlight, o.Highlight)
}

// Hunk is a non-empty window of the flat diff.
type Hunk struct {
	Lines       []DiffLine
	Placeholder Placeholder
}

// IsPlaceholder reports whether h is a synthetic stand-in rather than real
// content.
func (h Hunk) IsPlaceholder() bool {
	return h.Placeholder != NotPlaceholder
}

func (h Hunk) Equal(o Hunk) bool {
	return h.Placeholder == o.Placeholder &&
		slices.EqualFunc(h.Lines, o.Lines, DiffLine.Equal)
}

// PlaceholderHunk builds the single-line hunk shown for binary or unreadable
// files. Its line is tagged Insert with new line 1 and no old line.
func PlaceholderHunk(p Placeholder) Hunk {
	return Hunk{
		Placeholder: p,
		Lines: []DiffLine{{
			NewLine: 1,
			Tag:     Insert,
			Text:    p.Text(),
		}},
	}
}

// EqualHunks compares two hunk sequences by value.
func EqualHunks(a, b []Hunk) bool {
	return slices.EqualFunc(a, b, Hunk.Equal)
}

// TotalLines is the number of rows the hunks occupy when drawn: every line
// plus one separator row per hunk.
func TotalLines(hunks []Hunk) int {
	total := 0
	for _, h := range hunks {
		total += len(h.Lines) + 1
	}
	return total
}
