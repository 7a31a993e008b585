package diff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/yourusername/gitti/internal/highlight"
)

// Change is one line as reported by the line differ.
type Change struct {
	Tag  Tag
	Text string
}

// DiffLines compares two texts line by line. Line terminators are stripped
// from the returned text; a final line without a newline differs from the
// same line with one.
func DiffLines(oldText, newText string) []Change {
	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var changes []Change
	for _, d := range diffs {
		tag := tagFor(d.Type)
		for _, line := range splitLines(d.Text) {
			changes = append(changes, Change{Tag: tag, Text: line})
		}
	}
	return changes
}

func tagFor(op diffmatchpatch.Operation) Tag {
	switch op {
	case diffmatchpatch.DiffInsert:
		return Insert
	case diffmatchpatch.DiffDelete:
		return Delete
	default:
		return Equal
	}
}

// splitLines splits text after each newline and strips the terminator.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	parts := strings.SplitAfter(text, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	for i, p := range parts {
		parts[i] = strings.TrimSuffix(p, "\n")
	}
	return parts
}

// Number assigns line numbers to a flat change sequence. The old counter
// advances on Equal and Delete, the new counter on Equal and Insert; both
// start at 1. spans, when non-nil, is indexed by flat position.
func Number(changes []Change, spans [][]highlight.Span) []DiffLine {
	lines := make([]DiffLine, len(changes))
	oldLine, newLine := 1, 1
	for i, c := range changes {
		l := DiffLine{Tag: c.Tag, Text: c.Text}
		switch c.Tag {
		case Delete:
			l.OldLine = oldLine
			oldLine++
		case Insert:
			l.NewLine = newLine
			newLine++
		case Equal:
			l.OldLine, l.NewLine = oldLine, newLine
			oldLine++
			newLine++
		}
		if i < len(spans) {
			l.Highlight = spans[i]
		}
		lines[i] = l
	}
	return lines
}
