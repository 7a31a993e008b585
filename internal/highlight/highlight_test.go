package highlight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func text(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

func TestLines_OneEntryPerLinePreservingText(t *testing.T) {
	h := New("monokai")
	lines := []string{
		"package main",
		"",
		"// comment",
		"func main() {",
		"\tprintln(\"hi\")",
		"}",
	}

	out := h.Lines("main.go", lines)
	require.Len(t, out, len(lines))
	for i, line := range lines {
		require.Equal(t, line, text(out[i]), "line %d", i)
	}
}

func TestLines_ColoursKeywords(t *testing.T) {
	h := New("monokai")
	out := h.Lines("main.go", []string{"package main"})

	require.NotEmpty(t, out[0])
	coloured := false
	for _, s := range out[0] {
		if s.Color != "" {
			coloured = true
			require.True(t, strings.HasPrefix(s.Color, "#"), "colour %q", s.Color)
		}
	}
	require.True(t, coloured, "expected at least one coloured span")
}

func TestLines_UnknownExtensionFallsBack(t *testing.T) {
	h := New("no-such-style")
	out := h.Lines("notes.unknownext", []string{"just some words", "more"})

	require.Len(t, out, 2)
	require.Equal(t, "just some words", text(out[0]))
	require.Equal(t, "more", text(out[1]))
}

func TestLines_Empty(t *testing.T) {
	require.Empty(t, New("monokai").Lines("a.go", nil))
}

func TestLines_PropertyTextPreserved(t *testing.T) {
	h := New("monokai")
	rapid.Check(t, func(rt *rapid.T) {
		lines := rapid.SliceOfN(rapid.StringMatching(`[a-z0-9 (){};"=+.]{0,20}`), 0, 15).Draw(rt, "lines")
		out := h.Lines("x.go", lines)
		if len(out) != len(lines) {
			rt.Fatalf("got %d entries for %d lines", len(out), len(lines))
		}
		for i := range lines {
			if got := text(out[i]); got != lines[i] {
				rt.Fatalf("line %d: got %q want %q", i, got, lines[i])
			}
		}
	})
}
