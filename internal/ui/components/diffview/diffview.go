// Package diffview renders the right-hand pane: a header naming the file and
// the scrolled window of its hunks.
package diffview

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/yourusername/gitti/internal/diff"
	"github.com/yourusername/gitti/internal/ui/styles"
)

// gutterWidth covers "oooo nnnn│" plus the two-cell change marker.
const gutterWidth = 12

type Model struct {
	styles  *styles.Styles
	path    string
	summary string
	hunks   []diff.Hunk
	scroll  int
	width   int
	height  int
}

func New(styles *styles.Styles, width, height int) Model {
	return Model{
		styles: styles,
		width:  width,
		height: height,
	}
}

// SetContent replaces the file shown. summary is drawn at the right of the
// header, typically the commit being viewed.
func (m *Model) SetContent(path, summary string, hunks []diff.Hunk) {
	m.path = path
	m.summary = summary
	m.hunks = hunks
}

func (m *Model) SetScroll(scroll int) {
	m.scroll = scroll
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// BodyHeight is the number of diff rows below the header.
func (m Model) BodyHeight() int {
	return max(0, m.height-1)
}

func (m Model) View() string {
	header := m.header()
	if m.BodyHeight() == 0 {
		return header
	}

	bodyWidth := max(1, m.width-1)
	body := m.body(bodyWidth)
	if len(m.hunks) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, body)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, body, m.renderScrollbar()),
	)
}

func (m Model) header() string {
	path := m.path
	if path == "" {
		path = "No files"
	}
	left := " " + path + " "
	right := ""
	if m.summary != "" {
		right = " " + m.summary + " "
	}
	if lipgloss.Width(left)+lipgloss.Width(right) > m.width {
		right = ""
	}
	left = styles.Truncate(left, m.width-lipgloss.Width(right))
	gap := max(0, m.width-lipgloss.Width(left)-lipgloss.Width(right))
	return m.styles.Header.Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) body(width int) string {
	height := m.BodyHeight()
	rows := make([]string, 0, height)

	if len(m.hunks) == 0 {
		rows = append(rows, strings.Repeat(" ", width))
		rows = append(rows, m.styles.Placeholder.Render(styles.PadRight("  No changes", width)))
		return strings.Join(rows, "\n")
	}

	line := 0
	for _, h := range m.hunks {
		if len(rows) >= height {
			break
		}
		if line+len(h.Lines)+1 <= m.scroll {
			line += len(h.Lines) + 1
			continue
		}
		if line >= m.scroll {
			rows = append(rows, m.separator(h, width))
		}
		line++
		for _, l := range h.Lines {
			if len(rows) >= height {
				break
			}
			if line >= m.scroll {
				rows = append(rows, m.renderLine(h, l, width))
			}
			line++
		}
	}
	for len(rows) < height {
		rows = append(rows, strings.Repeat(" ", width))
	}
	return strings.Join(rows, "\n")
}

// separator is the row drawn above each hunk.
func (m Model) separator(h diff.Hunk, width int) string {
	if h.IsPlaceholder() {
		return m.styles.Separator.Render(strings.Repeat("─", width))
	}
	label := "─── " + HunkLabel(h) + " "
	return m.styles.HunkHeader.Render(styles.PadRight(styles.Truncate(label, width), width))
}

// HunkLabel describes where a hunk starts on each side, e.g. "@@ -12 +14 @@".
func HunkLabel(h diff.Hunk) string {
	oldStart, newStart := 0, 0
	for _, l := range h.Lines {
		if oldStart == 0 && l.OldLine > 0 {
			oldStart = l.OldLine
		}
		if newStart == 0 && l.NewLine > 0 {
			newStart = l.NewLine
		}
	}
	return fmt.Sprintf("@@ -%d +%d @@", oldStart, newStart)
}

func (m Model) renderLine(h diff.Hunk, l diff.DiffLine, width int) string {
	theme := m.styles.Theme
	if h.IsPlaceholder() {
		return m.styles.Placeholder.Render(styles.PadRight(strings.Repeat(" ", gutterWidth)+l.Text, width))
	}

	gutter := m.styles.LineNumber.Render(fmt.Sprintf("%4s %4s", lineNumber(l.OldLine), lineNumber(l.NewLine))) +
		m.styles.Separator.Render("│")

	var bg, fg lipgloss.Color
	marker := "  "
	switch l.Tag {
	case diff.Insert:
		bg, fg, marker = theme.DiffAddBg, theme.DiffAdd, "+ "
	case diff.Delete:
		bg, fg, marker = theme.DiffRemoveBg, theme.DiffRemove, "- "
	case diff.Equal:
		bg, fg = theme.Background, theme.Foreground
	}
	base := lipgloss.NewStyle().Background(bg).Foreground(fg)

	content := m.content(l, base, max(0, width-gutterWidth))
	return gutter + base.Render(marker) + content
}

// content draws the highlighted text of a line cut to width cells.
func (m Model) content(l diff.DiffLine, base lipgloss.Style, width int) string {
	if len(l.Highlight) == 0 {
		return base.Render(styles.PadRight(cut(styles.ExpandTabs(l.Text), width), width))
	}

	var b strings.Builder
	used := 0
	for _, s := range l.Highlight {
		if used >= width {
			break
		}
		text := cut(styles.ExpandTabs(s.Text), width-used)
		used += runewidth.StringWidth(text)
		style := base
		if s.Color != "" {
			style = style.Foreground(lipgloss.Color(s.Color))
		}
		b.WriteString(style.Render(text))
	}
	if used < width {
		b.WriteString(base.Render(strings.Repeat(" ", width-used)))
	}
	return b.String()
}

func cut(s string, width int) string {
	return runewidth.Truncate(s, width, "")
}

func lineNumber(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func (m Model) renderScrollbar() string {
	height := m.BodyHeight()
	if height <= 0 {
		return ""
	}

	total := diff.TotalLines(m.hunks)
	maxScroll := max(0, total-height)

	trackChar := "│"
	thumbChar := "█"

	scrollbarStyle := lipgloss.NewStyle().Foreground(m.styles.Theme.Border)
	thumbStyle := lipgloss.NewStyle().Foreground(m.styles.Theme.Accent)

	if maxScroll == 0 {
		return strings.TrimSuffix(strings.Repeat(" \n", height), "\n")
	}

	thumbPosition := m.scroll * (height - 1) / maxScroll
	if thumbPosition >= height {
		thumbPosition = height - 1
	}

	scrollbarParts := make([]string, 0, height)
	for i := 0; i < height; i++ {
		if i == thumbPosition {
			scrollbarParts = append(scrollbarParts, thumbStyle.Render(thumbChar))
		} else {
			scrollbarParts = append(scrollbarParts, scrollbarStyle.Render(trackChar))
		}
	}

	return strings.Join(scrollbarParts, "\n")
}
