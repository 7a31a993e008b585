// Package filelist renders the changed-file panel of the left column.
package filelist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yourusername/gitti/internal/git"
	"github.com/yourusername/gitti/internal/ui/styles"
)

type Model struct {
	styles   *styles.Styles
	files    []git.ChangedPath
	selected int
	scroll   int
	width    int
	height   int
}

func New(styles *styles.Styles, width, height int) Model {
	return Model{
		styles: styles,
		width:  width,
		height: height,
	}
}

func (m *Model) SetFiles(files []git.ChangedPath, selected, scroll int) {
	m.files = files
	m.selected = selected
	m.scroll = scroll
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) View() string {
	rows := make([]string, 0, m.height)
	title := fmt.Sprintf(" Files %d", len(m.files))
	rows = append(rows, m.styles.Header.Render(styles.PadRight(styles.Truncate(title, m.width), m.width)))

	visible := max(0, m.height-1)
	end := min(len(m.files), m.scroll+visible)
	for i := m.scroll; i < end; i++ {
		rows = append(rows, m.row(m.files[i], i == m.selected))
	}
	if len(m.files) == 0 && visible > 0 {
		rows = append(rows, m.styles.Placeholder.Render(styles.PadRight(" No files", m.width)))
	}
	return strings.Join(rows, "\n")
}

// Icon is the one-letter marker shown before a path.
func Icon(s git.Status) string {
	switch s {
	case git.StatusAdded:
		return "A"
	case git.StatusDeleted:
		return "D"
	case git.StatusModified:
		return "M"
	default:
		return "~"
	}
}

func (m Model) row(f git.ChangedPath, selected bool) string {
	bg := m.styles.Theme.Background
	if selected {
		bg = m.styles.Theme.Selection
	}
	icon := lipgloss.NewStyle().
		Background(bg).
		Foreground(m.styles.StatusColor(string(f.Status))).
		Render(" " + Icon(f.Status) + " ")

	avail := max(0, m.width-3)
	path := styles.PadRight(styles.TruncateLeft(f.Path, avail), avail)
	return icon + lipgloss.NewStyle().Background(bg).Foreground(m.styles.Theme.Foreground).Render(path)
}
