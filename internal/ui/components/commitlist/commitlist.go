// Package commitlist renders the commit panel of the left column.
package commitlist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yourusername/gitti/internal/git"
	"github.com/yourusername/gitti/internal/ui/styles"
)

type Model struct {
	styles   *styles.Styles
	commits  []git.Commit
	branch   string
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

func (m *Model) SetCommits(branch string, commits []git.Commit, selected, scroll int) {
	m.branch = branch
	m.commits = commits
	m.selected = selected
	m.scroll = scroll
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) View() string {
	rows := make([]string, 0, m.height)
	rows = append(rows, m.header())

	visible := max(0, m.height-1)
	end := min(len(m.commits), m.scroll+visible)
	for i := m.scroll; i < end; i++ {
		rows = append(rows, m.row(m.commits[i], i == m.selected))
	}
	if len(m.commits) == 0 && visible > 0 {
		rows = append(rows, m.styles.Placeholder.Render(styles.PadRight(" No commits", m.width)))
	}
	return strings.Join(rows, "\n")
}

func (m Model) header() string {
	branch := m.branch
	if branch == "" {
		branch = "HEAD"
	}
	title := fmt.Sprintf(" Commits (%s) %d", branch, len(m.commits))
	return m.styles.Header.Render(styles.PadRight(styles.Truncate(title, m.width), m.width))
}

func (m Model) row(c git.Commit, selected bool) string {
	bg := m.styles.Theme.Background
	if selected {
		bg = m.styles.Theme.Selection
	}
	base := lipgloss.NewStyle().Background(bg).Foreground(m.styles.Theme.Foreground)

	if c.IsLiveChanges {
		text := styles.PadRight(styles.Truncate(" ● "+c.Subject, m.width), m.width)
		return m.styles.LiveChanges.Background(bg).Render(text)
	}

	hash := " " + c.ShortHash + " "
	subject := styles.Truncate(c.Subject, m.width-lipgloss.Width(hash))
	rest := styles.PadRight(subject, m.width-lipgloss.Width(hash))
	return m.styles.CommitHash.Background(bg).Render(hash) + base.Render(rest)
}
