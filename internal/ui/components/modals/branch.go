package modals

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yourusername/gitti/internal/git"
	"github.com/yourusername/gitti/internal/ui/styles"
)

// BranchModal draws the branch picker in place of the commit panel.
type BranchModal struct {
	styles   *styles.Styles
	width    int
	height   int
	branches []git.Branch
	cursor   int
	scroll   int
}

func NewBranchModal(s *styles.Styles) BranchModal {
	return BranchModal{
		styles: s,
		width:  30,
		height: 10,
	}
}

func (m *BranchModal) SetBranches(branches []git.Branch, cursor, scroll int) {
	m.branches = branches
	m.cursor = cursor
	m.scroll = scroll
}

// View renders the picker: a title row followed by the visible branches.
func (m BranchModal) View() string {
	theme := m.styles.Theme
	panelBg := theme.BackgroundElement

	titleStyle := lipgloss.NewStyle().
		Foreground(theme.Foreground).
		Background(panelBg).
		Bold(true)
	hintStyle := lipgloss.NewStyle().
		Foreground(theme.Subtext).
		Background(panelBg).
		Italic(true)

	// Adaptive hint text for the title row.
	titleText := " Branches"
	hintText := "Enter select | Esc close "
	titleGap := m.width - lipgloss.Width(titleText) - lipgloss.Width(hintText)
	if titleGap < 1 {
		hintText = "Enter | Esc "
		titleGap = m.width - lipgloss.Width(titleText) - lipgloss.Width(hintText)
		if titleGap < 1 {
			hintText = ""
			titleGap = max(0, m.width-lipgloss.Width(titleText))
		}
	}
	titleRow := titleStyle.Render(styles.Truncate(titleText, m.width)) +
		lipgloss.NewStyle().Background(panelBg).Render(strings.Repeat(" ", titleGap)) +
		hintStyle.Render(hintText)

	rows := []string{titleRow}

	visible := max(0, m.height-1)
	end := min(len(m.branches), m.scroll+visible)
	for i := m.scroll; i < end; i++ {
		rows = append(rows, m.row(m.branches[i], i == m.cursor))
	}

	if len(m.branches) == 0 && visible > 0 {
		emptyStyle := lipgloss.NewStyle().Foreground(theme.Subtext).Background(panelBg).Italic(true)
		rows = append(rows, emptyStyle.Render(styles.PadRight("  No branches found", m.width)))
	}
	for len(rows) < m.height {
		rows = append(rows, lipgloss.NewStyle().Background(panelBg).Render(strings.Repeat(" ", m.width)))
	}

	return strings.Join(rows, "\n")
}

func (m BranchModal) row(b git.Branch, selected bool) string {
	theme := m.styles.Theme
	bg := theme.BackgroundElement
	if selected {
		bg = theme.Selection
	}

	nameStyle := lipgloss.NewStyle().Foreground(theme.BranchName).Background(bg).Bold(true)
	currentStyle := lipgloss.NewStyle().Foreground(theme.Head).Background(bg)

	prefix := lipgloss.NewStyle().Background(bg).Render("  ")
	if b.IsCurrent {
		prefix = currentStyle.Render("* ")
	}

	nameAvail := max(1, m.width-2)
	name := styles.PadRight(styles.Truncate(b.Name, nameAvail), nameAvail)
	return prefix + nameStyle.Render(name)
}

func (m *BranchModal) SetSize(width, height int) {
	m.width = width
	m.height = height
}
