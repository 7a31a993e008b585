package modals

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/yourusername/gitti/internal/ui/keys"
	"github.com/yourusername/gitti/internal/ui/styles"
)

// HelpModal lists every keybinding over the diff pane.
type HelpModal struct {
	styles  *styles.Styles
	help    help.Model
	keyMap  keys.KeyMap
	visible bool
	width   int
	height  int
}

func NewHelpModal(s *styles.Styles, keyMap keys.KeyMap) HelpModal {
	h := help.New()
	h.ShowAll = true
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(s.Theme.Accent)
	h.Styles.FullDesc = s.Help
	h.Styles.FullSeparator = s.Separator
	return HelpModal{
		styles: s,
		help:   h,
		keyMap: keyMap,
	}
}

func (m HelpModal) View() string {
	if !m.visible {
		return ""
	}

	title := m.styles.Header.Render(" Keybindings ")
	// Two columns per band keeps the overlay inside a narrow diff pane.
	groups := m.keyMap.FullHelp()
	bands := make([]string, 0, len(groups)/2+1)
	for i := 0; i < len(groups); i += 2 {
		bands = append(bands, m.help.FullHelpView(groups[i:min(i+2, len(groups))]))
	}
	body := lipgloss.JoinVertical(lipgloss.Left, bands...)
	footer := m.styles.Help.Render("Mouse: wheel scrolls the diff, click selects a commit, file or branch.")

	content := lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", footer)
	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(m.styles.Theme.Accent).
		Padding(0, 1).
		Render(content)

	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		box,
	)
}

func (m *HelpModal) Toggle() {
	m.visible = !m.visible
}

func (m *HelpModal) Hide() {
	m.visible = false
}

func (m *HelpModal) IsVisible() bool {
	return m.visible
}

func (m *HelpModal) SetSize(width, height int) {
	m.width = width
	m.height = height
}
