// Package statusbar renders the bottom row: key hints on the left, branch
// and scroll position on the right.
package statusbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/yourusername/gitti/internal/ui/styles"
)

type Model struct {
	styles  *styles.Styles
	hints   []key.Binding
	message string
	branch  string
	mouse   bool
	scroll  string
	width   int
}

func New(styles *styles.Styles, hints []key.Binding, width int) Model {
	return Model{
		styles: styles,
		hints:  hints,
		width:  width,
		mouse:  true,
	}
}

func (m Model) View() string {
	left := m.message
	if left == "" {
		parts := make([]string, 0, len(m.hints))
		for _, h := range m.hints {
			if !h.Enabled() {
				continue
			}
			parts = append(parts, h.Help().Key+" "+h.Help().Desc)
		}
		left = strings.Join(parts, " │ ")
	}
	left = " " + left

	right := ""
	if !m.mouse {
		right += "mouse off  "
	}
	right += m.styles.BranchName.Background(m.styles.Theme.Selection).Render(m.branch) + " " + m.scroll + " "

	leftPart := m.styles.Help.Background(m.styles.Theme.Selection).
		Render(styles.Truncate(left, max(0, m.width-lipgloss.Width(right))))

	padding := max(0, m.width-lipgloss.Width(leftPart)-lipgloss.Width(right))
	spacer := strings.Repeat(" ", padding)

	return m.styles.StatusBar.Render(leftPart + spacer + right)
}

// ScrollInfo is "All" when the whole diff fits, otherwise the percentage
// of it that has been reached.
func ScrollInfo(scroll, total, visible int) string {
	if total <= visible || total == 0 {
		return "All"
	}
	return fmt.Sprintf("%d%%", min(100, (scroll+visible)*100/total))
}

func (m *Model) SetBranch(branch string) {
	if branch == "" {
		branch = "HEAD"
	}
	m.branch = branch
}

func (m *Model) SetScroll(scroll, total, visible int) {
	m.scroll = ScrollInfo(scroll, total, visible)
}

func (m *Model) SetMouse(enabled bool) {
	m.mouse = enabled
}

func (m *Model) SetMessage(msg string) {
	m.message = msg
}

func (m *Model) ClearMessage() {
	m.message = ""
}

func (m *Model) SetWidth(width int) {
	m.width = width
}
