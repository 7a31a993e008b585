package styles

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Theme       Theme
	Header      lipgloss.Style
	Separator   lipgloss.Style
	StatusBar   lipgloss.Style
	CommitHash  lipgloss.Style
	BranchName  lipgloss.Style
	Selected    lipgloss.Style
	Help        lipgloss.Style
	LineNumber  lipgloss.Style
	Added       lipgloss.Style
	Removed     lipgloss.Style
	Context     lipgloss.Style
	HunkHeader  lipgloss.Style
	LiveChanges lipgloss.Style
	Placeholder lipgloss.Style
}

func NewStyles(theme Theme) *Styles {
	return &Styles{
		Theme: theme,
		Header: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Background(theme.BackgroundPanel).
			Bold(true),
		Separator: lipgloss.NewStyle().
			Foreground(theme.Border),
		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Subtext).
			Background(theme.Selection),
		CommitHash: lipgloss.NewStyle().
			Foreground(theme.CommitHash),
		BranchName: lipgloss.NewStyle().
			Foreground(theme.BranchName).
			Bold(true),
		Selected: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Background(theme.Selection),
		Help: lipgloss.NewStyle().
			Foreground(theme.Subtext),
		LineNumber: lipgloss.NewStyle().
			Foreground(theme.LineNumber),
		Added: lipgloss.NewStyle().
			Foreground(theme.DiffAdd).
			Background(theme.DiffAddBg),
		Removed: lipgloss.NewStyle().
			Foreground(theme.DiffRemove).
			Background(theme.DiffRemoveBg),
		Context: lipgloss.NewStyle().
			Foreground(theme.Foreground),
		HunkHeader: lipgloss.NewStyle().
			Foreground(theme.HunkHeader),
		LiveChanges: lipgloss.NewStyle().
			Foreground(theme.LiveChanges).
			Italic(true),
		Placeholder: lipgloss.NewStyle().
			Foreground(theme.Subtext).
			Italic(true),
	}
}

// StatusColor picks the foreground for a changed-path status letter.
func (s *Styles) StatusColor(status string) lipgloss.Color {
	switch status {
	case "added":
		return s.Theme.StatusAdded
	case "deleted":
		return s.Theme.StatusDelete
	default:
		return s.Theme.StatusModify
	}
}
