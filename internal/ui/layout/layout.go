package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	// HeaderHeight is the title row at the top of every panel.
	HeaderHeight = 1
	// StatusHeight is the status bar at the bottom of the screen.
	StatusHeight = 1

	minLeftWidth = 25
	maxLeftWidth = 50
)

// Rect is a screen region in cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Region names a panel for hit testing.
type Region int

const (
	RegionNone Region = iota
	RegionCommits
	RegionFiles
	RegionDiff
	RegionStatus
)

// Geometry is the placement of every panel for one terminal size.
type Geometry struct {
	Commits   Rect // commit list, or branch picker in picker mode
	Files     Rect
	Separator Rect
	Diff      Rect
	Status    Rect
}

// ListRows is how many items a list panel of rect r can show.
func ListRows(r Rect) int {
	return max(0, r.Height-HeaderHeight)
}

// Hit maps a cell to the panel under it and the row within that panel.
func (g Geometry) Hit(x, y int) (Region, int) {
	switch {
	case g.Commits.Contains(x, y):
		return RegionCommits, y - g.Commits.Y
	case g.Files.Contains(x, y):
		return RegionFiles, y - g.Files.Y
	case g.Diff.Contains(x, y):
		return RegionDiff, y - g.Diff.Y
	case g.Status.Contains(x, y):
		return RegionStatus, 0
	default:
		return RegionNone, 0
	}
}

type Layout struct {
	width      int
	height     int
	background lipgloss.Color
	border     lipgloss.Color
}

func New(width, height int, background, border lipgloss.Color) *Layout {
	return &Layout{
		width:      width,
		height:     height,
		background: background,
		border:     border,
	}
}

// Calculate places the panels. The left column is a quarter of the width,
// clamped to [25, 50] columns and never more than half the screen; the
// commit panel takes the top half of it.
func (l *Layout) Calculate() Geometry {
	contentHeight := max(2*(HeaderHeight+1), l.height-StatusHeight)

	left := min(max(l.width/4, minLeftWidth), maxLeftWidth)
	left = max(1, min(left, l.width/2))
	right := max(1, l.width-left-1)

	commitsHeight := contentHeight / 2
	return Geometry{
		Commits:   Rect{X: 0, Y: 0, Width: left, Height: commitsHeight},
		Files:     Rect{X: 0, Y: commitsHeight, Width: left, Height: contentHeight - commitsHeight},
		Separator: Rect{X: left, Y: 0, Width: 1, Height: contentHeight},
		Diff:      Rect{X: left + 1, Y: 0, Width: right, Height: contentHeight},
		Status:    Rect{X: 0, Y: contentHeight, Width: l.width, Height: StatusHeight},
	}
}

// Render assembles the panels into a full-screen frame. Each panel string
// is expected to already fit its rectangle.
// The whole frame is placed with lipgloss.Place + WithWhitespaceBackground
// so every cell, including gaps, gets the base background colour.
func (l *Layout) Render(commits, files, diffPane, status string) string {
	g := l.Calculate()

	leftColumn := lipgloss.JoinVertical(lipgloss.Left,
		fit(commits, g.Commits),
		fit(files, g.Files),
	)
	separator := lipgloss.NewStyle().
		Foreground(l.border).
		Render(strings.TrimSuffix(strings.Repeat("│\n", g.Separator.Height), "\n"))
	main := lipgloss.JoinHorizontal(lipgloss.Top, leftColumn, separator, fit(diffPane, g.Diff))

	combined := lipgloss.JoinVertical(lipgloss.Left, main, status)
	return lipgloss.Place(
		l.width, l.height,
		lipgloss.Left, lipgloss.Top,
		combined,
		lipgloss.WithWhitespaceBackground(l.background),
	)
}

// fit pads or cuts s to exactly r's size.
func fit(s string, r Rect) string {
	return lipgloss.NewStyle().
		Width(r.Width).MaxWidth(r.Width).
		Height(r.Height).MaxHeight(r.Height).
		Render(s)
}

func (l *Layout) SetSize(width, height int) {
	l.width = width
	l.height = height
}

func (l *Layout) Size() (width, height int) {
	return l.width, l.height
}
